package sfutils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/dunglas/httpsfv"
)

// ValueString renders a bare item value as text. Strings and tokens render
// as their content, integers and decimals as minimal decimal notation
// (float64(2) renders "2", not "2.0"), booleans as "true" or "false", and
// byte sequences as standard base64. Values outside the bare item types fall
// back to fmt.Sprint.
func ValueString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case httpsfv.Token:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case []byte:
		return base64.StdEncoding.EncodeToString(x)
	default:
		return fmt.Sprint(v)
	}
}

// ValueEqual reports whether two bare item values agree. Values of the same
// type compare natively; values of different types compare by their
// ValueString rendering, so int64(2), float64(2) and "2" all agree while
// int64(2) and "2.0" do not.
func ValueEqual(a, b any) bool {
	ab, aOK := a.([]byte)
	bb, bOK := b.([]byte)
	if aOK && bOK {
		return bytes.Equal(ab, bb)
	}
	// After the byte-sequence case, == cannot panic: the remaining bare
	// item types are comparable and mismatched dynamic types compare false.
	if a == b {
		return true
	}
	return ValueString(a) == ValueString(b)
}
