package mediatype

import (
	"testing"

	sfutils "github.com/CxRes/sf-utils"
	"github.com/dunglas/httpsfv"
	"github.com/stretchr/testify/require"
)

// mustItem parses a single media-type item like "text/html;level=2;q=0.7".
func mustItem(t *testing.T, s string) httpsfv.Item {
	t.Helper()
	item, err := httpsfv.UnmarshalItem([]string{s})
	require.NoError(t, err, "unmarshal item %q", s)
	return item
}

// mustAccept parses Accept-style field lines into their items.
func mustAccept(t *testing.T, lines ...string) []httpsfv.Item {
	t.Helper()
	items, err := ParseAccept(lines)
	require.NoError(t, err, "parse accept %v", lines)
	return items
}

// bareValues renders each item's bare value, for order assertions.
func bareValues(items []httpsfv.Item) []string {
	values := make([]string, len(items))
	for i, item := range items {
		values[i] = sfutils.ValueString(item.Value)
	}
	return values
}
