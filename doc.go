// Package sfutils provides comparison utilities for HTTP Structured Field
// values (RFC 8941) as parsed by github.com/dunglas/httpsfv.
//
// The package deliberately owns no header parsing and no serialization:
// callers hand it bare items and parameters produced by the structured-field
// parser, and it answers comparison questions about them. This keeps every
// function pure and free of an error channel: malformed input degrades to a
// defined "does not match" outcome instead of failing.
//
// # Bare Item Values
//
// An RFC 8941 bare item is a string, token, integer, decimal, boolean or
// byte sequence. The parser surfaces these as string, httpsfv.Token, int64,
// float64, bool and []byte. ValueEqual compares two bare items natively
// first and then by their text rendering, so a requested version=2 matches
// an allowed version="2" the way loosely-typed field producers expect.
// ValueString is the shared text rendering behind that fallback.
//
// # Quick Start
//
//	accept, err := mediatype.ParseAccept(req.Header.Values("Accept"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, item := range mediatype.Sort(accept) {
//	    fmt.Println(sfutils.ValueString(item.Value))
//	}
//
// # Concurrency
//
// Every function in this module is pure: it reads caller-supplied values and
// allocates fresh results. Concurrent use needs no coordination.
//
// # Subpackages
//
//   - mediatype: RFC 9110 media-type ordering and matching for
//     server-driven content negotiation
package sfutils
