// Package mediatype implements RFC 9110 media-type ordering and matching for
// server-driven content negotiation over structured-field values.
//
// This package is intentionally:
// - pure (no IO; items arrive pre-parsed from github.com/dunglas/httpsfv)
// - deterministic (stable results across executions)
// - degrade-not-error (a malformed media type matches no valid one; nothing errors)
//
// It is not a header parser or serializer. ParseAccept delegates the raw
// field lines to the structured-field parser; everything else operates on the
// parser's items, where a media range like text/html;level=2;q=0.7 is a
// Token bare value carrying its parameters.
package mediatype
