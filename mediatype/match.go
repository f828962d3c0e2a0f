package mediatype

import (
	sfutils "github.com/CxRes/sf-utils"
	"github.com/dunglas/httpsfv"
)

// Mismatch records a requested parameter whose value disagrees with the
// allowed side. Value carries the requested bare value.
type Mismatch struct {
	Key   string
	Value any
}

// Match reports whether the requested media type is satisfied by the allowed
// one.
//
// Type and subtype compare directionally: a requested * component matches
// any allowed counterpart, while a wildcard on the allowed side carries no
// special meaning and only matches literally. A bare token that fails the
// media-type grammar degrades to empty components, which fail against every
// valid type.
//
// When type and subtype are compatible the requested parameters must be
// contained in the allowed ones. A requested parameter name the allowed side
// does not carry fails the match outright with nil mismatches; a shared name
// whose values disagree (per sfutils.ValueEqual) is recorded and scanning
// continues, so every disagreement is reported at once. q never takes part:
// it cannot fail a match and is never reported.
//
// The outcomes are (true, nil) for a full match, (false, nil) for an
// incompatible type/subtype or an unknown parameter name, and
// (false, mismatches) when only parameter values disagree.
func Match(requested, allowed httpsfv.Item) (bool, []Mismatch) {
	reqType, reqSub, _ := Split(sfutils.ValueString(requested.Value))
	allType, allSub, _ := Split(sfutils.ValueString(allowed.Value))

	if reqType != "*" && reqType != allType {
		return false, nil
	}
	if reqSub != "*" && reqSub != allSub {
		return false, nil
	}
	return containsParams(requested.Params, allowed.Params)
}

// containsParams walks the requested parameters in field order. An unknown
// name returns false immediately, discarding any mismatches collected so
// far; disagreeing values are collected without short-circuiting. Allowed
// parameters the requested side never asked about are not consulted.
func containsParams(requested, allowed *httpsfv.Params) (bool, []Mismatch) {
	if requested == nil {
		return true, nil
	}
	if allowed == nil {
		allowed = httpsfv.NewParams()
	}

	var mismatches []Mismatch
	for _, key := range requested.Names() {
		if key == qualityName {
			continue
		}
		av, ok := allowed.Get(key)
		if !ok {
			return false, nil
		}
		rv, _ := requested.Get(key)
		if !sfutils.ValueEqual(rv, av) {
			mismatches = append(mismatches, Mismatch{Key: key, Value: rv})
		}
	}
	if len(mismatches) > 0 {
		return false, mismatches
	}
	return true, nil
}
