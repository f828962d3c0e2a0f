package mediatype

import (
	"fmt"

	"github.com/dunglas/httpsfv"
)

// Items projects a parsed structured-field list onto its item members.
// Inner-list members, which an Accept-shaped field never carries, are
// skipped rather than rejected.
func Items(list httpsfv.List) []httpsfv.Item {
	items := make([]httpsfv.Item, 0, len(list))
	for _, member := range list {
		if item, ok := member.(httpsfv.Item); ok {
			items = append(items, item)
		}
	}
	return items
}

// ParseAccept parses the lines of an Accept-style field into media-type
// items. Parsing belongs entirely to the structured-field parser; its error
// comes back wrapped and otherwise untouched.
func ParseAccept(fieldLines []string) ([]httpsfv.Item, error) {
	list, err := httpsfv.UnmarshalList(fieldLines)
	if err != nil {
		return nil, fmt.Errorf("parse accept field: %w", err)
	}
	return Items(list), nil
}

// Preferred picks the available media type the accept items prefer most.
// Candidates are tried in Sort order; one with a zero quality score is never
// acceptable (an explicit q=0 and an invalid q exclude alike). Only a full
// match selects, so a candidate that agrees with an available item on
// everything but a parameter value passes over it. ok is false when nothing
// is acceptable.
func Preferred(accept, available []httpsfv.Item) (preferred httpsfv.Item, ok bool) {
	for _, want := range Sort(accept) {
		if qualityScore(want.Params) == 0 {
			continue
		}
		for _, have := range available {
			if matched, _ := Match(want, have); matched {
				return have, true
			}
		}
	}
	return httpsfv.Item{}, false
}
