package types

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// NoneLabel marks a label payload with no bracket content and the
	// feature/lemma columns of nodes that have none.
	NoneLabel = "-NONE-"

	// RootWord is the surface form of the virtual root sentinel.
	RootWord = "-ROOT-"

	FeaturesSeparator = "|"
	FeatureSeparator  = "="
)

// Features is the parsed form of a node's morphological feature column.
// The map is unordered and display-only; the column's source order is
// carried by the node's FeatStr, which is what round-trips through
// encoding.
type Features map[string]string

// String renders a canonical feature column, keys sorted.
func (f Features) String() string {
	if len(f) == 0 {
		return "_"
	}
	strs := make([]string, 0, len(f))
	for name, value := range f {
		strs = append(strs, fmt.Sprintf("%v%v%v", name, FeatureSeparator, value))
	}
	sort.Strings(strs)
	return strings.Join(strs, FeaturesSeparator)
}

// A Label is the per-token unit of a linearized tree: an encoding payload
// (bracket fragment or integer offset) next to the dependency relation.
type Label struct {
	Payload  string
	Relation string
}

// String serializes as "<payload><separator><relation>"; an empty payload
// is written as the NoneLabel sentinel so the column is never empty.
func (l Label) String(separator byte) string {
	payload := l.Payload
	if payload == "" {
		payload = NoneLabel
	}
	return payload + string(separator) + l.Relation
}

// ParseLabel splits a serialized label on the first separator occurrence;
// payloads never contain the separator, relations may.
func ParseLabel(value string, separator byte) (Label, error) {
	at := strings.IndexByte(value, separator)
	if at < 0 {
		return Label{}, fmt.Errorf("missing separator %q in label %q", separator, value)
	}
	return Label{Payload: value[:at], Relation: value[at+1:]}, nil
}
