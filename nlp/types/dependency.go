package types

import (
	"fmt"
	"strings"

	"yatl/alg/planar"
	"yatl/util"
)

// HeadUnset is the head value of a node no decode pass has resolved yet.
const HeadUnset = -1

type DepNode struct {
	ID       int
	Head     int
	Word     string
	POS      string
	Relation string
	Feats    Features
	FeatStr  string
}

func (n DepNode) String() string {
	return fmt.Sprintf("%d:%s/%s(%s<-%d)", n.ID, n.Word, n.POS, n.Relation, n.Head)
}

func (n DepNode) Equal(otherEq util.Equaler) bool {
	other := otherEq.(DepNode)
	return n.ID == other.ID && n.Head == other.Head &&
		n.Word == other.Word && n.POS == other.POS &&
		n.Relation == other.Relation && n.FeatStr == other.FeatStr
}

// A DepTree is a labeled dependency tree over a dense arena of nodes.
// Nodes[0] is the virtual root sentinel; real nodes occupy 1..Len().
// Node ids double as slice indexes, so there are no node pointers
// anywhere in the model.
type DepTree struct {
	Nodes []DepNode
}

var _ util.Equaler = &DepTree{}

// NewDepTree allocates a tree of n words with every head unset. This is
// the decode target: the four decoder passes revisit and fill it in.
func NewDepTree(n int) *DepTree {
	nodes := make([]DepNode, n+1)
	nodes[0] = DepNode{ID: 0, Head: HeadUnset, Word: RootWord, POS: RootWord, Relation: RootWord}
	for id := 1; id <= n; id++ {
		nodes[id] = DepNode{ID: id, Head: HeadUnset}
	}
	return &DepTree{Nodes: nodes}
}

// Len is the number of words, excluding the virtual root sentinel.
func (t *DepTree) Len() int {
	return len(t.Nodes) - 1
}

// A MalformedTreeError reports a violated structural invariant: not
// exactly one root-attached node, or a head outside the dense id range.
type MalformedTreeError struct {
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return "malformed dependency tree: " + e.Reason
}

// Validate checks the invariants encoding relies on. It does not tolerate
// unset heads; decode targets are only valid once finalized.
func (t *DepTree) Validate() error {
	roots := 0
	for id := 1; id <= t.Len(); id++ {
		head := t.Nodes[id].Head
		if head < 0 || head > t.Len() {
			return &MalformedTreeError{fmt.Sprintf("node %d head %d out of range", id, head)}
		}
		if head == id {
			return &MalformedTreeError{fmt.Sprintf("node %d is its own head", id)}
		}
		if head == 0 {
			roots++
		}
	}
	if roots != 1 {
		return &MalformedTreeError{fmt.Sprintf("%d root-attached nodes, need exactly 1", roots)}
	}
	return nil
}

// Arcs derives the arc set, one arc per real node, in ascending dependent
// order. Arcs are views; they are never stored on the tree.
func (t *DepTree) Arcs() []planar.Arc {
	arcs := make([]planar.Arc, 0, t.Len())
	for id := 1; id <= t.Len(); id++ {
		arcs = append(arcs, planar.Arc{Dependent: id, Governor: t.Nodes[id].Head})
	}
	return arcs
}

// The Update* mutators are idempotent: the decoder revisits every node on
// every pass, re-writing the same values.

func (t *DepTree) UpdateHead(id, head int) {
	t.Nodes[id].Head = head
}

func (t *DepTree) UpdateWord(id int, word string) {
	t.Nodes[id].Word = word
}

func (t *DepTree) UpdatePOS(id int, pos string) {
	t.Nodes[id].POS = pos
}

func (t *DepTree) UpdateRelation(id int, relation string) {
	t.Nodes[id].Relation = relation
}

func (t *DepTree) UpdateFeatures(id int, featStr string) {
	t.Nodes[id].FeatStr = featStr
	t.Nodes[id].Feats, _ = ParseFeatures(featStr)
}

// Finalize discards the decode scaffolding: any head still unset becomes
// root-attached, so the result is fully headed for any input.
func (t *DepTree) Finalize() {
	t.Nodes[0].Head = HeadUnset
	for id := 1; id <= t.Len(); id++ {
		if t.Nodes[id].Head == HeadUnset {
			t.Nodes[id].Head = 0
		}
	}
}

func (t *DepTree) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*DepTree)
	if !ok || t.Len() != other.Len() {
		return false
	}
	for id := 1; id <= t.Len(); id++ {
		if !t.Nodes[id].Equal(other.Nodes[id]) {
			return false
		}
	}
	return true
}

func (t *DepTree) String() string {
	strs := make([]string, 0, t.Len())
	for id := 1; id <= t.Len(); id++ {
		strs = append(strs, t.Nodes[id].String())
	}
	return strings.Join(strs, " ")
}

// ParseFeatures reads a CoNLL-style "k=v|k=v" feature column; "_" and ""
// mean no features.
func ParseFeatures(featStr string) (Features, error) {
	if featStr == "_" || featStr == "" {
		return nil, nil
	}
	featureList := strings.Split(featStr, FeaturesSeparator)
	features := make(Features, len(featureList))
	for _, featureStr := range featureList {
		featureKV := strings.SplitN(featureStr, FeatureSeparator, 2)
		if len(featureKV) != 2 {
			return nil, fmt.Errorf("feature %q is not key%svalue", featureStr, FeatureSeparator)
		}
		features[featureKV[0]] = featureKV[1]
	}
	return features, nil
}
