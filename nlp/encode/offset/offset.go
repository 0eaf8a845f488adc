// Package offset implements the naive head-offset encodings: the label
// payload is the governor's absolute position, or its position relative
// to the dependent. Both are total and lossless; they exist as cheap
// baselines next to the bracket encoding.
package offset

import (
	"strconv"

	"yatl/alg/planar"
	"yatl/nlp/encode"
	nlp "yatl/nlp/types"
)

type Variant int

const (
	Absolute Variant = iota
	Relative
)

type Encoding struct {
	Separator byte
	Variant   Variant

	// HangFromRoot replaces the relative offset of root-attached nodes
	// with the empty-payload sentinel, so the model can treat "is root"
	// as its own class.
	HangFromRoot bool
}

var _ encode.Encoding = Encoding{}

func (e Encoding) String() string {
	if e.Variant == Relative {
		return "Naive Relative Offset"
	}
	return "Naive Absolute Offset"
}

func (e Encoding) Encode(tree *nlp.DepTree) (*nlp.LinearizedTree, []planar.Arc, error) {
	if err := tree.Validate(); err != nil {
		return nil, nil, err
	}
	rows := make([]nlp.LinRow, tree.Len())
	for id := 1; id <= tree.Len(); id++ {
		node := tree.Nodes[id]
		var payload string
		switch {
		case e.Variant == Relative && e.HangFromRoot && node.Head == 0:
			payload = nlp.NoneLabel
		case e.Variant == Relative:
			payload = strconv.Itoa(node.Head - id)
		default:
			payload = strconv.Itoa(node.Head)
		}
		rows[id-1] = nlp.LinRow{
			Word:    node.Word,
			POS:     node.POS,
			FeatStr: node.FeatStr,
			Label:   nlp.Label{Payload: payload, Relation: node.Relation},
		}
	}
	return nlp.NewLinearizedTree(rows), nil, nil
}

// Decode accepts any payloads; non-numeric or out-of-range heads fall
// back to the root, mirroring the bracket decoder's recovery rule.
func (e Encoding) Decode(lt *nlp.LinearizedTree) (*nlp.DepTree, error) {
	if lt == nil || lt.Len() == 0 {
		return nil, encode.ErrEmptyInput
	}
	tree := nlp.NewDepTree(lt.Len())
	for i := 0; i < lt.Len(); i++ {
		row := lt.Row(i, true)
		id := i + 1
		tree.UpdateWord(id, row.Word)
		tree.UpdatePOS(id, row.POS)
		tree.UpdateRelation(id, row.Label.Relation)
		tree.UpdateFeatures(id, row.FeatStr)

		head := 0
		if row.Label.Payload != nlp.NoneLabel {
			if value, err := strconv.Atoi(row.Label.Payload); err == nil {
				if e.Variant == Relative {
					head = id + value
				} else {
					head = value
				}
			}
		}
		if head < 0 || head > lt.Len() || head == id {
			head = 0
		}
		tree.UpdateHead(id, head)
	}
	tree.Finalize()
	return tree, nil
}
