package bracket

import (
	"yatl/nlp/encode"
	nlp "yatl/nlp/types"
)

// A pass is one stack scan over the label sequence. Left-to-right passes
// match right arcs (governor opens with "/p", dependent resolves with
// ">p"); right-to-left passes match left arcs with "\p" and "<p".
type pass struct {
	plane     byte
	forward   bool
	opening   byte
	resolving byte
}

var passes = [4]pass{
	{'0', true, '/', '>'},
	{'0', false, '\\', '<'},
	{'1', true, '/', '>'},
	{'1', false, '\\', '<'},
}

// Decode reconstructs a tree from a label sequence. Malformed bracket
// content never fails: a resolving token over an empty stack attaches to
// the root, and any node no pass resolves ends up root-attached.
func (e Encoding) Decode(lt *nlp.LinearizedTree) (*nlp.DepTree, error) {
	if lt == nil || lt.Len() == 0 {
		return nil, encode.ErrEmptyInput
	}
	tree := nlp.NewDepTree(lt.Len())
	for _, p := range passes {
		decodingStep(lt, tree, p)
	}
	tree.Finalize()
	return tree, nil
}

func decodingStep(lt *nlp.LinearizedTree, tree *nlp.DepTree, p pass) {
	stack := make([]int, 0, lt.Len())
	for i := 0; i < lt.Len(); i++ {
		row := lt.Row(i, p.forward)
		id := i + 1
		if !p.forward {
			id = lt.Len() - i
		}

		// every pass re-writes the surface columns; the updates are
		// idempotent so pass order does not matter for them
		tree.UpdateWord(id, row.Word)
		tree.UpdatePOS(id, row.POS)
		tree.UpdateRelation(id, row.Label.Relation)
		tree.UpdateFeatures(id, row.FeatStr)

		tokens := mergeBrackets(row.Label.Payload)

		// resolve before push: a node that is both a dependent of an
		// outer scope and a governor of a new one closes out its own
		// arc first
		for _, tok := range tokens {
			if tok.plane != p.plane || tok.kind != p.resolving {
				continue
			}
			head := 0
			if len(stack) > 0 {
				head = stack[len(stack)-1]
			}
			tree.UpdateHead(id, head)
			if tok.star && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
		for _, tok := range tokens {
			if tok.plane == p.plane && tok.kind == p.opening {
				stack = append(stack, id)
			}
		}
	}
}
