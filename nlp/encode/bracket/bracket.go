// Package bracket implements the 2-planar bracket encoding: the arc set
// is split across two crossing-free planes and each arc becomes a pair of
// nested bracket tokens, one on the dependent and one on the governor, so
// a labeled (possibly non-projective) dependency tree round-trips through
// a flat per-token label sequence.
package bracket

import (
	"strings"

	"yatl/alg/planar"
	"yatl/nlp/encode"
	nlp "yatl/nlp/types"
)

type Encoding struct {
	Separator byte
	Policy    planar.Policy
}

var _ encode.Encoding = Encoding{}

func (e Encoding) String() string {
	return "2-Planar Bracketing (" + e.Policy.String() + ")"
}

// Bracket characters per plane: left-arc dependent, left-arc governor,
// right-arc dependent, right-arc governor.
var planeChars = [2][4]string{
	{"<0", "\\0", ">0", "/0"},
	{"<1", "\\1", ">1", "/1"},
}

// Encode linearizes a well-formed tree. Root attachments are implicit
// (their dependents keep the empty payload); every other arc lands in a
// plane or is reported dropped, the documented lossy case.
func (e Encoding) Encode(tree *nlp.DepTree) (*nlp.LinearizedTree, []planar.Arc, error) {
	if err := tree.Validate(); err != nil {
		return nil, nil, err
	}

	arcs := make([]planar.Arc, 0, tree.Len())
	for _, arc := range tree.Arcs() {
		if arc.Governor == 0 {
			continue
		}
		arcs = append(arcs, arc)
	}
	plane0, plane1, dropped := e.Policy.Partition(arcs)

	fragments := make([]string, tree.Len()+1)
	encodingStep(plane0, fragments)
	encodingStep(plane1, fragments)

	rows := make([]nlp.LinRow, tree.Len())
	for id := 1; id <= tree.Len(); id++ {
		node := tree.Nodes[id]
		payload := fragments[id]
		if payload == "" {
			payload = nlp.NoneLabel
		}
		rows[id-1] = nlp.LinRow{
			Word:    node.Word,
			POS:     node.POS,
			FeatStr: node.FeatStr,
			Label:   nlp.Label{Payload: payload, Relation: node.Relation},
		}
	}
	return nlp.NewLinearizedTree(rows), dropped, nil
}

// encodingStep writes one plane's bracket fragments. The dependent of a
// left arc gets "<p" (starred when it is the leftmost dependent of its
// governor in this plane), the governor "\p" exactly once however many
// left dependents share it; right arcs mirror with ">p" and "/p". Plane 0
// is written before plane 1 into the same fragment buffers.
func encodingStep(plane *planar.Plane, fragments []string) {
	chars := planeChars[plane.ID]
	for _, arc := range plane.Arcs {
		if arc.Left() {
			fragments[arc.Dependent] += chars[0]
			if plane.Leftmost(arc) {
				fragments[arc.Dependent] += "*"
			}
			if !strings.Contains(fragments[arc.Governor], chars[1]) {
				fragments[arc.Governor] += chars[1]
			}
		} else {
			fragments[arc.Dependent] += chars[2]
			if plane.Rightmost(arc) {
				fragments[arc.Dependent] += "*"
			}
			if !strings.Contains(fragments[arc.Governor], chars[3]) {
				fragments[arc.Governor] += chars[3]
			}
		}
	}
}
