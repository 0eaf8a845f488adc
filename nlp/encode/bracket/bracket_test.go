package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatl/alg/planar"
	"yatl/nlp/encode"
	nlp "yatl/nlp/types"
)

func buildTree(words, tags, relations []string, heads []int) *nlp.DepTree {
	tree := nlp.NewDepTree(len(heads))
	for i := range heads {
		id := i + 1
		tree.UpdateWord(id, words[i])
		tree.UpdatePOS(id, tags[i])
		tree.UpdateRelation(id, relations[i])
		tree.UpdateHead(id, heads[i])
	}
	return tree
}

func simpleTree() *nlp.DepTree {
	return buildTree(
		[]string{"she", "saw", "stars"},
		[]string{"PRON", "VERB", "NOUN"},
		[]string{"nsubj", "root", "obj"},
		[]int{2, 0, 2},
	)
}

func payloads(lt *nlp.LinearizedTree) []string {
	out := make([]string, lt.Len())
	for i, row := range lt.Rows {
		out[i] = row.Label.Payload
	}
	return out
}

func TestEncodeSimple(t *testing.T) {
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	lt, dropped, err := enc.Encode(simpleTree())
	require.NoError(t, err)
	require.Empty(t, dropped)
	assert.Equal(t, []string{"<0*", "\\0/0", ">0*"}, payloads(lt))
	assert.Equal(t, "nsubj", lt.Rows[0].Label.Relation)
	assert.Equal(t, "root", lt.Rows[1].Label.Relation)
}

func TestDecodeSimple(t *testing.T) {
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	lt, _, err := enc.Encode(simpleTree())
	require.NoError(t, err)

	decoded, err := enc.Decode(lt)
	require.NoError(t, err)
	heads := []int{decoded.Nodes[1].Head, decoded.Nodes[2].Head, decoded.Nodes[3].Head}
	assert.Equal(t, []int{2, 0, 2}, heads)
	assert.True(t, simpleTree().Equal(decoded))
}

func TestEncodeMalformed(t *testing.T) {
	enc := Encoding{Separator: '_', Policy: planar.Greedy}

	noRoot := buildTree(
		[]string{"a", "b"}, []string{"X", "X"}, []string{"dep", "dep"},
		[]int{2, 1},
	)
	_, _, err := enc.Encode(noRoot)
	require.Error(t, err)
	var malformed *nlp.MalformedTreeError
	require.ErrorAs(t, err, &malformed)
}

func TestProjectiveStaysInPlane0(t *testing.T) {
	// 2 <- 3 -> 5, nested and disjoint arcs only
	tree := buildTree(
		[]string{"a", "b", "c", "d", "e"},
		[]string{"X", "X", "X", "X", "X"},
		[]string{"det", "nsubj", "root", "det", "obj"},
		[]int{2, 3, 0, 5, 3},
	)
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	lt, dropped, err := enc.Encode(tree)
	require.NoError(t, err)
	require.Empty(t, dropped)
	for _, payload := range payloads(lt) {
		assert.NotContains(t, payload, "1", "projective tree must not touch plane 1")
	}

	decoded, err := enc.Decode(lt)
	require.NoError(t, err)
	assert.True(t, tree.Equal(decoded))
}

func TestCrossingArcsSplitPlanes(t *testing.T) {
	// arcs (1,3) and (2,4) cross; greedy sends the second to plane 1
	tree := buildTree(
		[]string{"a", "b", "c", "d"},
		[]string{"X", "X", "X", "X"},
		[]string{"dep", "dep", "root", "dep"},
		[]int{3, 4, 0, 3},
	)
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	lt, dropped, err := enc.Encode(tree)
	require.NoError(t, err)
	require.Empty(t, dropped)
	assert.Equal(t, "<0*", lt.Rows[0].Label.Payload)
	assert.Equal(t, "<1*", lt.Rows[1].Label.Payload)

	decoded, err := enc.Decode(lt)
	require.NoError(t, err)
	assert.True(t, tree.Equal(decoded), "expected %v got %v", tree, decoded)
}

func TestRoundTripNonProjective(t *testing.T) {
	// Dutch-style cross-serial dependencies plus a projective tail
	trees := []*nlp.DepTree{
		buildTree(
			[]string{"a", "b", "c", "d", "e", "f"},
			[]string{"X", "X", "X", "X", "X", "X"},
			[]string{"dep", "dep", "root", "dep", "dep", "dep"},
			[]int{3, 5, 0, 3, 3, 5},
		),
		buildTree(
			[]string{"a", "b", "c", "d", "e"},
			[]string{"X", "X", "X", "X", "X"},
			[]string{"dep", "dep", "dep", "root", "dep"},
			[]int{4, 4, 5, 0, 2},
		),
	}
	for _, policy := range []planar.Policy{planar.Greedy, planar.Propagate} {
		enc := Encoding{Separator: '_', Policy: policy}
		for _, tree := range trees {
			lt, dropped, err := enc.Encode(tree)
			require.NoError(t, err)
			require.Empty(t, dropped, "2-planar tree must fully encode")
			decoded, err := enc.Decode(lt)
			require.NoError(t, err)
			assert.True(t, tree.Equal(decoded), "policy %v: expected %v got %v", policy, tree, decoded)
		}
	}
}

func TestEncodeDroppedArc(t *testing.T) {
	// arc spans [1,4], [2,6] and [3,7] cross pairwise, so two planes can
	// only hold two of them; the third arc is dropped and its dependent
	// falls back to the root on decode
	tree := buildTree(
		[]string{"a", "b", "c", "d", "e", "f", "g"},
		[]string{"X", "X", "X", "X", "X", "X", "X"},
		[]string{"dep", "dep", "dep", "root", "dep", "dep", "dep"},
		[]int{4, 6, 7, 0, 4, 4, 6},
	)
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	lt, dropped, err := enc.Encode(tree)
	require.NoError(t, err, "a dropped arc must not abort the sentence")
	assert.Equal(t, []planar.Arc{{Dependent: 3, Governor: 7}}, dropped)
	assert.Equal(t, nlp.NoneLabel, lt.Rows[2].Label.Payload)

	decoded, err := enc.Decode(lt)
	require.NoError(t, err)
	heads := make([]int, decoded.Len())
	for id := 1; id <= decoded.Len(); id++ {
		heads[id-1] = decoded.Nodes[id].Head
	}
	assert.Equal(t, []int{4, 6, 0, 0, 4, 4, 6}, heads)
}

func TestEncodeDeterministic(t *testing.T) {
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	first, _, err := enc.Encode(simpleTree())
	require.NoError(t, err)
	second, _, err := enc.Encode(simpleTree())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeUnbalancedBracket(t *testing.T) {
	// an unmatched resolving token attaches to the root, never fails
	lt := nlp.NewLinearizedTree([]nlp.LinRow{
		{Word: "a", POS: "X", Label: nlp.Label{Payload: ">0", Relation: "dep"}},
		{Word: "b", POS: "X", Label: nlp.Label{Payload: ">0*", Relation: "dep"}},
	})
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	decoded, err := enc.Decode(lt)
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Nodes[1].Head)
	assert.Equal(t, 0, decoded.Nodes[2].Head)
}

func TestDecodeEmptyInput(t *testing.T) {
	enc := Encoding{Separator: '_', Policy: planar.Greedy}
	_, err := enc.Decode(nlp.NewLinearizedTree(nil))
	require.ErrorIs(t, err, encode.ErrEmptyInput)
}

func TestMergeBracketsIdempotent(t *testing.T) {
	fragments := []string{"<0*", "\\0/0", ">1*<0", "/0\\1", "<0*>1/0\\1*"}
	for _, fragment := range fragments {
		once := mergeBrackets(fragment)
		serialized := ""
		for _, tok := range once {
			serialized += tok.String()
		}
		twice := mergeBrackets(serialized)
		assert.Equal(t, once, twice, "merge of %q not idempotent", fragment)
	}
}

func TestMergeBracketsNoise(t *testing.T) {
	assert.Empty(t, mergeBrackets(nlp.NoneLabel))
	assert.Empty(t, mergeBrackets(""))
	// stray digits and stars, and a plane-less bracket
	tokens := mergeBrackets("0*<0x>")
	require.Len(t, tokens, 2)
	assert.Equal(t, token{kind: '<', plane: '0'}, tokens[0])
	assert.Equal(t, token{kind: '>'}, tokens[1])
}
