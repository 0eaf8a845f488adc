package bracket

import nlp "yatl/nlp/types"

// A token is one self-contained bracket marker: an arc-side kind, the
// plane it belongs to and the boundary star marking the outermost
// dependent of its governor's arc group.
type token struct {
	kind  byte // one of '<' '\\' '>' '/'
	plane byte // '0' or '1'; 0 when the raw stream carried no plane digit
	star  bool
}

func (t token) String() string {
	s := string(t.kind)
	if t.plane != 0 {
		s += string(t.plane)
	}
	if t.star {
		s += "*"
	}
	return s
}

func isBoundary(c byte) bool {
	return c == '<' || c == '\\' || c == '>' || c == '/'
}

// mergeBrackets normalizes a raw fragment character stream into tokens:
// a plane digit fuses into the boundary character before it, a star fuses
// into the token it trails. The merge is idempotent (re-merging the
// serialized tokens yields the same sequence) and order-preserving.
// Stray digits, stars and unknown characters are model noise and are
// dropped; a boundary character that never received a plane digit carries
// no plane and matches no decode pass.
func mergeBrackets(payload string) []token {
	if payload == "" || payload == nlp.NoneLabel {
		return nil
	}
	tokens := make([]token, 0, len(payload)/2)
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		switch {
		case isBoundary(c):
			tokens = append(tokens, token{kind: c})
		case c == '0' || c == '1':
			if len(tokens) > 0 && tokens[len(tokens)-1].plane == 0 {
				tokens[len(tokens)-1].plane = c
			}
		case c == '*':
			if len(tokens) > 0 {
				tokens[len(tokens)-1].star = true
			}
		}
	}
	return tokens
}
