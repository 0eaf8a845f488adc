package encode

import (
	"errors"

	"yatl/alg/planar"
	nlp "yatl/nlp/types"
)

// ErrEmptyInput is returned by every decoder given a zero-length label
// sequence.
var ErrEmptyInput = errors.New("cannot decode an empty label sequence")

// An Encoding linearizes dependency trees into per-token labels and
// reconstructs trees from them. Encode additionally reports the arcs it
// had to drop because no plane could host them; offset encodings never
// drop arcs. Implementations hold only read-only configuration and may be
// shared across goroutines.
type Encoding interface {
	Encode(*nlp.DepTree) (*nlp.LinearizedTree, []planar.Arc, error)
	Decode(*nlp.LinearizedTree) (*nlp.DepTree, error)
	String() string
}
