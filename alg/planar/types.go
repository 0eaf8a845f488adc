package planar

// An Arc is a single dependency attachment. Dependent is the position of
// the modifier word (1-based), Governor the position of its head; governor
// 0 is the virtual root.
type Arc struct {
	Dependent int
	Governor  int
}

func (a Arc) Left() bool {
	return a.Dependent < a.Governor
}

func (a Arc) Span() (int, int) {
	if a.Dependent < a.Governor {
		return a.Dependent, a.Governor
	}
	return a.Governor, a.Dependent
}

// Crossed tests whether two arcs interleave: exactly one endpoint of b
// falls strictly inside a's span and the other falls outside it. Arcs
// sharing an endpoint never cross; neither do nested or disjoint arcs.
func Crossed(a, b Arc) bool {
	aLo, aHi := a.Span()
	bLo, bHi := b.Span()
	if aLo == bLo || aLo == bHi || aHi == bLo || aHi == bHi {
		return false
	}
	loInside := aLo < bLo && bLo < aHi
	hiInside := aLo < bHi && bHi < aHi
	return loInside != hiInside
}

// A Plane is one of the two crossing-free arc subsets of a tree, together
// with the boundary dependents needed by the bracket encoder: per governor,
// the leftmost dependent among the plane's left arcs and the rightmost
// dependent among its right arcs.
type Plane struct {
	ID   int
	Arcs []Arc

	leftmost  map[int]int
	rightmost map[int]int
}

func NewPlane(id int, arcs []Arc) *Plane {
	p := &Plane{
		ID:        id,
		Arcs:      arcs,
		leftmost:  make(map[int]int, len(arcs)),
		rightmost: make(map[int]int, len(arcs)),
	}
	for _, arc := range arcs {
		if arc.Left() {
			cur, exists := p.leftmost[arc.Governor]
			if !exists || arc.Dependent < cur {
				p.leftmost[arc.Governor] = arc.Dependent
			}
		} else {
			cur, exists := p.rightmost[arc.Governor]
			if !exists || arc.Dependent > cur {
				p.rightmost[arc.Governor] = arc.Dependent
			}
		}
	}
	return p
}

// Leftmost reports whether arc is the leftmost left-dependent of its
// governor within the plane. At most one arc per governor satisfies this.
func (p *Plane) Leftmost(arc Arc) bool {
	dep, exists := p.leftmost[arc.Governor]
	return exists && arc.Left() && dep == arc.Dependent
}

// Rightmost is the mirror of Leftmost for right arcs.
func (p *Plane) Rightmost(arc Arc) bool {
	dep, exists := p.rightmost[arc.Governor]
	return exists && !arc.Left() && dep == arc.Dependent
}
