package planar

import "sort"

// A Policy selects how arcs are split across the two planes. Both policies
// share the same contract: two internally crossing-free arc sets plus the
// remainder that fits in neither.
type Policy int

const (
	Greedy Policy = iota
	Propagate
)

func (p Policy) String() string {
	switch p {
	case Greedy:
		return "greedy"
	case Propagate:
		return "propagate"
	}
	return "unknown"
}

func PolicyFromString(name string) (Policy, bool) {
	switch name {
	case "greedy":
		return Greedy, true
	case "propagate":
		return Propagate, true
	}
	return Greedy, false
}

// Partition splits arcs into plane 0, plane 1 and the unencodable
// remainder. The input is not mutated; arcs are processed in ascending
// dependent order, so the result is deterministic.
func (p Policy) Partition(arcs []Arc) (*Plane, *Plane, []Arc) {
	sorted := make([]Arc, len(arcs))
	copy(sorted, arcs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Dependent < sorted[j].Dependent
	})

	var assignment []int
	if p == Propagate {
		assignment = propagate(sorted)
	} else {
		assignment = greedy(sorted)
	}

	var plane0, plane1, unencodable []Arc
	for i, arc := range sorted {
		switch assignment[i] {
		case 0:
			plane0 = append(plane0, arc)
		case 1:
			plane1 = append(plane1, arc)
		default:
			unencodable = append(unencodable, arc)
		}
	}
	return NewPlane(0, plane0), NewPlane(1, plane1), unencodable
}

const unassigned = -1

func fits(arc Arc, plane int, arcs []Arc, assignment []int) bool {
	for i, other := range arcs {
		if assignment[i] == plane && Crossed(arc, other) {
			return false
		}
	}
	return true
}

// greedy tries plane 0 first for every arc, then plane 1, then gives up
// on the arc.
func greedy(arcs []Arc) []int {
	assignment := make([]int, len(arcs))
	for i := range assignment {
		assignment[i] = unassigned
	}
	for i, arc := range arcs {
		if fits(arc, 0, arcs, assignment) {
			assignment[i] = 0
		} else if fits(arc, 1, arcs, assignment) {
			assignment[i] = 1
		}
	}
	return assignment
}

// propagate 2-colors each connected component of the crossing-conflict
// graph by breadth-first propagation. A component with an odd crossing
// cycle is not 2-colorable; it falls back to the greedy rule, restricted
// to the component and preferring plane 0.
func propagate(arcs []Arc) []int {
	n := len(arcs)
	adjacent := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if Crossed(arcs[i], arcs[j]) {
				adjacent[i] = append(adjacent[i], j)
				adjacent[j] = append(adjacent[j], i)
			}
		}
	}

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = unassigned
	}
	for seed := 0; seed < n; seed++ {
		if assignment[seed] != unassigned {
			continue
		}
		component := []int{seed}
		assignment[seed] = 0
		twoColorable := true
		for at := 0; at < len(component); at++ {
			current := component[at]
			for _, neighbor := range adjacent[current] {
				if assignment[neighbor] == unassigned {
					assignment[neighbor] = 1 - assignment[current]
					component = append(component, neighbor)
				} else if assignment[neighbor] == assignment[current] {
					twoColorable = false
				}
			}
		}
		if !twoColorable {
			// BFS order is not dependent order; restore it before
			// re-running the greedy rule on the component
			sort.Ints(component)
			for _, member := range component {
				assignment[member] = unassigned
			}
			for _, member := range component {
				if fits(arcs[member], 0, arcs, assignment) {
					assignment[member] = 0
				} else if fits(arcs[member], 1, arcs, assignment) {
					assignment[member] = 1
				}
			}
		}
	}
	return assignment
}
