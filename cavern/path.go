// SPDX-License-Identifier: MIT

package cavern

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Path is a found route: cavern indices in start→end order and its total cost.
type Path struct {
	Nodes []int
	Cost  float64
}

// Len returns the number of caverns on the path.
func (p *Path) Len() int { return len(p.Nodes) }

// Clone returns a deep copy, so a cached Path can be handed out safely.
func (p *Path) Clone() *Path {
	return &Path{Nodes: slices.Clone(p.Nodes), Cost: p.Cost}
}

// String renders the path as "0 -> 3 -> 4".
func (p *Path) String() string {
	return p.Format(0)
}

// Format renders the path with every index shifted by base, e.g. base 1 for
// the 1-based numbering used in cavern files.
func (p *Path) Format(base int) string {
	var sb strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(strconv.Itoa(n + base))
	}

	return sb.String()
}

// Distance returns the Euclidean distance between two caverns.
func Distance(a, b Cavern) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PathCost sums the Euclidean distances between consecutive caverns of nodes.
// It does not check that the tunnels exist.
func PathCost(caverns []Cavern, nodes []int) float64 {
	total := 0.0
	for i := 1; i < len(nodes); i++ {
		total += Distance(caverns[nodes[i-1]], caverns[nodes[i]])
	}

	return total
}
