package pts

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-graphviz"
	uf "github.com/spakin/disjoint"
)

// Named is the capability bound dump.go needs from a Key or Data type: a
// stable, human-readable label.
type Named interface {
	comparable
	fmt.Stringer
}

// DumpPts writes a colorized "key ↦ {data...}" line per entry in keys,
// skipping empty sets unless showEmpty is set. Coloring follows the
// teacher's CanColorize convention (utils/init.go): disabled automatically
// when stdout isn't a terminal, via fatih/color's own detection.
func DumpPts[K Named, D Named](w io.Writer, s *BasicStore[K, D], keys []K, showEmpty bool) {
	sorted := append([]K(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })

	arrow := color.New(color.FgCyan).Sprint("↦")
	for _, k := range sorted {
		pts := s.GetPts(k)
		if pts.Empty() && !showEmpty {
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", color.New(color.FgYellow).Sprint(k), arrow, pts)
	}
}

// component groups Keys that are reachable from one another through a
// shared Data element in s's reverse index: two Keys land in the same
// dump cluster iff their points-to sets overlap, directly or transitively.
// Unlike TopN's popularity buckets (plain map counting — no merging ever
// happens there), this is a genuine union-find problem, since overlap is
// not itself transitive per-pair and has to be discovered by walking every
// Data's Key set and unioning them all together.
func component[K Named, D Named](s *BasicStore[K, D], keys []K) map[K]*uf.Element {
	elems := make(map[K]*uf.Element, len(keys))
	for _, k := range keys {
		elems[k] = uf.NewElement()
	}
	if !s.rev {
		return elems
	}

	for _, k := range keys {
		s.GetPts(k).ForEach(func(d D) {
			for _, other := range s.GetRevPts(d).Entries() {
				if oe, ok := elems[other]; ok {
					uf.Union(elems[k], oe)
				}
			}
		})
	}
	return elems
}

// DotGraph renders s restricted to keys as a DOT digraph: one node per Key,
// one edge per (Key, Data) pair where Data is itself also present as a Key
// in keys (so the picture stays a graph over Keys rather than exploding
// into every Data value), clustered by shared-pointee connectivity.
func DotGraph[K Named, D Named](s *BasicStore[K, D], keys []K, dataAsKey func(D) (K, bool)) string {
	elems := component(s, keys)

	byCluster := make(map[*uf.Element][]K)
	for _, k := range keys {
		rep := elems[k].Find()
		byCluster[rep] = append(byCluster[rep], k)
	}

	clusters := make([][]K, 0, len(byCluster))
	for _, ks := range byCluster {
		sort.Slice(ks, func(a, b int) bool { return ks[a].String() < ks[b].String() })
		clusters = append(clusters, ks)
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i][0].String() < clusters[j][0].String() })

	var b strings.Builder
	b.WriteString("digraph PointsTo {\n\trankdir=\"LR\";\n\tnode [shape=ellipse style=filled fillcolor=honeydew];\n\n")

	for i, ks := range clusters {
		fmt.Fprintf(&b, "\tsubgraph cluster_%d {\n", i)
		for _, k := range ks {
			fmt.Fprintf(&b, "\t\t%q;\n", k.String())
		}
		b.WriteString("\t}\n")
	}

	for _, k := range keys {
		s.GetPts(k).ForEach(func(d D) {
			if dk, ok := dataAsKey(d); ok {
				if _, inKeys := elems[dk]; inKeys {
					fmt.Fprintf(&b, "\t%q -> %q;\n", k.String(), dk.String())
				}
			}
		})
	}

	b.WriteString("}\n")
	return b.String()
}

// RenderDotImage uses goccy/go-graphviz in-process to rasterize dot (as
// produced by DotGraph) into format (e.g. "svg", "png") at path.
func RenderDotImage(dot, format, path string) error {
	g := graphviz.New()
	defer g.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return err
	}
	defer graph.Close()

	return g.RenderFilename(graph, graphviz.Format(format), path)
}
