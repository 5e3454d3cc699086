package main

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// FabricGraph is the link set of a fat-tree in gonum form.
// Every link has unit weight, so shortest paths minimize hop count.
type FabricGraph struct {
	g     *simple.UndirectedGraph
	ids   map[string]int64
	names map[int64]string
}

// NewFabricGraph builds the connectivity graph of ft.
func NewFabricGraph(ft *FatTree) (*FabricGraph, error) {
	fg := &FabricGraph{
		g:     simple.NewUndirectedGraph(),
		ids:   make(map[string]int64),
		names: make(map[int64]string),
	}

	for _, ref := range ft.Entities() {
		if _, ok := fg.ids[ref.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate entity %s", ErrIntegrity, ref.ID)
		}
		id := int64(len(fg.ids))
		fg.ids[ref.ID] = id
		fg.names[id] = ref.ID
		fg.g.AddNode(simple.Node(id))
	}

	for _, l := range ft.Links {
		a, ok := fg.ids[l.A.ID]
		if !ok {
			return nil, fmt.Errorf("%w: link endpoint %s is not an entity", ErrIntegrity, l.A.ID)
		}
		b, ok := fg.ids[l.B.ID]
		if !ok {
			return nil, fmt.Errorf("%w: link endpoint %s is not an entity", ErrIntegrity, l.B.ID)
		}
		if a == b {
			return nil, fmt.Errorf("%w: self link on %s", ErrIntegrity, l.A.ID)
		}
		if fg.g.HasEdgeBetween(a, b) {
			return nil, fmt.Errorf("%w: duplicate link %s - %s", ErrIntegrity, l.A.ID, l.B.ID)
		}
		fg.g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	}

	return fg, nil
}

// Connected reports whether every entity can reach every other.
func (fg *FabricGraph) Connected() bool {
	return len(topo.ConnectedComponents(fg.g)) == 1
}

// EqualCostPaths returns the number of distinct shortest paths between two
// entities and their length in hops.
func (fg *FabricGraph) EqualCostPaths(src, dst string) (paths, hops int, err error) {
	s, ok := fg.ids[src]
	if !ok {
		return 0, 0, fmt.Errorf("unknown entity %s", src)
	}
	d, ok := fg.ids[dst]
	if !ok {
		return 0, 0, fmt.Errorf("unknown entity %s", dst)
	}
	if s == d {
		return 1, 0, nil
	}

	tree := path.DijkstraAllFrom(fg.g.Node(s), fg.g)
	all, _ := tree.AllTo(d)
	if len(all) == 0 {
		return 0, 0, fmt.Errorf("no path from %s to %s", src, dst)
	}
	return len(all), len(all[0]) - 1, nil
}

// Route returns one shortest path between two entities as entity IDs.
func (fg *FabricGraph) Route(src, dst string) ([]string, error) {
	s, ok := fg.ids[src]
	if !ok {
		return nil, fmt.Errorf("unknown entity %s", src)
	}
	d, ok := fg.ids[dst]
	if !ok {
		return nil, fmt.Errorf("unknown entity %s", dst)
	}

	nodes, _ := path.DijkstraFrom(fg.g.Node(s), fg.g).To(d)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no path from %s to %s", src, dst)
	}
	return fg.nodeNames(nodes), nil
}

func (fg *FabricGraph) nodeNames(nodes []graph.Node) []string {
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, fg.names[n.ID()])
	}
	return names
}
