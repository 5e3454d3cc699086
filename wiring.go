package main

import "fmt"

// Link is an undirected connection between two entities.
type Link struct {
	A             EntityRef `json:"a" yaml:"a"`
	B             EntityRef `json:"b" yaml:"b"`
	BandwidthMbps int       `json:"bandwidth_mbps" yaml:"bandwidth_mbps"`
}

// Wire connects the layers of a fat-tree. Links are returned edge-host first,
// then aggregation-edge, then core-aggregation.
//
// Hosts are consumed in contiguous blocks of Density per edge switch, so the
// host at position i hangs off edge switch i/Density. This is the pod-major
// order AssignAddresses relies on.
func Wire(core, agg, edge []Switch, hosts []Host, p Params, bandwidthMbps int) ([]Link, error) {
	if err := checkWiringInput(core, agg, edge, hosts, p, bandwidthMbps); err != nil {
		return nil, err
	}

	d := p.Density
	links := make([]Link, 0, p.NumLinks())
	link := func(a, b EntityRef) {
		links = append(links, Link{A: a, B: b, BandwidthMbps: bandwidthMbps})
	}

	// Edge - Host
	for x := 0; x < p.NumEdge; x++ {
		for y := 0; y < d; y++ {
			link(edge[x].Ref(), hosts[d*x+y].Ref())
		}
	}

	// Aggregation - Edge, complete bipartite within each pod
	for x := 0; x < p.NumAgg; x++ {
		pod := x / d
		for y := 0; y < d; y++ {
			link(agg[x].Ref(), edge[d*pod+y].Ref())
		}
	}

	// Core - Aggregation: offset y of every pod reaches core group y
	for pod := 0; pod < p.NumAgg; pod += d {
		for y := 0; y < d; y++ {
			for z := 0; z < d; z++ {
				link(core[d*y+z].Ref(), agg[pod+y].Ref())
			}
		}
	}

	if len(links) != p.NumLinks() {
		return nil, fmt.Errorf("%w: wired %d links, want %d", ErrIntegrity, len(links), p.NumLinks())
	}
	return links, nil
}

func checkWiringInput(core, agg, edge []Switch, hosts []Host, p Params, bandwidthMbps int) error {
	if err := p.validate(); err != nil {
		return err
	}
	if bandwidthMbps <= 0 {
		return fmt.Errorf("%w: bandwidth must be positive, got %d", ErrInvalidParameter, bandwidthMbps)
	}

	d := p.Density
	if p.NumAgg%d != 0 || p.NumEdge%d != 0 || p.NumCore != d*d {
		return fmt.Errorf("%w: density %d does not partition the layers", ErrInvalidParameter, d)
	}

	counts := []struct {
		layer Layer
		got   int
		want  int
	}{
		{LayerCore, len(core), p.NumCore},
		{LayerAggregation, len(agg), p.NumAgg},
		{LayerEdge, len(edge), p.NumEdge},
		{LayerHost, len(hosts), p.NumHost},
	}
	for _, c := range counts {
		if c.got != c.want {
			return fmt.Errorf("%w: got %d %s entities, want %d", ErrInvalidParameter, c.got, c.layer, c.want)
		}
	}
	return nil
}
