package main

import (
	"fmt"
)

// FatTree is a complete k-ary fat-tree description. It is built once and
// not modified afterwards; every BuildFatTree call returns fresh collections.
type FatTree struct {
	Params      Params              `json:"params" yaml:"params"`
	Core        []Switch            `json:"core" yaml:"core"`
	Aggregation []Switch            `json:"aggregation" yaml:"aggregation"`
	Edge        []Switch            `json:"edge" yaml:"edge"`
	Hosts       []Host              `json:"hosts" yaml:"hosts"`
	Links       []Link              `json:"links" yaml:"links"`
	Addresses   []AddressAssignment `json:"addresses" yaml:"addresses"`
}

// BuildFatTree computes and verifies the fat-tree for k with every link
// carrying bandwidthMbps. No partial topology is returned on error.
func BuildFatTree(k, bandwidthMbps int) (*FatTree, error) {
	p, err := ComputeParams(k)
	if err != nil {
		return nil, err
	}

	ft := &FatTree{Params: p}
	if ft.Core, err = BuildSwitches(p.NumCore, LayerCore); err != nil {
		return nil, err
	}
	if ft.Aggregation, err = BuildSwitches(p.NumAgg, LayerAggregation); err != nil {
		return nil, err
	}
	if ft.Edge, err = BuildSwitches(p.NumEdge, LayerEdge); err != nil {
		return nil, err
	}
	if ft.Hosts, err = BuildHosts(p.NumHost); err != nil {
		return nil, err
	}

	ft.Links, err = Wire(ft.Core, ft.Aggregation, ft.Edge, ft.Hosts, p, bandwidthMbps)
	if err != nil {
		return nil, fmt.Errorf("failed to wire fabric: %w", err)
	}

	ft.Addresses, err = AssignAddresses(ft.Hosts, p)
	if err != nil {
		return nil, fmt.Errorf("failed to assign addresses: %w", err)
	}

	if err := ft.Verify(); err != nil {
		return nil, err
	}
	return ft, nil
}

// Switches returns all switches, core first, then aggregation, then edge.
func (ft *FatTree) Switches() []Switch {
	all := make([]Switch, 0, len(ft.Core)+len(ft.Aggregation)+len(ft.Edge))
	all = append(all, ft.Core...)
	all = append(all, ft.Aggregation...)
	all = append(all, ft.Edge...)
	return all
}

// Entities returns references to every switch and host in build order.
func (ft *FatTree) Entities() []EntityRef {
	switches := ft.Switches()
	refs := make([]EntityRef, 0, len(switches)+len(ft.Hosts))
	for _, s := range switches {
		refs = append(refs, s.Ref())
	}
	for _, h := range ft.Hosts {
		refs = append(refs, h.Ref())
	}
	return refs
}

// AddressOf returns the address assigned to the host with the given ID.
func (ft *FatTree) AddressOf(hostID string) (string, bool) {
	for _, a := range ft.Addresses {
		if a.Host.ID == hostID {
			return a.Address, true
		}
	}
	return "", false
}

// Verify checks the post-build invariants of the fabric.
func (ft *FatTree) Verify() error {
	p := ft.Params

	if len(ft.Links) != p.NumLinks() {
		return fmt.Errorf("%w: %d links, want %d", ErrIntegrity, len(ft.Links), p.NumLinks())
	}

	layers := make(map[string]Layer)
	for _, ref := range ft.Entities() {
		if _, ok := layers[ref.ID]; ok {
			return fmt.Errorf("%w: duplicate identifier %s", ErrIntegrity, ref.ID)
		}
		layers[ref.ID] = ref.Layer
	}

	if err := ft.verifyDegrees(layers); err != nil {
		return err
	}
	if err := ft.verifyAddresses(); err != nil {
		return err
	}

	fg, err := NewFabricGraph(ft)
	if err != nil {
		return err
	}
	if !fg.Connected() {
		return fmt.Errorf("%w: fabric is not connected", ErrIntegrity)
	}
	return nil
}

// verifyDegrees checks how many neighbours each entity has in each layer.
func (ft *FatTree) verifyDegrees(layers map[string]Layer) error {
	p := ft.Params
	degree := make(map[string]map[Layer]int)
	count := func(from, to EntityRef) {
		if degree[from.ID] == nil {
			degree[from.ID] = make(map[Layer]int)
		}
		degree[from.ID][to.Layer]++
	}

	for _, l := range ft.Links {
		for _, ref := range []EntityRef{l.A, l.B} {
			if layer, ok := layers[ref.ID]; !ok || layer != ref.Layer {
				return fmt.Errorf("%w: link endpoint %s is not a known %s", ErrIntegrity, ref.ID, ref.Layer)
			}
		}
		count(l.A, l.B)
		count(l.B, l.A)
	}

	want := map[Layer]map[Layer]int{
		LayerCore:        {LayerAggregation: p.K},
		LayerAggregation: {LayerCore: p.Density, LayerEdge: p.Density},
		LayerEdge:        {LayerAggregation: p.Density, LayerHost: p.Density},
		LayerHost:        {LayerEdge: 1},
	}
	for id, layer := range layers {
		got := degree[id]
		if len(got) != len(want[layer]) {
			return fmt.Errorf("%w: %s has neighbours in %d layers, want %d", ErrIntegrity, id, len(got), len(want[layer]))
		}
		for neighbour, n := range want[layer] {
			if got[neighbour] != n {
				return fmt.Errorf("%w: %s has %d %s neighbours, want %d", ErrIntegrity, id, got[neighbour], neighbour, n)
			}
		}
	}
	return nil
}

// verifyAddresses checks that every host has exactly one unique address and
// that the address names the edge switch the host is wired to.
func (ft *FatTree) verifyAddresses() error {
	p := ft.Params
	if len(ft.Addresses) != len(ft.Hosts) {
		return fmt.Errorf("%w: %d addresses for %d hosts", ErrIntegrity, len(ft.Addresses), len(ft.Hosts))
	}

	uplink := make(map[string]string)
	for _, l := range ft.Links {
		if l.A.Layer == LayerEdge && l.B.Layer == LayerHost {
			uplink[l.B.ID] = l.A.ID
		}
	}

	seenAddr := make(map[string]string)
	seenHost := make(map[string]bool)
	for _, a := range ft.Addresses {
		if owner, ok := seenAddr[a.Address]; ok {
			return fmt.Errorf("%w: address %s assigned to %s and %s", ErrIntegrity, a.Address, owner, a.Host.ID)
		}
		if seenHost[a.Host.ID] {
			return fmt.Errorf("%w: host %s has more than one address", ErrIntegrity, a.Host.ID)
		}
		seenAddr[a.Address] = a.Host.ID
		seenHost[a.Host.ID] = true

		var pod, edge, host int
		if _, err := fmt.Sscanf(a.Address, "10.%d.%d.%d", &pod, &edge, &host); err != nil {
			return fmt.Errorf("%w: malformed address %s: %v", ErrIntegrity, a.Address, err)
		}
		want := SwitchID(LayerEdge, (pod-1)*p.Density+edge)
		if uplink[a.Host.ID] != want {
			return fmt.Errorf("%w: host %s addressed %s but wired to %s, want %s",
				ErrIntegrity, a.Host.ID, a.Address, uplink[a.Host.ID], want)
		}
	}
	return nil
}
