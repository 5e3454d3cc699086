package main

import "fmt"

// Params holds the layer cardinalities of a k-ary fat-tree.
type Params struct {
	K       int `json:"k" yaml:"k"`
	Density int `json:"density" yaml:"density"`
	NumCore int `json:"num_core" yaml:"num_core"`
	NumAgg  int `json:"num_agg" yaml:"num_agg"`
	NumEdge int `json:"num_edge" yaml:"num_edge"`
	NumHost int `json:"num_host" yaml:"num_host"`
}

// ComputeParams derives all layer counts from k.
// k must be a positive even integer.
func ComputeParams(k int) (Params, error) {
	if k <= 0 || k%2 != 0 {
		return Params{}, fmt.Errorf("%w: k must be a positive even integer, got %d", ErrInvalidParameter, k)
	}

	density := k / 2
	return Params{
		K:       k,
		Density: density,
		NumCore: density * density,
		NumAgg:  density * k,
		NumEdge: density * k,
		NumHost: k * density * density,
	}, nil
}

// Pods returns the number of pods in the fabric.
func (p Params) Pods() int {
	return p.K
}

// NumLinks returns the number of links a correctly wired fabric has:
// edge-host, aggregation-edge and core-aggregation each contribute NumAgg*Density.
func (p Params) NumLinks() int {
	return p.NumEdge*p.Density + p.NumAgg*p.Density + p.NumAgg*p.Density
}

// validate reports whether p is internally consistent, i.e. it could have
// been produced by ComputeParams.
func (p Params) validate() error {
	want, err := ComputeParams(p.K)
	if err != nil {
		return err
	}
	if p != want {
		return fmt.Errorf("%w: params %+v inconsistent with k=%d", ErrInvalidParameter, p, p.K)
	}
	return nil
}
