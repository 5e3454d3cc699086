package main

import "fmt"

// MaxAddressableK is the largest k whose addresses fit in dotted-quad octets.
// Core switches use the second octet k+1.
const MaxAddressableK = 254

// AddressAssignment binds a host to its address.
type AddressAssignment struct {
	Host    EntityRef `json:"host" yaml:"host"`
	Address string    `json:"address" yaml:"address"`
}

// HostAddress returns the address of a host. All indexes are 1-based.
func HostAddress(pod, edge, host int) string {
	return fmt.Sprintf("10.%d.%d.%d", pod, edge, host)
}

// AssignAddresses walks pods, then edge switches within a pod, then hosts
// within an edge switch, consuming hosts in order.
//
// hosts must be the pod-major sequence Wire consumed: exactly NumHost hosts
// with ordinal i+1 at position i.
func AssignAddresses(hosts []Host, p Params) ([]AddressAssignment, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.K > MaxAddressableK {
		return nil, fmt.Errorf("%w: k=%d exceeds addressable maximum %d", ErrAddressingMismatch, p.K, MaxAddressableK)
	}
	if len(hosts) != p.NumHost {
		return nil, fmt.Errorf("%w: got %d hosts, want %d", ErrAddressingMismatch, len(hosts), p.NumHost)
	}
	for i, h := range hosts {
		if h.Ordinal != i+1 {
			return nil, fmt.Errorf("%w: host %s at position %d is out of pod-major order", ErrAddressingMismatch, h.ID, i)
		}
	}

	assignments := make([]AddressAssignment, 0, len(hosts))
	i := 0
	for pod := 1; pod <= p.Pods(); pod++ {
		for edge := 1; edge <= p.Density; edge++ {
			for host := 1; host <= p.Density; host++ {
				assignments = append(assignments, AddressAssignment{
					Host:    hosts[i].Ref(),
					Address: HostAddress(pod, edge, host),
				})
				i++
			}
		}
	}
	return assignments, nil
}

// SwitchAddress returns the management address of a switch.
// Edge switch e of pod p gets 10.p.e.254, aggregation switch a of pod p gets
// 10.p.(Density+a).254 and core switch m of group g gets 10.(k+1).g.m.
func SwitchAddress(s Switch, p Params) string {
	i := s.Ordinal - 1
	switch s.Layer {
	case LayerEdge, LayerAggregation:
		pod := i/p.Density + 1
		idx := i%p.Density + 1
		if s.Layer == LayerAggregation {
			idx += p.Density
		}
		return fmt.Sprintf("10.%d.%d.254", pod, idx)
	case LayerCore:
		return fmt.Sprintf("10.%d.%d.%d", p.K+1, i/p.Density+1, i%p.Density+1)
	}
	return ""
}
