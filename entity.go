package main

import "fmt"

// Layer identifies the tier an entity lives in.
type Layer int

const (
	LayerCore Layer = iota
	LayerAggregation
	LayerEdge
	LayerHost
)

// Identifier prefixes for each layer.
const (
	CorePrefix        = "cs_"
	AggregationPrefix = "as_"
	EdgePrefix        = "es_"
	HostPrefix        = "h_"
)

// Prefix returns the identifier prefix of the layer.
func (l Layer) Prefix() string {
	switch l {
	case LayerCore:
		return CorePrefix
	case LayerAggregation:
		return AggregationPrefix
	case LayerEdge:
		return EdgePrefix
	case LayerHost:
		return HostPrefix
	}
	return ""
}

func (l Layer) String() string {
	switch l {
	case LayerCore:
		return "core"
	case LayerAggregation:
		return "aggregation"
	case LayerEdge:
		return "edge"
	case LayerHost:
		return "host"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// MarshalText encodes the layer by name.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// EntityRef identifies a link endpoint.
type EntityRef struct {
	ID    string `json:"id" yaml:"id"`
	Layer Layer  `json:"layer" yaml:"layer"`
}

// Switch is a fabric switch. Ordinal is 1-based within its layer.
type Switch struct {
	ID      string `json:"id" yaml:"id"`
	Layer   Layer  `json:"layer" yaml:"layer"`
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
}

// Ref returns the switch as a link endpoint.
func (s Switch) Ref() EntityRef {
	return EntityRef{ID: s.ID, Layer: s.Layer}
}

// Host is an end host. Ordinal is 1-based across the whole fabric.
type Host struct {
	ID      string `json:"id" yaml:"id"`
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
}

// Ref returns the host as a link endpoint.
func (h Host) Ref() EntityRef {
	return EntityRef{ID: h.ID, Layer: LayerHost}
}

// SwitchID returns the identifier of the switch with the given ordinal.
func SwitchID(layer Layer, ordinal int) string {
	return fmt.Sprintf("%s%d", layer.Prefix(), ordinal)
}

// HostID returns the identifier of the host with the given ordinal.
func HostID(ordinal int) string {
	return fmt.Sprintf("%s%d", HostPrefix, ordinal)
}

// BuildSwitches creates count switches of the given layer numbered 1..count.
func BuildSwitches(count int, layer Layer) ([]Switch, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative %s switch count %d", ErrInvalidParameter, layer, count)
	}
	if layer != LayerCore && layer != LayerAggregation && layer != LayerEdge {
		return nil, fmt.Errorf("%w: %s is not a switch layer", ErrInvalidParameter, layer)
	}

	switches := make([]Switch, 0, count)
	for i := 1; i <= count; i++ {
		switches = append(switches, Switch{
			ID:      SwitchID(layer, i),
			Layer:   layer,
			Ordinal: i,
		})
	}
	return switches, nil
}

// BuildHosts creates count hosts numbered 1..count in creation order.
// The wiring consumes them in this order, which makes it pod-major.
func BuildHosts(count int) ([]Host, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative host count %d", ErrInvalidParameter, count)
	}

	hosts := make([]Host, 0, count)
	for i := 1; i <= count; i++ {
		hosts = append(hosts, Host{ID: HostID(i), Ordinal: i})
	}
	return hosts, nil
}

// ParseSwitchID recovers the layer and ordinal encoded in a switch identifier.
func ParseSwitchID(id string) (Switch, error) {
	for _, layer := range []Layer{LayerCore, LayerAggregation, LayerEdge} {
		var ordinal int
		if _, err := fmt.Sscanf(id, layer.Prefix()+"%d", &ordinal); err != nil {
			continue
		}
		if ordinal < 1 || SwitchID(layer, ordinal) != id {
			break
		}
		return Switch{ID: id, Layer: layer, Ordinal: ordinal}, nil
	}
	return Switch{}, fmt.Errorf("%w: %q is not a switch identifier", ErrInvalidParameter, id)
}
