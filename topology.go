package main

import (
	"fmt"
	"log"
	"net"
)

type nodeRole int

const (
	roleSwitch nodeRole = iota
	roleHost
)

// tinetNode is the Handle Topology hands out for each created entity.
type tinetNode struct {
	name       string
	role       nodeRole
	loopback   string           // switch management address
	address    string           // host address
	mac        net.HardwareAddr // host MAC
	lla        string           // host IPv6 link-local
	ifCount    int
	interfaces []Interface // declared side of each link
	ifaces     []string    // every interface in link order
	tcCmds     []string
}

// Topology realizes a fat-tree as a tinet specification. It implements Fabric.
type Topology struct {
	params Params
	image  string
	logger *log.Logger
	nodes  []*tinetNode
	byName map[string]*tinetNode
	linkID uint32 // Link ID counter for switch port MAC generation
	macs   map[string][]string
}

// NewTopology creates a new tinet topology builder for a fabric with params p.
func NewTopology(p Params, image string, logger *log.Logger) *Topology {
	return &Topology{
		params: p,
		image:  image,
		logger: logger,
		byName: make(map[string]*tinetNode),
		macs:   make(map[string][]string),
	}
}

func (t *Topology) addNode(n *tinetNode) (Handle, error) {
	if _, ok := t.byName[n.name]; ok {
		return nil, fmt.Errorf("node %s already exists", n.name)
	}
	t.nodes = append(t.nodes, n)
	t.byName[n.name] = n
	return n, nil
}

// CreateSwitch adds a bridging switch node.
func (t *Topology) CreateSwitch(id string) (Handle, error) {
	s, err := ParseSwitchID(id)
	if err != nil {
		return nil, err
	}
	t.logger.Printf("Creating switch %s", id)
	return t.addNode(&tinetNode{
		name:     id,
		role:     roleSwitch,
		loopback: SwitchAddress(s, t.params),
	})
}

// CreateHost adds an end host node.
func (t *Topology) CreateHost(id string) (Handle, error) {
	var ordinal int
	if _, err := fmt.Sscanf(id, HostPrefix+"%d", &ordinal); err != nil || HostID(ordinal) != id {
		return nil, fmt.Errorf("%w: %q is not a host identifier", ErrInvalidParameter, id)
	}
	t.logger.Printf("Creating host %s", id)

	mac := HostMAC(ordinal)
	return t.addNode(&tinetNode{
		name: id,
		role: roleHost,
		mac:  mac,
		lla:  MACToLLA(mac).String(),
	})
}

func (t *Topology) node(h Handle) (*tinetNode, error) {
	n, ok := h.(*tinetNode)
	if !ok || n == nil || t.byName[n.name] != n {
		return nil, fmt.Errorf("handle %v does not belong to this topology", h)
	}
	return n, nil
}

// nextInterface allocates the next interface name on n.
func (n *tinetNode) nextInterface() string {
	name := fmt.Sprintf("net%d", n.ifCount)
	n.ifCount++
	n.ifaces = append(n.ifaces, name)
	return name
}

// CreateLink connects two nodes. Only a's side is declared, tinet creates the
// peer interface on b.
func (t *Topology) CreateLink(a, b Handle, bandwidthMbps int) error {
	na, err := t.node(a)
	if err != nil {
		return err
	}
	nb, err := t.node(b)
	if err != nil {
		return err
	}
	if na == nb {
		return fmt.Errorf("cannot link %s to itself", na.name)
	}
	if na.role == roleHost && nb.role == roleHost {
		return fmt.Errorf("cannot link hosts %s and %s directly", na.name, nb.name)
	}

	ifA := na.nextInterface()
	ifB := nb.nextInterface()
	na.interfaces = append(na.interfaces, Interface{
		Name: ifA,
		Type: "direct",
		Args: fmt.Sprintf("%s#%s", nb.name, ifB),
	})

	for _, end := range []struct {
		n     *tinetNode
		iface string
	}{{na, ifA}, {nb, ifB}} {
		if end.n.role == roleSwitch {
			t.macs[end.n.name] = append(t.macs[end.n.name], FormatMACCommand(end.iface, GenerateMAC(MACClassPort, t.linkID)))
			t.linkID++
		}
		end.n.tcCmds = append(end.n.tcCmds, shapeCommand(end.iface, bandwidthMbps))
	}

	t.logger.Printf("Linking %s#%s - %s#%s (%d Mbps)", na.name, ifA, nb.name, ifB, bandwidthMbps)
	return nil
}

// SetHostAddress sets the IPv4 address of a host node. Each host is addressed once.
func (t *Topology) SetHostAddress(h Handle, address string) error {
	n, err := t.node(h)
	if err != nil {
		return err
	}
	if n.role != roleHost {
		return fmt.Errorf("%s is not a host", n.name)
	}
	if n.address != "" {
		return fmt.Errorf("host %s already has address %s", n.name, n.address)
	}
	n.address = address
	t.logger.Printf("Assigned %s to %s", address, n.name)
	return nil
}

func shapeCommand(iface string, bandwidthMbps int) string {
	return fmt.Sprintf("tc qdisc add dev %s root tbf rate %dmbit burst 256kb latency 50ms", iface, bandwidthMbps)
}

// Spec returns the tinet specification of everything created so far.
func (t *Topology) Spec() Spec {
	spec := Spec{}
	for _, n := range t.nodes {
		spec.Nodes = append(spec.Nodes, Node{
			Name:       n.name,
			Image:      t.image,
			Interfaces: n.interfaces,
		})

		var cmds []string
		if n.role == roleSwitch {
			cmds = t.switchCmds(n)
		} else {
			cmds = t.hostCmds(n)
		}
		nc := NodeConfig{Name: n.name}
		for _, c := range cmds {
			nc.Cmds = append(nc.Cmds, Command{Cmd: c})
		}
		spec.NodeConfigs = append(spec.NodeConfigs, nc)
	}
	return spec
}

func (t *Topology) switchCmds(n *tinetNode) []string {
	cmds := []string{
		fmt.Sprintf("ip addr add %s/32 dev lo", n.loopback),
		fmt.Sprintf("ip link add %s type bridge stp_state 1", BridgeName),
	}
	cmds = append(cmds, t.macs[n.name]...)
	for _, iface := range n.ifaces {
		cmds = append(cmds,
			fmt.Sprintf("ip link set dev %s master %s", iface, BridgeName),
			fmt.Sprintf("ip link set dev %s up", iface),
		)
	}
	cmds = append(cmds, n.tcCmds...)
	cmds = append(cmds, fmt.Sprintf("ip link set dev %s up", BridgeName))
	return cmds
}

func (t *Topology) hostCmds(n *tinetNode) []string {
	var cmds []string
	if len(n.ifaces) > 0 {
		iface := n.ifaces[0]
		cmds = append(cmds,
			FormatMACCommand(iface, n.mac),
			fmt.Sprintf("ip -6 addr add %s/64 dev %s", n.lla, iface),
		)
		if n.address != "" {
			cmds = append(cmds, fmt.Sprintf("ip addr add %s/%d dev %s", n.address, HostPrefixLen, iface))
		}
	}
	cmds = append(cmds, n.tcCmds...)
	return cmds
}
