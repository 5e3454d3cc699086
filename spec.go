package main

const (
	// DefaultImage is the container image used for all nodes.
	DefaultImage = "ghcr.io/zinrai/docker-debian-bird2:debian-trixie"

	// BridgeName is the Linux bridge every switch node forwards through.
	BridgeName = "br0"

	// HostPrefixLen is the prefix length of host addresses; the whole fabric
	// is one 10.0.0.0/8 broadcast domain bridged by the switches.
	HostPrefixLen = 8
)

// Spec represents the tinet specification.
type Spec struct {
	Nodes       []Node       `yaml:"nodes"`
	NodeConfigs []NodeConfig `yaml:"node_configs"`
}

// Node represents a network node.
type Node struct {
	Name       string      `yaml:"name"`
	Image      string      `yaml:"image"`
	Interfaces []Interface `yaml:"interfaces"`
}

// Interface represents a network interface.
type Interface struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Args string `yaml:"args"`
}

// NodeConfig represents the configuration commands for a node.
type NodeConfig struct {
	Name string    `yaml:"name"`
	Cmds []Command `yaml:"cmds"`
}

// Command represents a shell command.
type Command struct {
	Cmd string `yaml:"cmd"`
}
