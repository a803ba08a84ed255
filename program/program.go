// Package program persists IR graphs (see package ir) as programs and loads
// them back.
//
// A Program is a flat, position-indexed snapshot of a graph: one NodeDef per
// node carrying (name, type, descriptor) and the indices of its inputs. Node
// ids are not persisted -- they are process-local and reassigned on load --
// so a round trip preserves the node multiset and the edge topology up to id
// relabeling.
//
// Two encodings are provided: a compact msgpack binary form
// (MarshalBinary/UnmarshalBinary) and a YAML text form
// (MarshalText/UnmarshalText) for inspection and hand-written fixtures.
//
// Descriptors are opaque to the graph core, but to be persisted they must be
// representable by the chosen codec; that is part of the external descriptor
// provider's contract, not validated here.
package program

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/gomlx/graphir/ir"
)

// Version is the current program format version, stored in every marshaled
// Program. Loading a program with a newer version fails.
const Version = 1

// NodeDef is the persisted form of one node. Inputs holds positions (into
// Program.Nodes) of the nodes feeding this one, in edge insertion order.
type NodeDef struct {
	Name       string `msgpack:"name" yaml:"name"`
	Type       string `msgpack:"type" yaml:"type"`
	Descriptor any    `msgpack:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Inputs     []int  `msgpack:"inputs,omitempty" yaml:"inputs,omitempty"`
}

// Program is the persisted form of one ir.Graph.
type Program struct {
	Version int       `msgpack:"version" yaml:"version"`
	Name    string    `msgpack:"name" yaml:"name"`
	Nodes   []NodeDef `msgpack:"nodes" yaml:"nodes"`
}

// FromGraph snapshots g into a Program. Nodes are emitted in id (creation)
// order; every edge appears exactly once, on its consumer's Inputs list.
//
// It fails with ir.ErrInvalidGraphStructure if g references a node it does
// not own -- the same violations ir.Graph.CheckConsistency reports.
func FromGraph(g *ir.Graph) (*Program, error) {
	if err := g.CheckConsistency(); err != nil {
		return nil, errors.WithMessagef(err, "cannot serialize graph %q", g.Name())
	}
	nodes := g.SortedNodes()
	index := make(map[*ir.Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	p := &Program{
		Version: Version,
		Name:    g.Name(),
		Nodes:   make([]NodeDef, len(nodes)),
	}
	for i, n := range nodes {
		def := NodeDef{
			Name:       n.Name(),
			Type:       n.Type().String(),
			Descriptor: n.Descriptor(),
		}
		for _, in := range n.Inputs() {
			def.Inputs = append(def.Inputs, index[in])
		}
		p.Nodes[i] = def
	}
	klog.V(1).Infof("serialized graph %q: %d nodes", g.Name(), len(nodes))
	return p, nil
}

// Graph rebuilds an ir.Graph from the program, going exclusively through the
// public graph factory and edge primitives. Node ids are freshly assigned;
// everything else (names, types, descriptors, edge topology and order) is
// restored as serialized.
func (p *Program) Graph() (*ir.Graph, error) {
	if p.Version > Version {
		return nil, errors.Wrapf(ir.ErrInvalidArgument,
			"program %q has version %d, this build reads up to version %d", p.Name, p.Version, Version)
	}
	g := ir.New(p.Name)
	nodes := make([]*ir.Node, len(p.Nodes))
	for i, def := range p.Nodes {
		kind, err := ir.NodeTypeString(def.Type)
		if err != nil {
			return nil, errors.Wrapf(ir.ErrInvalidArgument, "program %q, node %d (%q): %v", p.Name, i, def.Name, err)
		}
		n, err := g.CreateEmptyNode(def.Name, kind)
		if err != nil {
			return nil, errors.WithMessagef(err, "program %q, node %d", p.Name, i)
		}
		n.SetDescriptor(def.Descriptor)
		nodes[i] = n
	}
	for i, def := range p.Nodes {
		for _, in := range def.Inputs {
			if in < 0 || in >= len(nodes) {
				return nil, errors.Wrapf(ir.ErrInvalidArgument,
					"program %q, node %d (%q): input index %d out of range", p.Name, i, def.Name, in)
			}
			if err := nodes[i].AddInput(nodes[in]); err != nil {
				return nil, errors.WithMessagef(err, "program %q, node %d (%q)", p.Name, i, def.Name)
			}
		}
	}
	klog.V(1).Infof("loaded program %q: %d nodes", p.Name, len(nodes))
	return g, nil
}

// MarshalBinary encodes the program in its msgpack binary form.
func (p *Program) MarshalBinary() ([]byte, error) {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "while encoding program %q", p.Name)
	}
	return data, nil
}

// UnmarshalBinary decodes a program from its msgpack binary form.
func (p *Program) UnmarshalBinary(data []byte) error {
	if err := msgpack.Unmarshal(data, p); err != nil {
		return errors.Wrap(err, "while decoding program")
	}
	return nil
}

// MarshalText encodes the program in its YAML text form.
func (p *Program) MarshalText() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "while encoding program %q", p.Name)
	}
	return data, nil
}

// UnmarshalText decodes a program from its YAML text form.
func (p *Program) UnmarshalText(data []byte) error {
	if err := yaml.Unmarshal(data, p); err != nil {
		return errors.Wrap(err, "while decoding program")
	}
	return nil
}
