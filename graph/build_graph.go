package graph

import (
	"errors"
	"fmt"
	"math"

	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

var (
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrMissingNode   = errors.New("edge references missing node")
	ErrInvalidWeight = errors.New("edge weight must be finite and non-negative")
)

//*******************************************
// batches
//*******************************************

// Immutable set of nodes and edges created by one builder step.
type Batch struct {
	nodes Array[structs.Node]
	edges Array[structs.Edge]
}

// Creates a batch, the slices are copied.
func NewBatch(nodes []structs.Node, edges []structs.Edge) Batch {
	return Batch{
		nodes: Array[structs.Node](nodes).Copy(),
		edges: Array[structs.Edge](edges).Copy(),
	}
}

// Returns a copy of the batch nodes.
func (self Batch) Nodes() Array[structs.Node] {
	return self.nodes.Copy()
}

// Returns a copy of the batch edges.
func (self Batch) Edges() Array[structs.Edge] {
	return self.edges.Copy()
}
func (self Batch) NodeCount() int {
	return self.nodes.Length()
}
func (self Batch) EdgeCount() int {
	return self.edges.Length()
}

// Largest node id in the batch, -1 if the batch has no nodes.
func (self Batch) MaxNodeID() int32 {
	max_id := int32(-1)
	for _, node := range self.nodes {
		if node.ID > max_id {
			max_id = node.ID
		}
	}
	return max_id
}

//*******************************************
// builder
//*******************************************

// Accumulates batches and builds a new graph from them.
//
// Builder is a value, With returns a new builder and leaves the receiver untouched.
type Builder struct {
	batches List[Batch]
}

func NewBuilder() Builder {
	return Builder{
		batches: NewList[Batch](4),
	}
}

func (self Builder) With(batch Batch) Builder {
	batches := NewList[Batch](len(self.batches) + 1)
	batches = append(batches, self.batches...)
	batches.Add(batch)
	return Builder{
		batches: batches,
	}
}

// Largest node id over all added batches, -1 if there are none.
func (self Builder) MaxNodeID() int32 {
	max_id := int32(-1)
	for _, batch := range self.batches {
		if id := batch.MaxNodeID(); id > max_id {
			max_id = id
		}
	}
	return max_id
}

func (self Builder) NodeCount() int {
	count := 0
	for _, batch := range self.batches {
		count += batch.NodeCount()
	}
	return count
}

// Builds the graph from all added batches.
//
// Fails if node ids are not unique, an edge references an unknown node or an edge weight is negative or not finite.
func (self Builder) Build() (*Graph, error) {
	node_count := self.NodeCount()
	nodes := NewArray[structs.Node](node_count)
	id_index := NewDict[int32, int32](node_count)
	edges := NewList[structs.Edge](node_count)

	i := 0
	for _, batch := range self.batches {
		for _, node := range batch.nodes {
			if id_index.ContainsKey(node.ID) {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, node.ID)
			}
			id_index[node.ID] = int32(i)
			nodes[i] = node
			i += 1
		}
	}
	for _, batch := range self.batches {
		for _, edge := range batch.edges {
			if !id_index.ContainsKey(edge.NodeA) || !id_index.ContainsKey(edge.NodeB) {
				return nil, fmt.Errorf("%w: (%d, %d)", ErrMissingNode, edge.NodeA, edge.NodeB)
			}
			if edge.Weight < 0 || math.IsNaN(edge.Weight) || math.IsInf(edge.Weight, 0) {
				return nil, fmt.Errorf("%w: (%d, %d) weight %v", ErrInvalidWeight, edge.NodeA, edge.NodeB, edge.Weight)
			}
			edges.Add(edge)
		}
	}

	topology := NewArray[List[int32]](node_count)
	for id, edge := range edges {
		a := id_index[edge.NodeA]
		b := id_index[edge.NodeB]
		topology[a].Add(int32(id))
		if a != b {
			topology[b].Add(int32(id))
		}
	}

	return &Graph{
		nodes:    nodes,
		edges:    Array[structs.Edge](edges),
		id_index: id_index,
		topology: topology,
	}, nil
}
