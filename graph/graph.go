package graph

import (
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

//*******************************************
// graph interfaces
//******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	NodeCount() int
	EdgeCount() int
	// Maps an external node id to the internal (dense) node index.
	GetNodeIndex(id int32) (int32, bool)
	GetNode(index int32) structs.Node
}

type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for every edge.
	//
	// Nodes are addressed by their internal index.
	ForAdjacentEdges(node int32, callback func(EdgeRef))
	GetEdgeWeight(edge EdgeRef) float64
	GetOtherNode(edge EdgeRef, node int32) int32
}

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
	Type    structs.EdgeType
}

//*******************************************
// graph
//*******************************************

var _ IGraph = &Graph{}

// Undirected weighted graph over stops, transfer nodes and municipalities.
//
// Graphs are created by a Builder and never modified afterwards.
type Graph struct {
	nodes    Array[structs.Node]
	edges    Array[structs.Edge]
	id_index Dict[int32, int32]
	topology Array[List[int32]]
}

func (self *Graph) GetGraphExplorer() IGraphExplorer {
	return &GraphExplorer{
		graph: self,
	}
}
func (self *Graph) NodeCount() int {
	return self.nodes.Length()
}
func (self *Graph) EdgeCount() int {
	return self.edges.Length()
}
func (self *Graph) GetNodeIndex(id int32) (int32, bool) {
	index, ok := self.id_index[id]
	return index, ok
}
func (self *Graph) GetNode(index int32) structs.Node {
	return self.nodes[index]
}

// Returns the node with the given external id.
func (self *Graph) GetNodeByID(id int32) (structs.Node, bool) {
	index, ok := self.id_index[id]
	if !ok {
		return structs.Node{}, false
	}
	return self.nodes[index], true
}

// Number of edges incident to the node with the given external id, -1 if the node does not exist.
func (self *Graph) GetNodeDegree(id int32) int {
	index, ok := self.id_index[id]
	if !ok {
		return -1
	}
	return self.topology[index].Length()
}

// Returns the external ids of all neighbours of a node.
func (self *Graph) GetNeighbours(id int32) List[int32] {
	neighbours := NewList[int32](4)
	index, ok := self.id_index[id]
	if !ok {
		return neighbours
	}
	explorer := self.GetGraphExplorer()
	explorer.ForAdjacentEdges(index, func(ref EdgeRef) {
		neighbours.Add(self.GetNode(ref.OtherID).ID)
	})
	return neighbours
}

//*******************************************
// graph explorer
//*******************************************

type GraphExplorer struct {
	graph *Graph
}

func (self *GraphExplorer) ForAdjacentEdges(node int32, callback func(EdgeRef)) {
	for _, edge_id := range self.graph.topology[node] {
		edge := self.graph.edges[edge_id]
		callback(EdgeRef{
			EdgeID:  edge_id,
			OtherID: self.GetOtherNode(EdgeRef{EdgeID: edge_id}, node),
			Type:    edge.Type,
		})
	}
}
func (self *GraphExplorer) GetEdgeWeight(edge EdgeRef) float64 {
	return self.graph.edges[edge.EdgeID].Weight
}
func (self *GraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	e := self.graph.edges[edge.EdgeID]
	a := self.graph.id_index[e.NodeA]
	b := self.graph.id_index[e.NodeB]
	if node == a {
		return b
	}
	if node == b {
		return a
	}
	return -1
}
