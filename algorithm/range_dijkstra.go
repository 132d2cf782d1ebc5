package algorithm

import (
	"math"

	"github.com/ttpr0/go-access/graph"
	. "github.com/ttpr0/go-access/util"
)

type DistFlag struct {
	Dist    float64
	Visited bool
}

type PQItem struct {
	item int32
	dist float64
}

func NewDistFlags(g graph.IGraph) Flags[DistFlag] {
	return NewFlags[DistFlag](int32(g.NodeCount()), DistFlag{Dist: math.Inf(1)})
}

// Computes one-to-all shortest path lengths from the start nodes (internal index, initial distance).
//
// Edge weights have to be non-negative. Nodes farther than max_range keep an infinite distance.
func CalcRangeDijkstra(g graph.IGraph, starts Array[Tuple[int32, float64]], node_flags Flags[DistFlag], max_range float64) {
	heap := NewPriorityQueue[PQItem, float64](100)
	explorer := g.GetGraphExplorer()

	for _, item := range starts {
		start := item.A
		dist := item.B
		start_flag := node_flags.Get(start)
		if start_flag.Dist > dist {
			start_flag.Dist = dist
			heap.Enqueue(PQItem{start, dist}, dist)
		}
	}

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		curr_flag := node_flags.Get(curr_id)
		if curr_flag.Visited || curr_flag.Dist < curr_item.dist {
			continue
		}
		curr_flag.Visited = true
		explorer.ForAdjacentEdges(curr_id, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			other_flag := node_flags.Get(other_id)
			if other_flag.Visited {
				return
			}
			new_length := curr_flag.Dist + explorer.GetEdgeWeight(ref)
			if new_length > max_range {
				return
			}
			if other_flag.Dist > new_length {
				other_flag.Dist = new_length
				heap.Enqueue(PQItem{other_id, new_length}, new_length)
			}
		})
	}
}

// Computes one-to-all shortest path lengths without range limit.
func CalcAllDijkstra(g graph.IGraph, start int32) Array[float64] {
	flags := NewDistFlags(g)
	starts := Array[Tuple[int32, float64]]{MakeTuple(start, 0.0)}
	CalcRangeDijkstra(g, starts, flags, math.Inf(1))
	dist := NewArray[float64](g.NodeCount())
	for i := range dist {
		dist[i] = flags.Get(int32(i)).Dist
	}
	return dist
}

// Shortest path length between two nodes given by their external ids.
func ShortestPathLength(g graph.IGraph, from, to int32) (float64, error) {
	from_index, ok := g.GetNodeIndex(from)
	if !ok {
		return 0, _UnknownNode(from)
	}
	to_index, ok := g.GetNodeIndex(to)
	if !ok {
		return 0, _UnknownNode(to)
	}
	dist := CalcAllDijkstra(g, from_index)
	if math.IsInf(dist[to_index], 1) {
		return 0, &DisconnectedGraphError{From: from, To: to}
	}
	return dist[to_index], nil
}

//*******************************************
// connected components
//*******************************************

// Labels every node (internal index) with the id of its connected component.
//
// Component ids are assigned in order of the lowest node index in each component.
func ConnectedComponents(g graph.IGraph) Array[int32] {
	groups := NewArray[int32](g.NodeCount())
	for i := range groups {
		groups[i] = -1
	}
	explorer := g.GetGraphExplorer()
	stack := NewList[int32](100)
	group := int32(0)
	for i := 0; i < g.NodeCount(); i++ {
		if groups[i] != -1 {
			continue
		}
		groups[i] = group
		stack = stack[:0]
		stack.Add(int32(i))
		for stack.Length() > 0 {
			curr := stack[stack.Length()-1]
			stack = stack[:stack.Length()-1]
			explorer.ForAdjacentEdges(curr, func(ref graph.EdgeRef) {
				if groups[ref.OtherID] != -1 {
					return
				}
				groups[ref.OtherID] = group
				stack.Add(ref.OtherID)
			})
		}
		group += 1
	}
	return groups
}
