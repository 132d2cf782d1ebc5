package network

import (
	"fmt"

	"github.com/paulmach/orb/planar"
	"github.com/samber/lo"
	"github.com/ttpr0/go-access/graph"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

//*******************************************
// transit graph
//*******************************************

// Creates one node per physical stop, the node id is the position in the stop table.
func CreateStopNodes(stops Array[structs.Stop]) Array[structs.Node] {
	nodes := NewArray[structs.Node](stops.Length())
	for i, stop := range stops {
		nodes[i] = structs.Node{
			ID:   int32(i),
			Type: structs.STOP_NODE,
			Ref:  stop.Index,
			Name: stop.Name,
			Loc:  stop.Loc,
		}
	}
	return nodes
}

// Connects consecutive stops of the same line.
//
// The weight is the distance between both stops times the speed of the first stop's mode.
func CreateLineEdges(stops Array[structs.Stop], options TransitOptions) (Array[structs.Edge], error) {
	edges := NewList[structs.Edge](stops.Length())
	for i := 0; i < stops.Length()-1; i++ {
		curr := stops[i]
		next := stops[i+1]
		if curr.Line != next.Line {
			continue
		}
		speed, err := options.Speed(curr.Type)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		edges.Add(structs.Edge{
			NodeA:  int32(i),
			NodeB:  int32(i + 1),
			Weight: planar.Distance(curr.Loc, next.Loc) * speed,
			Type:   structs.LINE_EDGE,
		})
	}
	return Array[structs.Edge](edges), nil
}

// Names shared by more than one stop, in order of first occurrence.
//
// Unnamed stops never share a transfer node.
func TransferNames(stops Array[structs.Stop]) []string {
	names := lo.FilterMap(stops, func(stop structs.Stop, _ int) (string, bool) {
		return stop.Name, stop.Name != ""
	})
	return lo.FindDuplicates(names)
}

// Creates one transfer node per shared stop name.
//
// Transfer node ids follow directly after the stop ids.
func CreateTransferNodes(stops Array[structs.Stop]) Array[structs.Node] {
	names := TransferNames(stops)
	nodes := NewArray[structs.Node](len(names))
	for i, name := range names {
		nodes[i] = structs.Node{
			ID:   int32(stops.Length() + i),
			Type: structs.TRANSFER_NODE,
			Ref:  -1,
			Name: name,
		}
	}
	return nodes
}

// Connects every stop of a shared name to its transfer node, weighted by the wait time of the stop's mode.
func CreateTransferEdges(stops Array[structs.Stop], options TransitOptions) (Array[structs.Edge], error) {
	names := TransferNames(stops)
	transfer_ids := NewDict[string, int32](len(names))
	for i, name := range names {
		transfer_ids[name] = int32(stops.Length() + i)
	}
	edges := NewList[structs.Edge](2 * len(names))
	for _, name := range names {
		for i, stop := range stops {
			if stop.Name != name {
				continue
			}
			wait, err := options.Wait(stop.Type)
			if err != nil {
				return nil, fmt.Errorf("stop %d: %w", i, err)
			}
			edges.Add(structs.Edge{
				NodeA:  int32(i),
				NodeB:  transfer_ids[name],
				Weight: wait,
				Type:   structs.TRANSFER_EDGE,
			})
		}
	}
	return Array[structs.Edge](edges), nil
}

// Builds stop nodes, line edges, transfer nodes and transfer edges without attaching them to a graph.
//
// Returns the batch and the ids of the transfer nodes.
func BuildTransitBatch(stops Array[structs.Stop], options TransitOptions) (graph.Batch, Array[int32], error) {
	if err := options.Validate(_StopModes(stops), _TransferModes(stops)); err != nil {
		return graph.Batch{}, nil, err
	}
	stop_nodes := CreateStopNodes(stops)
	line_edges, err := CreateLineEdges(stops, options)
	if err != nil {
		return graph.Batch{}, nil, err
	}
	transfer_nodes := CreateTransferNodes(stops)
	transfer_edges, err := CreateTransferEdges(stops, options)
	if err != nil {
		return graph.Batch{}, nil, err
	}

	nodes := append(stop_nodes.Copy(), transfer_nodes...)
	edges := append(line_edges.Copy(), transfer_edges...)
	transfer_ids := NewArray[int32](transfer_nodes.Length())
	for i, node := range transfer_nodes {
		transfer_ids[i] = node.ID
	}
	return graph.NewBatch(nodes, edges), transfer_ids, nil
}

// Same as BuildTransitBatch but adds the batch to the builder.
func BuildTransitGraph(builder graph.Builder, stops Array[structs.Stop], options TransitOptions) (graph.Builder, Array[int32], error) {
	batch, transfer_ids, err := BuildTransitBatch(stops, options)
	if err != nil {
		return builder, nil, err
	}
	return builder.With(batch), transfer_ids, nil
}

func _StopModes(stops Array[structs.Stop]) []string {
	return lo.Uniq(lo.Map(stops, func(stop structs.Stop, _ int) string {
		return stop.Type
	}))
}

func _TransferModes(stops Array[structs.Stop]) []string {
	names := lo.Associate(TransferNames(stops), func(name string) (string, bool) {
		return name, true
	})
	transfer_stops := lo.Filter(stops, func(stop structs.Stop, _ int) bool {
		return names[stop.Name]
	})
	return _StopModes(transfer_stops)
}
