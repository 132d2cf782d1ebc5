package network

import (
	"github.com/ttpr0/go-access/algorithm"
	"github.com/ttpr0/go-access/graph"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

// Builds the transit graph, attaches the municipalities and returns the graph with the ordered municipality node ids.
func BuildCostGraph(stops Array[structs.Stop], municipalities Array[structs.Municipality], subunits Optional[Array[structs.SubUnit]], options TransitOptions) (*graph.Graph, Array[int32], error) {
	builder, _, err := BuildTransitGraph(graph.NewBuilder(), stops, options)
	if err != nil {
		return nil, nil, err
	}
	builder, muni_ids, err := AttachCatchments(builder, stops, municipalities, subunits, options)
	if err != nil {
		return nil, nil, err
	}
	g, err := builder.Build()
	if err != nil {
		return nil, nil, err
	}
	return g, muni_ids, nil
}

// Computes the travel cost matrix between all municipalities over the transit network.
//
// workers > 1 computes origins concurrently.
func CostFromTransit(stops Array[structs.Stop], municipalities Array[structs.Municipality], subunits Optional[Array[structs.SubUnit]], options TransitOptions, workers int) (Matrix[float64], error) {
	g, muni_ids, err := BuildCostGraph(stops, municipalities, subunits, options)
	if err != nil {
		return Matrix[float64]{}, err
	}
	if workers > 1 {
		return algorithm.CalcCostMatrixParallel(g, muni_ids, workers)
	}
	return algorithm.CalcCostMatrix(g, muni_ids)
}
