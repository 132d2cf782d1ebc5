package algorithm

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ttpr0/go-access/graph"
	. "github.com/ttpr0/go-access/util"
	"golang.org/x/sync/errgroup"
)

// lower bound of every cost matrix entry, diagonal included
const MIN_COST = 1.0

var ErrUnknownNode = errors.New("unknown node")

// No finite path between two nodes (external ids).
type DisconnectedGraphError struct {
	From int32
	To   int32
}

func (self *DisconnectedGraphError) Error() string {
	return fmt.Sprintf("no path from node %d to node %d", self.From, self.To)
}

func _UnknownNode(id int32) error {
	return fmt.Errorf("%w: %d", ErrUnknownNode, id)
}

//*******************************************
// cost matrix
//*******************************************

// Computes the matrix of shortest path lengths between the given nodes (external ids).
//
// Entry (i,j) is the path length from nodes[i] to nodes[j] floored at MIN_COST.
// Fails with DisconnectedGraphError if any pair is not connected, no partial matrix is returned.
func CalcCostMatrix(g graph.IGraph, nodes Array[int32]) (Matrix[float64], error) {
	indices, err := _MapNodes(g, nodes)
	if err != nil {
		return Matrix[float64]{}, err
	}
	matrix := NewMatrix[float64](nodes.Length(), nodes.Length())
	flags := NewDistFlags(g)
	for i := range indices {
		if err := _CalcCostRow(g, nodes, indices, i, flags, matrix); err != nil {
			return Matrix[float64]{}, err
		}
	}
	return matrix, nil
}

// Same as CalcCostMatrix but distributes the origins over the given number of workers.
//
// The graph is only read, every worker writes its own matrix rows.
// The first failing row stops all workers before they start their next row.
func CalcCostMatrixParallel(g graph.IGraph, nodes Array[int32], workers int) (Matrix[float64], error) {
	indices, err := _MapNodes(g, nodes)
	if err != nil {
		return Matrix[float64]{}, err
	}
	if workers < 1 {
		workers = 1
	}
	matrix := NewMatrix[float64](nodes.Length(), nodes.Length())
	source_chan := make(chan int, nodes.Length())
	for i := range indices {
		source_chan <- i
	}
	close(source_chan)

	group, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		group.Go(func() error {
			flags := NewDistFlags(g)
			return _CostWorker(ctx, source_chan, func(row int) error {
				return _CalcCostRow(g, nodes, indices, row, flags, matrix)
			})
		})
	}
	if err := group.Wait(); err != nil {
		return Matrix[float64]{}, err
	}
	return matrix, nil
}

// Computes rows from the channel until it is drained, a row fails or ctx is done.
func _CostWorker(ctx context.Context, rows <-chan int, calc_row func(int) error) error {
	for row := range rows {
		if ctx.Err() != nil {
			return nil
		}
		if err := calc_row(row); err != nil {
			return err
		}
	}
	return nil
}

func _MapNodes(g graph.IGraph, nodes Array[int32]) (Array[int32], error) {
	indices := NewArray[int32](nodes.Length())
	for i, id := range nodes {
		index, ok := g.GetNodeIndex(id)
		if !ok {
			return nil, _UnknownNode(id)
		}
		indices[i] = index
	}
	return indices, nil
}

func _CalcCostRow(g graph.IGraph, nodes Array[int32], indices Array[int32], row int, flags Flags[DistFlag], matrix Matrix[float64]) error {
	flags.Reset()
	starts := Array[Tuple[int32, float64]]{MakeTuple(indices[row], 0.0)}
	CalcRangeDijkstra(g, starts, flags, math.Inf(1))
	for j, index := range indices {
		dist := flags.Get(index).Dist
		if math.IsInf(dist, 1) {
			return &DisconnectedGraphError{From: nodes[row], To: nodes[j]}
		}
		matrix.Set(row, j, math.Max(dist, MIN_COST))
	}
	return nil
}
