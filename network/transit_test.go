package network

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-access/algorithm"
	"github.com/ttpr0/go-access/geo"
	"github.com/ttpr0/go-access/graph"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

func testOptions() TransitOptions {
	return TransitOptions{
		SpeedByMode: Dict[string, float64]{"Metro": 0.01, "Cable": 0.05},
		WaitByMode:  Dict[string, float64]{"Metro": 1, "Cable": 5},
		WalkSpeed:   0.1,
	}
}

// Line L1: A(0,0) - B(100,0) - A(200,0)
// Line L2: C(100,100) - B(100,200)
func transferStops() Array[structs.Stop] {
	return Array[structs.Stop]{
		{Index: 0, Line: "L1", Type: "Metro", Name: "A", Loc: orb.Point{0, 0}},
		{Index: 1, Line: "L1", Type: "Metro", Name: "B", Loc: orb.Point{100, 0}},
		{Index: 2, Line: "L1", Type: "Metro", Name: "A", Loc: orb.Point{200, 0}},
		{Index: 3, Line: "L2", Type: "Cable", Name: "C", Loc: orb.Point{100, 100}},
		{Index: 4, Line: "L2", Type: "Cable", Name: "B", Loc: orb.Point{100, 200}},
	}
}

func TestTransferNames(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, TransferNames(transferStops()))
	assert.Empty(t, TransferNames(Array[structs.Stop]{{Name: "X"}, {Name: "Y"}}))
	assert.Equal(t, []string{"X"}, TransferNames(Array[structs.Stop]{{Name: ""}, {Name: "X"}, {Name: ""}, {Name: "X"}}))
}

func TestUnnamedStopsStayApart(t *testing.T) {
	stops := Array[structs.Stop]{
		{Index: 0, Line: "L1", Type: "Metro", Name: "", Loc: orb.Point{0, 0}},
		{Index: 1, Line: "L1", Type: "Metro", Name: "B", Loc: orb.Point{100, 0}},
		{Index: 2, Line: "L2", Type: "Metro", Name: "", Loc: orb.Point{10000, 0}},
		{Index: 3, Line: "L2", Type: "Metro", Name: "D", Loc: orb.Point{10100, 0}},
	}
	assert.Empty(t, TransferNames(stops))
	assert.Empty(t, CreateTransferNodes(stops))

	munis := Array[structs.Municipality]{
		{Name: "a", Geom: geo.NewPoint(orb.Point{0, 1})},
		{Name: "b", Geom: geo.NewPoint(orb.Point{10000, 1})},
	}
	_, err := CostFromTransit(stops, munis, None[Array[structs.SubUnit]](), testOptions(), 1)
	var disconnected *algorithm.DisconnectedGraphError
	assert.True(t, errors.As(err, &disconnected))
}

func TestTransferNodes(t *testing.T) {
	stops := transferStops()
	nodes := CreateTransferNodes(stops)
	require.Equal(t, 2, nodes.Length())
	assert.Equal(t, int32(5), nodes[0].ID)
	assert.Equal(t, "A", nodes[0].Name)
	assert.Equal(t, int32(6), nodes[1].ID)
	assert.Equal(t, "B", nodes[1].Name)
	assert.Equal(t, structs.TRANSFER_NODE, nodes[0].Type)

	edges, err := CreateTransferEdges(stops, testOptions())
	require.NoError(t, err)
	assert.Equal(t, Array[structs.Edge]{
		{NodeA: 0, NodeB: 5, Weight: 1, Type: structs.TRANSFER_EDGE},
		{NodeA: 2, NodeB: 5, Weight: 1, Type: structs.TRANSFER_EDGE},
		{NodeA: 1, NodeB: 6, Weight: 1, Type: structs.TRANSFER_EDGE},
		{NodeA: 4, NodeB: 6, Weight: 5, Type: structs.TRANSFER_EDGE},
	}, edges)
}

func TestLineEdges(t *testing.T) {
	edges, err := CreateLineEdges(transferStops(), testOptions())
	require.NoError(t, err)
	require.Equal(t, 3, edges.Length())
	assert.Equal(t, int32(0), edges[0].NodeA)
	assert.Equal(t, int32(1), edges[0].NodeB)
	assert.InDelta(t, 1.0, edges[0].Weight, 1e-9)
	assert.Equal(t, int32(1), edges[1].NodeA)
	assert.Equal(t, int32(2), edges[1].NodeB)
	// no edge between stop 2 (L1) and stop 3 (L2)
	assert.Equal(t, int32(3), edges[2].NodeA)
	assert.InDelta(t, 5.0, edges[2].Weight, 1e-9)
}

func TestBuildTransitBatchDoesNotAttach(t *testing.T) {
	batch, transfer_ids, err := BuildTransitBatch(transferStops(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, 7, batch.NodeCount())
	assert.Equal(t, 7, batch.EdgeCount())
	assert.Equal(t, Array[int32]{5, 6}, transfer_ids)

	builder := graph.NewBuilder()
	attached, _, err := BuildTransitGraph(builder, transferStops(), testOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, builder.NodeCount())
	assert.Equal(t, 7, attached.NodeCount())

	g, err := attached.Build()
	require.NoError(t, err)
	for _, id := range transfer_ids {
		assert.GreaterOrEqual(t, g.GetNodeDegree(id), 2)
	}
}

func TestMissingMode(t *testing.T) {
	options := testOptions()
	delete(options.WaitByMode, "Cable")
	_, _, err := BuildTransitBatch(transferStops(), options)
	var missing *MissingModeError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "wait", missing.Table)
	assert.Equal(t, "Cable", missing.Mode)

	options = testOptions()
	delete(options.SpeedByMode, "Metro")
	_, err = CreateLineEdges(transferStops(), options)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "speed", missing.Table)
}

func TestInvalidOptions(t *testing.T) {
	options := testOptions()
	options.WalkSpeed = 0
	err := options.Validate(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	options = testOptions()
	options.SpeedByMode["Metro"] = -1
	assert.ErrorIs(t, options.Validate(nil, nil), ErrInvalidOptions)

	assert.NoError(t, testOptions().Validate([]string{"Metro"}, []string{"Cable"}))
}

func TestEffectiveWalkSpeed(t *testing.T) {
	options := testOptions()
	assert.Equal(t, 0.1, options.EffectiveWalkSpeed())
	options.SpeedByMode[WALK_MODE] = 0.02
	assert.Equal(t, 0.02, options.EffectiveWalkSpeed())
}
