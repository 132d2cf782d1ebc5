package structs

import (
	"github.com/paulmach/orb"
	"github.com/ttpr0/go-access/geo"
)

//*******************************************
// table structs
//*******************************************

// Physical transit stop, Index is the position in the ordered stop table.
type Stop struct {
	Index int32
	Line  string
	Type  string
	Name  string
	Loc   orb.Point
}

// Administrative unit a cost matrix row/column belongs to.
//
// Index is the position in the municipality table, MuniIndex the external key used by sub-units and employment rows.
type Municipality struct {
	Index      int32
	MuniIndex  int32
	Name       string
	Geom       geo.Geometry
	Population float64
	Employment float64
}

// Point sub-unit of a municipality (e.g. comuna), Weight is optional (e.g. population).
type SubUnit struct {
	MuniIndex int32
	Loc       orb.Point
	Weight    float64
}

//*******************************************
// graph structs
//*******************************************

type NodeType byte

const (
	STOP_NODE         NodeType = 0
	TRANSFER_NODE     NodeType = 1
	MUNICIPALITY_NODE NodeType = 2
)

func (self NodeType) String() string {
	switch self {
	case STOP_NODE:
		return "stop"
	case TRANSFER_NODE:
		return "transfer"
	case MUNICIPALITY_NODE:
		return "municipality"
	default:
		panic("unknown node type")
	}
}

// Graph node. Ref points into the table the node was created from
// (stop index, municipality index) or -1 for transfer nodes.
type Node struct {
	ID   int32
	Type NodeType
	Ref  int32
	Name string
	Loc  orb.Point
}

type EdgeType byte

const (
	LINE_EDGE     EdgeType = 0
	TRANSFER_EDGE EdgeType = 1
	WALK_EDGE     EdgeType = 2
)

// Undirected weighted edge, Weight is travel time in minutes.
type Edge struct {
	NodeA  int32
	NodeB  int32
	Weight float64
	Type   EdgeType
}
