package network

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/ttpr0/go-access/geo"
	"github.com/ttpr0/go-access/graph"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

//*******************************************
// catchments
//*******************************************

// First municipality node id for a graph whose largest assigned id is max_id.
func CatchmentOffset(max_id int32) int32 {
	return max_id + 1
}

// Creates one node per municipality (id = offset + position) and a walk edge to the nearest stop.
//
// If options.UseSubUnitCentroid is set and sub-units are given, the weighted center of the
// municipality's sub-units is used instead of its own geometry.
// Returns the batch and the municipality node ids in table order.
func CreateCatchmentBatch(stops Array[structs.Stop], municipalities Array[structs.Municipality], subunits Optional[Array[structs.SubUnit]], options TransitOptions, offset int32) (graph.Batch, Array[int32], error) {
	candidates := make([]orb.Point, stops.Length())
	for i, stop := range stops {
		candidates[i] = stop.Loc
	}
	use_subunits := options.UseSubUnitCentroid && subunits.HasValue()
	var grouped Dict[int32, List[structs.SubUnit]]
	if use_subunits {
		grouped = _GroupSubUnits(subunits.Value)
	}
	walk_speed := options.EffectiveWalkSpeed()

	nodes := NewArray[structs.Node](municipalities.Length())
	edges := NewArray[structs.Edge](municipalities.Length())
	muni_ids := NewArray[int32](municipalities.Length())
	for i, muni := range municipalities {
		center := None[orb.Point]()
		if use_subunits {
			c, err := _SubUnitCenter(grouped[muni.MuniIndex])
			if err != nil {
				return graph.Batch{}, nil, fmt.Errorf("municipality %q: %w", muni.Name, err)
			}
			center = Some(c)
		}
		dist, stop, err := geo.NearestFrom(center, muni.Geom, candidates)
		if err != nil {
			return graph.Batch{}, nil, fmt.Errorf("municipality %q: %w", muni.Name, err)
		}
		id := offset + int32(i)
		loc := muni.Geom.Centroid()
		if center.HasValue() {
			loc = center.Value
		}
		nodes[i] = structs.Node{
			ID:   id,
			Type: structs.MUNICIPALITY_NODE,
			Ref:  int32(i),
			Name: muni.Name,
			Loc:  loc,
		}
		edges[i] = structs.Edge{
			NodeA:  id,
			NodeB:  int32(stop),
			Weight: dist * walk_speed,
			Type:   structs.WALK_EDGE,
		}
		muni_ids[i] = id
	}
	return graph.NewBatch(nodes, edges), muni_ids, nil
}

// Adds the municipality catchments to the builder.
//
// The node offset is derived from the ids already in the builder, stops are expected to have ids equal to their position.
func AttachCatchments(builder graph.Builder, stops Array[structs.Stop], municipalities Array[structs.Municipality], subunits Optional[Array[structs.SubUnit]], options TransitOptions) (graph.Builder, Array[int32], error) {
	offset := CatchmentOffset(builder.MaxNodeID())
	batch, muni_ids, err := CreateCatchmentBatch(stops, municipalities, subunits, options, offset)
	if err != nil {
		return builder, nil, err
	}
	return builder.With(batch), muni_ids, nil
}

func _GroupSubUnits(subunits Array[structs.SubUnit]) Dict[int32, List[structs.SubUnit]] {
	grouped := NewDict[int32, List[structs.SubUnit]](10)
	for _, unit := range subunits {
		list := grouped[unit.MuniIndex]
		list.Add(unit)
		grouped[unit.MuniIndex] = list
	}
	return grouped
}

func _SubUnitCenter(units List[structs.SubUnit]) (orb.Point, error) {
	points := make([]orb.Point, units.Length())
	weights := make([]float64, units.Length())
	for i, unit := range units {
		points[i] = unit.Loc
		weights[i] = unit.Weight
	}
	return geo.WeightedCenter(points, weights)
}
