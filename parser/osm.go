package parser

import (
	"context"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
)

// member roles of a route relation referencing a stop position
var stop_roles = Dict[string, bool]{"stop": true, "stop_entry_only": true, "stop_exit_only": true}

// member role used when a relation has no stop positions
const PLATFORM_ROLE = "platform"

// Default mapping of OSM route types to transit modes.
var DEFAULT_ROUTE_MODES = Dict[string, string]{
	"subway":     "Metro",
	"light_rail": "Tramway",
	"tram":       "Tramway",
	"aerialway":  "Cable",
	"bus":        "Bus rapid transit",
}

type _OSMStop struct {
	Name string
	Loc  orb.Point
}

type _OSMRoute struct {
	Line  string
	Mode  string
	Stops List[osm.NodeID]
}

//*******************************************
// osm route parser
//*******************************************

// Extracts an ordered stop table from the route relations of an OSM XML file.
//
// Only relations tagged type=route whose route tag is a key of modes are used, modes maps it to the stop type.
// Stops follow the relation order and within a relation the member order. Members with a stop role are used,
// platform members only if a relation has none.
// The line is the ref tag of the relation or its id, the stop name is the name tag of the member node.
// Stop nodes not contained in the file are skipped.
func ParseOSMRoutes(ctx context.Context, reader io.Reader, modes Dict[string, string]) (Array[structs.Stop], error) {
	nodes := NewDict[osm.NodeID, _OSMStop](1000)
	routes := NewList[_OSMRoute](10)

	scanner := osmxml.New(ctx, reader)
	defer scanner.Close()
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			nodes[object.ID] = _OSMStop{
				Name: object.Tags.Find("name"),
				Loc:  orb.Point{object.Lon, object.Lat},
			}
		case *osm.Relation:
			route, ok := _DecodeRoute(object, modes)
			if ok {
				routes.Add(route)
			}
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	stops := NewList[structs.Stop](100)
	for _, route := range routes {
		for _, id := range route.Stops {
			node, ok := nodes[id]
			if !ok {
				continue
			}
			stops.Add(structs.Stop{
				Index: int32(stops.Length()),
				Line:  route.Line,
				Type:  route.Mode,
				Name:  node.Name,
				Loc:   node.Loc,
			})
		}
	}
	return Array[structs.Stop](stops), nil
}

func _DecodeRoute(relation *osm.Relation, modes Dict[string, string]) (_OSMRoute, bool) {
	if relation.Tags.Find("type") != "route" {
		return _OSMRoute{}, false
	}
	mode, ok := modes[relation.Tags.Find("route")]
	if !ok {
		return _OSMRoute{}, false
	}
	line := relation.Tags.Find("ref")
	if line == "" {
		line = strconv.FormatInt(int64(relation.ID), 10)
	}
	stops := NewList[osm.NodeID](len(relation.Members))
	platforms := NewList[osm.NodeID](len(relation.Members))
	for _, member := range relation.Members {
		if member.Type != osm.TypeNode {
			continue
		}
		if stop_roles[member.Role] {
			stops.Add(osm.NodeID(member.Ref))
		} else if member.Role == PLATFORM_ROLE {
			platforms.Add(osm.NodeID(member.Ref))
		}
	}
	if stops.Length() == 0 {
		stops = platforms
	}
	return _OSMRoute{
		Line:  line,
		Mode:  mode,
		Stops: stops,
	}, true
}
