package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/ttpr0/go-access/algorithm"
	"github.com/ttpr0/go-access/models"
	"github.com/ttpr0/go-access/network"
	"github.com/ttpr0/go-access/parser"
	"github.com/ttpr0/go-access/structs"
	. "github.com/ttpr0/go-access/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// input
//**********************************************************

type Input struct {
	Stops          Array[structs.Stop]
	Municipalities Array[structs.Municipality]
	SubUnits       Optional[Array[structs.SubUnit]]
	Employment     Array[float64]
	Population     Array[float64]
	Flows          Optional[Matrix[float64]]
}

func LoadInput(ctx context.Context, config Config) (Input, error) {
	input := Input{}
	opts := config.Input

	stops, err := _LoadStops(ctx, config)
	if err != nil {
		return input, err
	}
	input.Stops = stops
	slog.Info("Loaded stops", "count", stops.Length())

	munis, err := parser.ReadMunicipalities(opts.Municipalities, opts.NameColumn, opts.IndexColumn, opts.Project)
	if err != nil {
		return input, err
	}
	input.Municipalities = munis
	slog.Info("Loaded municipalities", "count", munis.Length())

	if opts.SubUnits != "" {
		subunits, err := parser.ReadSubUnits(opts.SubUnits, opts.IndexColumn, opts.SubUnitWeight, opts.Project)
		if err != nil {
			return input, err
		}
		input.SubUnits = Some(subunits)
		slog.Info("Loaded sub-units", "count", subunits.Length())
	}

	table, err := parser.ReadEmployment(opts.Employment)
	if err != nil {
		return input, err
	}
	input.Employment, err = parser.EmploymentFor(munis, table, config.Models.Year)
	if err != nil {
		return input, err
	}

	if opts.Population != "" {
		table, err := parser.ReadPopulation(opts.Population)
		if err != nil {
			return input, err
		}
		input.Population, err = parser.PopulationFor(munis, table)
		if err != nil {
			return input, err
		}
	} else {
		input.Population = parser.FeaturePopulation(munis)
	}

	if opts.Flows != "" {
		flows, err := parser.ReadFlows(opts.Flows, munis)
		if err != nil {
			return input, err
		}
		input.Flows = Some(flows)
	}
	return input, nil
}

func _LoadStops(ctx context.Context, config Config) (Array[structs.Stop], error) {
	opts := config.Input
	if opts.OSM == "" {
		return parser.ReadStops(opts.Stops, opts.Project)
	}
	file, err := os.Open(opts.OSM)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	stops, err := parser.ParseOSMRoutes(ctx, file, config.Transit.RouteModes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.OSM, err)
	}
	if opts.Project {
		stops = parser.ProjectStops(stops)
	}
	return stops, nil
}

//**********************************************************
// result
//**********************************************************

type Result struct {
	Municipalities []string         `json:"municipalities"`
	Costs          Matrix[float64]  `json:"costs"`
	Gravity        *Matrix[float64] `json:"gravity,omitempty"`
	Radiation      *Matrix[float64] `json:"radiation,omitempty"`
	Observed       *Matrix[float64] `json:"observed,omitempty"`
	Access1        Array[float64]   `json:"access1,omitempty"`
	Access2        Array[float64]   `json:"access2,omitempty"`
}

// Computes the cost matrix between all municipalities.
func ComputeCosts(input Input, config Config) (Matrix[float64], error) {
	g, muni_ids, err := network.BuildCostGraph(input.Stops, input.Municipalities, input.SubUnits, config.Transit.TransitOptions)
	if err != nil {
		return Matrix[float64]{}, err
	}
	slog.Info("Built transit graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	groups := algorithm.ConnectedComponents(g)
	if count := len(lo.Uniq(groups)); count > 1 {
		slog.Warn("Transit graph is not connected", "components", count)
	}

	if config.Transit.Workers > 1 {
		return algorithm.CalcCostMatrixParallel(g, muni_ids, config.Transit.Workers)
	}
	return algorithm.CalcCostMatrix(g, muni_ids)
}

// Runs the configured models on the cost matrix.
func RunModels(input Input, costs Matrix[float64], options ModelOptions) (Result, error) {
	result := Result{
		Municipalities: lo.Map(input.Municipalities, func(muni structs.Municipality, _ int) string {
			return muni.Name
		}),
		Costs: costs,
	}
	E := input.Employment
	P := input.Population

	var gravity Optional[Matrix[float64]]
	if options.Runs("gravity") || (options.Runs("access1") && !input.Flows.HasValue()) {
		T, err := models.Gravity(costs, E, P, options.Beta)
		if err != nil {
			return result, fmt.Errorf("gravity model: %w", err)
		}
		gravity = Some(T)
		if options.Runs("gravity") {
			result.Gravity = &T
		}
	}
	if options.Runs("radiation") {
		T, err := models.Radiation(costs, E, P)
		if err != nil {
			return result, fmt.Errorf("radiation model: %w", err)
		}
		result.Radiation = &T
	}
	var observed Optional[Matrix[float64]]
	if input.Flows.HasValue() {
		T, err := ScaleFlows(input.Flows.Value, E, P, options)
		if err != nil {
			return result, fmt.Errorf("scaling observed flows: %w", err)
		}
		observed = Some(T)
		result.Observed = &T
	}
	if options.Runs("access1") {
		var T Matrix[float64]
		if observed.HasValue() {
			T = observed.Value
		} else {
			T = gravity.Value
		}
		A, err := models.Access1(T, costs)
		if err != nil {
			return result, fmt.Errorf("access1: %w", err)
		}
		result.Access1 = A
	}
	if options.Runs("access2") {
		A, err := models.Access2(E, costs)
		if err != nil {
			return result, fmt.Errorf("access2: %w", err)
		}
		result.Access2 = A
	}
	return result, nil
}

// Rescales observed flows either column-wise to the employment or row-wise to the working population.
func ScaleFlows(flows Matrix[float64], E, P Array[float64], options ModelOptions) (Matrix[float64], error) {
	if options.ScaleFlows == SCALE_TO_EMPLOYMENT {
		return models.ScaleToEmployment(flows, E)
	}
	return models.ScaleToPopulation(flows, P, options.ParticipationRate)
}

func RunPipeline(ctx context.Context, config Config) (Result, error) {
	input, err := LoadInput(ctx, config)
	if err != nil {
		return Result{}, err
	}
	costs, err := ComputeCosts(input, config)
	if err != nil {
		return Result{}, err
	}
	slog.Info("Computed cost matrix", "size", costs.Rows())
	return RunModels(input, costs, config.Models)
}
