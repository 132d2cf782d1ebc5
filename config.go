package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ttpr0/go-access/models"
	"github.com/ttpr0/go-access/network"
	"github.com/ttpr0/go-access/parser"
	. "github.com/ttpr0/go-access/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) (Config, error) {
	slog.Info("Reading config file", "file", file)
	data, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// Decodes a yaml config, fills in defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	var config Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	config.SetDefaults()
	if err := config_validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

var config_validate = validator.New()

type Config struct {
	Input   InputOptions  `yaml:"input"`
	Transit TransitConfig `yaml:"transit"`
	Models  ModelOptions  `yaml:"models"`
	Output  string        `yaml:"output" validate:"required"`
}

type InputOptions struct {
	Stops          string `yaml:"stops" validate:"required_without=OSM"`
	OSM            string `yaml:"osm" validate:"required_without=Stops"`
	Municipalities string `yaml:"municipalities" validate:"required"`
	NameColumn     string `yaml:"name-column" validate:"required"`
	IndexColumn    string `yaml:"index-column" validate:"required"`
	SubUnits       string `yaml:"subunits"`
	SubUnitWeight  string `yaml:"subunit-weight"`
	Employment     string `yaml:"employment" validate:"required"`
	Population     string `yaml:"population"`
	Flows          string `yaml:"flows"`
	Project        bool   `yaml:"project"`
}

type TransitConfig struct {
	network.TransitOptions `yaml:",inline"`

	Workers    int                  `yaml:"workers" validate:"gte=1"`
	RouteModes Dict[string, string] `yaml:"route-modes"`
}

type ModelOptions struct {
	Year              int32    `yaml:"year" validate:"required"`
	Beta              float64  `yaml:"beta" validate:"gte=0"`
	ParticipationRate float64  `yaml:"participation-rate" validate:"gt=0,lte=1"`
	Run               []string `yaml:"run" validate:"dive,oneof=gravity radiation access1 access2"`
	ScaleFlows        string   `yaml:"scale-flows" validate:"oneof=employment population"`
}

const DEFAULT_OUTPUT = "./result.json"

// targets observed flows are rescaled to
const (
	SCALE_TO_EMPLOYMENT = "employment"
	SCALE_TO_POPULATION = "population"
)

var ALL_MODELS = []string{"gravity", "radiation", "access1", "access2"}

func (self *Config) SetDefaults() {
	if self.Output == "" {
		self.Output = DEFAULT_OUTPUT
	}
	if self.Transit.Workers == 0 {
		self.Transit.Workers = 1
	}
	if self.Transit.RouteModes == nil {
		self.Transit.RouteModes = parser.DEFAULT_ROUTE_MODES
	}
	if self.Models.ParticipationRate == 0 {
		self.Models.ParticipationRate = models.DEFAULT_PARTICIPATION_RATE
	}
	if self.Models.ScaleFlows == "" {
		self.Models.ScaleFlows = SCALE_TO_POPULATION
	}
	if len(self.Models.Run) == 0 {
		self.Models.Run = ALL_MODELS
	}
}

func (self ModelOptions) Runs(model string) bool {
	for _, m := range self.Run {
		if m == model {
			return true
		}
	}
	return false
}
