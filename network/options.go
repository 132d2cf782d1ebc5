package network

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	. "github.com/ttpr0/go-access/util"
)

// mode key overriding the walk speed when present in the speed table
const WALK_MODE = "Walk"

var ErrInvalidOptions = errors.New("invalid transit options")

// Mode lookup failed for a stop type.
type MissingModeError struct {
	Table string
	Mode  string
}

func (self *MissingModeError) Error() string {
	return fmt.Sprintf("no %s for mode %q", self.Table, self.Mode)
}

//*******************************************
// transit options
//*******************************************

// Travel parameters of the transit graph.
//
// Speeds are given in minutes per meter, waits in minutes.
type TransitOptions struct {
	SpeedByMode        Dict[string, float64] `yaml:"speed" validate:"required,dive,gt=0"`
	WaitByMode         Dict[string, float64] `yaml:"wait" validate:"dive,gte=0"`
	WalkSpeed          float64               `yaml:"walk-speed" validate:"gt=0"`
	UseSubUnitCentroid bool                  `yaml:"use-subunit-centroid"`
}

var validate = validator.New()

// Validates the options against the modes used by the stops.
//
// Every mode needs a speed, modes of transfer stops additionally need a wait time.
func (self TransitOptions) Validate(modes []string, transfer_modes []string) error {
	if err := validate.Struct(self); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOptions, err.Error())
	}
	for _, mode := range modes {
		if !self.SpeedByMode.ContainsKey(mode) {
			return &MissingModeError{Table: "speed", Mode: mode}
		}
	}
	for _, mode := range transfer_modes {
		if !self.WaitByMode.ContainsKey(mode) {
			return &MissingModeError{Table: "wait", Mode: mode}
		}
	}
	return nil
}

func (self TransitOptions) Speed(mode string) (float64, error) {
	speed, ok := self.SpeedByMode[mode]
	if !ok {
		return 0, &MissingModeError{Table: "speed", Mode: mode}
	}
	return speed, nil
}

func (self TransitOptions) Wait(mode string) (float64, error) {
	wait, ok := self.WaitByMode[mode]
	if !ok {
		return 0, &MissingModeError{Table: "wait", Mode: mode}
	}
	return wait, nil
}

// Walk speed used for catchment edges, a "Walk" entry in the speed table takes precedence.
func (self TransitOptions) EffectiveWalkSpeed() float64 {
	if speed, ok := self.SpeedByMode[WALK_MODE]; ok {
		return speed
	}
	return self.WalkSpeed
}
