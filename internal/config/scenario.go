package config

import (
	"errors"
	"fmt"
)

// Variants lists the warrior variants in the order the life and attack
// tables are given.
var Variants = [5]string{"dragon", "ninja", "iceman", "lion", "wolf"}

var (
	DefaultRedOrder  = []string{"iceman", "lion", "wolf", "ninja", "dragon"}
	DefaultBlueOrder = []string{"lion", "dragon", "ninja", "iceman", "wolf"}
)

// TickStep is the clock granularity every horizon must align with.
const TickStep = 5

var ErrInvalidScenario = errors.New("invalid scenario")

type ScenarioFile struct {
	Cases []Scenario `yaml:"cases"`
}

// Scenario is one independent case handed to the engine.
type Scenario struct {
	Name         string   `yaml:"name" json:"name,omitempty"`
	Resources    int      `yaml:"resources" json:"resources"`
	Cities       int      `yaml:"cities" json:"cities"`
	LoyaltyDecay int      `yaml:"loyalty_decay" json:"loyalty_decay"`
	Horizon      int      `yaml:"horizon" json:"horizon"`
	Life         [5]int   `yaml:"life" json:"life"`
	Attack       [5]int   `yaml:"attack" json:"attack"`
	RedOrder     []string `yaml:"red_order" json:"red_order,omitempty"`
	BlueOrder    []string `yaml:"blue_order" json:"blue_order,omitempty"`
}

// ApplyDefaults fills the production orders when they were left empty.
func (s *Scenario) ApplyDefaults() {
	if len(s.RedOrder) == 0 {
		s.RedOrder = append([]string(nil), DefaultRedOrder...)
	}
	if len(s.BlueOrder) == 0 {
		s.BlueOrder = append([]string(nil), DefaultBlueOrder...)
	}
}

func (s *Scenario) Validate() error {
	if s.Resources < 0 || s.LoyaltyDecay < 0 || s.Horizon < 0 {
		return fmt.Errorf("%w: negative resources, loyalty decay or horizon", ErrInvalidScenario)
	}
	if s.Cities < 1 {
		return fmt.Errorf("%w: need at least one city, got %d", ErrInvalidScenario, s.Cities)
	}
	if s.Horizon%TickStep != 0 {
		return fmt.Errorf("%w: horizon %d is not a multiple of %d", ErrInvalidScenario, s.Horizon, TickStep)
	}
	for i, name := range Variants {
		if s.Life[i] < 0 || s.Attack[i] < 0 {
			return fmt.Errorf("%w: negative stats for %s", ErrInvalidScenario, name)
		}
	}
	if err := validateOrder("red", s.RedOrder); err != nil {
		return err
	}
	return validateOrder("blue", s.BlueOrder)
}

func validateOrder(side string, order []string) error {
	if len(order) != len(Variants) {
		return fmt.Errorf("%w: %s order has %d entries, want %d", ErrInvalidScenario, side, len(order), len(Variants))
	}
	seen := map[string]bool{}
	for _, name := range order {
		if VariantIndex(name) < 0 {
			return fmt.Errorf("%w: %s order names unknown variant %q", ErrInvalidScenario, side, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %s order repeats %q", ErrInvalidScenario, side, name)
		}
		seen[name] = true
	}
	return nil
}

// VariantIndex returns the table position of a variant name, or -1.
func VariantIndex(name string) int {
	for i, v := range Variants {
		if v == name {
			return i
		}
	}
	return -1
}
