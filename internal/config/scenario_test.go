package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() Scenario {
	s := Scenario{Resources: 20, Cities: 1, LoyaltyDecay: 10, Horizon: 100,
		Life: [5]int{10, 10, 10, 10, 10}, Attack: [5]int{20, 20, 20, 20, 20}}
	s.ApplyDefaults()
	return s
}

func TestApplyDefaults(t *testing.T) {
	var s Scenario
	s.ApplyDefaults()
	assert.Equal(t, DefaultRedOrder, s.RedOrder)
	assert.Equal(t, DefaultBlueOrder, s.BlueOrder)

	s.RedOrder[0] = "wolf"
	assert.Equal(t, "iceman", DefaultRedOrder[0], "defaults are copied")

	custom := Scenario{RedOrder: []string{"wolf"}}
	custom.ApplyDefaults()
	assert.Equal(t, []string{"wolf"}, custom.RedOrder)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"negative resources", func(s *Scenario) { s.Resources = -1 }},
		{"no cities", func(s *Scenario) { s.Cities = 0 }},
		{"misaligned horizon", func(s *Scenario) { s.Horizon = 7 }},
		{"negative attack", func(s *Scenario) { s.Attack[3] = -2 }},
		{"short order", func(s *Scenario) { s.RedOrder = s.RedOrder[:4] }},
		{"unknown variant", func(s *Scenario) { s.BlueOrder[0] = "troll" }},
		{"repeated variant", func(s *Scenario) { s.BlueOrder[1] = s.BlueOrder[0] }},
	}

	ok := valid()
	require.NoError(t, ok.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidScenario)
		})
	}
}

func TestVariantIndex(t *testing.T) {
	assert.Equal(t, 0, VariantIndex("dragon"))
	assert.Equal(t, 4, VariantIndex("wolf"))
	assert.Equal(t, -1, VariantIndex("Wolf"))
}
