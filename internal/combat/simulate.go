package combat

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"monster_world/internal/config"
)

// CycleLength is the length of one hour of phases.
const CycleLength = 60

// Phase offsets within each cycle. Every other offset is idle.
const (
	OffsetProduce   = 0
	OffsetEscape    = 5
	OffsetMarch     = 10
	OffsetPlunder   = 35
	OffsetBattle    = 40
	OffsetTreasury  = 50
	OffsetInventory = 55
)

type Env struct {
	Time    int
	Logger  zerolog.Logger
	Metrics *Metrics
}

type SimResult struct {
	Case     int            `json:"case"`
	Name     string         `json:"name,omitempty"`
	Captured []string       `json:"captured,omitempty"`
	Duration int            `json:"duration"`
	Treasury map[string]int `json:"headquarters"`
	Lines    []string       `json:"lines"`
	Events   []Event        `json:"events,omitempty"`
}

// Simulate runs one case on a fresh state.
func Simulate(env *Env, sc *config.Scenario, record bool) SimResult {
	return RunSingle(env, NewState(sc), record)
}

// RunSingle drives the fixed phase schedule from time 0 to the horizon, or
// until a headquarters falls, and renders the sorted log.
func RunSingle(env *Env, st *State, record bool) SimResult {
	st.logger = env.Logger
	st.metrics = env.Metrics
	horizon := st.Scenario.Horizon

	last := 0
	for env.Time = 0; env.Time <= horizon; env.Time += config.TickStep {
		last = env.Time
		if st.step(env.Time) {
			break
		}
	}

	events := st.Log.Sorted(horizon)
	res := SimResult{
		Name:     st.Scenario.Name,
		Duration: last,
		Treasury: map[string]int{},
		Lines:    Render(events),
	}
	for _, hq := range st.HQ {
		res.Treasury[hq.Faction.String()] = hq.Life
		if hq.Taken {
			res.Captured = append(res.Captured, hq.Faction.String())
		}
	}
	if record {
		res.Events = events
	}
	env.Logger.Info().
		Str("case", st.Scenario.Name).
		Int("duration", last).
		Int("events", len(events)).
		Strs("captured", res.Captured).
		Msg("simulation finished")
	return res
}

// step runs the phase scheduled at t and reports whether the run must stop.
func (s *State) step(t int) bool {
	switch t % CycleLength {
	case OffsetProduce:
		s.produce(t)
	case OffsetEscape:
		s.checkEscapes(t)
	case OffsetMarch:
		s.march(t)
		return s.Captured()
	case OffsetPlunder:
		s.plunder(t)
	case OffsetBattle:
		s.battles(t)
	case OffsetTreasury:
		s.reportTreasury(t)
	case OffsetInventory:
		s.reportInventory(t)
	}
	return false
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
