package combat

import (
	"github.com/rs/zerolog"

	"monster_world/internal/config"
)

// Ref identifies a warrior across rosters, cities and headquarters.
type Ref struct {
	Faction Faction
	ID      int
}

// State is everything one case mutates. The arena owns the warriors; every
// other index holds refs or ids and is cleared by Despawn.
type State struct {
	Scenario *config.Scenario
	HQ       [2]*Headquarters
	Log      EventLog

	arena  map[Ref]*Warrior
	roster [2][]Ref
	cities [][2]int // warrior id per faction, 0 when empty

	logger  zerolog.Logger
	metrics *Metrics
}

func NewState(sc *config.Scenario) *State {
	return &State{
		Scenario: sc,
		HQ:       [2]*Headquarters{NewHeadquarters(Red, sc), NewHeadquarters(Blue, sc)},
		arena:    map[Ref]*Warrior{},
		cities:   make([][2]int, sc.Cities+2),
		logger:   zerolog.Nop(),
	}
}

func (s *State) Warrior(ref Ref) *Warrior { return s.arena[ref] }

// Roster returns the live warriors of a faction in production order.
func (s *State) Roster(f Faction) []*Warrior {
	out := make([]*Warrior, 0, len(s.roster[f]))
	for _, ref := range s.roster[f] {
		out = append(out, s.arena[ref])
	}
	return out
}

// Occupants returns the red and blue warrior standing in city, if any.
func (s *State) Occupants(city int) (red, blue *Warrior) {
	if city < 0 || city >= len(s.cities) {
		return nil, nil
	}
	slot := s.cities[city]
	if slot[Red] != 0 {
		red = s.arena[Ref{Red, slot[Red]}]
	}
	if slot[Blue] != 0 {
		blue = s.arena[Ref{Blue, slot[Blue]}]
	}
	return red, blue
}

func (s *State) spawn(w *Warrior) {
	ref := w.Ref()
	s.arena[ref] = w
	s.roster[w.Faction] = append(s.roster[w.Faction], ref)
	s.metrics.warriorSpawned(w.Faction)
}

func (s *State) place(w *Warrior) {
	if w.City >= 0 && w.City < len(s.cities) {
		s.cities[w.City][w.Faction] = w.ID
	}
}

func (s *State) clearCities() {
	for i := range s.cities {
		s.cities[i] = [2]int{}
	}
}

// Despawn removes a warrior from the arena, its roster, the city map and its
// headquarters in one step.
func (s *State) Despawn(ref Ref) {
	w, ok := s.arena[ref]
	if !ok {
		return
	}
	delete(s.arena, ref)
	refs := s.roster[ref.Faction]
	for i, r := range refs {
		if r == ref {
			s.roster[ref.Faction] = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	if w.City >= 0 && w.City < len(s.cities) && s.cities[w.City][ref.Faction] == ref.ID {
		s.cities[w.City][ref.Faction] = 0
	}
	s.HQ[ref.Faction].forget(ref.ID)
}

func (s *State) emit(ev Event) {
	s.Log.Add(ev)
	s.metrics.eventLogged(ev.Category)
}

// Captured reports whether either headquarters has fallen.
func (s *State) Captured() bool {
	return s.HQ[Red].Taken || s.HQ[Blue].Taken
}
