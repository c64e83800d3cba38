package combat

import (
	"fmt"

	"monster_world/internal/util"
)

var factions = [2]Faction{Red, Blue}

func (s *State) produce(t int) {
	for _, f := range factions {
		hq := s.HQ[f]
		wasStopped := hq.Stopped
		w := hq.Produce()
		if w == nil {
			if hq.Stopped && !wasStopped {
				s.logger.Debug().Int("t", t).Stringer("faction", f).Int("pool", hq.Life).Msg("production stopped")
			}
			continue
		}
		s.spawn(w)
		text := w.Label() + " born"
		if w.Kind == Lion {
			text += fmt.Sprintf("\nIts loyalty is %d", w.Loyalty)
		}
		s.emit(Event{T: t, City: 0, Category: CatBirth, Text: text})
	}
}

func (s *State) checkEscapes(t int) {
	for _, f := range factions {
		for _, w := range s.Roster(f) {
			if !w.CheckEscape(s.Scenario.Cities) {
				continue
			}
			s.emit(Event{T: t, City: w.City, Category: CatEscape, Text: w.Label() + " ran away"})
			s.logger.Debug().Int("t", t).Str("warrior", w.Label()).Int("city", w.City).Msg("deserted")
			s.Despawn(w.Ref())
		}
	}
}

// march moves every warrior one city and rebuilds the city map. Warriors
// entering the enemy headquarters capture it and leave the board.
func (s *State) march(t int) {
	s.clearCities()
	for _, f := range factions {
		enemy := s.HQ[f.Opponent()]
		for _, w := range s.Roster(f) {
			w.Move()
			w.AfterMove(s.Scenario.LoyaltyDecay)

			if w.City == enemy.Home {
				enemy.Taken = true
				text := fmt.Sprintf("%s reached %s headquarter with %d elements and force %d\n%s",
					w.Label(), enemy.Faction, w.HP, w.Attack,
					util.Stamp(t, fmt.Sprintf("%s headquarter was taken", enemy.Faction)))
				s.emit(Event{T: t, City: w.City, Category: CatMarch, Text: text})
				s.logger.Debug().Int("t", t).Str("warrior", w.Label()).Msg("headquarter captured")
				s.Despawn(w.Ref())
				continue
			}

			s.emit(Event{T: t, City: w.City, Category: CatMarch,
				Text: fmt.Sprintf("%s marched to city %d with %d elements and force %d", w.Label(), w.City, w.HP, w.Attack)})
			s.place(w)
		}
	}
}

func (s *State) plunder(t int) {
	for city := 1; city <= s.Scenario.Cities; city++ {
		red, blue := s.Occupants(city)
		if red == nil || blue == nil {
			continue
		}
		s.beforeBattle(t, red, blue)
		s.beforeBattle(t, blue, red)
	}
}

func (s *State) beforeBattle(t int, w, enemy *Warrior) {
	p, ok := w.BeforeBattle(enemy)
	if !ok {
		return
	}
	s.emit(Event{T: t, City: w.City, Category: CatSteal,
		Text: fmt.Sprintf("%s took %d %s from %s in city %d", w.Label(), p.Taken, p.Kind, enemy.Label(), w.City)})
}

func (s *State) battles(t int) {
	for city := 1; city <= s.Scenario.Cities; city++ {
		red, blue := s.Occupants(city)
		if red == nil || blue == nil {
			continue
		}
		s.fight(t, city, red, blue)
	}
}

func (s *State) reportTreasury(t int) {
	for _, f := range factions {
		hq := s.HQ[f]
		s.emit(Event{T: t, City: hq.Home, Category: CatTreasury,
			Text: fmt.Sprintf("%d elements in %s headquarter", hq.Life, f)})
	}
}

func (s *State) reportInventory(t int) {
	for _, f := range factions {
		for _, w := range s.Roster(f) {
			s.emit(Event{T: t, City: w.City, Category: CatInventory,
				Text: fmt.Sprintf("%s has %s and %d elements", w.Label(), w.Inventory(), w.HP)})
		}
	}
}
