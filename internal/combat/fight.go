package combat

import (
	"fmt"
	"strings"

	"monster_world/internal/util"
)

// maxStagnantExchanges ends a fight whose exchanges stop changing hitpoints.
const maxStagnantExchanges = 10

type Outcome int

const (
	Stalemate Outcome = iota
	RedWins
	BlueWins
	BothDied
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red_wins"
	case BlueWins:
		return "blue_wins"
	case BothDied:
		return "both_died"
	}
	return "stalemate"
}

// fight resolves the meeting of red and blue in city. The red warrior strikes
// first in odd cities, the blue one in even cities.
func (s *State) fight(t, city int, red, blue *Warrior) Outcome {
	red.SortWeapons()
	blue.SortWeapons()

	attacker, defender := blue, red
	if city%2 == 1 {
		attacker, defender = red, blue
	}

	if !red.HasUsableWeapon() && !blue.HasUsableWeapon() {
		return s.stalemate(t, city, red, blue)
	}

	stagnant := 0
	for {
		switch {
		case red.HP <= 0 && blue.HP <= 0:
			return s.bothDied(t, city, red, blue)
		case red.HP <= 0:
			return s.victory(t, city, blue, red)
		case blue.HP <= 0:
			return s.victory(t, city, red, blue)
		}

		if !attacker.HasUsableWeapon() && !defender.HasUsableWeapon() {
			return s.stalemate(t, city, red, blue)
		}

		redHP, blueHP := red.HP, blue.HP
		changed := attacker.strike(defender)
		if defender.HP <= 0 {
			continue
		}
		if defender.strike(attacker) {
			changed = true
		}

		if red.HP == redHP && blue.HP == blueHP {
			stagnant++
		}
		if stagnant >= maxStagnantExchanges {
			changed = false
		}
		if !changed {
			return s.stalemate(t, city, red, blue)
		}
	}
}

func (s *State) stalemate(t, city int, red, blue *Warrior) Outcome {
	var b strings.Builder
	fmt.Fprintf(&b, "both %s and %s were alive in city %d", red.Label(), blue.Label(), city)
	yell(&b, t, city, red)
	yell(&b, t, city, blue)
	return s.settle(t, city, Stalemate, b.String())
}

func (s *State) bothDied(t, city int, red, blue *Warrior) Outcome {
	text := fmt.Sprintf("both %s and %s died in city %d", red.Label(), blue.Label(), city)
	s.Despawn(red.Ref())
	s.Despawn(blue.Ref())
	return s.settle(t, city, BothDied, text)
}

func (s *State) victory(t, city int, winner, loser *Warrior) Outcome {
	var b strings.Builder
	fmt.Fprintf(&b, "%s killed %s in city %d remaining %d elements", winner.Label(), loser.Label(), city, winner.HP)
	winner.Loot(loser)
	yell(&b, t, city, winner)
	s.Despawn(loser.Ref())

	outcome := RedWins
	if winner.Faction == Blue {
		outcome = BlueWins
	}
	return s.settle(t, city, outcome, b.String())
}

func (s *State) settle(t, city int, o Outcome, text string) Outcome {
	s.emit(Event{T: t, City: city, Category: CatBattle, Text: text})
	s.metrics.fightResolved(o)
	s.logger.Debug().Int("t", t).Int("city", city).Stringer("outcome", o).Msg("fight resolved")
	return o
}

// yell appends a dragon's war cry as its own stamped line.
func yell(b *strings.Builder, t, city int, w *Warrior) {
	if w.Kind != Dragon {
		return
	}
	b.WriteByte('\n')
	b.WriteString(util.Stamp(t, fmt.Sprintf("%s yelled in city %d", w.Label(), city)))
}
