package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArena(t *testing.T, cities int) *State {
	t.Helper()
	return NewState(scenario(100, cities, 0, 1000, [5]int{}, [5]int{}))
}

func armed(f Faction, k Kind, id, hp, attack, city int, ws ...*Weapon) *Warrior {
	w := NewWarrior(f, k, id, hp, attack, city)
	w.Weapons = ws
	return w
}

func lastEvent(t *testing.T, st *State) Event {
	t.Helper()
	evs := st.Log.Sorted(1 << 30)
	require.NotEmpty(t, evs)
	return evs[len(evs)-1]
}

func TestFightStrikeOrder(t *testing.T) {
	tests := []struct {
		city int
		want Outcome
	}{
		{city: 1, want: RedWins},
		{city: 2, want: BlueWins},
		{city: 3, want: RedWins},
	}
	for _, tt := range tests {
		st := newArena(t, 3)
		red := deploy(st, armed(Red, Lion, 1, 6, 20, tt.city, arrow(2)))
		blue := deploy(st, armed(Blue, Lion, 1, 6, 20, tt.city, arrow(2)))

		got := st.fight(40, tt.city, red, blue)
		assert.Equal(t, tt.want, got, "city %d", tt.city)
	}
}

func TestFightKillLootsAndDespawns(t *testing.T) {
	st := newArena(t, 3)
	red := deploy(st, armed(Red, Ninja, 2, 20, 20, 1, NewWeapon(Blade)))
	blue := deploy(st, armed(Blue, Iceman, 4, 4, 20, 1, arrow(2), NewWeapon(Explosive)))

	out := st.fight(100, 1, red, blue)

	require.Equal(t, RedWins, out)
	assert.Equal(t, Event{T: 100, City: 1, Category: CatBattle,
		Text: "red ninja 2 killed blue iceman 4 in city 1 remaining 20 elements"}, lastEvent(t, st))
	assert.Equal(t, []WeaponKind{Blade, Explosive, Projectile}, kinds(red.Weapons))
	assert.Empty(t, st.Roster(Blue))
	assert.Empty(t, st.HQ[Blue].Spawned())
	_, b := st.Occupants(1)
	assert.Nil(t, b)
}

func TestFightDragonYellsOnKill(t *testing.T) {
	st := newArena(t, 3)
	red := deploy(st, armed(Red, Wolf, 3, 5, 10, 2))
	blue := deploy(st, armed(Blue, Dragon, 2, 30, 50, 2, NewWeapon(Blade)))

	out := st.fight(160, 2, red, blue)

	require.Equal(t, BlueWins, out)
	assert.Equal(t, "blue dragon 2 killed red wolf 3 in city 2 remaining 30 elements\n"+
		"002:40 blue dragon 2 yelled in city 2", lastEvent(t, st).Text)
}

func TestFightStalemateWithoutWeapons(t *testing.T) {
	st := newArena(t, 3)
	red := deploy(st, armed(Red, Dragon, 5, 10, 10, 3))
	blue := deploy(st, armed(Blue, Wolf, 5, 10, 10, 3))

	out := st.fight(40, 3, red, blue)

	require.Equal(t, Stalemate, out)
	assert.Equal(t, "both red dragon 5 and blue wolf 5 were alive in city 3\n"+
		"000:40 red dragon 5 yelled in city 3", lastEvent(t, st).Text)
	assert.Len(t, st.Roster(Red), 1)
	assert.Len(t, st.Roster(Blue), 1)
}

func TestFightStagnationEndsInStalemate(t *testing.T) {
	st := newArena(t, 3)
	// attack 4 makes every sword stroke deal 0
	red := deploy(st, armed(Red, Dragon, 1, 10, 4, 1, NewWeapon(Blade), NewWeapon(Blade)))
	blue := deploy(st, armed(Blue, Dragon, 1, 10, 4, 1, NewWeapon(Blade)))

	out := st.fight(40, 1, red, blue)

	require.Equal(t, Stalemate, out)
	assert.Equal(t, "both red dragon 1 and blue dragon 1 were alive in city 1\n"+
		"000:40 red dragon 1 yelled in city 1\n"+
		"000:40 blue dragon 1 yelled in city 1", lastEvent(t, st).Text)
	assert.Equal(t, 10, red.HP)
	assert.Equal(t, 10, blue.HP)
}

func TestFightRunsOutOfWeapons(t *testing.T) {
	st := newArena(t, 3)
	red := deploy(st, armed(Red, Lion, 1, 100, 10, 1, arrow(1)))
	blue := deploy(st, armed(Blue, Lion, 1, 100, 10, 1, arrow(1)))

	out := st.fight(40, 1, red, blue)

	require.Equal(t, Stalemate, out)
	assert.Equal(t, 97, red.HP)
	assert.Equal(t, 97, blue.HP)
	assert.Empty(t, red.Weapons)
	assert.Empty(t, blue.Weapons)
}

func TestFightBothDie(t *testing.T) {
	st := newArena(t, 3)
	red := deploy(st, armed(Red, Iceman, 1, 9, 20, 1, NewWeapon(Explosive)))
	blue := deploy(st, armed(Blue, Lion, 1, 10, 20, 1, NewWeapon(Explosive)))

	out := st.fight(40, 1, red, blue)

	require.Equal(t, BothDied, out)
	assert.Equal(t, "both red iceman 1 and blue lion 1 died in city 1", lastEvent(t, st).Text)
	assert.Empty(t, st.Roster(Red))
	assert.Empty(t, st.Roster(Blue))
}

func TestFightBombSelfKill(t *testing.T) {
	st := newArena(t, 3)
	// red strikes first in city 1 and its own bomb recoil finishes it
	red := deploy(st, armed(Red, Dragon, 1, 2, 20, 1, NewWeapon(Explosive)))
	blue := deploy(st, armed(Blue, Wolf, 1, 100, 20, 1))

	out := st.fight(40, 1, red, blue)

	require.Equal(t, BlueWins, out)
	assert.Equal(t, 92, blue.HP)
	assert.Empty(t, blue.Weapons, "nothing left to loot")
}
