package combat

import (
	"fmt"
	"slices"
)

// MaxWeapons is the inventory capacity; transfers beyond it destroy the excess.
const MaxWeapons = 10

type Warrior struct {
	ID      int
	Faction Faction
	Kind    Kind
	HP      int
	Attack  int
	City    int
	Loyalty int // lions only
	Weapons []*Weapon

	next int // round-robin cursor into Weapons
}

// NewWarrior builds a warrior with its variant's starting loadout.
func NewWarrior(f Faction, kind Kind, id, hp, attack, city int) *Warrior {
	w := &Warrior{ID: id, Faction: f, Kind: kind, HP: hp, Attack: attack, City: city}
	first := WeaponKind(id % 3)
	switch kind {
	case Dragon, Iceman, Lion:
		w.Weapons = []*Weapon{NewWeapon(first)}
	case Ninja:
		w.Weapons = []*Weapon{NewWeapon(first), NewWeapon(WeaponKind((id + 1) % 3))}
	case Wolf:
	}
	return w
}

func (w *Warrior) Ref() Ref { return Ref{Faction: w.Faction, ID: w.ID} }

// Label renders "red lion 2".
func (w *Warrior) Label() string {
	return fmt.Sprintf("%s %s %d", w.Faction, w.Kind, w.ID)
}

func (w *Warrior) Move() {
	if w.Faction == Red {
		w.City++
	} else {
		w.City--
	}
}

func (w *Warrior) AfterMove(loyaltyDecay int) {
	switch w.Kind {
	case Iceman:
		w.HP -= w.HP / 10
	case Lion:
		w.Loyalty -= loyaltyDecay
	case Dragon, Ninja, Wolf:
	}
}

// CheckEscape reports whether the warrior deserts. Only a lion away from
// both headquarters with no loyalty left does.
func (w *Warrior) CheckEscape(cities int) bool {
	switch w.Kind {
	case Lion:
		if w.City == 0 || w.City == cities+1 {
			return false
		}
		return w.Loyalty <= 0
	case Dragon, Ninja, Iceman, Wolf:
	}
	return false
}

// Plunder describes a pre-battle weapon theft.
type Plunder struct {
	Kind  WeaponKind
	Taken int
}

// BeforeBattle runs the variant's pre-battle action against enemy.
func (w *Warrior) BeforeBattle(enemy *Warrior) (Plunder, bool) {
	switch w.Kind {
	case Wolf:
		return w.steal(enemy)
	case Dragon, Ninja, Iceman, Lion:
	}
	return Plunder{}, false
}

// steal takes every weapon of the enemy's lowest kind, freshest arrows first.
func (w *Warrior) steal(enemy *Warrior) (Plunder, bool) {
	if enemy.Kind == Wolf || len(enemy.Weapons) == 0 {
		return Plunder{}, false
	}
	lowest := enemy.Weapons[0].Kind
	for _, wp := range enemy.Weapons {
		lowest = min(lowest, wp.Kind)
	}

	var stolen, kept []*Weapon
	for _, wp := range enemy.Weapons {
		if wp.Kind == lowest {
			stolen = append(stolen, wp)
		} else {
			kept = append(kept, wp)
		}
	}
	enemy.Weapons = kept
	slices.SortStableFunc(stolen, func(a, b *Weapon) int {
		if a.Kind == Projectile && b.Kind == Projectile {
			return b.Durability - a.Durability
		}
		return 0
	})

	p := Plunder{Kind: lowest, Taken: w.take(stolen)}
	w.SortWeapons()
	return p, true
}

// take appends weapons up to capacity and returns how many were kept.
func (w *Warrior) take(weapons []*Weapon) int {
	n := 0
	for _, wp := range weapons {
		if len(w.Weapons) >= MaxWeapons {
			continue
		}
		w.Weapons = append(w.Weapons, wp)
		n++
	}
	return n
}

// SortWeapons orders the inventory for battle, most worn arrows first, and
// rewinds the cursor.
func (w *Warrior) SortWeapons() {
	slices.SortStableFunc(w.Weapons, func(a, b *Weapon) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		if a.Kind == Projectile {
			return a.Durability - b.Durability
		}
		return 0
	})
	w.next = 0
}

func (w *Warrior) sortForLoot() {
	slices.SortStableFunc(w.Weapons, func(a, b *Weapon) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		if a.Kind == Projectile {
			return b.Durability - a.Durability
		}
		return 0
	})
}

// Loot strips the defeated warrior and keeps what fits.
func (w *Warrior) Loot(defeated *Warrior) int {
	defeated.sortForLoot()
	taken := w.take(defeated.Weapons)
	defeated.Weapons = nil
	w.SortWeapons()
	return taken
}

func (w *Warrior) HasUsableWeapon() bool {
	for _, wp := range w.Weapons {
		if wp.Usable() {
			return true
		}
	}
	return false
}

// Inventory renders the usable weapon counts, e.g. "1 sword 0 bomb 2 arrow".
func (w *Warrior) Inventory() string {
	var counts [len(weaponNames)]int
	for _, wp := range w.Weapons {
		if wp.Usable() {
			counts[wp.Kind]++
		}
	}
	return fmt.Sprintf("%d %s %d %s %d %s",
		counts[Blade], Blade, counts[Explosive], Explosive, counts[Projectile], Projectile)
}

func (w *Warrior) wound(dmg int) {
	w.HP = max(w.HP-dmg, 0)
}

// recoil is the share of an explosive's damage that hurts its wielder.
func (w *Warrior) recoil(dmg int) int {
	switch w.Kind {
	case Ninja:
		return 0
	case Dragon, Iceman, Lion, Wolf:
	}
	return dmg / 2
}

// strike hits target with the next usable weapon from the cursor onwards.
// It reports false when nothing could be used.
func (w *Warrior) strike(target *Warrior) bool {
	k := len(w.Weapons)
	for i := 0; i < k; i++ {
		idx := (w.next + i) % k
		wp := w.Weapons[idx]
		if !wp.Usable() {
			continue
		}
		dmg := wp.Damage(w.Attack)
		target.wound(dmg)
		if wp.Kind == Explosive {
			w.wound(w.recoil(dmg))
		}
		if !wp.Use() {
			w.Weapons = slices.Delete(w.Weapons, idx, idx+1)
		}
		w.next = (idx + 1) % k
		return true
	}
	return false
}
