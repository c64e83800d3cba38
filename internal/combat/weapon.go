package combat

type WeaponKind int

const (
	Blade WeaponKind = iota
	Explosive
	Projectile
)

var weaponNames = [...]string{"sword", "bomb", "arrow"}

func (k WeaponKind) String() string { return weaponNames[k] }

const projectileUses = 2

type Weapon struct {
	Kind       WeaponKind
	Durability int
}

func NewWeapon(kind WeaponKind) *Weapon {
	w := &Weapon{Kind: kind, Durability: 1}
	if kind == Projectile {
		w.Durability = projectileUses
	}
	return w
}

func (w *Weapon) Usable() bool { return w.Durability > 0 }

// Damage is the harm dealt by a wielder with the given attack power.
func (w *Weapon) Damage(attack int) int {
	switch w.Kind {
	case Blade:
		return attack * 2 / 10
	case Explosive:
		return attack * 4 / 10
	case Projectile:
		return attack * 3 / 10
	}
	return 0
}

// Use wears the weapon and reports whether it can still be used.
func (w *Weapon) Use() bool {
	switch w.Kind {
	case Explosive:
		w.Durability = 0
		return false
	case Projectile:
		w.Durability--
		return w.Durability > 0
	}
	return true
}
