package combat

import "monster_world/internal/config"

type Faction int

const (
	Red Faction = iota
	Blue
)

func (f Faction) String() string {
	if f == Red {
		return "red"
	}
	return "blue"
}

func (f Faction) Opponent() Faction { return 1 - f }

// Kind is a warrior variant. The numeric order matches the life and attack
// tables of a scenario.
type Kind int

const (
	Dragon Kind = iota
	Ninja
	Iceman
	Lion
	Wolf
)

func (k Kind) String() string { return config.Variants[k] }

// KindByName resolves a variant name from a production order.
func KindByName(name string) (Kind, bool) {
	i := config.VariantIndex(name)
	return Kind(i), i >= 0
}

// Category orders events that share a timestamp.
type Category int

const (
	CatBirth     Category = 0
	CatEscape    Category = 1
	CatMarch     Category = 2
	CatSteal     Category = 4
	CatBattle    Category = 5
	CatTreasury  Category = 8
	CatInventory Category = 9
)

func (c Category) String() string {
	switch c {
	case CatBirth:
		return "birth"
	case CatEscape:
		return "escape"
	case CatMarch:
		return "march"
	case CatSteal:
		return "steal"
	case CatBattle:
		return "battle"
	case CatTreasury:
		return "treasury"
	case CatInventory:
		return "inventory"
	}
	return "unknown"
}

type Event struct {
	T        int      `json:"t"`
	City     int      `json:"city"`
	Category Category `json:"category"`
	Text     string   `json:"text"`
}
