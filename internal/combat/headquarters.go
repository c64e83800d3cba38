package combat

import "monster_world/internal/config"

// Headquarters spawns warriors for one faction from a shrinking pool.
type Headquarters struct {
	Faction Faction
	Life    int
	Home    int
	Order   []Kind
	Stopped bool // sticky once production could not be paid for
	Taken   bool

	cursor  int
	nextID  int
	spawned []int
	life    [5]int
	attack  [5]int
}

func NewHeadquarters(f Faction, sc *config.Scenario) *Headquarters {
	hq := &Headquarters{
		Faction: f,
		Life:    sc.Resources,
		nextID:  1,
		life:    sc.Life,
		attack:  sc.Attack,
	}
	order := sc.RedOrder
	if f == Blue {
		hq.Home = sc.Cities + 1
		order = sc.BlueOrder
	}
	for _, name := range order {
		if k, ok := KindByName(name); ok {
			hq.Order = append(hq.Order, k)
		}
	}
	return hq
}

// Produce pays for the next warrior in the cycle. It returns nil, and stops
// for good, the first time the pool cannot cover the cost.
func (hq *Headquarters) Produce() *Warrior {
	if hq.Stopped || len(hq.Order) == 0 {
		return nil
	}
	kind := hq.Order[hq.cursor]
	cost := hq.life[kind]
	if hq.Life < cost {
		hq.Stopped = true
		return nil
	}
	hq.Life -= cost
	w := NewWarrior(hq.Faction, kind, hq.nextID, cost, hq.attack[kind], hq.Home)
	if kind == Lion {
		w.Loyalty = hq.Life
	}
	hq.nextID++
	hq.cursor = (hq.cursor + 1) % len(hq.Order)
	hq.spawned = append(hq.spawned, w.ID)
	return w
}

// Spawned lists the ids this headquarters still tracks.
func (hq *Headquarters) Spawned() []int { return hq.spawned }

func (hq *Headquarters) forget(id int) {
	for i, s := range hq.spawned {
		if s == id {
			hq.spawned = append(hq.spawned[:i], hq.spawned[i+1:]...)
			return
		}
	}
}
