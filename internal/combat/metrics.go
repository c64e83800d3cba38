package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "monster_world/internal/combat"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics counts simulation activity on the global OTel meter (no-op if no
// provider is installed). A nil *Metrics records nothing.
type Metrics struct {
	events  metric.Int64Counter
	fights  metric.Int64Counter
	spawned metric.Int64Counter
}

func NewMetrics() (*Metrics, error) {
	m := meter()
	var (
		mt  Metrics
		err error
	)

	mt.events, err = m.Int64Counter(
		"monsterworld.events.logged",
		metric.WithDescription("Events appended to the log"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	mt.fights, err = m.Int64Counter(
		"monsterworld.fights.resolved",
		metric.WithDescription("Fights resolved, by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fights counter: %w", err)
	}

	mt.spawned, err = m.Int64Counter(
		"monsterworld.warriors.spawned",
		metric.WithDescription("Warriors produced by a headquarters"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	return &mt, nil
}

func (m *Metrics) eventLogged(c Category) {
	if m == nil {
		return
	}
	m.events.Add(context.Background(), 1, metric.WithAttributes(attribute.String("category", c.String())))
}

func (m *Metrics) fightResolved(o Outcome) {
	if m == nil {
		return
	}
	m.fights.Add(context.Background(), 1, metric.WithAttributes(attribute.String("outcome", o.String())))
}

func (m *Metrics) warriorSpawned(f Faction) {
	if m == nil {
		return
	}
	m.spawned.Add(context.Background(), 1, metric.WithAttributes(attribute.String("faction", f.String())))
}
