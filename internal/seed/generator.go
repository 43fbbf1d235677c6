package seed

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	v1 "github.com/aevon-lab/ebs/internal/api/v1"
	"github.com/google/uuid"
)

const (
	categoryCount = 32
	clientCount   = 128

	minDimensionID = 100
	maxDimensionID = 1000
	minGroupID     = 10
	maxGroupID     = 20

	// validWeight out of 10 events are valid.
	validWeight = 8
)

// deviceWeights is the relative frequency of each device type; nil is an unknown device.
var deviceWeights = []struct {
	device *string
	weight int
}{
	{strPtr("desktop"), 3},
	{strPtr("mobile"), 4},
	{strPtr("tablet"), 2},
	{nil, 1},
}

// Generator produces random events over a fixed set of clients and categories.
// It is not safe for concurrent use.
type Generator struct {
	rng          *rand.Rand
	today        time.Time
	devices      []*string
	categories   []*int64
	clients      []int64
	clientGroups map[int64]int64
}

// NewGenerator draws the category and client pools from rng. Events are
// generated for the days before today's UTC midnight.
func NewGenerator(rng *rand.Rand, today time.Time) *Generator {
	g := &Generator{
		rng:          rng,
		today:        midnightUTC(today),
		clientGroups: make(map[int64]int64, clientCount),
	}

	for _, dw := range deviceWeights {
		for i := 0; i < dw.weight; i++ {
			g.devices = append(g.devices, dw.device)
		}
	}

	for i := 0; i < categoryCount; i++ {
		category := g.between(minDimensionID, maxDimensionID)
		g.categories = append(g.categories, &category)
	}
	g.categories = append(g.categories, nil)

	for i := 0; i < clientCount; i++ {
		client := g.between(minDimensionID, maxDimensionID)
		g.clients = append(g.clients, client)
		if _, ok := g.clientGroups[client]; !ok {
			g.clientGroups[client] = g.between(minGroupID, maxGroupID)
		}
	}

	return g
}

// ClientGroup returns the group a generated client belongs to.
func (g *Generator) ClientGroup(client int64) (int64, bool) {
	group, ok := g.clientGroups[client]
	return group, ok
}

// Event generates one event at ts.
func (g *Generator) Event(ts time.Time) (*v1.Event, error) {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return nil, fmt.Errorf("generate event id: %w", err)
	}

	client := g.clients[g.rng.Intn(len(g.clients))]

	return &v1.Event{
		ID:          id.String(),
		DeviceType:  g.devices[g.rng.Intn(len(g.devices))],
		Category:    g.categories[g.rng.Intn(len(g.categories))],
		Client:      client,
		ClientGroup: g.clientGroups[client],
		Timestamp:   ts.UTC(),
		Valid:       g.rng.Intn(10) < validWeight,
		Value:       math.Round(g.rng.Float64()*100*100) / 100,
	}, nil
}

// Events generates events for each of the given number of days before today.
// Each day gets between 80% and 120% of perDay events (rounded up) with
// timestamps in ascending order.
func (g *Generator) Events(days, perDay int) ([]*v1.Event, error) {
	var events []*v1.Event
	for d := -days; d < 0; d++ {
		start := g.today.AddDate(0, 0, d)
		count := int(math.Ceil(float64(8+g.rng.Intn(5)) / 10 * float64(perDay)))

		for _, ts := range g.timestamps(start, start.AddDate(0, 0, 1), count) {
			evt, err := g.Event(ts)
			if err != nil {
				return nil, err
			}
			events = append(events, evt)
		}
	}
	return events, nil
}

// timestamps returns count sorted instants in [start, end).
func (g *Generator) timestamps(start, end time.Time, count int) []time.Time {
	span := end.Sub(start)
	out := make([]time.Time, count)
	for i := range out {
		out[i] = start.Add(time.Duration(g.rng.Float64() * float64(span)))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int64 {
	return int64(lo + g.rng.Intn(hi-lo+1))
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }
