package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	v1 "github.com/aevon-lab/ebs/internal/api/v1"
	"github.com/aevon-lab/ebs/internal/core/storage"
	"golang.org/x/sync/errgroup"
)

// LoadStats reports the outcome of a Load.
type LoadStats struct {
	Inserted   int64
	Duplicates int64
}

// Load saves events with at most workers concurrent inserts. Duplicate ids
// are counted and skipped; any other store error cancels the remaining inserts.
func Load(ctx context.Context, store storage.EventStore, events []*v1.Event, workers int) (LoadStats, error) {
	if workers <= 0 {
		workers = 1
	}

	var inserted, duplicates atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, evt := range events {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			err := store.SaveEvent(gctx, evt)
			switch {
			case err == nil:
				inserted.Add(1)
			case errors.Is(err, storage.ErrDuplicate):
				duplicates.Add(1)
			default:
				return fmt.Errorf("save event %s: %w", evt.ID, err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	stats := LoadStats{Inserted: inserted.Load(), Duplicates: duplicates.Load()}
	if err != nil {
		return stats, err
	}

	slog.Info("[Seed] Loaded events",
		"inserted", stats.Inserted,
		"duplicates", stats.Duplicates,
		"workers", workers)
	return stats, nil
}
