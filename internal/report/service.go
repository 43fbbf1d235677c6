package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aevon-lab/ebs/internal/core/query"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Service runs aggregated reports over the event store.
type Service struct {
	executor     query.Executor
	defaults     query.Defaults
	queryTimeout time.Duration
}

// NewService creates a report service. A zero queryTimeout disables the per-request deadline.
func NewService(executor query.Executor, defaults query.Defaults, queryTimeout time.Duration) *Service {
	if executor == nil {
		panic("report: executor must not be nil")
	}
	return &Service{
		executor:     executor,
		defaults:     defaults,
		queryTimeout: queryTimeout,
	}
}

// RegisterRoutes registers the report service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/reports", s.ReportHandler)
}

// RunReport validates and compiles raw options, then runs the pipeline and the
// unfiltered event count concurrently. Compile errors are returned before the
// executor is touched; executor errors match query.ErrExecutor.
func (s *Service) RunReport(ctx context.Context, raw map[string]any) (*Response, error) {
	opts, err := query.ParseOptions(raw, s.defaults)
	if err != nil {
		return nil, err
	}
	pipeline, err := query.Compile(opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("[Report] Compiled pipeline", "pipeline", pipeline.String())

	var (
		grouped []query.GroupedRow
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.executor.Execute(gctx, pipeline)
		if err != nil {
			return fmt.Errorf("%w: execute pipeline: %w", query.ErrExecutor, err)
		}
		grouped = rows
		return nil
	})
	g.Go(func() error {
		n, err := s.executor.CountAll(gctx)
		if err != nil {
			return fmt.Errorf("%w: count events: %w", query.ErrExecutor, err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Response{
		Rows:       query.Normalize(grouped),
		Pagination: query.BuildPagination(opts, total),
	}, nil
}
