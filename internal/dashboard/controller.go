package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"NobelDashboard/internal/chart"
	"NobelDashboard/internal/metrics"
	"NobelDashboard/internal/storage"

	"github.com/google/uuid"
)

// Output is what one cycle hands back to the page. Both figures are always
// present; either may be the placeholder.
type Output struct {
	Map       chart.Figure `json:"map"`
	Scatter   chart.Figure `json:"scatter"`
	Mutations []Outcome    `json:"mutations,omitempty"`
}

// Controller runs dashboard cycles: mutations, a fresh read, filtering and
// both charts. Cycles never overlap, whichever transport calls Run.
type Controller struct {
	mu        sync.Mutex
	store     storage.Store
	mutations *MutationHandler
	logger    *log.Logger
	metrics   *metrics.Recorder
}

func NewController(store storage.Store, logger *log.Logger, m *metrics.Recorder) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		store:     store,
		mutations: NewMutationHandler(store, logger, m),
		logger:    logger,
		metrics:   m,
	}
}

func (c *Controller) Run(ctx context.Context, in Input) (Output, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cycleID := uuid.New().String()
	start := time.Now()
	c.logger.Printf("Controller.Run(): cycle %s (clicks=%+v, selection=%+v)", cycleID, in.Counters, in.Selection)

	out, err := c.run(ctx, in)
	if err != nil {
		c.metrics.ObserveCycle("error", time.Since(start))
		c.logger.Printf("Controller.Run(): cycle %s failed: %v", cycleID, err)
		return Output{}, err
	}
	c.metrics.ObserveCycle("ok", time.Since(start))
	return out, nil
}

func (c *Controller) run(ctx context.Context, in Input) (Output, error) {
	var out Output
	for _, ev := range Plan(in) {
		outcome, err := c.mutations.Apply(ctx, ev)
		if err != nil {
			return Output{}, err
		}
		if ev.Kind != ControlChanged {
			out.Mutations = append(out.Mutations, outcome)
		}
	}

	records, err := c.store.FetchAll(ctx)
	if err != nil {
		return Output{}, fmt.Errorf("Controller.Run(): %w", err)
	}

	filtered := Filter(records, in.Selection)
	out.Map = chart.BuildMap(filtered)
	out.Scatter = chart.BuildScatter(filtered)
	return out, nil
}

// Ping checks that the shared store connection is still usable.
func (c *Controller) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
