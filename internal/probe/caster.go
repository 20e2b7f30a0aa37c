package probe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/logging"
)

var (
	// ErrNoTargets indicates a cast against an empty scene.
	ErrNoTargets = errors.New("probe: no targets")

	// ErrZeroDirection indicates a ray whose direction has no length.
	ErrZeroDirection = errors.New("probe: ray direction is zero")
)

// RayError reports which ray of a batch failed.
type RayError struct {
	Index   int
	Wrapped error
}

func (e *RayError) Error() string {
	return fmt.Sprintf("ray %d: %v", e.Index, e.Wrapped)
}

func (e *RayError) Unwrap() error {
	return e.Wrapped
}

// Hit is the nearest target a ray meets in front of its origin.
type Hit struct {
	Target   string      `json:"target"`
	Point    geom.Point3 `json:"point"`
	Distance float64     `json:"distance"`
}

// Result pairs a ray with its hit. Hit is nil on a miss.
type Result struct {
	Ray geom.Ray `json:"ray"`
	Hit *Hit     `json:"hit,omitempty"`
}

// Caster tests batches of rays against a fixed set of targets. Targets are
// pure values, so workers share them without locking.
type Caster struct {
	targets []Target
	workers int
	log     *logging.Logger
}

type Option func(*Caster)

// WithWorkers bounds the number of concurrent ray tests. Values below 1 use
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Caster) { c.workers = n }
}

func WithLogger(l *logging.Logger) Option {
	return func(c *Caster) { c.log = l }
}

func NewCaster(targets []Target, opts ...Option) *Caster {
	c := &Caster{targets: targets, log: logging.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	return c
}

func (c *Caster) Targets() []Target { return c.targets }

// Nearest returns the closest hit of a single ray.
func (c *Caster) Nearest(ray geom.Ray) (*Hit, error) {
	if len(c.targets) == 0 {
		return nil, ErrNoTargets
	}
	dirLen := ray.Direction.Length()
	if dirLen == 0 {
		return nil, ErrZeroDirection
	}

	var best *Hit
	for _, t := range c.targets {
		p, ok := t.Intersect(ray)
		if !ok {
			continue
		}
		along := p.Sub(ray.Origin).Dot(ray.Direction) / dirLen
		if along < 0 {
			continue
		}
		if best == nil || along < best.Distance {
			best = &Hit{Target: t.Name(), Point: p, Distance: along}
		}
	}
	return best, nil
}

// Cast tests every ray and returns results in input order. The first failing
// ray or a cancelled context stops the batch.
func (c *Caster) Cast(ctx context.Context, rays []geom.Ray) ([]Result, error) {
	if len(c.targets) == 0 {
		return nil, ErrNoTargets
	}
	start := time.Now()
	results := make([]Result, len(rays))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, ray := range rays {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hit, err := c.Nearest(ray)
			if err != nil {
				return &RayError{Index: i, Wrapped: err}
			}
			results[i] = Result{Ray: ray, Hit: hit}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.log.Debug("cast complete",
		logging.Int("rays", len(rays)),
		logging.Int("targets", len(c.targets)),
		logging.Int("hits", CountHits(results)),
		logging.Duration("took", time.Since(start)),
	)
	return results, nil
}

func CountHits(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Hit != nil {
			n++
		}
	}
	return n
}

// Distances lists hit distances in result order with NaN for misses.
func Distances(results []Result) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		if r.Hit == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = r.Hit.Distance
	}
	return out
}
