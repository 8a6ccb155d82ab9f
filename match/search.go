package match

import (
	"fmt"
	"time"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/internal/parallel"
)

// NotFound is the center reported when no candidate was feasible.
var NotFound = pixelgraft.Point{X: -1, Y: -1}

// Result is the outcome of a block search.
type Result struct {
	// Center is the center of the best block in the second buffer.
	Center pixelgraft.Point

	// Offset is Center minus the query center: the alignment offset from
	// the first buffer to the second.
	Offset pixelgraft.Point

	// Score is the winning mismatch count, or InfeasibleScore.
	Score int

	// Found is false when every candidate was infeasible.
	Found bool
}

// Err returns pixelgraft.ErrNoMatch when the search found nothing.
func (r Result) Err() error {
	if r.Found {
		return nil
	}
	return pixelgraft.ErrNoMatch
}

// Matcher runs block searches with a fixed configuration.
type Matcher struct {
	cfg Config
}

// New creates a Matcher. The configuration is validated.
func New(cfg Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{cfg: cfg}, nil
}

// Config returns the matcher configuration.
func (m *Matcher) Config() Config { return m.cfg }

// Match is a convenience for searching without building a Matcher.
// An invalid configuration yields a not-found result.
func Match(a, b *pixelgraft.Buffer, center pixelgraft.Point, cfg Config) Result {
	m, err := New(cfg)
	if err != nil {
		pixelgraft.Component("match").Warn("match rejected", "err", err)
		return notFound()
	}
	return m.Match(a, b, center)
}

// Match searches b for the block of a centred at center.
//
// The block's top-left in a is center - BlockSize/2. Candidate top-lefts in
// b are that point plus every (dx, dy) with |dx| <= RangeX, |dy| <= RangeY.
// The reported Center is the winning top-left plus BlockSize/2.
func (m *Matcher) Match(a, b *pixelgraft.Buffer, center pixelgraft.Point) Result {
	start := time.Now()
	cfg := m.cfg
	half := cfg.BlockSize / 2
	anchor := center.Sub(pixelgraft.Pt(half, half))

	cols := 2*cfg.RangeX + 1
	rows := 2*cfg.RangeY + 1
	scores := make([]Score, rows*cols)

	// Every candidate's score lands in its own slot, so the reduction below
	// is independent of scheduling.
	parallel.ForBands(len(scores), cfg.Workers, func(band parallel.Band) {
		for i := band.Start; i < band.End; i++ {
			dy := i/cols - cfg.RangeY
			dx := i%cols - cfg.RangeX
			candidate := anchor.Add(pixelgraft.Pt(dx, dy))
			scores[i] = ScoreBlock(a, b, anchor, candidate, cfg)
		}
	})

	best, bestIdx := InfeasibleScore, -1
	for i, s := range scores {
		if !s.Feasible {
			continue
		}
		if bestIdx < 0 || s.Mismatch() < best {
			best, bestIdx = s.Mismatch(), i
		}
	}

	if bestIdx < 0 {
		pixelgraft.Component("match").Debug("match not found", "center", center, "elapsed", time.Since(start))
		return notFound()
	}

	dy := bestIdx/cols - cfg.RangeY
	dx := bestIdx%cols - cfg.RangeX
	winner := anchor.Add(pixelgraft.Pt(dx, dy)).Add(pixelgraft.Pt(half, half))
	res := Result{
		Center: winner,
		Offset: pixelgraft.OffsetBetween(center, winner),
		Score:  best,
		Found:  true,
	}
	pixelgraft.Component("match").Debug("match found",
		"center", center, "match", res.Center, "score", res.Score,
		"candidates", len(scores), "elapsed", time.Since(start))
	return res
}

func notFound() Result {
	return Result{Center: NotFound, Score: InfeasibleScore}
}

// String formats the result for logs and reports.
func (r Result) String() string {
	if !r.Found {
		return "no match"
	}
	return fmt.Sprintf("match at %v offset %v score %d", r.Center, r.Offset, r.Score)
}
