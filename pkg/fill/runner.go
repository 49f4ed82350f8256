package fill

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Report describes a job finished by a Runner.
type Report struct {
	JobID   string
	Kind    string // "fill" or "replace"
	Result  Result
	Elapsed time.Duration

	// Skipped is set for a replace whose face did not map to a plane.
	Skipped bool
}

// Observer is told about every job a Runner executes. Calls come from the
// job's goroutine.
type Observer interface {
	FillStarted(jobID string)
	FillFinished(r Report)
}

// Runner executes fills off the caller's goroutine. Jobs are fire and
// forget: the caller gets a job id for correlating logs, never a result,
// and a started job cannot be cancelled. Jobs are not synchronised with
// each other, so overlapping fills may interleave.
type Runner struct {
	world     World
	log       *slog.Logger
	defaults  []Option
	observers []Observer

	wg sync.WaitGroup
}

// NewRunner creates a Runner. defaults are applied before the options of
// every job, so jobs can still override them.
func NewRunner(w World, log *slog.Logger, defaults []Option, observers ...Observer) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		world:     w,
		log:       log,
		defaults:  defaults,
		observers: observers,
	}
}

// Fill schedules Fill on its own goroutine and returns the job id.
func (r *Runner) Fill(plane Plane, origin Pos, opts ...Option) string {
	return r.start("fill", func(opts []Option) (Result, bool) {
		return Fill(r.world, plane, origin, opts...), true
	}, opts)
}

// Replace schedules Replace on its own goroutine and returns the job id.
func (r *Runner) Replace(in Interaction, opts ...Option) string {
	return r.start("replace", func(opts []Option) (Result, bool) {
		return Replace(r.world, in, opts...)
	}, opts)
}

// Wait blocks until every job started so far has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) start(kind string, run func([]Option) (Result, bool), opts []Option) string {
	id := uuid.NewString()
	all := make([]Option, 0, len(r.defaults)+len(opts))
	all = append(all, r.defaults...)
	all = append(all, opts...)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for _, o := range r.observers {
			o.FillStarted(id)
		}

		began := time.Now()
		res, ok := run(all)
		rep := Report{
			JobID:   id,
			Kind:    kind,
			Result:  res,
			Elapsed: time.Since(began),
			Skipped: !ok,
		}

		log := r.log.With("job", id, "kind", kind)
		if ok {
			log.Info("fill finished",
				"plane", res.Plane,
				"origin", res.Origin,
				"target", res.Target,
				"replacement", res.Replacement,
				"blocks", res.Count(),
				"truncated", res.Truncated,
				"elapsed", rep.Elapsed,
			)
		} else {
			log.Warn("fill skipped, face has no plane")
		}

		for _, o := range r.observers {
			o.FillFinished(rep)
		}
	}()
	return id
}
