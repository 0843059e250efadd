package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Job is a named periodic refresh task. Failures are logged and retried on
// the next tick; the serving side keeps its fallback or last-good data.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Refresher struct {
	jobs []Job
	// mu guards sched: the ctx-cancel goroutine and the caller's own
	// deferred Shutdown may both reach it.
	mu    sync.Mutex
	sched gocron.Scheduler
}

func NewRefresher(jobs ...Job) *Refresher {
	return &Refresher{jobs: jobs}
}

func (r *Refresher) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.sched = scheduler
	r.mu.Unlock()

	for _, job := range r.jobs {
		job := job
		task := func(jobCtx context.Context) {
			execID := uuid.NewString()
			if runErr := job.Run(jobCtx); runErr != nil {
				logrus.Warnf("Refresh job %q %s failed: %v", job.Name, execID, runErr)
				return
			}
			logrus.Debugf("Refresh job %q %s completed", job.Name, execID)
		}

		_, err = scheduler.NewJob(
			gocron.DurationJob(job.Interval),
			gocron.NewTask(task),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return err
		}
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := r.Shutdown(); sdErr != nil {
			logrus.Errorf("Refresher shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (r *Refresher) Shutdown() error {
	r.mu.Lock()
	sched := r.sched
	r.sched = nil
	r.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (r *Refresher) active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sched != nil
}
