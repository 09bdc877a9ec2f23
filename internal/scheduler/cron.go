package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// CronTimer is the production Timer backed by robfig/cron. It accepts
// standard five-field cron expressions; each firing runs on the cron
// goroutine pool without blocking other entries.
type CronTimer struct {
	cron *cron.Cron
}

// NewCronTimer creates a CronTimer evaluating expressions in the named
// timezone ("" or "Local" for the system zone).
func NewCronTimer(timezone string) (*CronTimer, error) {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
		}
	}
	return &CronTimer{cron: cron.New(cron.WithLocation(loc))}, nil
}

// AddFunc implements Timer.
func (t *CronTimer) AddFunc(spec string, cmd func()) error {
	_, err := t.cron.AddFunc(spec, cmd)
	return err
}

// Start implements Timer.
func (t *CronTimer) Start() {
	t.cron.Start()
}

// Stop implements Timer. It does not wait for in-flight callbacks.
func (t *CronTimer) Stop() {
	t.cron.Stop()
}
