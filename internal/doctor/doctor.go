package doctor

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/teemow/gdrive/internal/config"
	"github.com/teemow/gdrive/internal/google"
	"github.com/teemow/gdrive/internal/outfmt"
)

// Check statuses. A warn is informational and never fails the run.
const (
	StatusOK   = "ok"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// ErrChecksFailed is returned by Run after all checks have executed when at
// least one of them failed.
var ErrChecksFailed = errors.New("one or more checks failed")

// Check is the outcome of a single diagnostic.
type Check struct {
	Name   string
	Status string
	Detail string
}

// Runner executes the diagnostic checks in order, continuing past failures
// so one run surfaces every problem. The collaborator funcs are injectable
// for tests; NewRunner wires the real ones.
type Runner struct {
	Config config.Config

	StoredInfo      func() (*google.StoredInfo, error)
	LoadCredentials func(ctx context.Context) error
	SampleList      func(ctx context.Context) (int, error)
}

// Run executes all checks and returns their results. The error is
// ErrChecksFailed when any check failed, nil otherwise.
func (r *Runner) Run(ctx context.Context) ([]Check, error) {
	var checks []Check
	failed := false

	checks = append(checks, Check{
		Name:   "go-runtime",
		Status: StatusOK,
		Detail: runtime.Version(),
	})

	checks = append(checks, Check{
		Name:   "credentials-path",
		Status: StatusOK,
		Detail: r.Config.CredentialsFile,
	})

	info, err := r.StoredInfo()
	switch {
	case err != nil:
		checks = append(checks, Check{Name: "stored-credentials", Status: StatusFail, Detail: err.Error()})
		failed = true
	case info == nil:
		checks = append(checks, Check{
			Name:   "stored-credentials",
			Status: StatusWarn,
			Detail: fmt.Sprintf("not found at %s (run `gdrive auth login` to create)", r.Config.CredentialsFile),
		})
	default:
		checks = append(checks, Check{Name: "stored-credentials", Status: StatusOK, Detail: info.Path})
	}

	if err := r.LoadCredentials(ctx); err != nil {
		checks = append(checks, Check{Name: "auth-refresh", Status: StatusFail, Detail: err.Error()})
		failed = true
	} else {
		checks = append(checks, Check{
			Name:   "auth-refresh",
			Status: StatusOK,
			Detail: "credentials load and refresh succeeded",
		})
	}

	if count, err := r.SampleList(ctx); err != nil {
		checks = append(checks, Check{Name: "api-connectivity", Status: StatusFail, Detail: err.Error()})
		failed = true
	} else {
		checks = append(checks, Check{
			Name:   "api-connectivity",
			Status: StatusOK,
			Detail: fmt.Sprintf("files.list succeeded (%d file(s) sampled)", count),
		})
	}

	if failed {
		return checks, ErrChecksFailed
	}
	return checks, nil
}

// Records converts check results into renderable records.
func Records(checks []Check) []outfmt.Record {
	records := make([]outfmt.Record, len(checks))
	for i, check := range checks {
		records[i] = outfmt.Record{
			{Key: "check", Value: check.Name},
			{Key: "status", Value: check.Status},
			{Key: "detail", Value: check.Detail},
		}
	}
	return records
}
