// Package status builds the liveness and diagnostic reports served by the
// bluegreen service.
package status

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jredh-dev/bluegreen/config"
)

// StatusUp is the only status a running process reports.
const StatusUp = "UP"

// ISO8601 matches JavaScript's Date.toISOString: UTC, milliseconds, Z suffix.
const ISO8601 = "2006-01-02T15:04:05.000Z"

// Health is the /health body.
type Health struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// Status is the /status body.
type Status struct {
	Status      string  `json:"status"`
	Environment string  `json:"environment"`
	Version     string  `json:"version"`
	Hostname    string  `json:"hostname"`
	Uptime      float64 `json:"uptime"`
	Timestamp   string  `json:"timestamp"`
	InstanceID  string  `json:"instance_id"`
}

// Reporter answers questions about this process. It is safe for concurrent
// use; nothing in it changes after New returns.
type Reporter struct {
	cfg        *config.Config
	started    time.Time
	instanceID string

	now      func() time.Time
	hostname func() (string, error)
}

// Option customizes a Reporter, mostly for tests.
type Option func(*Reporter)

// WithClock replaces time.Now. The start time is taken from it too.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) { r.now = now }
}

// WithHostname replaces os.Hostname.
func WithHostname(fn func() (string, error)) Option {
	return func(r *Reporter) { r.hostname = fn }
}

// New creates a Reporter whose uptime counts from now.
func New(cfg *config.Config, opts ...Option) *Reporter {
	r := &Reporter{
		cfg:        cfg,
		instanceID: uuid.New().String(),
		now:        time.Now,
		hostname:   os.Hostname,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.started = r.now()
	return r
}

// Config returns the configuration the reporter was built with.
func (r *Reporter) Config() *config.Config {
	return r.cfg
}

// InstanceID is a random ID minted once per process.
func (r *Reporter) InstanceID() string {
	return r.instanceID
}

// Now returns the reporter's current time.
func (r *Reporter) Now() time.Time {
	return r.now()
}

// Uptime is the time since the reporter was created. Never negative.
func (r *Reporter) Uptime() time.Duration {
	d := r.now().Sub(r.started)
	if d < 0 {
		return 0
	}
	return d
}

// Hostname asks the OS every time; the result is not cached.
func (r *Reporter) Hostname() (string, error) {
	h, err := r.hostname()
	if err != nil {
		return "", fmt.Errorf("resolve hostname: %w", err)
	}
	return h, nil
}

// Health builds the liveness report.
func (r *Reporter) Health() Health {
	return Health{
		Status:      StatusUp,
		Timestamp:   Timestamp(r.now()),
		Environment: r.cfg.Environment,
	}
}

// Status builds the diagnostic report.
func (r *Reporter) Status() (Status, error) {
	host, err := r.Hostname()
	if err != nil {
		return Status{}, err
	}
	return Status{
		Status:      StatusUp,
		Environment: r.cfg.Environment,
		Version:     r.cfg.Version,
		Hostname:    host,
		Uptime:      r.Uptime().Seconds(),
		Timestamp:   Timestamp(r.now()),
		InstanceID:  r.instanceID,
	}, nil
}

// Timestamp formats t as ISO-8601 in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(ISO8601)
}

// LocalTimestamp formats t the way the es-ES locale prints a date and time,
// e.g. "18/10/2026, 9:05:03".
func LocalTimestamp(t time.Time) string {
	// Go layouts have no unpadded 24-hour verb.
	return fmt.Sprintf("%d/%d/%d, %d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}
