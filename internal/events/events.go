// Package events publishes a message for every finished fill so other
// processes (renderers, replays, audit logs) can follow world edits.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	nats "github.com/nats-io/nats.go"

	"github.com/go-theft-craft/tilefill/pkg/fill"
)

// Completion is the JSON payload published per finished job.
type Completion struct {
	JobID       string    `json:"job_id"`
	Kind        string    `json:"kind"`
	Skipped     bool      `json:"skipped,omitempty"`
	Plane       string    `json:"plane,omitempty"`
	Origin      [3]int    `json:"origin"`
	Target      [2]int    `json:"target"`
	Replacement [2]int    `json:"replacement"`
	Blocks      int       `json:"blocks"`
	Truncated   bool      `json:"truncated,omitempty"`
	ElapsedMS   float64   `json:"elapsed_ms"`
	FinishedAt  time.Time `json:"finished_at"`
}

// NewCompletion converts a runner report.
func NewCompletion(r fill.Report, now time.Time) Completion {
	c := Completion{
		JobID:      r.JobID,
		Kind:       r.Kind,
		Skipped:    r.Skipped,
		ElapsedMS:  float64(r.Elapsed.Microseconds()) / 1000,
		FinishedAt: now.UTC(),
	}
	if r.Skipped {
		return c
	}
	res := r.Result
	c.Plane = res.Plane.String()
	c.Origin = [3]int{res.Origin.X, res.Origin.Y, res.Origin.Z}
	c.Target = [2]int{res.Target.ID, res.Target.Data}
	c.Replacement = [2]int{res.Replacement.ID, res.Replacement.Data}
	c.Blocks = res.Count()
	c.Truncated = res.Truncated
	return c
}

type publisher interface {
	Publish(subject string, data []byte) error
}

// Notifier publishes a Completion per finished job. It implements
// fill.Observer; publish failures are logged and dropped.
type Notifier struct {
	pub     publisher
	subject string
	log     *slog.Logger
	now     func() time.Time
	close   func()
}

// ConnectNATS dials url and returns a Notifier publishing on subject.
func ConnectNATS(url, subject string, log *slog.Logger) (*Notifier, error) {
	nc, err := nats.Connect(url, nats.Name("tilefill"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	n := newNotifier(nc, subject, log)
	n.close = func() {
		if err := nc.Drain(); err != nil {
			n.log.Warn("nats drain", "error", err)
		}
	}
	return n, nil
}

func newNotifier(pub publisher, subject string, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{pub: pub, subject: subject, log: log, now: time.Now}
}

func (n *Notifier) FillStarted(string) {}

func (n *Notifier) FillFinished(r fill.Report) {
	data, err := json.Marshal(NewCompletion(r, n.now()))
	if err != nil {
		n.log.Error("marshal completion", "job", r.JobID, "error", err)
		return
	}
	if err := n.pub.Publish(n.subject, data); err != nil {
		n.log.Warn("publish completion", "job", r.JobID, "subject", n.subject, "error", err)
	}
}

// Close flushes pending messages and closes the connection.
func (n *Notifier) Close() {
	if n.close != nil {
		n.close()
	}
}
