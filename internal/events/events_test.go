package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-craft/tilefill/pkg/fill"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return f.err
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNotifierPublishesCompletion(t *testing.T) {
	pub := &fakePublisher{}
	n := newNotifier(pub, "tilefill.fills", nil)
	n.now = func() time.Time { return fixedNow }

	n.FillFinished(fill.Report{
		JobID: "job-1",
		Kind:  "replace",
		Result: fill.Result{
			Plane:       fill.PlaneXY,
			Origin:      fill.Pos{X: 1, Y: 2, Z: 3},
			Target:      fill.Block{ID: 35, Data: 14},
			Replacement: fill.Stone,
			Tiles:       make([]fill.Pos, 7),
			Truncated:   true,
		},
		Elapsed: 1500 * time.Microsecond,
	})

	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "tilefill.fills", pub.subjects[0])

	var got Completion
	require.NoError(t, json.Unmarshal(pub.payloads[0], &got))
	assert.Equal(t, Completion{
		JobID:       "job-1",
		Kind:        "replace",
		Plane:       "xy",
		Origin:      [3]int{1, 2, 3},
		Target:      [2]int{35, 14},
		Replacement: [2]int{1, 0},
		Blocks:      7,
		Truncated:   true,
		ElapsedMS:   1.5,
		FinishedAt:  fixedNow,
	}, got)
}

func TestCompletionSkipped(t *testing.T) {
	c := NewCompletion(fill.Report{JobID: "j", Kind: "replace", Skipped: true}, fixedNow)

	assert.True(t, c.Skipped)
	assert.Empty(t, c.Plane)
	assert.Zero(t, c.Blocks)
}

func TestNotifierSwallowsPublishErrors(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	n := newNotifier(pub, "s", nil)

	assert.NotPanics(t, func() { n.FillFinished(fill.Report{JobID: "x"}) })
	assert.Len(t, pub.payloads, 1)
	n.Close()
}
