package scope

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func run(mode Mode, fail bool, calls *int) (err error) {
	fn := func() { *calls++ }
	var g *Guard
	switch mode {
	case Exit:
		g = Always(fn)
	case Success:
		g = OnSuccess(&err, fn)
	case Failure:
		g = OnFailure(&err, fn)
	}
	defer g.Run()
	if fail {
		return errBoom
	}
	return nil
}

func TestGuardModes(t *testing.T) {
	cases := []struct {
		mode Mode
		fail bool
		want int
	}{
		{Exit, false, 1},
		{Exit, true, 1},
		{Success, false, 1},
		{Success, true, 0},
		{Failure, false, 0},
		{Failure, true, 1},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			calls := 0
			err := run(tc.mode, tc.fail, &calls)
			assert.Equal(t, tc.fail, err != nil)
			assert.Equal(t, tc.want, calls, "fail=%v", tc.fail)
		})
	}
}

func TestGuardSeesPanicAsFailure(t *testing.T) {
	var failed, succeeded, always bool
	func() {
		defer func() {
			r := recover()
			assert.Equal(t, "kaboom", r, "panic must be re-raised")
		}()
		var err error
		defer OnSuccess(&err, func() { succeeded = true }).Run()
		defer OnFailure(&err, func() { failed = true }).Run()
		defer Always(func() { always = true }).Run()
		panic("kaboom")
	}()
	assert.True(t, failed)
	assert.True(t, always)
	assert.False(t, succeeded)
}

func TestGuardDismissAndRunOnce(t *testing.T) {
	calls := 0
	func() {
		g := Always(func() { calls++ })
		defer g.Run()
		g.Dismiss()
	}()
	assert.Equal(t, 0, calls)

	g := Always(func() { calls++ })
	g.Run()
	g.Run()
	assert.Equal(t, 1, calls)
}

func TestMeasureTimeLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	stop := MeasureTime(logger, "load")
	time.Sleep(2 * time.Millisecond)
	elapsed := stop()

	require.GreaterOrEqual(t, elapsed, 2*time.Millisecond)
	assert.Contains(t, buf.String(), "scope=load")
	assert.Contains(t, buf.String(), "scope timing")
}
