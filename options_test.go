package eventsched

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/joeycumines/go-eventsched/fixtime"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveManagerOptions_defaults(t *testing.T) {
	cfg, err := resolveManagerOptions(nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg.clock)
	assert.Nil(t, cfg.locker)
	assert.Nil(t, cfg.logger)
	assert.Nil(t, cfg.hook)
	assert.False(t, cfg.metrics)
}

func TestResolveManagerOptions_nilOptionsSkipped(t *testing.T) {
	cfg, err := resolveManagerOptions([]Option{nil, WithMetrics(true), nil})
	require.NoError(t, err)
	assert.True(t, cfg.metrics)
}

func TestWithClock_nilRejected(t *testing.T) {
	_, err := resolveManagerOptions([]Option{WithClock(nil)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `clock`)
}

func TestWithPollInterval_validation(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		d    time.Duration
		err  bool
	}{
		{`positive`, 50 * time.Millisecond, false},
		{`zero`, 0, true},
		{`negative`, -time.Second, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := resolvePumpOptions([]PumpOption{WithPollInterval(tc.d)})
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.d, cfg.pollInterval)
		})
	}
}

func TestResolvePumpOptions_defaults(t *testing.T) {
	cfg, err := resolvePumpOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, cfg.pollInterval)
	assert.Nil(t, cfg.logger)
}

// newTestLogger returns a debug-level logger writing JSON lines to buf.
func newTestLogger(buf *bytes.Buffer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(buf),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()
}

func TestWithLogger_scheduleTrace(t *testing.T) {
	var buf bytes.Buffer
	m, _ := newTestManager(t, WithLogger(newTestLogger(&buf)))

	id := m.Schedule(10*fixtime.Second, func(any, ID) {}, nil)
	m.Cancel(id)
	m.Schedule(fixtime.Second, func(any, ID) {}, nil)
	m.Process(fixtime.Second)

	out := buf.String()
	for _, want := range [...]string{
		`event scheduled`,
		`event cancelled`,
		`event fired`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf(`log output missing %q: %s`, want, out)
		}
	}
}
