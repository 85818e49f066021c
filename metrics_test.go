package eventsched

import (
	"testing"

	"github.com/joeycumines/go-eventsched/fixtime"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_nilReceiver(t *testing.T) {
	var m *Metrics
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())
	// recorders must be nil-safe; Manager calls them unconditionally
	m.recordScheduled(1)
	m.recordCancelled(true)
	m.recordFired(fixtime.Second)
}

func TestMetrics_managerCounters(t *testing.T) {
	m, _ := newTestManager(t, WithMetrics(true))

	id1 := m.Schedule(10*fixtime.Second, func(any, ID) {}, nil)
	m.Schedule(20*fixtime.Second, func(any, ID) {}, nil)
	m.Schedule(30*fixtime.Second, func(any, ID) {}, nil)

	m.Cancel(id1)
	m.Cancel(999)

	m.Process(25 * fixtime.Second) // fires t=20 (5s late), leaves t=30

	snap := m.Metrics()
	assert.Equal(t, int64(3), snap.Scheduled)
	assert.Equal(t, int64(1), snap.Cancelled)
	assert.Equal(t, int64(1), snap.CancelMisses)
	assert.Equal(t, int64(1), snap.Fired)
	assert.Equal(t, int64(3), snap.PendingHighWater)
	assert.Equal(t, 5*fixtime.Second, snap.MaxLateness)
}

func TestMetrics_disabledByDefault(t *testing.T) {
	m, _ := newTestManager(t)
	m.Schedule(fixtime.Second, func(any, ID) {}, nil)
	m.Process(fixtime.Second)
	assert.Equal(t, MetricsSnapshot{}, m.Metrics())
}

func TestMetrics_latenessNeverNegative(t *testing.T) {
	var metrics Metrics
	metrics.recordFired(-fixtime.Second) // fired exactly on an early pass
	metrics.recordFired(0)
	assert.Equal(t, fixtime.Time(0), metrics.Snapshot().MaxLateness)

	metrics.recordFired(3 * fixtime.Second)
	metrics.recordFired(fixtime.Second) // smaller, does not regress the max
	assert.Equal(t, 3*fixtime.Second, metrics.Snapshot().MaxLateness)
}
