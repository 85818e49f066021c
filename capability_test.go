package eventsched

import (
	"testing"

	"github.com/joeycumines/go-eventsched/fixtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapability_Valid(t *testing.T) {
	assert.False(t, Capability{}.Valid())

	m, _ := newTestManager(t)
	c := m.Capability()
	require.True(t, c.Valid())

	for _, tc := range [...]struct {
		name string
		mod  func(*Capability)
	}{
		{`missing now`, func(c *Capability) { c.Now = nil }},
		{`missing schedule`, func(c *Capability) { c.Schedule = nil }},
		{`missing cancel`, func(c *Capability) { c.Cancel = nil }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := m.Capability()
			tc.mod(&c)
			assert.False(t, c.Valid())
		})
	}
}

func TestCapability_boundToManager(t *testing.T) {
	m, clock := newTestManager(t)
	clock.Set(7 * fixtime.Second)

	c := m.Capability()
	assert.Equal(t, 7*fixtime.Second, c.Now())

	var fired []ID
	id := c.Schedule(10*fixtime.Second, func(_ any, id ID) {
		fired = append(fired, id)
	}, nil)
	require.NotZero(t, id)
	assert.Equal(t, 1, m.Len())

	other := c.Schedule(20*fixtime.Second, func(any, ID) {}, nil)
	assert.True(t, c.Cancel(other))
	assert.False(t, c.Cancel(other))

	require.Equal(t, 1, m.Process(10*fixtime.Second))
	assert.Equal(t, []ID{id}, fired)
}
