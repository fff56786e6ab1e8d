package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastcore/vast/pkg/vasterr"
)

func TestInsertAndEqualRange(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-1", Handle: 1}))
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-2", Handle: 2}))
	require.NoError(t, r.Insert(Component{Type: "sink", Label: "sink", Handle: 3}))

	sources := r.EqualRange("source")
	require.Len(t, sources, 2)
	assert.Equal(t, "source-1", sources[0].Label)
	assert.Equal(t, "source-2", sources[1].Label)

	assert.Len(t, r.EqualRange("sink"), 1)
	assert.Empty(t, r.EqualRange("nonexistent"))
	assert.Equal(t, 3, r.Count())
}

func TestSingletonTypeRejectsSecondInsert(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "archive", Label: "archive", Handle: 1}))
	err := r.Insert(Component{Type: "archive", Label: "archive", Handle: 2})
	require.Error(t, err)
	verr, ok := err.(*vasterr.Error)
	require.True(t, ok)
	assert.Equal(t, vasterr.AlreadyExists, verr.Kind)
	assert.Len(t, r.EqualRange("archive"), 1)
}

func TestNonSingletonTypeAllowsMultiple(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-1", Handle: 1}))
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-2", Handle: 2}))
	assert.Len(t, r.EqualRange("source"), 2)
}

func TestEraseByHandle(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-1", Handle: 1}))
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-2", Handle: 2}))

	r.Erase(1)
	sources := r.EqualRange("source")
	require.Len(t, sources, 1)
	assert.Equal(t, "source-2", sources[0].Label)

	// erasing a handle that isn't registered is a no-op
	r.Erase(999)
	assert.Len(t, r.EqualRange("source"), 1)
}

func TestEraseRemovesEmptyType(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "archive", Label: "archive", Handle: 1}))
	r.Erase(1)
	assert.Empty(t, r.EqualRange("archive"))
	assert.Equal(t, 0, r.Count())

	// singleton slot should be free again after erase
	require.NoError(t, r.Insert(Component{Type: "archive", Label: "archive", Handle: 2}))
}

func TestByLabel(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-1", Handle: 1}))
	require.NoError(t, r.Insert(Component{Type: "exporter", Label: "exporter-1", Handle: 2}))

	c, ok := r.ByLabel("exporter-1")
	require.True(t, ok)
	assert.Equal(t, "exporter", c.Type)

	_, ok = r.ByLabel("missing")
	assert.False(t, ok)
}

func TestAllVisitsEveryComponent(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-1", Handle: 1}))
	require.NoError(t, r.Insert(Component{Type: "sink", Label: "sink", Handle: 2}))

	seen := map[string]bool{}
	r.All(func(c Component) bool {
		seen[c.Label] = true
		return true
	})
	assert.Equal(t, map[string]bool{"source-1": true, "sink": true}, seen)
}

func TestAllStopsEarly(t *testing.T) {
	r := New()
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-1", Handle: 1}))
	require.NoError(t, r.Insert(Component{Type: "source", Label: "source-2", Handle: 2}))

	count := 0
	r.All(func(Component) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
