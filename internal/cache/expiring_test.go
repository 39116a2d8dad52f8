package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiringMapSetAndLookup(t *testing.T) {
	obj := NewExpiring[string, int](time.Minute, time.Minute)
	defer obj.Close()

	obj.Set("a", 1)
	val, ok := obj.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = obj.Lookup("b")
	assert.False(t, ok)
}

func TestExpiringMapHidesExpiredEntries(t *testing.T) {
	obj := NewExpiring[string, int](30*time.Millisecond, time.Minute)
	defer obj.Close()

	obj.Set("a", 1)
	time.Sleep(60 * time.Millisecond)
	_, ok := obj.Lookup("a")
	assert.False(t, ok)
}

func TestExpiringMapUnsetAndClear(t *testing.T) {
	obj := NewExpiring[string, int](time.Minute, time.Minute)
	defer obj.Close()

	obj.Set("a", 1)
	obj.Set("b", 2)

	obj.Unset("a")
	_, ok := obj.Lookup("a")
	assert.False(t, ok)

	obj.Clear()
	_, ok = obj.Lookup("b")
	assert.False(t, ok)
}
