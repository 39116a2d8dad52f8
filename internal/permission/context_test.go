package permission

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformGrantSet(name string, size int) []Grant {
	grants := make([]Grant, size)
	for i := range grants {
		grants[i] = Grant{ID: uuid.New(), Name: name, Status: GrantStatusActive}
	}
	return grants
}

func TestContextHoldsGrantCopy(t *testing.T) {
	original := uniformGrantSet("appointments", 2)
	ctx := NewContext(original)

	// Mutating the input slice afterwards must not leak into the context
	original[0].Name = "mutated"
	grants := ctx.Grants()
	require.Len(t, grants, 2)
	assert.Equal(t, "appointments", grants[0].Name)
}

func TestContextClear(t *testing.T) {
	ctx := NewContext(uniformGrantSet("appointments", 3))
	ctx.Clear()
	assert.Empty(t, ctx.Grants())
}

func TestContextReplaceIsAtomic(t *testing.T) {
	// Readers hammer the context while a writer swaps between two uniform
	// grant sets. Every snapshot has to be entirely "old" or entirely "new";
	// a mixture means a torn replace.
	ctx := NewContext(uniformGrantSet("old", 8))

	var torn atomic.Bool
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				grants := ctx.Grants()
				if len(grants) != 8 {
					torn.Store(true)
					return
				}
				name := grants[0].Name
				for _, grant := range grants {
					if grant.Name != name {
						torn.Store(true)
						return
					}
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			ctx.Replace(uniformGrantSet("new", 8))
		} else {
			ctx.Replace(uniformGrantSet("old", 8))
		}
	}
	close(stop)
	wg.Wait()

	assert.False(t, torn.Load(), "a reader observed a mixture of old and new grants")
}
