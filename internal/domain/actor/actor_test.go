package actor

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContextEmpty(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(nil)
	assert.False(t, ok)
}

func TestWithActorRoundTrip(t *testing.T) {
	ctx := WithActor(context.Background(), Actor{ID: 7, Username: "aziz", Authenticated: true})

	a, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), a.ID)
	assert.Equal(t, "aziz", a.Username)
}

func TestCurrentRequiresAuthentication(t *testing.T) {
	ctx := WithActor(context.Background(), Actor{ID: 3, Username: "anon", Authenticated: false})

	_, ok := Current(ctx)
	assert.False(t, ok)

	ctx = WithActor(context.Background(), Actor{ID: 3, Username: "anon", Authenticated: true})
	a, ok := Current(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(3), a.ID)
}

// Concurrent requests each get their own binding with no cross-task leakage.
func TestActorIsolationAcrossGoroutines(t *testing.T) {
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			ctx := WithActor(context.Background(), Actor{ID: id, Authenticated: true})
			a, ok := Current(ctx)
			assert.True(t, ok)
			assert.Equal(t, id, a.ID)
		}(uint(i))
	}
	wg.Wait()
}
