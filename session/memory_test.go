package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedibld92/margueritecookie/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New("sid")
	sess.Cart.Items = append(sess.Cart.Items, models.CartItem{CookieID: "1", Name: "Cookie", Price: 2.50, Quantity: 2})
	sess.Cart.Recompute()
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	require.Len(t, got.Cart.Items, 1)
	assert.InDelta(t, 5.00, got.Cart.Total, 0.001)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("sid")))
	require.NoError(t, store.Delete(ctx, "sid"))

	_, err := store.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)
}

// The stored copy must not share state with the caller's session.
func TestMemoryStoreIsolatesStoredCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New("sid")
	require.NoError(t, store.Save(ctx, sess))

	// Mutating after save must not leak into the store
	sess.Cart.Items = append(sess.Cart.Items, models.CartItem{CookieID: "1", Quantity: 1})

	got, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, got.Cart.Items)
}

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	locks := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("sid")
			counter++
			locks.Unlock("sid")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	locks := NewKeyedMutex()

	locks.Lock("a")
	done := make(chan struct{})
	go func() {
		// Must not block on a different key
		locks.Lock("b")
		locks.Unlock("b")
		close(done)
	}()
	<-done
	locks.Unlock("a")
}
