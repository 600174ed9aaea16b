package layout_test

import (
	"context"
	"sync"
	"testing"

	"boardform/internal/layout"

	"github.com/stretchr/testify/assert"
)

func TestManager_LoadsLazilyAndKeepsStatePerInstance(t *testing.T) {
	// Arrange
	store := newFakeGateway()
	m := layout.NewManager(store)

	// Act - mutate instance a, leave instance b untouched
	err := m.Do(context.Background(), "a", func(e *layout.Engine) error {
		_, err := e.CreateSection("Extra")
		return err
	})
	assert.NoError(t, err)

	// Assert - a is dirty, b got its own clean default
	var aDirty, bDirty bool
	assert.NoError(t, m.Do(context.Background(), "a", func(e *layout.Engine) error {
		aDirty = e.Dirty()
		return nil
	}))
	assert.NoError(t, m.Do(context.Background(), "b", func(e *layout.Engine) error {
		bDirty = e.Dirty()
		return nil
	}))
	assert.True(t, aDirty)
	assert.False(t, bDirty)
}

func TestManager_LoadFailureIsRetriedNextCall(t *testing.T) {
	// Arrange
	store := newFakeGateway()
	store.getErr = assert.AnError
	m := layout.NewManager(store)

	// Act - first touch fails before fn runs
	ran := false
	err := m.Do(context.Background(), "a", func(e *layout.Engine) error {
		ran = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, ran)

	// Assert - storage recovers, next call loads fine
	store.getErr = nil
	assert.NoError(t, m.Do(context.Background(), "a", func(e *layout.Engine) error {
		return nil
	}))
}

func TestManager_SerializesMutationsPerInstance(t *testing.T) {
	// Arrange
	store := newFakeGateway()
	m := layout.NewManager(store)

	// Act - hammer one instance from many goroutines
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do(context.Background(), "a", func(e *layout.Engine) error {
				_, err := e.CreateSection("Extra")
				return err
			})
		}()
	}
	wg.Wait()

	// Assert - every mutation landed, none was lost to a race
	var sections int
	assert.NoError(t, m.Do(context.Background(), "a", func(e *layout.Engine) error {
		sections = len(e.Config().Sections)
		return nil
	}))
	assert.Equal(t, 51, sections)
}
