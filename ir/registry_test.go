package ir

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCache_CollapsesConcurrentFirstLoad(t *testing.T) {
	cache := newRegistryCache()

	var calls int64
	decode := func() (*Registry, error) {
		atomic.AddInt64(&calls, 1)

		return newRegistry(Frame{IrID: 1}, nil, nil), nil
	}

	var wg sync.WaitGroup
	results := make([]*Registry, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg, err := cache.loadOnce("key", decode)
			require.NoError(t, err)
			results[i] = reg
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	for _, reg := range results {
		assert.Same(t, results[0], reg)
	}
}

func TestRegistryCache_SeparateKeysLoadIndependently(t *testing.T) {
	cache := newRegistryCache()

	regA, err := cache.loadOnce("a", func() (*Registry, error) {
		return newRegistry(Frame{IrID: 1}, nil, nil), nil
	})
	require.NoError(t, err)

	regB, err := cache.loadOnce("b", func() (*Registry, error) {
		return newRegistry(Frame{IrID: 2}, nil, nil), nil
	})
	require.NoError(t, err)

	assert.NotSame(t, regA, regB)
	assert.Equal(t, int32(1), regA.Frame().IrID)
	assert.Equal(t, int32(2), regB.Frame().IrID)
}
