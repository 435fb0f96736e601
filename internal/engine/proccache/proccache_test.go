package proccache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zachlewis/colorconfig/internal/core/domain"
	"github.com/zachlewis/colorconfig/internal/core/ports/mocks"
	"github.com/zachlewis/colorconfig/internal/engine/proccache"
)

func newTestCache() *proccache.Cache {
	var mu sync.RWMutex
	return proccache.New(&mu)
}

func TestCacheFindMissReturnsNil(t *testing.T) {
	c := newTestCache()
	key := domain.ConversionKey("a", "b", "", "")

	assert.Nil(t, c.Find(key))
	assert.Equal(t, int64(1), c.Requested())
	assert.Equal(t, int64(0), c.Created())
}

func TestCacheInsertThenFind(t *testing.T) {
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)

	c := newTestCache()
	key := domain.ConversionKey("a", "b", "", "")

	got := c.Insert(key, proc)
	require.NotNil(t, got)
	assert.Same(t, proc, got)

	assert.Same(t, proc, c.Find(key))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1), c.Created())
}

func TestCacheNeverStoresNil(t *testing.T) {
	c := newTestCache()
	key := domain.ConversionKey("a", "b", "", "")

	assert.Nil(t, c.Insert(key, nil))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Created())

	// The slot stays free for a later successful construction.
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)
	assert.NotNil(t, c.Insert(key, proc))
	assert.Equal(t, 1, c.Len())
}

func TestCacheFirstInsertWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockProcessor(ctrl)
	second := mocks.NewMockProcessor(ctrl)

	c := newTestCache()
	key := domain.ConversionKey("a", "b", "", "")

	require.Same(t, first, c.Insert(key, first))

	// A concurrent builder losing the race gets the surviving handle back
	// and its own handle is discarded.
	got := c.Insert(key, second)
	assert.Same(t, first, got)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1), c.Created())
}

func TestCacheDistinctShapesDistinctSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newTestCache()

	c.Insert(domain.ConversionKey("a", "b", "", ""), mocks.NewMockProcessor(ctrl))
	c.Insert(domain.LookKey("", "a", "b", false, "", ""), mocks.NewMockProcessor(ctrl))
	c.Insert(domain.FileKey("a", false), mocks.NewMockProcessor(ctrl))
	c.Insert(domain.NamedTransformKey("a", false, "", ""), mocks.NewMockProcessor(ctrl))

	assert.Equal(t, 4, c.Len())
}

func TestCacheConcurrentAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	proc := mocks.NewMockProcessor(ctrl)

	c := newTestCache()
	key := domain.ConversionKey("a", "b", "", "")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.Find(key); got == nil {
				c.Insert(key, proc)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1), c.Created())
	assert.Same(t, proc, c.Find(key))
}
