package visitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	var m SyncMap[string, int]
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Put("a", 1)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.EqualValues(t, 1, v)

	assert.EqualValues(t, 1, m.LoadOrStore("a", 2))
	assert.EqualValues(t, 3, m.LoadOrStore("b", 3))

	shared := NewSyncMap[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			shared.LoadOrStore(0, i)
		}(i)
	}
	wg.Wait()
	first, _ := shared.Get(0)
	for i := 0; i < 8; i++ {
		assert.EqualValues(t, first, shared.LoadOrStore(0, 100+i))
	}
}
