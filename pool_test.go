package braille

import (
	"sync"
	"testing"
)

// --- ad hoc type for testing purposes----------------------------------

type counter struct {
	n     int
	reset int
}

func (c *counter) Reset() {
	c.n = 0
	c.reset++
}

// ----------------------------------------------------------------------

func TestPoolResetsOnBorrow(t *testing.T) {
	sp := NewStatePool(func() Resetter { return &counter{} })
	c := sp.Borrow().(*counter)
	c.n = 42
	sp.Release(c)
	c = sp.Borrow().(*counter)
	if c.n != 0 {
		t.Errorf("expected borrowed state to be reset, n = %d", c.n)
	}
	if c.reset < 1 {
		t.Errorf("expected Reset() to have been called")
	}
	sp.Release(c)
}

func TestPoolConcurrentBorrow(t *testing.T) {
	sp := NewStatePool(func() Resetter { return &counter{} })
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := sp.Borrow().(*counter)
			if c.n != 0 {
				t.Errorf("expected fresh state, n = %d", c.n)
			}
			c.n = i + 1
			sp.Release(c)
		}(i)
	}
	wg.Wait()
}

func TestPoolReleaseNil(t *testing.T) {
	sp := NewStatePool(func() Resetter { return &counter{} })
	sp.Release(nil) // must not panic
}
