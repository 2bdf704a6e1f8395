package text

import (
	"fmt"
	"math"
	"sync"
	"testing"
)

func TestCacheGetOrCreate(t *testing.T) {
	c := NewCache[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache succeeded")
	}

	calls := 0
	create := func() int { calls++; return 42 }
	for n := 0; n < 3; n++ {
		if v := c.GetOrCreate("a", create); v != 42 {
			t.Errorf("GetOrCreate = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if v, ok := c.Get("a"); !ok || v != 42 {
		t.Errorf("Get = %d, %v", v, ok)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache[int, int](4)
	for i := 0; i < 4; i++ {
		i := i
		c.GetOrCreate(i, func() int { return i })
	}
	c.Get(0) // 0 is now the most recently used
	c.GetOrCreate(4, func() int { return 4 })

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	for _, k := range []int{0, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d evicted", k)
		}
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest key survived eviction")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := fmt.Sprint(i % 20)
				c.GetOrCreate(k, func() int { return g })
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len = %d, exceeds limit", c.Len())
	}
}

func TestRunCache(t *testing.T) {
	rc := NewRunCache(testSource(t), &BuiltinShaper{}, 8)

	a := rc.Layout("Sphinx", 80, 120, 185)
	b := rc.Layout("Sphinx", 80, 120, 185)
	if a != b {
		t.Error("same layout not reused")
	}
	if rc.Len() != 1 {
		t.Errorf("Len = %d, want 1", rc.Len())
	}

	moved := rc.Layout("Sphinx", 80, 10, 50)
	if x, base := moved.Origin(); x != 10 || base != 50 {
		t.Errorf("moved origin = %v, %v", x, base)
	}
	x0, w0 := a.CharExtent(2)
	x1, w1 := moved.CharExtent(2)
	if math.Abs(x1-x0+110) > 1e-9 || w0 != w1 {
		t.Errorf("moved extent = %v, %v; original %v, %v", x1, w1, x0, w0)
	}

	rc.Layout("Sphinx", 60, 120, 185)
	if rc.Len() != 2 {
		t.Errorf("Len = %d, want 2 after a new size", rc.Len())
	}
}
