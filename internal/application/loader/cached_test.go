package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/diillson/ktrade-dashboard-go/internal/domain/entity"
)

type countingLoader struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
	// errs, when set, is consumed one error per call before falling back to err.
	errs  []error
}

func (c *countingLoader) Load(ctx context.Context, location string) (*entity.TradeTable, error) {
	c.mu.Lock()
	c.calls[location]++
	err := c.err
	if len(c.errs) > 0 {
		err, c.errs = c.errs[0], c.errs[1:]
	}
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return entity.NewTradeTable(location, nil), nil
}

func TestCached_LoadsOncePerLocation(t *testing.T) {
	inner := &countingLoader{calls: map[string]int{}}
	cache := NewCached(inner)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(context.Background(), "a.csv"); err != nil {
				t.Errorf("Load: %v", err)
			}
		}()
	}
	wg.Wait()

	first, _ := cache.Load(context.Background(), "a.csv")
	second, _ := cache.Load(context.Background(), "a.csv")
	if first != second {
		t.Fatalf("expected the same table instance")
	}
	if _, err := cache.Load(context.Background(), "b.csv"); err != nil {
		t.Fatal(err)
	}

	if inner.calls["a.csv"] != 1 || inner.calls["b.csv"] != 1 {
		t.Fatalf("calls got=%v want one per location", inner.calls)
	}
}

func TestCached_MemoizesErrors(t *testing.T) {
	boom := errors.New("boom")
	inner := &countingLoader{calls: map[string]int{}, err: boom}
	cache := NewCached(inner)

	for i := 0; i < 3; i++ {
		if _, err := cache.Load(context.Background(), "a.csv"); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	}
	if inner.calls["a.csv"] != 1 {
		t.Fatalf("calls got=%d want=1", inner.calls["a.csv"])
	}
}

func TestCached_DoesNotMemoizeContextErrors(t *testing.T) {
	inner := &countingLoader{
		calls: map[string]int{},
		errs: []error{
			fmt.Errorf("fetch s3://b/k.csv: %w", context.Canceled),
			context.DeadlineExceeded,
		},
	}
	cache := NewCached(inner)

	if _, err := cache.Load(context.Background(), "s3://b/k.csv"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if _, err := cache.Load(context.Background(), "s3://b/k.csv"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	table, err := cache.Load(context.Background(), "s3://b/k.csv")
	if err != nil || table == nil {
		t.Fatalf("expected table after retry, got %v, %v", table, err)
	}
	again, _ := cache.Load(context.Background(), "s3://b/k.csv")
	if again != table {
		t.Fatalf("expected the memoized table instance")
	}
	if inner.calls["s3://b/k.csv"] != 3 {
		t.Fatalf("calls got=%d want=3", inner.calls["s3://b/k.csv"])
	}
}
