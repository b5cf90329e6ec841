package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestCityCacheLoadsOnce(t *testing.T) {
	calls := 0
	cache := NewCityCache(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"Kyoto", "Rome"}, nil
	})

	for i := 0; i < 3; i++ {
		cities, err := cache.Names(context.Background())
		if err != nil {
			t.Fatalf("Names: %v", err)
		}
		if len(cities) != 2 {
			t.Fatalf("city count = %d, want 2", len(cities))
		}
	}
	if calls != 1 {
		t.Errorf("loader calls = %d, want 1", calls)
	}
}

func TestCityCacheInvalidate(t *testing.T) {
	calls := 0
	cache := NewCityCache(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"Jaipur"}, nil
	})

	if _, err := cache.Names(context.Background()); err != nil {
		t.Fatalf("Names: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.Names(context.Background()); err != nil {
		t.Fatalf("Names: %v", err)
	}
	if calls != 2 {
		t.Errorf("loader calls = %d, want 2 after invalidate", calls)
	}
}

func TestCityCacheLoadErrorNotCached(t *testing.T) {
	calls := 0
	cache := NewCityCache(func(ctx context.Context) ([]string, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("db down")
		}
		return []string{"Kochi"}, nil
	})

	if _, err := cache.Names(context.Background()); err == nil {
		t.Fatal("expected error on first load")
	}
	cities, err := cache.Names(context.Background())
	if err != nil {
		t.Fatalf("Names after recovery: %v", err)
	}
	if len(cities) != 1 {
		t.Errorf("city count = %d, want 1", len(cities))
	}
}
