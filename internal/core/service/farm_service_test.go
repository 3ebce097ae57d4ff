package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/harvestly/farmbook-api/internal/core/domain"
	"github.com/harvestly/farmbook-api/internal/core/ports"
)

// stubFarmCache records interactions and can be pre-seeded with a list.
type stubFarmCache struct {
	list        []*domain.Farm
	byID        map[string]*domain.Farm
	invalidated int
	listWrites  int
}

func newStubFarmCache() *stubFarmCache {
	return &stubFarmCache{byID: make(map[string]*domain.Farm)}
}

func (c *stubFarmCache) GetList(context.Context) ([]*domain.Farm, bool) {
	return c.list, c.list != nil
}

func (c *stubFarmCache) SetList(_ context.Context, farms []*domain.Farm) {
	c.list = farms
	c.listWrites++
}

func (c *stubFarmCache) GetFarm(_ context.Context, id string) (*domain.Farm, bool) {
	f, ok := c.byID[id]
	return f, ok
}

func (c *stubFarmCache) SetFarm(_ context.Context, f *domain.Farm) {
	c.byID[f.ID] = f
}

func (c *stubFarmCache) Invalidate(context.Context) {
	c.list = nil
	c.invalidated++
}

// createFarms inserts n farms with ids f1..fn directly into the stub repo.
func createFarms(repo *stubFarmRepo, names ...string) {
	for i, name := range names {
		id := fmt.Sprintf("f%d", i+1)
		repo.farms[id] = &domain.Farm{ID: id, Name: name, Description: "d", Location: "l"}
	}
}

func TestFarmService_Create_InvalidatesCache(t *testing.T) {
	repo := newStubFarmRepo()
	cache := newStubFarmCache()
	cache.list = []*domain.Farm{{ID: "stale"}}

	svc := NewFarmService(repo, cache, discardLogger)
	_, err := svc.Create(context.Background(), ports.CreateFarmInput{
		Name: "Tanaka Farm", Description: "Strawberry picking", Location: "Tokyo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidated once, got %d", cache.invalidated)
	}
}

func TestFarmService_List_CacheHitSkipsRepo(t *testing.T) {
	repo := newStubFarmRepo()
	cache := newStubFarmCache()
	cache.list = []*domain.Farm{{ID: "f1", Name: "Cached Farm"}}

	svc := NewFarmService(repo, cache, discardLogger)
	farms, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(farms) != 1 || farms[0].Name != "Cached Farm" {
		t.Fatalf("expected cached list, got %+v", farms)
	}
}

func TestFarmService_List_MissFetchesSortedAndCaches(t *testing.T) {
	repo := newStubFarmRepo()
	createFarms(repo, "Yamada Orchard", "Aoki Ranch", "Tanaka Farm")
	cache := newStubFarmCache()

	svc := NewFarmService(repo, cache, discardLogger)
	farms, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, f := range farms {
		names = append(names, f.Name)
	}
	want := []string{"Aoki Ranch", "Tanaka Farm", "Yamada Orchard"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected name-ascending order %v, got %v", want, names)
		}
	}
	if cache.listWrites != 1 {
		t.Fatalf("expected list cached after miss, got %d writes", cache.listWrites)
	}
}

func TestFarmService_Get_NotFound(t *testing.T) {
	svc := NewFarmService(newStubFarmRepo(), newStubFarmCache(), discardLogger)

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrFarmNotFound) {
		t.Fatalf("expected ErrFarmNotFound, got %v", err)
	}
}

func TestFarmService_Get_CachesAfterFetch(t *testing.T) {
	repo := newStubFarmRepo()
	createFarms(repo, "Tanaka Farm")
	cache := newStubFarmCache()

	svc := NewFarmService(repo, cache, discardLogger)
	farm, err := svc.Get(context.Background(), "f1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if farm.Name != "Tanaka Farm" {
		t.Fatalf("unexpected farm: %+v", farm)
	}
	if _, ok := cache.byID["f1"]; !ok {
		t.Fatalf("expected farm cached after fetch")
	}
}
