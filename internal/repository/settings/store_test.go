package settings

import (
	"errors"
	"sync"
	"testing"

	"github.com/kailas-cloud/indexgen/internal/domain/generator"
)

func TestStore_GetReturnsInitial(t *testing.T) {
	s := New(generator.Default())
	if got := s.Get(); got != generator.Default() {
		t.Errorf("Get() = %+v, want defaults", got)
	}
}

func TestStore_Update(t *testing.T) {
	s := New(generator.Default())

	got, err := s.Update(func(c generator.Config) (generator.Config, error) {
		return c.WithCollectionName("docs"), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CollectionName != "docs" {
		t.Errorf("returned CollectionName = %q", got.CollectionName)
	}
	if s.Get().CollectionName != "docs" {
		t.Errorf("stored CollectionName = %q", s.Get().CollectionName)
	}
}

func TestStore_UpdateErrorKeepsRecord(t *testing.T) {
	s := New(generator.Default())
	boom := errors.New("boom")

	got, err := s.Update(func(c generator.Config) (generator.Config, error) {
		return c.WithCollectionName("ignored"), boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got.CollectionName != generator.DefaultCollectionName {
		t.Errorf("returned CollectionName = %q", got.CollectionName)
	}
	if s.Get().CollectionName != generator.DefaultCollectionName {
		t.Error("record changed after failed update")
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	s := New(generator.Default())

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Update(func(c generator.Config) (generator.Config, error) {
				return c.WithChunkSize(c.ChunkSize + 1)
			})
			_ = s.Get()
		}()
	}
	wg.Wait()

	if got := s.Get().ChunkSize; got != generator.DefaultChunkSize+50 {
		t.Errorf("ChunkSize = %d, want %d", got, generator.DefaultChunkSize+50)
	}
}
