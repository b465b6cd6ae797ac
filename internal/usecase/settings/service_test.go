package settings

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/indexgen/internal/domain"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
)

// --- Mocks ---

type mockRepo struct {
	cfg     generator.Config
	updates int
}

func (m *mockRepo) Get() generator.Config { return m.cfg }

func (m *mockRepo) Update(fn func(generator.Config) (generator.Config, error)) (generator.Config, error) {
	next, err := fn(m.cfg)
	if err != nil {
		return m.cfg, err
	}
	m.updates++
	m.cfg = next
	return next, nil
}

// --- Tests ---

func TestPatch_Applies(t *testing.T) {
	repo := &mockRepo{cfg: generator.Default()}
	svc := New(repo)

	got, err := svc.Patch([]byte(`{"embeddingModel":"text-embedding-005","distanceMetric":"dot"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EmbeddingModel != "text-embedding-005" || got.Distance != generator.Dot {
		t.Errorf("unexpected config: %+v", got)
	}
	if repo.updates != 1 {
		t.Errorf("expected 1 update, got %d", repo.updates)
	}
	if svc.Get() != got {
		t.Error("Get should return the patched config")
	}
}

func TestPatch_InvalidLeavesConfig(t *testing.T) {
	repo := &mockRepo{cfg: generator.Default()}
	svc := New(repo)

	got, err := svc.Patch([]byte(`{"chunkSize":-5}`))
	if !errors.Is(err, domain.ErrInvalidPatch) {
		t.Fatalf("expected ErrInvalidPatch, got %v", err)
	}
	if repo.updates != 0 {
		t.Error("repository must not be updated")
	}
	if got != generator.Default() {
		t.Errorf("expected current config back, got %+v", got)
	}
}

func TestReset(t *testing.T) {
	repo := &mockRepo{cfg: generator.Default().WithCollectionName("changed")}
	svc := New(repo)

	got := svc.Reset(generator.Default())
	if got != generator.Default() {
		t.Errorf("expected defaults, got %+v", got)
	}
	if repo.cfg.CollectionName != generator.DefaultCollectionName {
		t.Errorf("repo not reset: %q", repo.cfg.CollectionName)
	}
}
