package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/manusware/context-manager/internal/models"
)

func TestCreateContextValidation(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	cases := []struct {
		name  string
		in    CreateContextInput
		field string
	}{
		{"missing title", CreateContextInput{Content: "c"}, "title"},
		{"missing content", CreateContextInput{Title: "t"}, "content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateContext(project.ID, tc.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("CreateContext() error = %v, want ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestCreateContextUnknownProject(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateContext(77, CreateContextInput{Title: "t", Content: "c"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateContext() error = %v, want ErrNotFound", err)
	}
}

func TestCreateContextDefaults(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	ctx, err := s.CreateContext(project.ID, CreateContextInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreateContext() error = %v", err)
	}
	if ctx.ContextType != models.DefaultContextType {
		t.Errorf("ContextType = %q, want %q", ctx.ContextType, models.DefaultContextType)
	}
	if !ctx.IsCurrent {
		t.Error("IsCurrent = false, want true by default")
	}
}

func TestCreateContextExclusivity(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	a, err := s.CreateContext(project.ID, CreateContextInput{Title: "A", Content: "first"})
	if err != nil {
		t.Fatalf("CreateContext(A) error = %v", err)
	}
	b, err := s.CreateContext(project.ID, CreateContextInput{Title: "B", Content: "second"})
	if err != nil {
		t.Fatalf("CreateContext(B) error = %v", err)
	}

	current, err := s.GetCurrentContext(project.ID)
	if err != nil {
		t.Fatalf("GetCurrentContext() error = %v", err)
	}
	if current.ID != b.ID {
		t.Errorf("current context = %d, want %d", current.ID, b.ID)
	}

	contexts, err := s.ListContexts(project.ID)
	if err != nil {
		t.Fatalf("ListContexts() error = %v", err)
	}
	currents := 0
	for _, ctx := range contexts {
		if ctx.IsCurrent {
			currents++
		}
		if ctx.ID == a.ID && ctx.IsCurrent {
			t.Error("context A still current after B was created")
		}
	}
	if currents != 1 {
		t.Errorf("project has %d current contexts, want 1", currents)
	}
}

func TestCreateContextNotCurrentKeepsExisting(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	a, err := s.CreateContext(project.ID, CreateContextInput{Title: "A", Content: "first"})
	if err != nil {
		t.Fatalf("CreateContext(A) error = %v", err)
	}

	notCurrent := false
	if _, err := s.CreateContext(project.ID, CreateContextInput{
		Title: "B", Content: "second", IsCurrent: &notCurrent,
	}); err != nil {
		t.Fatalf("CreateContext(B) error = %v", err)
	}

	current, err := s.GetCurrentContext(project.ID)
	if err != nil {
		t.Fatalf("GetCurrentContext() error = %v", err)
	}
	if current.ID != a.ID {
		t.Errorf("current context = %d, want A (%d) untouched", current.ID, a.ID)
	}
}

func TestUpdateContextPromotion(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	a, err := s.CreateContext(project.ID, CreateContextInput{Title: "A", Content: "first"})
	if err != nil {
		t.Fatalf("CreateContext(A) error = %v", err)
	}
	b, err := s.CreateContext(project.ID, CreateContextInput{Title: "B", Content: "second"})
	if err != nil {
		t.Fatalf("CreateContext(B) error = %v", err)
	}

	promote := true
	if _, err := s.UpdateContext(a.ID, UpdateContextInput{IsCurrent: &promote}); err != nil {
		t.Fatalf("UpdateContext() error = %v", err)
	}

	current, err := s.GetCurrentContext(project.ID)
	if err != nil {
		t.Fatalf("GetCurrentContext() error = %v", err)
	}
	if current.ID != a.ID {
		t.Errorf("current context = %d, want promoted %d", current.ID, a.ID)
	}

	var demoted models.Context
	if err := s.db.First(&demoted, b.ID).Error; err != nil {
		t.Fatalf("reload context B: %v", err)
	}
	if demoted.IsCurrent {
		t.Error("context B still current after A was promoted")
	}
}

func TestUpdateContextExclusivityAcrossProjects(t *testing.T) {
	s := newTestStore(t)
	alpha := mustProject(t, s, "Alpha")
	beta := mustProject(t, s, "Beta")

	if _, err := s.CreateContext(alpha.ID, CreateContextInput{Title: "A", Content: "a"}); err != nil {
		t.Fatalf("CreateContext(alpha) error = %v", err)
	}
	bctx, err := s.CreateContext(beta.ID, CreateContextInput{Title: "B", Content: "b"})
	if err != nil {
		t.Fatalf("CreateContext(beta) error = %v", err)
	}

	// Promoting a context must not demote contexts of other projects.
	promote := true
	if _, err := s.UpdateContext(bctx.ID, UpdateContextInput{IsCurrent: &promote}); err != nil {
		t.Fatalf("UpdateContext() error = %v", err)
	}

	if _, err := s.GetCurrentContext(alpha.ID); err != nil {
		t.Errorf("GetCurrentContext(alpha) error = %v, want current intact", err)
	}
}

func TestListContextsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	old, err := s.CreateContext(project.ID, CreateContextInput{Title: "old", Content: "c"})
	if err != nil {
		t.Fatalf("CreateContext(old) error = %v", err)
	}
	recent, err := s.CreateContext(project.ID, CreateContextInput{Title: "recent", Content: "c"})
	if err != nil {
		t.Fatalf("CreateContext(recent) error = %v", err)
	}
	backdate(t, s, &models.Context{}, old.ID, time.Now().Add(-2*time.Hour))

	contexts, err := s.ListContexts(project.ID)
	if err != nil {
		t.Fatalf("ListContexts() error = %v", err)
	}
	if len(contexts) != 2 {
		t.Fatalf("ListContexts() returned %d, want 2", len(contexts))
	}
	if contexts[0].ID != recent.ID {
		t.Errorf("first context = %d, want newest %d", contexts[0].ID, recent.ID)
	}
}

func TestConcurrentCreatesKeepOneCurrent(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	// Each create locks the project row before demoting siblings, so
	// writers targeting the same project serialize. sqlite's single write
	// lock already serializes at the engine level; this still drives the
	// locked path from concurrent goroutines.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := s.CreateContext(project.ID, CreateContextInput{
				Title:   fmt.Sprintf("snapshot-%d", n),
				Content: "state",
			})
			if err != nil {
				t.Errorf("CreateContext(%d) error = %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	var currents int64
	if err := s.db.Model(&models.Context{}).
		Where("project_id = ? AND is_current = ?", project.ID, true).
		Count(&currents).Error; err != nil {
		t.Fatalf("count current contexts: %v", err)
	}
	if currents != 1 {
		t.Errorf("project has %d current contexts after concurrent creates, want 1", currents)
	}
}

func TestListContextsEmptyIsNotNil(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	contexts, err := s.ListContexts(project.ID)
	if err != nil {
		t.Fatalf("ListContexts() error = %v", err)
	}
	if contexts == nil {
		t.Error("ListContexts() = nil for empty project, want empty slice")
	}
}

func TestGetCurrentContextNone(t *testing.T) {
	s := newTestStore(t)
	project := mustProject(t, s, "Alpha")

	if _, err := s.GetCurrentContext(project.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCurrentContext() error = %v, want ErrNotFound", err)
	}
}
