package registry

import (
	"context"
	"testing"

	"github.com/brewdeck/brewdeck/internal/console"
)

type fakeTool struct {
	meta Meta
	ran  bool
}

func (f *fakeTool) Meta() Meta { return f.meta }

func (f *fakeTool) Run(_ context.Context, _ *console.Session) error {
	f.ran = true
	return nil
}

func TestNewOrdersByOrderThenName(t *testing.T) {
	r := New(
		&fakeTool{meta: Meta{Name: "zeta", Order: 2}},
		&fakeTool{meta: Meta{Name: "beta", Order: 1}},
		&fakeTool{meta: Meta{Name: "alpha", Order: 2}},
	)

	got := r.All()
	want := []string{"beta", "alpha", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Meta().Name != name {
			t.Errorf("tools[%d] = %q, want %q", i, got[i].Meta().Name, name)
		}
	}
}

func TestLookup(t *testing.T) {
	audit := &fakeTool{meta: Meta{Name: "audit", Order: 1}}
	r := New(audit, &fakeTool{meta: Meta{Name: "search", Order: 2}})

	if r.Lookup("audit") != audit {
		t.Error("Lookup should return the registered tool")
	}
	if r.Lookup("missing") != nil {
		t.Error("Lookup of unknown name should return nil")
	}
}

func TestAllReturnsACopy(t *testing.T) {
	r := New(&fakeTool{meta: Meta{Name: "audit"}})
	tools := r.All()
	tools[0] = nil
	if r.All()[0] == nil {
		t.Error("mutating All() result must not affect the registry")
	}
}
