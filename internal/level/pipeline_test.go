package level

import (
	"errors"
	"strings"
	"testing"
)

func TestPipelineExecutesInOrder(t *testing.T) {
	var ran []string
	record := func(name string) StepFunc {
		return func(ctx *Context) (*Context, error) {
			ran = append(ran, name)
			return ctx, nil
		}
	}

	p := NewPipeline().
		AddStep("first", record("first")).
		AddStep("second", record("second")).
		AddStep("third", record("third"))

	if _, err := p.Execute(NewContext()); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(ran) != len(want) {
		t.Fatalf("ran %d steps, want %d", len(ran), len(want))
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("step %d was %q, want %q", i, ran[i], want[i])
		}
	}
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var afterRan bool

	p := NewPipeline().
		AddStep("ok", func(ctx *Context) (*Context, error) { return ctx, nil }).
		AddStep("explode", func(ctx *Context) (*Context, error) { return nil, boom }).
		AddStep("after", func(ctx *Context) (*Context, error) {
			afterRan = true
			return ctx, nil
		})

	_, err := p.Execute(NewContext())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if !strings.Contains(err.Error(), "explode") {
		t.Errorf("error %q does not name the failing step", err)
	}
	if afterRan {
		t.Error("steps after a failure must not run")
	}
}

func TestRegistryPipelineUnknownStep(t *testing.T) {
	if _, err := DefaultRegistry().Pipeline("init_grid", "no_such_step"); err == nil {
		t.Fatal("expected error for unknown step name")
	}
}

func TestRegistryHasEveryDefaultStep(t *testing.T) {
	reg := DefaultRegistry()
	for _, style := range []string{StyleBridges, StylePathfind} {
		names, err := StepNames(style)
		if err != nil {
			t.Fatalf("StepNames(%q) returned error: %v", style, err)
		}
		for _, name := range names {
			if _, ok := reg[name]; !ok {
				t.Errorf("step %q from StepNames(%q) missing from registry", name, style)
			}
		}
	}
}

func TestStepNames(t *testing.T) {
	tests := []struct {
		style string
		carve string
	}{
		{StyleBridges, "carve_bridges"},
		{"", "carve_bridges"},
		{StylePathfind, "carve_corridors"},
	}
	for _, tt := range tests {
		names, err := StepNames(tt.style)
		if err != nil {
			t.Fatalf("StepNames(%q) returned error: %v", tt.style, err)
		}
		if names[5] != tt.carve {
			t.Errorf("StepNames(%q)[5] = %q, want %q", tt.style, names[5], tt.carve)
		}
		if names[len(names)-1] != "collect_spawn_points" {
			t.Errorf("StepNames(%q) does not end with collect_spawn_points", tt.style)
		}
	}

	if _, err := StepNames("tunnels"); err == nil {
		t.Error("expected error for unknown corridor style")
	}
}

func TestStepNamesSealAfterDoors(t *testing.T) {
	names, err := StepNames(StyleBridges)
	if err != nil {
		t.Fatalf("StepNames returned error: %v", err)
	}
	doors, seal := -1, -1
	for i, name := range names {
		switch name {
		case "generate_doors":
			doors = i
		case "seal_corridors":
			seal = i
		}
	}
	if doors == -1 || seal == -1 {
		t.Fatalf("door or seal step missing from %v", names)
	}
	if seal < doors {
		t.Errorf("seal_corridors at %d runs before generate_doors at %d", seal, doors)
	}
}
