package registry

import (
	"testing"

	"github.com/vovakirdan/crazytype/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("expected registered game to exist")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}
	if Title("zz_stub") != "Stub zz_stub" {
		t.Errorf("Title() = %q", Title("zz_stub"))
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Title("does_not_exist") != "does_not_exist" {
		t.Error("Title should fall back to the id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
}
