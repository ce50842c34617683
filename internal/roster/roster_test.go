package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nimblefox/pullover/internal/types"
)

func twoByTwo() *Roster {
	r, err := New(
		[]types.PersonalityProfile{{ID: "a"}, {ID: "b"}},
		[]types.PlayerProfile{{ID: "x"}, {ID: "y"}},
	)
	if err != nil {
		panic(err)
	}
	return r
}

func TestNewRejectsEmptyLineups(t *testing.T) {
	if _, err := New(nil, []types.PlayerProfile{{ID: "x"}}); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
	if _, err := New([]types.PersonalityProfile{{ID: "a"}}, nil); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
}

func TestNextCyclesOfficersBeforePlayers(t *testing.T) {
	r := twoByTwo()
	want := []struct{ officer, player string }{
		{"a", "x"}, {"b", "x"},
		{"a", "y"}, {"b", "y"},
		{"a", "x"}, // wraps around
	}
	for i, w := range want {
		p := r.Next()
		if p.Officer.ID != w.officer || p.Player.ID != w.player {
			t.Fatalf("pairing %d = %s/%s, want %s/%s", i, p.Officer.ID, p.Player.ID, w.officer, w.player)
		}
	}
}

func TestResetRewinds(t *testing.T) {
	r := twoByTwo()
	r.Next()
	r.Next()
	r.Reset()
	if p := r.Next(); p.Officer.ID != "a" || p.Player.ID != "x" {
		t.Fatalf("reset did not rewind: %s/%s", p.Officer.ID, p.Player.ID)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := `officers:
  - id: sarge
    opening_line: "License, please."
    personality: gruff
    behaviors:
      default: skeptical
      grandma: soft
    raise_suspicion: flattery
    lower_suspicion: honesty
    catchphrases:
      - "Move along"
    voice: baritone
players:
  - id: nana
    type: GrandMa
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	p := r.Next()
	if p.Officer.ID != "sarge" || p.Officer.OpeningLine != "License, please." {
		t.Fatalf("officer not loaded: %+v", p.Officer)
	}
	if p.Officer.Behaviors.GrandMa != "soft" {
		t.Fatalf("behavior variants not loaded: %+v", p.Officer.Behaviors)
	}
	if len(p.Officer.Catchphrases) != 1 || p.Officer.Catchphrases[0] != "Move along" {
		t.Fatalf("catchphrases not loaded: %+v", p.Officer.Catchphrases)
	}
	if p.Player.Type != types.PlayerTypeGrandMa {
		t.Fatalf("player type not loaded: %+v", p.Player)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultRosterIsUsable(t *testing.T) {
	r := Default()
	p := r.Next()
	if p.Officer.OpeningLine == "" || p.Officer.Personality == "" {
		t.Fatalf("default officer incomplete: %+v", p.Officer)
	}
}
