// Package roster holds the fixed lineup of officers and drivers the game
// cycles through, and loads custom lineups from YAML.
package roster

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nimblefox/pullover/internal/types"
)

// ErrEmptyRoster means the lineup has no officers or no drivers.
var ErrEmptyRoster = errors.New("roster needs at least one officer and one driver")

// Pairing is the officer/driver combination for one round.
type Pairing struct {
	Officer *types.PersonalityProfile
	Player  *types.PlayerProfile
}

// Roster cycles pairings: officers cycle fully before the driver advances.
type Roster struct {
	officers []types.PersonalityProfile
	players  []types.PlayerProfile

	officerIndex int
	playerIndex  int
}

// New builds a roster from explicit lineups.
func New(officers []types.PersonalityProfile, players []types.PlayerProfile) (*Roster, error) {
	if len(officers) == 0 || len(players) == 0 {
		return nil, ErrEmptyRoster
	}
	return &Roster{officers: officers, players: players}, nil
}

type rosterFile struct {
	Officers []types.PersonalityProfile `yaml:"officers"`
	Players  []types.PlayerProfile     `yaml:"players"`
}

// Load reads a YAML lineup file.
func Load(path string) (*Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	return New(file.Officers, file.Players)
}

// Next returns the current pairing and advances the cycle.
func (r *Roster) Next() Pairing {
	pairing := Pairing{
		Officer: &r.officers[r.officerIndex],
		Player:  &r.players[r.playerIndex],
	}
	r.officerIndex++
	if r.officerIndex >= len(r.officers) {
		r.officerIndex = 0
		r.playerIndex = (r.playerIndex + 1) % len(r.players)
	}
	return pairing
}

// Reset rewinds the cycle to the first pairing.
func (r *Roster) Reset() {
	r.officerIndex = 0
	r.playerIndex = 0
}

// Default is the built-in lineup used when no roster file is configured.
func Default() *Roster {
	r, err := New(defaultOfficers(), defaultPlayers())
	if err != nil {
		panic(err)
	}
	return r
}

func defaultOfficers() []types.PersonalityProfile {
	return []types.PersonalityProfile{
		{
			ID:          "sgt-briggs",
			OpeningLine: "License and registration. You know how fast you were going back there?",
			Personality: "Sergeant Briggs, 22 years on highway patrol. Gruff, tired, seen every excuse in the book twice.",
			Behaviors: types.BehaviorSet{
				Default: "Skeptical of everything. Warms up only to genuine honesty.",
				HotGirl: "Pretends not to notice, overcompensates by being extra formal.",
				GrandMa: "Softens immediately, reminds him of his mother.",
			},
			RaiseSuspicion: "Flattery, name-dropping, claiming to know the chief.",
			LowerSuspicion: "Admitting fault plainly, mentioning long shifts, dry humor.",
			Catchphrases:   []string{"Save it for the judge.", "Twenty-two years, pal. Twenty-two."},
			Voice:          "baritone-gravel",
		},
		{
			ID:          "officer-reyes",
			OpeningLine: "Afternoon. Any idea why I pulled you over today?",
			Personality: "Officer Reyes, second year on the job. By-the-book and eager, quotes the traffic code from memory.",
			Behaviors: types.BehaviorSet{
				Default: "Polite but rigid. Follows procedure to the letter.",
				HotGirl: "Flustered, sticks even harder to the script.",
				GrandMa: "Patient and helpful, explains everything twice.",
			},
			RaiseSuspicion: "Interrupting, questioning her authority, fake crying.",
			LowerSuspicion: "Knowing the actual speed limit, polite cooperation.",
			Catchphrases:   []string{"Per section 22350...", "I don't make the rules, I cite them."},
			Voice:          "crisp-alto",
		},
	}
}

func defaultPlayers() []types.PlayerProfile {
	return []types.PlayerProfile{
		{ID: "commuter", Type: types.PlayerTypeDefault},
		{ID: "influencer", Type: types.PlayerTypeHotGirl},
		{ID: "nana", Type: types.PlayerTypeGrandMa},
	}
}
