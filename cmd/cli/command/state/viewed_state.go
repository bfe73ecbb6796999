package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ViewedState is the per-device record of which feed items have been
// seen. Items are keyed by their synthetic feed ID ("reel-<id>",
// "script-<id>", "announcement-<id>"). The set never syncs across
// devices; each keeps its own unread badge.
type ViewedState struct {
	Viewed map[string]bool `json:"viewed"`
}

func GetStateFilePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".agencyhub", "viewed.json")
}

func LoadViewedState() (*ViewedState, error) {
	data, err := os.ReadFile(GetStateFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return &ViewedState{Viewed: make(map[string]bool)}, nil
		}
		return nil, err
	}

	var state ViewedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Viewed == nil {
		state.Viewed = make(map[string]bool)
	}
	return &state, nil
}

func SaveViewedState(state *ViewedState) error {
	stateDir := filepath.Dir(GetStateFilePath())
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(GetStateFilePath(), data, 0600)
}

// MarkViewed records the given feed IDs as seen.
func (s *ViewedState) MarkViewed(ids ...string) {
	for _, id := range ids {
		s.Viewed[id] = true
	}
}

// Prune drops viewed entries that no longer exist in the feed, so the
// file does not grow without bound.
func (s *ViewedState) Prune(liveIDs []string) {
	live := make(map[string]bool, len(liveIDs))
	for _, id := range liveIDs {
		live[id] = true
	}
	for id := range s.Viewed {
		if !live[id] {
			delete(s.Viewed, id)
		}
	}
}

func ClearViewedState() error {
	err := os.Remove(GetStateFilePath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
