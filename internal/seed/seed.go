package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// SourceSeed marks insights written by the seeding pass.
const SourceSeed = "seed"

// File is the on-disk seed format: a map of user name to starter insights.
type File struct {
	UserMemories map[string][]Entry `json:"user_memories"`
}

type Entry struct {
	Insight string `json:"insight"`
}

// Load reads and decodes a seed file.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Run wipes stored preferences and rewrites them from the seed file.
// A missing file is a skip, not an error; any other failure leaves the
// store unseeded and is reported to the caller.
func Run(ctx context.Context, store model.PreferenceStore, path string) error {
	f, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logx.Warn().Str("path", path).Msg("seed file not found, skipping seeding")
			return nil
		}
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	memories := make(map[string][]model.Insight, len(f.UserMemories))
	for user, entries := range f.UserMemories {
		insights := make([]model.Insight, 0, len(entries))
		for _, e := range entries {
			if e.Insight == "" {
				continue
			}
			insights = append(insights, model.Insight{Insight: e.Insight, Source: SourceSeed, Timestamp: now})
		}
		memories[user] = insights
	}

	if err := store.ReplaceAll(ctx, memories); err != nil {
		return err
	}

	users, err := store.Users(ctx)
	if err != nil {
		return err
	}
	logx.Info().Strs("users", users).Msg("seeded user preferences")
	return nil
}
