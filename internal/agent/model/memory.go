package model

import "context"

// Insight is one remembered user preference as stored in the shared
// Preferences hash (one JSON array per user).
type Insight struct {
	Insight   string `json:"insight"`
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// PreferenceRecord is the per-insight vector record stored in its own
// Redis hash under <namespace>:UserPref:<user>:<id>. Embedding may be
// empty when the vectorizer was unavailable at write time.
type PreferenceRecord struct {
	ID        string
	UserName  string
	Text      string
	Source    string
	Timestamp string
	Embedding []float32
}

// ScoredInsight pairs an insight with its cosine similarity against a query.
type ScoredInsight struct {
	Insight
	Score float64 `json:"score"`
}

type PreferenceStore interface {
	// ListInsights returns the stored insights for a user. Unknown users
	// yield an empty slice, not an error.
	ListInsights(ctx context.Context, userName string) ([]Insight, error)

	// SaveInsight appends an insight to the user's list and writes the
	// matching vector record when an embedder is available.
	SaveInsight(ctx context.Context, userName, text, source string) error

	// SearchInsights ranks the user's insights by similarity to the query.
	// Without a usable embedder it falls back to the unranked list.
	SearchInsights(ctx context.Context, userName, query string, topK int) ([]ScoredInsight, error)

	// Users lists the user names present in the preferences hash.
	Users(ctx context.Context) ([]string, error)

	// ReplaceAll deletes every stored preference key and rewrites the
	// given memories. Used by seeding.
	ReplaceAll(ctx context.Context, memories map[string][]Insight) error
}

// Embedder turns text into a vector. Implementations may cache.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}
