package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/cool-vibes/travelchat/internal/agent/model"
	logx "github.com/cool-vibes/travelchat/pkg/logger"
)

// ===================================
// User Preference Tools
// ===================================

const sourceConversation = "conversation"

type UserPreferencesInput struct {
	UserName string `json:"user_name"`
}

func createUserPreferencesTool(prefs model.PreferenceStore) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolUserPreferences,
			Desc: "Retrieve stored preferences for a user from long-term memory. Use this whenever a user introduces themselves by name, before making recommendations.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_name": {
					Type:     "string",
					Desc:     "The name of the user to retrieve preferences for",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *UserPreferencesInput) (string, error) {
			if in.UserName == "" {
				return "", fmt.Errorf("user_name is required")
			}

			insights, err := prefs.ListInsights(ctx, in.UserName)
			if err != nil {
				logx.Error().Err(err).Str("user", in.UserName).Msg("preference lookup failed")
				return "User preferences service is not available right now.", nil
			}
			if len(insights) == 0 {
				return fmt.Sprintf("No stored preferences found for %s. This might be a new user.", in.UserName), nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "User %s's preferences:", in.UserName)
			for _, ins := range insights {
				b.WriteString("\n- " + ins.Insight)
			}
			return b.String(), nil
		},
	)
}

type SaveUserPreferenceInput struct {
	UserName   string `json:"user_name"`
	Preference string `json:"preference"`
}

func createSaveUserPreferenceTool(prefs model.PreferenceStore) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSaveUserPreference,
			Desc: "Remember a new preference the user just shared (budget, travel style, sports interests, dietary needs). Store one concise fact per call.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_name": {
					Type:     "string",
					Desc:     "The name of the user the preference belongs to",
					Required: true,
				},
				"preference": {
					Type:     "string",
					Desc:     "The preference to remember, phrased as a short statement. Example: Prefers aisle seats on long flights",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *SaveUserPreferenceInput) (string, error) {
			if in.UserName == "" {
				return "", fmt.Errorf("user_name is required")
			}
			if strings.TrimSpace(in.Preference) == "" {
				return "", fmt.Errorf("preference is required")
			}

			if err := prefs.SaveInsight(ctx, in.UserName, strings.TrimSpace(in.Preference), sourceConversation); err != nil {
				logx.Error().Err(err).Str("user", in.UserName).Msg("preference save failed")
				return "I couldn't save that preference right now, but I'll keep it in mind for this conversation.", nil
			}
			return fmt.Sprintf("Saved preference for %s.", in.UserName), nil
		},
	)
}

type SearchUserPreferencesInput struct {
	UserName   string `json:"user_name"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchUserPreferencesOutput struct {
	Matches []model.ScoredInsight `json:"matches"`
	Total   int                   `json:"total"`
	Note    string                `json:"note,omitempty"`
}

func createSearchUserPreferencesTool(prefs model.PreferenceStore) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchUserPreferences,
			Desc: "Search a user's stored preferences by topic, ranked by relevance. Use when only part of the profile matters, e.g. query 'seating' before recommending tickets.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_name": {
					Type:     "string",
					Desc:     "The name of the user whose preferences to search",
					Required: true,
				},
				"query": {
					Type:     "string",
					Desc:     "What to look for, e.g. 'hotel style', 'budget', 'sports teams'",
					Required: true,
				},
				"max_results": {
					Type: "number",
					Desc: "Maximum number of matches to return (default: 3, max: 10)",
				},
			}),
		},
		func(ctx context.Context, in *SearchUserPreferencesInput) (*SearchUserPreferencesOutput, error) {
			if in.UserName == "" {
				return nil, fmt.Errorf("user_name is required")
			}
			if in.Query == "" {
				return nil, fmt.Errorf("query is required")
			}
			topK := 0
			if in.MaxResults != 0 {
				topK = clampInt(in.MaxResults, 1, 10)
			}

			matches, err := prefs.SearchInsights(ctx, in.UserName, in.Query, topK)
			if err != nil {
				logx.Error().Err(err).Str("user", in.UserName).Msg("preference search failed")
				return &SearchUserPreferencesOutput{
					Matches: []model.ScoredInsight{},
					Note:    "Preference search is unavailable right now.",
				}, nil
			}
			if matches == nil {
				matches = []model.ScoredInsight{}
			}
			return &SearchUserPreferencesOutput{Matches: matches, Total: len(matches)}, nil
		},
	)
}
