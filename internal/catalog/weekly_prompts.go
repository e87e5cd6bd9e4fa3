package catalog

import (
	"fmt"

	"github.com/ChrisAdy1/cringeshield/internal/models"
)

const (
	// WeeklyWeekCount and WeeklyPromptsPerWeek fix the catalog shape:
	// every tier carries exactly 45 prompts. Progress percentages divide
	// by that product, so the shape must never drift per tier.
	WeeklyWeekCount      = 15
	WeeklyPromptsPerWeek = 3
	WeeklyPromptsPerTier = WeeklyWeekCount * WeeklyPromptsPerWeek
)

// WeeklyPrompt is static reference data. The ID encodes tier, week and
// order ("g_w3_p1" is growing_speaker, week 3, first prompt) and is the
// only thing persisted per user.
type WeeklyPrompt struct {
	ID    string `json:"id"`
	Tier  string `json:"tier"`
	Week  int    `json:"week"`
	Order int    `json:"order"`
	Text  string `json:"text"`
}

var tierPrefixes = map[string]string{
	models.TierShyStarter:       "s",
	models.TierGrowingSpeaker:   "g",
	models.TierConfidentCreator: "c",
}

var (
	weeklyPromptsByTier map[string][]WeeklyPrompt
	weeklyPromptsByID   map[string]WeeklyPrompt
)

func init() {
	weeklyPromptsByTier = make(map[string][]WeeklyPrompt, len(tierTexts))
	weeklyPromptsByID = make(map[string]WeeklyPrompt, len(tierTexts)*WeeklyPromptsPerTier)

	for tier, weeks := range tierTexts {
		prompts := make([]WeeklyPrompt, 0, WeeklyPromptsPerTier)
		for weekIndex, texts := range weeks {
			for orderIndex, text := range texts {
				prompt := WeeklyPrompt{
					ID:    weeklyPromptID(tier, weekIndex+1, orderIndex+1),
					Tier:  tier,
					Week:  weekIndex + 1,
					Order: orderIndex + 1,
					Text:  text,
				}
				prompts = append(prompts, prompt)
				weeklyPromptsByID[prompt.ID] = prompt
			}
		}
		weeklyPromptsByTier[tier] = prompts
	}
}

func weeklyPromptID(tier string, week int, order int) string {
	return fmt.Sprintf("%s_w%d_p%d", tierPrefixes[tier], week, order)
}

// WeeklyPromptByID resolves a prompt id against the catalog.
func WeeklyPromptByID(promptID string) (WeeklyPrompt, bool) {
	prompt, ok := weeklyPromptsByID[promptID]
	return prompt, ok
}

// WeeklyPromptsForTier returns the full ordered 45-prompt list for a tier,
// or nil for an unknown tier.
func WeeklyPromptsForTier(tier string) []WeeklyPrompt {
	prompts, ok := weeklyPromptsByTier[tier]
	if !ok {
		return nil
	}
	result := make([]WeeklyPrompt, len(prompts))
	copy(result, prompts)
	return result
}

// WeeklyPromptsForWeek returns the (up to three) prompts of one week of
// one tier, in order.
func WeeklyPromptsForWeek(tier string, week int) []WeeklyPrompt {
	if week < models.WeeklyWeekMin || week > models.WeeklyWeekMax {
		return nil
	}
	prompts, ok := weeklyPromptsByTier[tier]
	if !ok {
		return nil
	}
	result := make([]WeeklyPrompt, 0, WeeklyPromptsPerWeek)
	for _, prompt := range prompts {
		if prompt.Week == week {
			result = append(result, prompt)
		}
	}
	return result
}
