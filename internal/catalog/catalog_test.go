package catalog

import (
	"testing"

	"github.com/ChrisAdy1/cringeshield/internal/models"
)

func TestEveryTierHasExactCatalogShape(t *testing.T) {
	tiers := []string{models.TierShyStarter, models.TierGrowingSpeaker, models.TierConfidentCreator}

	for _, tier := range tiers {
		prompts := WeeklyPromptsForTier(tier)
		if len(prompts) != WeeklyPromptsPerTier {
			t.Fatalf("tier %s has %d prompts, want %d", tier, len(prompts), WeeklyPromptsPerTier)
		}
		for week := 1; week <= WeeklyWeekCount; week++ {
			weekPrompts := WeeklyPromptsForWeek(tier, week)
			if len(weekPrompts) != WeeklyPromptsPerWeek {
				t.Fatalf("tier %s week %d has %d prompts, want %d", tier, week, len(weekPrompts), WeeklyPromptsPerWeek)
			}
			for order, prompt := range weekPrompts {
				if prompt.Week != week {
					t.Fatalf("tier %s week %d returned prompt for week %d", tier, week, prompt.Week)
				}
				if prompt.Order != order+1 {
					t.Fatalf("tier %s week %d prompt order %d, want %d", tier, week, prompt.Order, order+1)
				}
				if prompt.Text == "" {
					t.Fatalf("tier %s week %d prompt %d has empty text", tier, week, order+1)
				}
			}
		}
	}
}

func TestWeeklyPromptIDEncoding(t *testing.T) {
	tests := []struct {
		tier  string
		week  int
		order int
		want  string
	}{
		{models.TierShyStarter, 1, 1, "s_w1_p1"},
		{models.TierGrowingSpeaker, 3, 2, "g_w3_p2"},
		{models.TierConfidentCreator, 15, 3, "c_w15_p3"},
	}

	for _, testCase := range tests {
		prompts := WeeklyPromptsForWeek(testCase.tier, testCase.week)
		got := prompts[testCase.order-1].ID
		if got != testCase.want {
			t.Fatalf("expected prompt id %q, got %q", testCase.want, got)
		}
	}
}

func TestWeeklyPromptByID(t *testing.T) {
	prompt, ok := WeeklyPromptByID("g_w3_p1")
	if !ok {
		t.Fatal("expected g_w3_p1 to exist")
	}
	if prompt.Tier != models.TierGrowingSpeaker || prompt.Week != 3 || prompt.Order != 1 {
		t.Fatalf("unexpected prompt resolved: %+v", prompt)
	}

	if _, ok := WeeklyPromptByID("x_w1_p1"); ok {
		t.Fatal("unknown prompt id must not resolve")
	}
	if _, ok := WeeklyPromptByID(""); ok {
		t.Fatal("empty prompt id must not resolve")
	}
}

func TestWeeklyPromptIDsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, tier := range []string{models.TierShyStarter, models.TierGrowingSpeaker, models.TierConfidentCreator} {
		for _, prompt := range WeeklyPromptsForTier(tier) {
			if existing, dup := seen[prompt.ID]; dup {
				t.Fatalf("prompt id %s appears in both %s and %s", prompt.ID, existing, tier)
			}
			seen[prompt.ID] = tier
		}
	}
}

func TestWeeklyPromptsForUnknownTierOrWeek(t *testing.T) {
	if prompts := WeeklyPromptsForTier("advanced"); prompts != nil {
		t.Fatalf("unknown tier must return nil, got %d prompts", len(prompts))
	}
	if prompts := WeeklyPromptsForWeek(models.TierShyStarter, 0); prompts != nil {
		t.Fatal("week 0 must return nil")
	}
	if prompts := WeeklyPromptsForWeek(models.TierShyStarter, 16); prompts != nil {
		t.Fatal("week 16 must return nil")
	}
}

func TestDailyPromptsCoverEveryDay(t *testing.T) {
	prompts := DailyPrompts()
	if len(prompts) != models.ChallengeDayMax {
		t.Fatalf("expected %d daily prompts, got %d", models.ChallengeDayMax, len(prompts))
	}
	for index, prompt := range prompts {
		if prompt.Day != index+1 {
			t.Fatalf("daily prompt at index %d has day %d", index, prompt.Day)
		}
		if prompt.Title == "" || prompt.Text == "" {
			t.Fatalf("daily prompt %d is missing content", prompt.Day)
		}
	}
}

func TestDailyPromptForDayBounds(t *testing.T) {
	if _, ok := DailyPromptForDay(0); ok {
		t.Fatal("day 0 must not resolve")
	}
	if _, ok := DailyPromptForDay(31); ok {
		t.Fatal("day 31 must not resolve")
	}
	prompt, ok := DailyPromptForDay(15)
	if !ok || prompt.Day != 15 {
		t.Fatalf("expected day 15 prompt, got %+v ok=%v", prompt, ok)
	}
}
