package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
)

func TestTierProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		tier      string
		completed []string
		want      int
	}{
		{name: "empty set", tier: models.TierShyStarter, completed: nil, want: 0},
		{name: "one of 45", tier: models.TierShyStarter, completed: []string{"s_w1_p1"}, want: 2},
		{name: "other tier ids ignored", tier: models.TierShyStarter, completed: []string{"g_w1_p1", "c_w1_p1"}, want: 0},
		{name: "mixed tiers count own only", tier: models.TierShyStarter, completed: []string{"s_w1_p1", "s_w1_p2", "g_w1_p1"}, want: 4},
		{name: "unknown ids ignored", tier: models.TierShyStarter, completed: []string{"s_w99_p1", "junk"}, want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := TierProgressPercent(testCase.tier, testCase.completed)
			if got != testCase.want {
				t.Fatalf("expected %d%%, got %d%%", testCase.want, got)
			}
		})
	}
}

func TestTierProgressPercentFullTier(t *testing.T) {
	completed := make([]string, 0, 45)
	for week := 1; week <= 15; week++ {
		for order := 1; order <= 3; order++ {
			completed = append(completed, fmt.Sprintf("g_w%d_p%d", week, order))
		}
	}
	if got := TierProgressPercent(models.TierGrowingSpeaker, completed); got != 100 {
		t.Fatalf("full tier must be 100%%, got %d%%", got)
	}
}

func TestWeekCompletionCount(t *testing.T) {
	completed := []string{"g_w3_p1", "g_w3_p3", "g_w4_p1", "s_w3_p2"}

	if got := WeekCompletionCount(models.TierGrowingSpeaker, 3, completed); got != 2 {
		t.Fatalf("expected 2 of week 3 completed, got %d", got)
	}
	if got := WeekCompletionCount(models.TierGrowingSpeaker, 4, completed); got != 1 {
		t.Fatalf("expected 1 of week 4 completed, got %d", got)
	}
	if got := WeekCompletionCount(models.TierGrowingSpeaker, 5, completed); got != 0 {
		t.Fatalf("expected 0 of week 5 completed, got %d", got)
	}
}

func TestBuildWeeklyStatusNotStarted(t *testing.T) {
	service := NewProgressService(newStubDayStore(), newStubWeeklyStore(), newStubChallengeBadgeStore(), newStubWeeklyBadgeStore(), false)

	status, err := service.BuildWeeklyStatus(7, time.Now())
	if err != nil {
		t.Fatalf("build status: %v", err)
	}
	if status.Status != WeeklyStatusNotStarted {
		t.Fatalf("expected not_started, got %q", status.Status)
	}
	if status.Progress != nil || status.Weeks != nil {
		t.Fatal("not_started status must carry no progress")
	}
}

func TestBuildWeeklyStatusInProgress(t *testing.T) {
	weekly := newStubWeeklyStore()
	weeklyBadges := newStubWeeklyBadgeStore()
	service := NewProgressService(newStubDayStore(), weekly, newStubChallengeBadgeStore(), weeklyBadges, false)

	start := mustParseDay(t, "2024-01-01")
	progress := models.WeeklyProgress{
		UserID:           7,
		Tier:             models.TierGrowingSpeaker,
		StartDate:        start,
		CompletedPrompts: []string{"g_w1_p1", "g_w1_p2", "g_w1_p3"},
	}
	if err := weekly.CreateProgress(&progress); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if _, _, err := weeklyBadges.InsertBadge(7, models.TierGrowingSpeaker, 1, start); err != nil {
		t.Fatalf("seed badge: %v", err)
	}

	now := mustParseDay(t, "2024-01-08")
	status, err := service.BuildWeeklyStatus(7, now)
	if err != nil {
		t.Fatalf("build status: %v", err)
	}
	if status.Status != WeeklyStatusInProgress {
		t.Fatalf("expected in_progress, got %q", status.Status)
	}
	if len(status.Weeks) != 15 {
		t.Fatalf("expected 15 week entries, got %d", len(status.Weeks))
	}

	week1 := status.Weeks[0]
	if !week1.Unlocked || week1.Completed != 3 || !week1.BadgeEarned {
		t.Fatalf("unexpected week 1 state %+v", week1)
	}
	if !status.Weeks[1].Unlocked {
		t.Fatal("week 2 must be unlocked seven days in")
	}
	if status.Weeks[2].Unlocked {
		t.Fatal("week 3 must still be locked seven days in")
	}
	if status.Percent != 7 {
		t.Fatalf("3 of 45 prompts must round to 7%%, got %d%%", status.Percent)
	}
}

func TestBuildChallengeSummary(t *testing.T) {
	days := newStubDayStore()
	challengeBadges := newStubChallengeBadgeStore()
	service := NewProgressService(days, newStubWeeklyStore(), challengeBadges, newStubWeeklyBadgeStore(), false)

	for day := 1; day <= 15; day++ {
		if _, _, err := days.InsertDay(7, day, time.Now()); err != nil {
			t.Fatalf("insert day: %v", err)
		}
	}
	earned := time.Now()
	if _, _, err := challengeBadges.InsertBadge(7, 7, earned); err != nil {
		t.Fatalf("seed badge: %v", err)
	}

	summary, err := service.BuildChallengeSummary(7)
	if err != nil {
		t.Fatalf("build summary: %v", err)
	}
	if summary.CompletedDays != 15 {
		t.Fatalf("expected 15 completed days, got %d", summary.CompletedDays)
	}
	if summary.Percent != 50 {
		t.Fatalf("15 of 30 days must be 50%%, got %d%%", summary.Percent)
	}
	if len(summary.Milestones) != 3 {
		t.Fatalf("expected 3 milestone entries, got %d", len(summary.Milestones))
	}
	if !summary.Milestones[0].Earned || summary.Milestones[0].EarnedAt == nil {
		t.Fatal("milestone 7 must be earned with a timestamp")
	}
	if summary.Milestones[1].Earned || summary.Milestones[2].Earned {
		t.Fatal("milestones 15 and 30 must not be earned")
	}
}
