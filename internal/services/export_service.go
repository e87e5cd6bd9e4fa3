package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
)

type ExportData struct {
	Email           string                        `json:"email"`
	ExportedAt      time.Time                     `json:"exportedAt"`
	Sessions        []models.PracticeSession      `json:"sessions"`
	ChallengeDays   []models.ChallengeDayProgress `json:"challengeDays"`
	ChallengeBadges []models.ChallengeBadge       `json:"challengeBadges"`
	WeeklyChallenge *models.WeeklyProgress        `json:"weeklyChallenge,omitempty"`
	WeeklyBadges    []models.WeeklyBadge          `json:"weeklyBadges"`
}

// ExportService assembles everything a user owns for download. Exports
// are read-only snapshots; account deletion is a separate operation.
type ExportService struct {
	users           UserStore
	sessions        PracticeSessionStore
	days            ChallengeDayStore
	challengeBadges ChallengeBadgeStore
	weekly          WeeklyProgressStore
	weeklyBadges    WeeklyBadgeStore
}

func NewExportService(users UserStore, sessions PracticeSessionStore, days ChallengeDayStore, challengeBadges ChallengeBadgeStore, weekly WeeklyProgressStore, weeklyBadges WeeklyBadgeStore) *ExportService {
	return &ExportService{
		users:           users,
		sessions:        sessions,
		days:            days,
		challengeBadges: challengeBadges,
		weekly:          weekly,
		weeklyBadges:    weeklyBadges,
	}
}

func (service *ExportService) BuildExport(userID uint, now time.Time) (ExportData, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ExportData{}, err
	}

	sessions, err := service.sessions.ListByUser(userID)
	if err != nil {
		return ExportData{}, err
	}
	days, err := service.days.ListDays(userID)
	if err != nil {
		return ExportData{}, err
	}
	challengeBadges, err := service.challengeBadges.ListBadges(userID)
	if err != nil {
		return ExportData{}, err
	}
	weeklyBadges, err := service.weeklyBadges.ListBadges(userID)
	if err != nil {
		return ExportData{}, err
	}

	data := ExportData{
		Email:           user.Email,
		ExportedAt:      now,
		Sessions:        sessions,
		ChallengeDays:   days,
		ChallengeBadges: challengeBadges,
		WeeklyBadges:    weeklyBadges,
	}

	progress, found, err := service.weekly.FindProgressByUser(userID)
	if err != nil {
		return ExportData{}, err
	}
	if found {
		data.WeeklyChallenge = &progress
	}

	return data, nil
}

// BuildCSV renders the practice session history as CSV, the format the
// client offers for spreadsheet import.
func (service *ExportService) BuildCSV(data ExportData) ([]byte, error) {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)

	if err := writer.Write([]string{"recorded_at", "prompt_category", "prompt_text", "duration_seconds", "confidence", "reflection"}); err != nil {
		return nil, err
	}
	for _, session := range data.Sessions {
		record := []string{
			session.CreatedAt.Format(time.RFC3339),
			session.PromptCategory,
			session.PromptText,
			strconv.Itoa(session.DurationSeconds),
			strconv.Itoa(session.Confidence),
			session.Reflection,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}
