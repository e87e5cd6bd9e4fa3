package services

import (
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
)

type AdminUserStore interface {
	UserStore
	ListAll() ([]models.User, error)
}

type AdminChallengeStore interface {
	ChallengeDayStore
	CountAllDays() (int64, error)
	CountAllBadges() (int64, error)
}

type AdminWeeklyStore interface {
	WeeklyProgressStore
	CountEnrollments() (int64, error)
	CountAllBadges() (int64, error)
}

type AdminSessionStore interface {
	PracticeSessionStore
	CountAll() (int64, error)
}

// AdminOverview holds whole-site counters for the admin dashboard.
type AdminOverview struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalSessions     int64 `json:"totalSessions"`
	ChallengeDaysDone int64 `json:"challengeDaysDone"`
	ChallengeBadges   int64 `json:"challengeBadges"`
	WeeklyEnrollments int64 `json:"weeklyEnrollments"`
	WeeklyBadges      int64 `json:"weeklyBadges"`
}

// AdminUserSummary is one row of the admin user list. WeeklyTier is
// empty when the user never enrolled in the weekly challenge.
type AdminUserSummary struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	IsAdmin       bool      `json:"isAdmin"`
	CreatedAt     time.Time `json:"createdAt"`
	SessionCount  int64     `json:"sessionCount"`
	ChallengeDays int64     `json:"challengeDays"`
	WeeklyTier    string    `json:"weeklyTier,omitempty"`
}

type AdminService struct {
	users     AdminUserStore
	challenge AdminChallengeStore
	weekly    AdminWeeklyStore
	sessions  AdminSessionStore
}

func NewAdminService(users AdminUserStore, challenge AdminChallengeStore, weekly AdminWeeklyStore, sessions AdminSessionStore) *AdminService {
	return &AdminService{
		users:     users,
		challenge: challenge,
		weekly:    weekly,
		sessions:  sessions,
	}
}

func (service *AdminService) BuildOverview() (AdminOverview, error) {
	var overview AdminOverview
	var err error

	if overview.TotalUsers, err = service.users.CountUsers(); err != nil {
		return AdminOverview{}, err
	}
	if overview.TotalSessions, err = service.sessions.CountAll(); err != nil {
		return AdminOverview{}, err
	}
	if overview.ChallengeDaysDone, err = service.challenge.CountAllDays(); err != nil {
		return AdminOverview{}, err
	}
	if overview.ChallengeBadges, err = service.challenge.CountAllBadges(); err != nil {
		return AdminOverview{}, err
	}
	if overview.WeeklyEnrollments, err = service.weekly.CountEnrollments(); err != nil {
		return AdminOverview{}, err
	}
	if overview.WeeklyBadges, err = service.weekly.CountAllBadges(); err != nil {
		return AdminOverview{}, err
	}

	return overview, nil
}

func (service *AdminService) ListUserSummaries() ([]AdminUserSummary, error) {
	users, err := service.users.ListAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]AdminUserSummary, 0, len(users))
	for _, user := range users {
		summary := AdminUserSummary{
			ID:        user.ID,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		}
		if summary.SessionCount, err = service.sessions.CountByUser(user.ID); err != nil {
			return nil, err
		}
		if summary.ChallengeDays, err = service.challenge.CountDays(user.ID); err != nil {
			return nil, err
		}
		progress, found, err := service.weekly.FindProgressByUser(user.ID)
		if err != nil {
			return nil, err
		}
		if found {
			summary.WeeklyTier = progress.Tier
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
