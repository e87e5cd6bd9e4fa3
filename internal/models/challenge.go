package models

import "time"

const (
	ChallengeDayMin = 1
	ChallengeDayMax = 30
)

// BadgeMilestones lists the day-count thresholds that earn a thirty-day
// challenge badge, in ascending order.
var BadgeMilestones = []int{7, 15, 30}

func IsBadgeMilestone(milestone int) bool {
	for _, known := range BadgeMilestones {
		if milestone == known {
			return true
		}
	}
	return false
}

// ChallengeDayProgress marks one completed day of the thirty-day challenge.
// Rows are write-once: completing the same day again must not create a
// second row, which the (user, day) unique index guarantees.
type ChallengeDayProgress struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_challenge_user_day" json:"userId"`
	DayNumber   int       `gorm:"not null;uniqueIndex:uidx_challenge_user_day" json:"dayNumber"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

type ChallengeBadge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_challenge_badge" json:"userId"`
	Milestone int       `gorm:"not null;uniqueIndex:uidx_challenge_badge" json:"milestone"`
	EarnedAt  time.Time `gorm:"not null" json:"earnedAt"`
}
