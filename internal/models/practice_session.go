package models

import "time"

const (
	ConfidenceRatingMin = 1
	ConfidenceRatingMax = 5
)

// PracticeSession is one finished on-camera practice run. PublicID is the
// identifier handed to the client; the numeric primary key never leaves
// the server.
type PracticeSession struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	PublicID        string    `gorm:"uniqueIndex;not null" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"userId"`
	PromptCategory  string    `gorm:"not null" json:"promptCategory"`
	PromptText      string    `json:"promptText"`
	DurationSeconds int       `gorm:"not null;default:0" json:"durationSeconds"`
	Confidence      int       `gorm:"not null;default:0" json:"confidence"`
	Reflection      string    `json:"reflection"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
}
