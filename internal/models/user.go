package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	IsAdmin            bool      `gorm:"not null;default:false" json:"isAdmin"`
	PracticeReminders  bool      `gorm:"not null;default:true" json:"practiceReminders"`
	MilestoneEmails    bool      `gorm:"not null;default:true" json:"milestoneEmails"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt          time.Time `gorm:"not null" json:"createdAt"`
}
