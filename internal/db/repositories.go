package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Challenge *ChallengeRepository
	Weekly    *WeeklyRepository
	Sessions  *SessionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Challenge: NewChallengeRepository(database),
		Weekly:    NewWeeklyRepository(database),
		Sessions:  NewSessionRepository(database),
	}
}
