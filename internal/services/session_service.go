package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound         = errors.New("practice session not found")
	ErrInvalidSessionInput     = errors.New("invalid practice session input")
	ErrInvalidConfidenceRating = errors.New("confidence rating must be between 1 and 5")
)

type PracticeSessionStore interface {
	Create(session *models.PracticeSession) error
	ListByUser(userID uint) ([]models.PracticeSession, error)
	FindByPublicID(userID uint, publicID string) (models.PracticeSession, bool, error)
	DeleteByPublicID(userID uint, publicID string) (bool, error)
	CountByUser(userID uint) (int64, error)
}

type PracticeSessionInput struct {
	PromptCategory  string
	PromptText      string
	DurationSeconds int
	Confidence      int
	Reflection      string
}

// SessionService keeps a history of finished practice runs. Recordings
// themselves never reach the server; only metadata the user chose to
// keep is stored.
type SessionService struct {
	sessions PracticeSessionStore
}

func NewSessionService(sessions PracticeSessionStore) *SessionService {
	return &SessionService{sessions: sessions}
}

func (service *SessionService) RecordSession(userID uint, input PracticeSessionInput, now time.Time) (models.PracticeSession, error) {
	category := strings.TrimSpace(input.PromptCategory)
	if category == "" {
		return models.PracticeSession{}, ErrInvalidSessionInput
	}
	if input.DurationSeconds < 0 {
		return models.PracticeSession{}, ErrInvalidSessionInput
	}
	if input.Confidence != 0 && (input.Confidence < models.ConfidenceRatingMin || input.Confidence > models.ConfidenceRatingMax) {
		return models.PracticeSession{}, ErrInvalidConfidenceRating
	}

	session := models.PracticeSession{
		PublicID:        uuid.NewString(),
		UserID:          userID,
		PromptCategory:  category,
		PromptText:      strings.TrimSpace(input.PromptText),
		DurationSeconds: input.DurationSeconds,
		Confidence:      input.Confidence,
		Reflection:      strings.TrimSpace(input.Reflection),
		CreatedAt:       now,
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.PracticeSession{}, err
	}
	return session, nil
}

func (service *SessionService) ListSessions(userID uint) ([]models.PracticeSession, error) {
	return service.sessions.ListByUser(userID)
}

func (service *SessionService) DeleteSession(userID uint, publicID string) error {
	deleted, err := service.sessions.DeleteByPublicID(userID, publicID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}
