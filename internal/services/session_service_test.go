package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
)

type stubSessionStore struct {
	sessions map[uint][]models.PracticeSession
	nextID   uint
	err      error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[uint][]models.PracticeSession)}
}

func (stub *stubSessionStore) Create(session *models.PracticeSession) error {
	if stub.err != nil {
		return stub.err
	}
	stub.nextID++
	session.ID = stub.nextID
	stub.sessions[session.UserID] = append(stub.sessions[session.UserID], *session)
	return nil
}

func (stub *stubSessionStore) ListByUser(userID uint) ([]models.PracticeSession, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.PracticeSession, len(stub.sessions[userID]))
	copy(result, stub.sessions[userID])
	return result, nil
}

func (stub *stubSessionStore) FindByPublicID(userID uint, publicID string) (models.PracticeSession, bool, error) {
	if stub.err != nil {
		return models.PracticeSession{}, false, stub.err
	}
	for _, session := range stub.sessions[userID] {
		if session.PublicID == publicID {
			return session, true, nil
		}
	}
	return models.PracticeSession{}, false, nil
}

func (stub *stubSessionStore) DeleteByPublicID(userID uint, publicID string) (bool, error) {
	if stub.err != nil {
		return false, stub.err
	}
	for index, session := range stub.sessions[userID] {
		if session.PublicID == publicID {
			stub.sessions[userID] = append(stub.sessions[userID][:index], stub.sessions[userID][index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubSessionStore) CountByUser(userID uint) (int64, error) {
	if stub.err != nil {
		return 0, stub.err
	}
	return int64(len(stub.sessions[userID])), nil
}

func TestRecordSessionValidatesInput(t *testing.T) {
	service := NewSessionService(newStubSessionStore())
	now := time.Now()

	_, err := service.RecordSession(7, PracticeSessionInput{PromptCategory: "  "}, now)
	if !errors.Is(err, ErrInvalidSessionInput) {
		t.Fatalf("blank category: expected ErrInvalidSessionInput, got %v", err)
	}

	_, err = service.RecordSession(7, PracticeSessionInput{PromptCategory: "casual", DurationSeconds: -1}, now)
	if !errors.Is(err, ErrInvalidSessionInput) {
		t.Fatalf("negative duration: expected ErrInvalidSessionInput, got %v", err)
	}

	_, err = service.RecordSession(7, PracticeSessionInput{PromptCategory: "casual", Confidence: 6}, now)
	if !errors.Is(err, ErrInvalidConfidenceRating) {
		t.Fatalf("confidence 6: expected ErrInvalidConfidenceRating, got %v", err)
	}
}

func TestRecordSessionAssignsPublicID(t *testing.T) {
	store := newStubSessionStore()
	service := NewSessionService(store)

	first, err := service.RecordSession(7, PracticeSessionInput{
		PromptCategory:  "interview",
		PromptText:      "Tell me about yourself.",
		DurationSeconds: 95,
		Confidence:      4,
		Reflection:      "  less filler words this time ",
	}, time.Now())
	if err != nil {
		t.Fatalf("record session: %v", err)
	}
	if first.PublicID == "" {
		t.Fatal("session must get a public id")
	}
	if first.Reflection != "less filler words this time" {
		t.Fatalf("reflection must be trimmed, got %q", first.Reflection)
	}

	second, err := service.RecordSession(7, PracticeSessionInput{PromptCategory: "casual"}, time.Now())
	if err != nil {
		t.Fatalf("record second session: %v", err)
	}
	if second.PublicID == first.PublicID {
		t.Fatal("public ids must be unique per session")
	}
}

func TestRecordSessionAllowsUnratedConfidence(t *testing.T) {
	service := NewSessionService(newStubSessionStore())

	session, err := service.RecordSession(7, PracticeSessionInput{PromptCategory: "casual"}, time.Now())
	if err != nil {
		t.Fatalf("record unrated session: %v", err)
	}
	if session.Confidence != 0 {
		t.Fatalf("expected unrated confidence 0, got %d", session.Confidence)
	}
}

func TestDeleteSession(t *testing.T) {
	store := newStubSessionStore()
	service := NewSessionService(store)

	session, err := service.RecordSession(7, PracticeSessionInput{PromptCategory: "casual"}, time.Now())
	if err != nil {
		t.Fatalf("record session: %v", err)
	}

	if err := service.DeleteSession(7, session.PublicID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if err := service.DeleteSession(7, session.PublicID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
	if err := service.DeleteSession(7, "no-such-id"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("unknown id must be not found, got %v", err)
	}
}
