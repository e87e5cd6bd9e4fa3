package services

import (
	"sort"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
	"gorm.io/gorm"
)

// In-memory store fakes honoring the same insert-or-return-existing
// contracts as the real repositories.

type stubDayStore struct {
	days   map[uint]map[int]models.ChallengeDayProgress
	nextID uint
	err    error
}

func newStubDayStore() *stubDayStore {
	return &stubDayStore{days: make(map[uint]map[int]models.ChallengeDayProgress)}
}

func (stub *stubDayStore) ListDays(userID uint) ([]models.ChallengeDayProgress, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.ChallengeDayProgress, 0, len(stub.days[userID]))
	for _, day := range stub.days[userID] {
		result = append(result, day)
	}
	return result, nil
}

func (stub *stubDayStore) CountDays(userID uint) (int64, error) {
	if stub.err != nil {
		return 0, stub.err
	}
	return int64(len(stub.days[userID])), nil
}

func (stub *stubDayStore) FindDay(userID uint, dayNumber int) (models.ChallengeDayProgress, bool, error) {
	if stub.err != nil {
		return models.ChallengeDayProgress{}, false, stub.err
	}
	day, found := stub.days[userID][dayNumber]
	return day, found, nil
}

func (stub *stubDayStore) InsertDay(userID uint, dayNumber int, completedAt time.Time) (models.ChallengeDayProgress, bool, error) {
	if stub.err != nil {
		return models.ChallengeDayProgress{}, false, stub.err
	}
	if existing, found := stub.days[userID][dayNumber]; found {
		return existing, false, nil
	}
	if stub.days[userID] == nil {
		stub.days[userID] = make(map[int]models.ChallengeDayProgress)
	}
	stub.nextID++
	day := models.ChallengeDayProgress{
		ID:          stub.nextID,
		UserID:      userID,
		DayNumber:   dayNumber,
		CompletedAt: completedAt,
	}
	stub.days[userID][dayNumber] = day
	return day, true, nil
}

type stubWeeklyStore struct {
	progress map[uint]models.WeeklyProgress
	nextID   uint
	err      error
}

func newStubWeeklyStore() *stubWeeklyStore {
	return &stubWeeklyStore{progress: make(map[uint]models.WeeklyProgress)}
}

func (stub *stubWeeklyStore) FindProgressByUser(userID uint) (models.WeeklyProgress, bool, error) {
	if stub.err != nil {
		return models.WeeklyProgress{}, false, stub.err
	}
	progress, found := stub.progress[userID]
	return progress, found, nil
}

func (stub *stubWeeklyStore) CreateProgress(progress *models.WeeklyProgress) error {
	if stub.err != nil {
		return stub.err
	}
	stub.nextID++
	progress.ID = stub.nextID
	stub.progress[progress.UserID] = *progress
	return nil
}

func (stub *stubWeeklyStore) AppendCompletedPrompt(userID uint, promptID string) (models.WeeklyProgress, bool, error) {
	if stub.err != nil {
		return models.WeeklyProgress{}, false, stub.err
	}
	progress, found := stub.progress[userID]
	if !found {
		return models.WeeklyProgress{}, false, nil
	}
	if !progress.HasCompleted(promptID) {
		progress.CompletedPrompts = append(progress.CompletedPrompts, promptID)
		stub.progress[userID] = progress
	}
	return progress, true, nil
}

type stubChallengeBadgeStore struct {
	badges map[uint]map[int]models.ChallengeBadge
	nextID uint
	err    error
}

func newStubChallengeBadgeStore() *stubChallengeBadgeStore {
	return &stubChallengeBadgeStore{badges: make(map[uint]map[int]models.ChallengeBadge)}
}

func (stub *stubChallengeBadgeStore) ListBadges(userID uint) ([]models.ChallengeBadge, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.ChallengeBadge, 0, len(stub.badges[userID]))
	for _, badge := range stub.badges[userID] {
		result = append(result, badge)
	}
	return result, nil
}

func (stub *stubChallengeBadgeStore) FindBadge(userID uint, milestone int) (models.ChallengeBadge, bool, error) {
	if stub.err != nil {
		return models.ChallengeBadge{}, false, stub.err
	}
	badge, found := stub.badges[userID][milestone]
	return badge, found, nil
}

func (stub *stubChallengeBadgeStore) InsertBadge(userID uint, milestone int, earnedAt time.Time) (models.ChallengeBadge, bool, error) {
	if stub.err != nil {
		return models.ChallengeBadge{}, false, stub.err
	}
	if existing, found := stub.badges[userID][milestone]; found {
		return existing, false, nil
	}
	if stub.badges[userID] == nil {
		stub.badges[userID] = make(map[int]models.ChallengeBadge)
	}
	stub.nextID++
	badge := models.ChallengeBadge{
		ID:        stub.nextID,
		UserID:    userID,
		Milestone: milestone,
		EarnedAt:  earnedAt,
	}
	stub.badges[userID][milestone] = badge
	return badge, true, nil
}

type weeklyBadgeKey struct {
	tier string
	week int
}

type stubWeeklyBadgeStore struct {
	badges map[uint]map[weeklyBadgeKey]models.WeeklyBadge
	nextID uint
	err    error
}

func newStubWeeklyBadgeStore() *stubWeeklyBadgeStore {
	return &stubWeeklyBadgeStore{badges: make(map[uint]map[weeklyBadgeKey]models.WeeklyBadge)}
}

func (stub *stubWeeklyBadgeStore) ListBadges(userID uint) ([]models.WeeklyBadge, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.WeeklyBadge, 0, len(stub.badges[userID]))
	for _, badge := range stub.badges[userID] {
		result = append(result, badge)
	}
	return result, nil
}

func (stub *stubWeeklyBadgeStore) FindBadge(userID uint, tier string, weekNumber int) (models.WeeklyBadge, bool, error) {
	if stub.err != nil {
		return models.WeeklyBadge{}, false, stub.err
	}
	badge, found := stub.badges[userID][weeklyBadgeKey{tier: tier, week: weekNumber}]
	return badge, found, nil
}

func (stub *stubWeeklyBadgeStore) InsertBadge(userID uint, tier string, weekNumber int, earnedAt time.Time) (models.WeeklyBadge, bool, error) {
	if stub.err != nil {
		return models.WeeklyBadge{}, false, stub.err
	}
	key := weeklyBadgeKey{tier: tier, week: weekNumber}
	if existing, found := stub.badges[userID][key]; found {
		return existing, false, nil
	}
	if stub.badges[userID] == nil {
		stub.badges[userID] = make(map[weeklyBadgeKey]models.WeeklyBadge)
	}
	stub.nextID++
	badge := models.WeeklyBadge{
		ID:         stub.nextID,
		UserID:     userID,
		Tier:       tier,
		WeekNumber: weekNumber,
		EarnedAt:   earnedAt,
	}
	stub.badges[userID][key] = badge
	return badge, true, nil
}

type stubUserStore struct {
	users  map[uint]models.User
	nextID uint
	err    error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[uint]models.User)}
}

func (stub *stubUserStore) CountUsers() (int64, error) {
	if stub.err != nil {
		return 0, stub.err
	}
	return int64(len(stub.users)), nil
}

func (stub *stubUserStore) FindByID(userID uint) (models.User, error) {
	if stub.err != nil {
		return models.User{}, stub.err
	}
	user, found := stub.users[userID]
	if !found {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubUserStore) FindByNormalizedEmail(email string) (models.User, error) {
	if stub.err != nil {
		return models.User{}, stub.err
	}
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubUserStore) ExistsByNormalizedEmail(email string) (bool, error) {
	if stub.err != nil {
		return false, stub.err
	}
	for _, user := range stub.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubUserStore) Create(user *models.User) error {
	if stub.err != nil {
		return stub.err
	}
	stub.nextID++
	user.ID = stub.nextID
	stub.users[user.ID] = *user
	return nil
}

func (stub *stubUserStore) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	if stub.err != nil {
		return stub.err
	}
	user, found := stub.users[userID]
	if !found {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = passwordHash
	user.MustChangePassword = mustChangePassword
	stub.users[userID] = user
	return nil
}

func (stub *stubUserStore) UpdateNotificationPreferences(userID uint, practiceReminders bool, milestoneEmails bool) error {
	if stub.err != nil {
		return stub.err
	}
	user, found := stub.users[userID]
	if !found {
		return gorm.ErrRecordNotFound
	}
	user.PracticeReminders = practiceReminders
	user.MilestoneEmails = milestoneEmails
	stub.users[userID] = user
	return nil
}

func (stub *stubUserStore) ListAll() ([]models.User, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.User, 0, len(stub.users))
	for _, user := range stub.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (stub *stubUserStore) DeleteAccountAndRelatedData(userID uint) error {
	if stub.err != nil {
		return stub.err
	}
	delete(stub.users, userID)
	return nil
}
