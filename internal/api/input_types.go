package api

type credentialsInput struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type challengeDayPayload struct {
	DayNumber int `json:"dayNumber" validate:"required,min=1,max=30"`
}

type milestonePayload struct {
	Milestone int `json:"milestone" validate:"required,oneof=7 15 30"`
}

type weeklyEnrollPayload struct {
	Tier string `json:"tier" validate:"required,oneof=shy_starter growing_speaker confident_creator"`
}

type weeklyCompletePayload struct {
	PromptID string `json:"promptId" validate:"required"`
}

type weeklyBadgePayload struct {
	Tier       string `json:"tier" validate:"required,oneof=shy_starter growing_speaker confident_creator"`
	WeekNumber int    `json:"weekNumber" validate:"required,min=1,max=15"`
}

type sessionPayload struct {
	PromptCategory  string `json:"promptCategory" validate:"required"`
	PromptText      string `json:"promptText"`
	DurationSeconds int    `json:"durationSeconds" validate:"min=0"`
	Confidence      int    `json:"confidence" validate:"omitempty,min=1,max=5"`
	Reflection      string `json:"reflection"`
}

type notificationsPayload struct {
	PracticeReminders bool `json:"practiceReminders"`
	MilestoneEmails   bool `json:"milestoneEmails"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

type deleteAccountInput struct {
	Password string `json:"password" form:"password" validate:"required"`
}
