package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	challenge := api.Group("/challenge-progress", handler.AuthRequired)
	challenge.Get("", handler.GetChallengeProgress)
	challenge.Post("", handler.CompleteChallengeDay)
	challenge.Get("/summary", handler.GetChallengeSummary)
	challenge.Get("/:dayNumber", handler.GetChallengeDay)

	challengeBadges := api.Group("/challenge-badges", handler.AuthRequired)
	challengeBadges.Get("", handler.GetChallengeBadges)
	challengeBadges.Post("/award", handler.AwardChallengeBadge)
	challengeBadges.Post("/check-and-award", handler.CheckAndAwardChallengeBadge)

	weekly := api.Group("/weekly-challenge", handler.AuthRequired)
	weekly.Get("", handler.GetWeeklyChallenge)
	weekly.Post("", handler.StartWeeklyChallenge)
	weekly.Post("/complete", handler.CompleteWeeklyPrompt)

	weeklyBadges := api.Group("/weekly-badges", handler.AuthRequired)
	weeklyBadges.Get("", handler.GetWeeklyBadges)
	weeklyBadges.Post("/award", handler.AwardWeeklyBadge)
	weeklyBadges.Post("/check-and-award", handler.CheckAndAwardWeeklyBadge)

	sessions := api.Group("/sessions", handler.AuthRequired)
	sessions.Post("", handler.CreateSession)
	sessions.Get("", handler.GetSessions)
	sessions.Delete("/:id", handler.DeleteSession)

	prompts := api.Group("/prompts", handler.AuthRequired)
	prompts.Get("/daily", handler.GetDailyPrompts)
	prompts.Get("/daily/:day", handler.GetDailyPrompt)
	prompts.Get("/weekly", handler.GetWeeklyPrompts)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/notifications", handler.UpdateNotificationSettings)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Delete("/delete-account", handler.DeleteAccount)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/overview", handler.AdminOverview)
	admin.Get("/users", handler.AdminUsers)
}
