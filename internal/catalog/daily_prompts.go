package catalog

import "github.com/ChrisAdy1/cringeshield/internal/models"

// DailyPrompt is the prompt shown for one day of the thirty-day
// challenge. Days carry no unlock rule; the client may record them in
// any order.
type DailyPrompt struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

var dailyPrompts = []DailyPrompt{
	{Day: 1, Title: "Hello, Camera", Text: "Say your name, where you are, and why you are doing this challenge."},
	{Day: 2, Title: "Today in Three", Text: "Describe your day so far in exactly three sentences."},
	{Day: 3, Title: "Favorite Thing", Text: "Talk about one object you own that you would never give away."},
	{Day: 4, Title: "Simple How-To", Text: "Explain how to do something you do every day."},
	{Day: 5, Title: "Small Win", Text: "Describe a recent small victory and how it felt."},
	{Day: 6, Title: "Place You Love", Text: "Describe a place you love as if the viewer has never been there."},
	{Day: 7, Title: "One Week In", Text: "Reflect on your first week on camera. What surprised you?"},
	{Day: 8, Title: "Story Time", Text: "Tell a short true story with a beginning, middle and end."},
	{Day: 9, Title: "Strong Opinion", Text: "Share an opinion you hold and give one solid reason for it."},
	{Day: 10, Title: "Teach Me", Text: "Teach the viewer one thing you know well, in under two minutes."},
	{Day: 11, Title: "Plot Summary", Text: "Summarize a film or book you love without spoiling the ending."},
	{Day: 12, Title: "Imaginary Tour", Text: "Give a guided tour of your room or workspace."},
	{Day: 13, Title: "Change of Mind", Text: "Talk about something you used to believe and no longer do."},
	{Day: 14, Title: "Advice Column", Text: "Answer an imaginary viewer asking for advice on a topic you know."},
	{Day: 15, Title: "Halfway Point", Text: "You are halfway. Compare how recording feels now versus day one."},
	{Day: 16, Title: "Sell It", Text: "Pick any object within reach and pitch it like a commercial."},
	{Day: 17, Title: "Childhood Memory", Text: "Retell a vivid childhood memory with as much detail as you can."},
	{Day: 18, Title: "Two Sides", Text: "Present both sides of a light-hearted debate, then pick a winner."},
	{Day: 19, Title: "Dream Day", Text: "Walk through your perfect day from waking up to going to sleep."},
	{Day: 20, Title: "Unpopular Take", Text: "Defend a harmless unpopular opinion for one full minute."},
	{Day: 21, Title: "Three Weeks Strong", Text: "Reflect on week three. What still feels awkward? What feels easy now?"},
	{Day: 22, Title: "News Anchor", Text: "Report three pieces of news from your own life, anchor style."},
	{Day: 23, Title: "Letter Out Loud", Text: "Speak a thank-you message to someone who helped you, as if to them."},
	{Day: 24, Title: "Expert Mode", Text: "Answer three imagined interview questions about your main interest."},
	{Day: 25, Title: "Plan B", Text: "Tell a story about a time plans fell apart and what you did next."},
	{Day: 26, Title: "Pitch Yourself", Text: "Give a one-minute introduction you could use at a job interview."},
	{Day: 27, Title: "Silence Is Fine", Text: "Tell any story, but pause deliberately for two seconds between ideas."},
	{Day: 28, Title: "Big Question", Text: "Answer: what would you do with a completely free year?"},
	{Day: 29, Title: "Almost There", Text: "Record advice you would give to someone starting this challenge tomorrow."},
	{Day: 30, Title: "The Finale", Text: "Reflect on all thirty days. What changed, and what comes next for you?"},
}

// DailyPrompts returns the ordered thirty-day prompt list.
func DailyPrompts() []DailyPrompt {
	result := make([]DailyPrompt, len(dailyPrompts))
	copy(result, dailyPrompts)
	return result
}

// DailyPromptForDay returns the prompt for day 1..30.
func DailyPromptForDay(day int) (DailyPrompt, bool) {
	if day < models.ChallengeDayMin || day > models.ChallengeDayMax {
		return DailyPrompt{}, false
	}
	return dailyPrompts[day-1], true
}
