package catalog

import "github.com/ChrisAdy1/cringeshield/internal/models"

// tierTexts holds the display text for every weekly prompt, indexed
// [week-1][order-1]. Each tier must stay at exactly 15 weeks of 3
// prompts; the catalog tests enforce the shape.
var tierTexts = map[string][WeeklyWeekCount][WeeklyPromptsPerWeek]string{
	models.TierShyStarter: {
		{
			"Say your name and one thing you enjoyed today.",
			"Describe what you can see around you right now.",
			"Read a short paragraph from any book out loud.",
		},
		{
			"Talk about your favorite meal and why you like it.",
			"Describe your morning routine step by step.",
			"Name three things you are grateful for and say why.",
		},
		{
			"Describe the weather today as if telling a friend.",
			"Talk about a song you have had on repeat lately.",
			"Explain how to make your favorite hot drink.",
		},
		{
			"Describe your favorite place in your home.",
			"Talk for one minute about a pet or an animal you like.",
			"Recall what you did last weekend.",
		},
		{
			"Describe an object on your desk in detail.",
			"Talk about a movie or show you watched recently.",
			"Say three sentences about the town you live in.",
		},
		{
			"Talk about a hobby you had as a child.",
			"Describe your ideal lazy Sunday.",
			"Explain what you usually eat for breakfast and why.",
		},
		{
			"Describe a friend without naming them.",
			"Talk about the last photo you took on your phone.",
			"Explain the plot of a story you know well.",
		},
		{
			"Talk about something small that made you smile this week.",
			"Describe your favorite season and what you do in it.",
			"Explain how you get to the nearest grocery store.",
		},
		{
			"Talk about a book or article you'd recommend.",
			"Describe what you wanted to be when you grew up.",
			"Explain a simple game you know the rules of.",
		},
		{
			"Talk about a place you would like to visit someday.",
			"Describe the best gift you have ever received.",
			"Explain what you do in the first hour after waking up.",
		},
		{
			"Talk about a skill you would like to learn.",
			"Describe a typical day at your work or school.",
			"Tell the story of how you met a good friend.",
		},
		{
			"Talk about your favorite holiday and how you spend it.",
			"Describe a meal you know how to cook, step by step.",
			"Explain why you started practicing speaking on camera.",
		},
		{
			"Talk about a habit you are proud of keeping.",
			"Describe a place from your childhood you remember well.",
			"Explain something you changed your mind about.",
		},
		{
			"Talk about what a perfect evening looks like for you.",
			"Describe a stranger you noticed recently, kindly.",
			"Explain one thing you have learned from this challenge.",
		},
		{
			"Talk about where you hope to be one year from now.",
			"Describe how camera practice has felt week by week.",
			"Give your past self, from week one, some advice.",
		},
	},
	models.TierGrowingSpeaker: {
		{
			"Introduce yourself as you would at a new job.",
			"Give your opinion on a topic you care about, with one reason.",
			"Summarize your day in exactly five sentences.",
		},
		{
			"Explain a concept from your field to a beginner.",
			"Tell a short story with a beginning, middle and end.",
			"Argue for your favorite way to spend a day off.",
		},
		{
			"Describe a challenge you overcame and what it taught you.",
			"Explain the rules of a sport or game to someone new to it.",
			"Give a one-minute review of something you bought recently.",
		},
		{
			"Teach one practical tip you wish you had learned earlier.",
			"Retell a news story you read this week in your own words.",
			"Describe your dream project and the first step toward it.",
		},
		{
			"Give a toast for a friend's imaginary celebration.",
			"Explain a decision you made and the trade-offs behind it.",
			"Describe a person who influenced you and how.",
		},
		{
			"Present an everyday object as if selling it.",
			"Explain something most people misunderstand.",
			"Tell the story of a memorable trip, focusing on one moment.",
		},
		{
			"Answer the interview question: what are your strengths?",
			"Summarize a book or film and say who should see it.",
			"Describe a tradition you keep and where it came from.",
		},
		{
			"Explain a change you would make to your city and why.",
			"Tell a story about a time a plan went wrong.",
			"Give clear directions for a task you do often.",
		},
		{
			"Speak for ninety seconds on a topic chosen just before recording.",
			"Explain both sides of a small everyday debate, then pick one.",
			"Describe what motivates you on days you lack energy.",
		},
		{
			"Deliver a short thank-you speech to someone specific.",
			"Explain a skill you have using one concrete example.",
			"Retell a childhood memory as if to an audience.",
		},
		{
			"Present three options for a weekend plan and recommend one.",
			"Explain a mistake you made and what you changed after it.",
			"Describe the best advice you ever received and its effect.",
		},
		{
			"Answer the interview question: tell me about yourself.",
			"Explain why a habit you keep works, with evidence.",
			"Describe a moment you felt proud, slowly and vividly.",
		},
		{
			"Give a one-minute talk persuading someone to try your hobby.",
			"Summarize your week like a news anchor.",
			"Explain a topic twice: once in detail, once in one sentence.",
		},
		{
			"Tell a story where the ending surprises the listener.",
			"Present a problem you see often and propose a fix.",
			"Describe how your speaking has changed since week one.",
		},
		{
			"Deliver a closing talk: three things this challenge taught you.",
			"Speak off the cuff for two minutes on a topic you love.",
			"Record a message of encouragement for a future participant.",
		},
	},
	models.TierConfidentCreator: {
		{
			"Record a channel-style intro: who you are and what you talk about.",
			"Deliver a hot take on a trend in your field, with your reasoning.",
			"Explain a complex idea in under ninety seconds without notes.",
		},
		{
			"Tell a personal story with a clear hook in the first sentence.",
			"Present a tutorial segment teaching one specific skill.",
			"Argue against an opinion you actually hold, convincingly.",
		},
		{
			"Record a talking-head piece with an intro, three points and an outro.",
			"React on camera to an imaginary comment criticizing your work.",
			"Pitch an idea to an imaginary investor in two minutes.",
		},
		{
			"Deliver the opening two minutes of a conference talk.",
			"Explain this month's most interesting thing you learned, fast-paced.",
			"Narrate a process end to end while keeping energy high.",
		},
		{
			"Record a Q&A answering three questions you invent on the spot.",
			"Tell a story using deliberate pauses for effect.",
			"Present a strong recommendation and defend it against pushback.",
		},
		{
			"Host a mock interview: play both interviewer and guest.",
			"Deliver a piece to camera while varying pace and volume on purpose.",
			"Summarize a controversial topic fairly, then give your stance.",
		},
		{
			"Record an explainer with a cold open, no greeting allowed.",
			"Improvise a product launch announcement for a fictional product.",
			"Retell a well-known story in your own exaggerated style.",
		},
		{
			"Deliver a motivational talk aimed at one specific kind of listener.",
			"Break down a mistake publicly, like a post-mortem video.",
			"Speak on a random object for two minutes, finding three angles.",
		},
		{
			"Record the same thirty-second message three ways: formal, casual, playful.",
			"Present an unpopular opinion and handle two imagined objections.",
			"Teach an advanced concept using only everyday analogies.",
		},
		{
			"Deliver a eulogy for a retired piece of technology, warmly.",
			"Run a mock live stream segment including reading viewer questions.",
			"Present your long-term vision as if announcing it publicly.",
		},
		{
			"Record a video essay opening that earns the next minute of attention.",
			"Debate yourself: two minutes per side, then a verdict.",
			"Tell the story of your hardest failure without minimizing it.",
		},
		{
			"Deliver a keynote-style close with a call to action.",
			"Explain your craft's most misunderstood idea to a skeptic.",
			"Improvise a commentary track over an imagined scene.",
		},
		{
			"Host a panel alone: introduce and voice three distinct viewpoints.",
			"Record a persuasive piece aimed at changing one behavior.",
			"Deliver the same story twice: once rushed, once composed. Compare.",
		},
		{
			"Present a retrospective of your fifteen-week arc with specifics.",
			"Record a piece you would genuinely consider publishing.",
			"Answer rapid-fire questions without filler words for two minutes.",
		},
		{
			"Deliver a masterclass segment on speaking to camera, from experience.",
			"Record your boldest piece yet: topic, format and style all yours.",
			"Leave a message for week-one you, then one for next-year you.",
		},
	},
}
