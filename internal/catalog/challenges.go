package catalog

import "github.com/microspark/microspark/internal/domain"

var challenges = []domain.Challenge{
	// Physical
	{
		ID:              "desk-stretches",
		Title:           "Quick Desk Stretches",
		Description:     "5 simple stretches to relieve tension",
		Category:        domain.CategoryPhysical,
		DurationMinutes: 5,
		Difficulty:      2,
		Instructions: []string{
			"Sit up straight in your chair",
			"Roll your shoulders backward 10 times",
			"Tilt your head left and right, hold for 10 seconds each",
			"Stretch your arms overhead and lean left, then right",
			"Twist your torso left and right while keeping hips forward",
		},
	},
	{
		ID:              "wall-pushups",
		Title:           "Wall Push-ups",
		Description:     "Quick upper body activation",
		Category:        domain.CategoryPhysical,
		DurationMinutes: 3,
		Difficulty:      1,
		Instructions: []string{
			"Stand arm's length from a wall",
			"Place palms flat against wall at shoulder height",
			"Do 10-15 wall push-ups",
			"Focus on controlled movement",
			"Rest and repeat if time allows",
		},
	},
	{
		ID:              "stair-climb",
		Title:           "Stair Climbing",
		Description:     "Quick cardio boost",
		Category:        domain.CategoryPhysical,
		DurationMinutes: 5,
		Difficulty:      3,
		Instructions: []string{
			"Find a staircase",
			"Walk up and down for 3 minutes",
			"Take two steps at a time if comfortable",
			"Focus on breathing",
			"Cool down with gentle stretching",
		},
	},

	// Mindfulness
	{
		ID:              "focus-breathing",
		Title:           "Focus Breathing",
		Description:     "A guided 4-7-8 breathing technique",
		Category:        domain.CategoryMindfulness,
		DurationMinutes: 5,
		Difficulty:      1,
		Instructions: []string{
			"Sit comfortably with eyes closed",
			"Inhale through nose for 4 counts",
			"Hold breath for 7 counts",
			"Exhale through mouth for 8 counts",
			"Repeat cycle 4-6 times",
		},
	},
	{
		ID:              "body-scan",
		Title:           "Body Scan Meditation",
		Description:     "Quick relaxation technique",
		Category:        domain.CategoryMindfulness,
		DurationMinutes: 5,
		Difficulty:      2,
		Instructions: []string{
			"Lie down or sit comfortably",
			"Close your eyes and breathe naturally",
			"Start from your toes, notice any sensations",
			"Slowly move attention up through your body",
			"End at the top of your head",
		},
	},
	{
		ID:              "gratitude-moment",
		Title:           "Gratitude Moment",
		Description:     "Reflect on positive aspects",
		Category:        domain.CategoryMindfulness,
		DurationMinutes: 3,
		Difficulty:      1,
		Instructions: []string{
			"Take three deep breaths",
			"Think of three things you're grateful for today",
			"Focus on why each one matters to you",
			"Feel the positive emotions",
			"Carry this feeling with you",
		},
	},

	// Learning
	{
		ID:              "vocabulary-builder",
		Title:           "Vocabulary Builder",
		Description:     "Learn 5 new words and their usage",
		Category:        domain.CategoryLearning,
		DurationMinutes: 5,
		Difficulty:      2,
		Instructions: []string{
			"Choose a topic that interests you",
			"Look up 5 new words related to that topic",
			"Read their definitions and pronunciations",
			"Create a sentence using each word",
			"Review and try to use them today",
		},
	},
	{
		ID:              "speed-reading",
		Title:           "Speed Reading Practice",
		Description:     "Improve reading speed and comprehension",
		Category:        domain.CategoryLearning,
		DurationMinutes: 10,
		Difficulty:      3,
		Instructions: []string{
			"Choose an article or book chapter",
			"Read for 2 minutes at normal speed",
			"Count words read and calculate WPM",
			"Read next section 25% faster",
			"Summarize what you read",
		},
	},
	{
		ID:              "language-phrases",
		Title:           "Language Phrases",
		Description:     "Learn 5 phrases in a new language",
		Category:        domain.CategoryLearning,
		DurationMinutes: 5,
		Difficulty:      2,
		Instructions: []string{
			"Choose a language you want to learn",
			"Pick 5 common travel phrases",
			"Practice pronunciation using online tools",
			"Write them down with translations",
			"Try to use them in conversation",
		},
	},

	// Creativity
	{
		ID:              "speed-sketching",
		Title:           "Speed Sketching",
		Description:     "Quick creative exercise without judgment",
		Category:        domain.CategoryCreativity,
		DurationMinutes: 5,
		Difficulty:      3,
		Instructions: []string{
			"Get paper and pencil",
			"Look around and pick an object",
			"Sketch it in 1 minute without lifting pencil",
			"Try 3-4 different objects",
			"Don't worry about perfection",
		},
	},
	{
		ID:              "word-association",
		Title:           "Word Association Story",
		Description:     "Create a mini story from random words",
		Category:        domain.CategoryCreativity,
		DurationMinutes: 5,
		Difficulty:      2,
		Instructions: []string{
			"Think of 5 random words",
			"Write them down",
			"Create a short story connecting all words",
			"Be as creative and silly as you want",
			"Read it aloud when finished",
		},
	},
	{
		ID:              "color-palette",
		Title:           "Color Palette Creation",
		Description:     "Design a color scheme from your surroundings",
		Category:        domain.CategoryCreativity,
		DurationMinutes: 3,
		Difficulty:      1,
		Instructions: []string{
			"Look around your current space",
			"Identify 5 colors you see",
			"Imagine how they work together",
			"Think of what mood they create",
			"Consider where you'd use this palette",
		},
	},

	// Productivity
	{
		ID:              "rapid-task-sweep",
		Title:           "Rapid Task Sweep",
		Description:     "Clear 5 small tasks in 5 minutes",
		Category:        domain.CategoryProductivity,
		DurationMinutes: 5,
		Difficulty:      1,
		Instructions: []string{
			"List 5 small tasks you've been avoiding",
			"Set timer for 5 minutes",
			"Complete as many as possible",
			"Focus on quick wins",
			"Celebrate your progress",
		},
	},
	{
		ID:              "email-cleanup",
		Title:           "Email Cleanup",
		Description:     "Organize and clear your inbox",
		Category:        domain.CategoryProductivity,
		DurationMinutes: 10,
		Difficulty:      2,
		Instructions: []string{
			"Open your email inbox",
			"Delete obvious spam and promotions",
			"Unsubscribe from 3 unwanted lists",
			"Archive or file important emails",
			"Respond to one urgent email",
		},
	},
	{
		ID:              "workspace-organize",
		Title:           "Workspace Organization",
		Description:     "Tidy and optimize your work area",
		Category:        domain.CategoryProductivity,
		DurationMinutes: 5,
		Difficulty:      1,
		Instructions: []string{
			"Clear your desk surface",
			"Put items back in their designated places",
			"Wipe down surfaces",
			"Organize cables and chargers",
			"Set up for your next task",
		},
	},

	// Social
	{
		ID:              "gratitude-message",
		Title:           "Gratitude Message",
		Description:     "Send a thank you message to someone",
		Category:        domain.CategorySocial,
		DurationMinutes: 3,
		Difficulty:      1,
		Instructions: []string{
			"Think of someone who helped you recently",
			"Write a brief thank you message",
			"Be specific about what they did",
			"Express how it made you feel",
			"Send it via text, email, or call",
		},
	},
	{
		ID:              "compliment-giving",
		Title:           "Genuine Compliment",
		Description:     "Give a meaningful compliment to someone",
		Category:        domain.CategorySocial,
		DurationMinutes: 2,
		Difficulty:      1,
		Instructions: []string{
			"Look for someone around you",
			"Notice something genuinely positive about them",
			"Approach them with a smile",
			"Give a specific, sincere compliment",
			"Notice how it makes both of you feel",
		},
	},
}
