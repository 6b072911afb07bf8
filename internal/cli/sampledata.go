package cli

import "trivia-service/internal/domain"

// sampleCategories and sampleQuestions provide the bundled question set; the
// seed subcommand loads them into Postgres, and the server falls back to them
// when no Postgres is configured.
func sampleCategories() []domain.Category {
	return []domain.Category{
		{ID: "science", Name: "Science", Description: "Test your knowledge of science"},
		{ID: "history", Name: "History", Description: "Test your knowledge of history"},
		{ID: "geography", Name: "Geography", Description: "Test your knowledge of geography"},
		{ID: "sports", Name: "Sports", Description: "Test your knowledge of sports"},
		{ID: "entertainment", Name: "Entertainment", Description: "Test your knowledge of entertainment"},
	}
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		// Science
		{
			ID:               "sci-1",
			CategoryID:       "science",
			Prompt:           "What is the chemical symbol for gold?",
			CorrectAnswer:    "Au",
			IncorrectAnswers: []string{"Ag", "Fe", "Hg"},
			Difficulty:       "easy",
		},
		{
			ID:               "sci-2",
			CategoryID:       "science",
			Prompt:           "Which planet is known as the Red Planet?",
			CorrectAnswer:    "Mars",
			IncorrectAnswers: []string{"Venus", "Jupiter", "Saturn"},
			Difficulty:       "easy",
		},
		{
			ID:               "sci-3",
			CategoryID:       "science",
			Prompt:           "What is the largest organ in the human body?",
			CorrectAnswer:    "Skin",
			IncorrectAnswers: []string{"Liver", "Heart", "Brain"},
			Difficulty:       "medium",
		},
		{
			ID:               "sci-4",
			CategoryID:       "science",
			Prompt:           "What is the hardest natural substance on Earth?",
			CorrectAnswer:    "Diamond",
			IncorrectAnswers: []string{"Gold", "Iron", "Quartz"},
			Difficulty:       "easy",
		},
		{
			ID:               "sci-5",
			CategoryID:       "science",
			Prompt:           "What is the powerhouse of the cell?",
			CorrectAnswer:    "Mitochondria",
			IncorrectAnswers: []string{"Nucleus", "Ribosome", "Golgi Apparatus"},
			Difficulty:       "medium",
		},
		{
			ID:               "sci-6",
			CategoryID:       "science",
			Prompt:           "What is the closest planet to the sun?",
			CorrectAnswer:    "Mercury",
			IncorrectAnswers: []string{"Venus", "Mars", "Earth"},
			Difficulty:       "easy",
		},
		// History
		{
			ID:               "his-1",
			CategoryID:       "history",
			Prompt:           "In which year did World War II end?",
			CorrectAnswer:    "1945",
			IncorrectAnswers: []string{"1943", "1947", "1939"},
			Difficulty:       "easy",
		},
		{
			ID:               "his-2",
			CategoryID:       "history",
			Prompt:           "Who was the first President of the United States?",
			CorrectAnswer:    "George Washington",
			IncorrectAnswers: []string{"Thomas Jefferson", "John Adams", "Abraham Lincoln"},
			Difficulty:       "easy",
		},
		{
			ID:               "his-3",
			CategoryID:       "history",
			Prompt:           "Who painted the Mona Lisa?",
			CorrectAnswer:    "Leonardo da Vinci",
			IncorrectAnswers: []string{"Pablo Picasso", "Vincent van Gogh", "Michelangelo"},
			Difficulty:       "easy",
		},
		{
			ID:               "his-4",
			CategoryID:       "history",
			Prompt:           "Which ancient civilization built the Great Wall?",
			CorrectAnswer:    "Chinese",
			IncorrectAnswers: []string{"Egyptian", "Roman", "Greek"},
			Difficulty:       "easy",
		},
		// Geography
		{
			ID:               "geo-1",
			CategoryID:       "geography",
			Prompt:           "Which is the longest river in the world?",
			CorrectAnswer:    "Nile",
			IncorrectAnswers: []string{"Amazon", "Yangtze", "Mississippi"},
			Difficulty:       "medium",
		},
		{
			ID:               "geo-2",
			CategoryID:       "geography",
			Prompt:           "What is the largest continent by land area?",
			CorrectAnswer:    "Asia",
			IncorrectAnswers: []string{"Africa", "North America", "Antarctica"},
			Difficulty:       "easy",
		},
		{
			ID:               "geo-3",
			CategoryID:       "geography",
			Prompt:           "In which country would you find the Great Barrier Reef?",
			CorrectAnswer:    "Australia",
			IncorrectAnswers: []string{"Brazil", "Thailand", "Mexico"},
			Difficulty:       "medium",
		},
		{
			ID:               "geo-4",
			CategoryID:       "geography",
			Prompt:           "What is the capital of France?",
			CorrectAnswer:    "Paris",
			IncorrectAnswers: []string{"London", "Berlin", "Madrid"},
			Difficulty:       "easy",
		},
		// Sports
		{
			ID:               "spo-1",
			CategoryID:       "sports",
			Prompt:           "Which country has won the most FIFA World Cup titles?",
			CorrectAnswer:    "Brazil",
			IncorrectAnswers: []string{"Germany", "Italy", "Argentina"},
			Difficulty:       "medium",
		},
		{
			ID:               "spo-2",
			CategoryID:       "sports",
			Prompt:           "In which sport would you perform a slam dunk?",
			CorrectAnswer:    "Basketball",
			IncorrectAnswers: []string{"Volleyball", "Tennis", "Soccer"},
			Difficulty:       "easy",
		},
		{
			ID:               "spo-3",
			CategoryID:       "sports",
			Prompt:           "How many players are on a standard soccer team?",
			CorrectAnswer:    "11",
			IncorrectAnswers: []string{"9", "10", "12"},
			Difficulty:       "easy",
		},
		{
			ID:               "spo-4",
			CategoryID:       "sports",
			Prompt:           "Which country hosted the 2016 Summer Olympics?",
			CorrectAnswer:    "Brazil",
			IncorrectAnswers: []string{"Japan", "Russia", "United Kingdom"},
			Difficulty:       "medium",
		},
		// Entertainment
		{
			ID:               "ent-1",
			CategoryID:       "entertainment",
			Prompt:           "Who directed the movie \"Inception\"?",
			CorrectAnswer:    "Christopher Nolan",
			IncorrectAnswers: []string{"Steven Spielberg", "James Cameron", "Quentin Tarantino"},
			Difficulty:       "medium",
		},
		{
			ID:               "ent-2",
			CategoryID:       "entertainment",
			Prompt:           "Which artist released the album \"Thriller\"?",
			CorrectAnswer:    "Michael Jackson",
			IncorrectAnswers: []string{"Prince", "Madonna", "Whitney Houston"},
			Difficulty:       "easy",
		},
		{
			ID:               "ent-3",
			CategoryID:       "entertainment",
			Prompt:           "Who played Jack Dawson in \"Titanic\"?",
			CorrectAnswer:    "Leonardo DiCaprio",
			IncorrectAnswers: []string{"Brad Pitt", "Matt Damon", "Johnny Depp"},
			Difficulty:       "easy",
		},
		{
			ID:               "ent-4",
			CategoryID:       "entertainment",
			Prompt:           "Which band performed the song \"Bohemian Rhapsody\"?",
			CorrectAnswer:    "Queen",
			IncorrectAnswers: []string{"The Beatles", "Pink Floyd", "Led Zeppelin"},
			Difficulty:       "medium",
		},
		{
			ID:               "ent-5",
			CategoryID:       "entertainment",
			Prompt:           "Which movie won the Academy Award for Best Picture in 2020?",
			CorrectAnswer:    "Parasite",
			IncorrectAnswers: []string{"1917", "Joker", "The Irishman"},
			Difficulty:       "hard",
		},
	}
}
