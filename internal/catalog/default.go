package catalog

// Default 内置的个人理财课程目录。课时ID在课程内唯一。
func Default() *Catalog {
	return New([]Course{
		{
			ID:          1,
			Title:       "Personal Finance Basics",
			Description: "Money fundamentals: income, spending, banking and why it all matters.",
			Level:       Beginner,
			Lessons: []Lesson{
				{ID: 1, Title: "What Is Personal Finance", Duration: 420},
				{ID: 2, Title: "Income and Expenses", Duration: 380},
				{ID: 3, Title: "Banking Essentials", Duration: 450},
				{ID: 4, Title: "Setting Financial Goals", Duration: 400},
			},
		},
		{
			ID:          2,
			Title:       "Budgeting Fundamentals",
			Description: "Build and stick to a budget that actually works for a student life.",
			Level:       Beginner,
			Lessons: []Lesson{
				{ID: 1, Title: "Building Your First Budget", Duration: 460},
				{ID: 2, Title: "The 50/30/20 Rule", Duration: 350},
				{ID: 3, Title: "Tracking Your Spending", Duration: 390},
			},
		},
		{
			ID:          3,
			Title:       "Saving and Emergency Funds",
			Description: "Why saving comes first and how to automate it.",
			Level:       Beginner,
			Lessons: []Lesson{
				{ID: 1, Title: "Why Save", Duration: 330},
				{ID: 2, Title: "Building an Emergency Fund", Duration: 410},
				{ID: 3, Title: "Automating Your Savings", Duration: 360},
			},
		},
		{
			ID:          4,
			Title:       "Credit and Debt Management",
			Description: "Credit scores, credit cards and getting out of debt.",
			Level:       Intermediate,
			Lessons: []Lesson{
				{ID: 1, Title: "Understanding Credit Scores", Duration: 440},
				{ID: 2, Title: "Managing Credit Cards", Duration: 400},
				{ID: 3, Title: "Paying Down Debt", Duration: 470},
			},
		},
		{
			ID:          5,
			Title:       "Investment Basics",
			Description: "Stocks, bonds, risk and the case for index funds.",
			Level:       Intermediate,
			Lessons: []Lesson{
				{ID: 1, Title: "Stocks and Bonds", Duration: 480},
				{ID: 2, Title: "Risk and Return", Duration: 420},
				{ID: 3, Title: "Index Funds and Diversification", Duration: 450},
			},
		},
		{
			ID:          6,
			Title:       "Financial Planning and Goal Setting",
			Description: "Long-term planning: big purchases, retirement and life goals.",
			Level:       Advanced,
			Lessons: []Lesson{
				{ID: 1, Title: "Planning for Big Purchases", Duration: 430},
				{ID: 2, Title: "Retirement Accounts", Duration: 490},
				{ID: 3, Title: "Building a Long-Term Plan", Duration: 510},
			},
		},
	})
}
