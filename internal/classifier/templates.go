package classifier

import "idea-feasibility-backend/internal/report"

// categoryTemplate is one row of the ordered category table.
type categoryTemplate struct {
	name     string
	keywords []string
	override Partial
	direct   []string
	indirect []string
}

// categoryTable is ordered; the first matching row wins.
var categoryTable = []categoryTemplate{
	{
		name:     "fitness",
		keywords: []string{"fitness", "workout", "exercise", "gym", "health", "training", "sport"},
		override: Partial{
			Feasibility: &report.Feasibility{
				Score: 75,
				Factors: []string{
					"High demand for health and fitness solutions",
					"Wearable device integration opportunities",
					"Strong retention potential through habit building",
					"Clear monetization paths",
				},
				Challenges: []string{
					"Highly competitive market with established players",
					"Need for accurate health data integration",
					"User motivation and retention challenges",
					"Potential regulatory considerations for health data",
				},
			},
			TechStack: &report.TechStack{
				Frontend:   []string{"React Native", "Flutter"},
				Backend:    []string{"Node.js", "Express.js", "GraphQL"},
				Database:   []string{"PostgreSQL", "Redis"},
				Additional: []string{"HealthKit/Google Fit", "Push Notifications", "Analytics", "Payment Processing"},
			},
			TargetUsers: &report.TargetUsers{
				Primary:      "Health-conscious individuals aged 25-45 looking to improve their fitness",
				Secondary:    []string{"Personal trainers", "Gym members", "Athletes", "Fitness enthusiasts"},
				Demographics: []string{"Ages 25-45", "Middle to upper income", "Urban/suburban", "Tech-savvy"},
			},
			Monetization: &report.Monetization{
				Primary: "Freemium model with premium workout plans and features",
				Alternatives: []string{
					"Subscription-based premium content",
					"In-app purchases for specialized programs",
					"Partnership with fitness equipment brands",
					"Personal trainer marketplace commission",
				},
				RevenueProjection: "$50K-200K annually within 2 years with 10K+ active users",
			},
		},
		direct:   []string{"MyFitnessPal", "Nike Training Club", "Strava", "Fitbit"},
		indirect: []string{"YouTube fitness channels", "Personal trainers", "Gym memberships"},
	},
	{
		name:     "social",
		keywords: []string{"social", "community", "sharing", "connect", "friends", "network", "chat"},
		override: Partial{
			Feasibility: &report.Feasibility{
				Score: 60,
				Factors: []string{
					"Strong network effects once critical mass is reached",
					"High user engagement potential",
					"Multiple monetization opportunities",
					"Viral growth possibilities",
				},
				Challenges: []string{
					"Extremely competitive market dominated by giants",
					"High user acquisition costs",
					"Content moderation and safety concerns",
					"Need for critical mass to be valuable",
				},
			},
			TechStack: &report.TechStack{
				Frontend:   []string{"React", "React Native", "Next.js"},
				Backend:    []string{"Node.js", "Socket.io", "GraphQL", "Microservices"},
				Database:   []string{"PostgreSQL", "MongoDB", "Redis", "Elasticsearch"},
				Additional: []string{"CDN", "Real-time messaging", "Content moderation", "Analytics", "Push notifications"},
			},
			TargetUsers: &report.TargetUsers{
				Primary:      "Digital natives aged 16-35 seeking community and connection",
				Secondary:    []string{"Content creators", "Influencers", "Brands", "Local businesses"},
				Demographics: []string{"Ages 16-35", "All income levels", "Global", "Mobile-first users"},
			},
			Monetization: &report.Monetization{
				Primary: "Advertising revenue with user data insights",
				Alternatives: []string{
					"Premium features and subscriptions",
					"Virtual gifts and tipping",
					"Marketplace commissions",
					"Brand partnerships and sponsored content",
				},
				RevenueProjection: "$100K-1M+ annually with 100K+ monthly active users",
			},
		},
		direct:   []string{"Instagram", "TikTok", "Twitter", "Discord"},
		indirect: []string{"Traditional social media", "Messaging apps", "Forums"},
	},
	{
		name:     "productivity",
		keywords: []string{"task", "productivity", "management", "organize", "planning", "todo", "efficiency"},
		override: Partial{
			Feasibility: &report.Feasibility{
				Score: 85,
				Factors: []string{
					"Clear value proposition and user need",
					"Straightforward monetization through subscriptions",
					"Lower development complexity",
					"Strong B2B market potential",
				},
				Challenges: []string{
					"Saturated market with many established solutions",
					"User habit formation can be difficult",
					"Feature creep temptation",
					"Balancing simplicity with functionality",
				},
			},
			TechStack: &report.TechStack{
				Frontend:   []string{"React", "Vue.js", "React Native"},
				Backend:    []string{"Node.js", "Express.js", "REST API"},
				Database:   []string{"PostgreSQL", "MongoDB"},
				Additional: []string{"Real-time sync", "Push notifications", "Calendar integration", "File storage"},
			},
			TargetUsers: &report.TargetUsers{
				Primary:      "Professionals and students seeking better organization and productivity",
				Secondary:    []string{"Small business owners", "Project managers", "Remote workers", "Students"},
				Demographics: []string{"Ages 22-50", "College-educated", "Knowledge workers", "Urban professionals"},
			},
			Monetization: &report.Monetization{
				Primary: "Subscription-based SaaS model with tiered pricing",
				Alternatives: []string{
					"One-time purchase for basic version",
					"Team/enterprise licensing",
					"Integration marketplace revenue share",
					"Premium templates and add-ons",
				},
				RevenueProjection: "$100K-500K annually with 5K+ paying subscribers",
			},
		},
		direct:   []string{"Todoist", "Asana", "Notion", "Trello"},
		indirect: []string{"Google Workspace", "Microsoft Office", "Paper planners"},
	},
	{
		name:     "ecommerce",
		keywords: []string{"shop", "buy", "sell", "marketplace", "store", "commerce", "purchase", "product"},
		override: Partial{
			Feasibility: &report.Feasibility{
				Score: 70,
				Factors: []string{
					"Clear revenue model through transactions",
					"High scalability potential",
					"Multiple revenue streams available",
					"Growing e-commerce market",
				},
				Challenges: []string{
					"High competition from established platforms",
					"Complex payment and logistics integration",
					"Trust and security concerns",
					"Inventory and seller management complexity",
				},
			},
			TechStack: &report.TechStack{
				Frontend:   []string{"React", "Next.js", "React Native"},
				Backend:    []string{"Node.js", "Python/Django", "Microservices"},
				Database:   []string{"PostgreSQL", "MongoDB", "Redis"},
				Additional: []string{"Stripe/PayPal", "Shipping APIs", "Inventory management", "Search engine", "Analytics"},
			},
			TargetUsers: &report.TargetUsers{
				Primary:      "Online shoppers and small business owners looking for niche markets",
				Secondary:    []string{"Local artisans", "Small retailers", "Collectors", "Specific interest communities"},
				Demographics: []string{"Ages 25-55", "Disposable income", "Online shopping experience", "Mobile users"},
			},
			Monetization: &report.Monetization{
				Primary: "Transaction fees and commission on sales",
				Alternatives: []string{
					"Seller subscription fees",
					"Listing fees for premium placement",
					"Advertising revenue from sellers",
					"White-label solutions for businesses",
				},
				RevenueProjection: "$200K-1M+ annually with $2M+ in transaction volume",
			},
		},
		direct:   []string{"Amazon", "eBay", "Etsy", "Shopify"},
		indirect: []string{"Physical stores", "Social commerce", "Classified ads"},
	},
	{
		name:     "entertainment",
		keywords: []string{"game", "entertainment", "fun", "media", "content", "streaming", "video", "music"},
		override: Partial{
			Feasibility: &report.Feasibility{
				Score: 65,
				Factors: []string{
					"High engagement and retention potential",
					"Multiple monetization strategies available",
					"Viral sharing possibilities",
					"Global market appeal",
				},
				Challenges: []string{
					"Content creation and curation costs",
					"User attention span competition",
					"Platform dependency risks",
					"Copyright and licensing issues",
				},
			},
			TechStack: &report.TechStack{
				Frontend:   []string{"React", "Unity", "React Native"},
				Backend:    []string{"Node.js", "Python", "CDN"},
				Database:   []string{"PostgreSQL", "MongoDB", "Redis"},
				Additional: []string{"Video processing", "Content delivery", "Real-time features", "Analytics", "Social features"},
			},
			TargetUsers: &report.TargetUsers{
				Primary:      "Entertainment seekers aged 16-40 looking for engaging content",
				Secondary:    []string{"Content creators", "Gamers", "Casual users", "Social media users"},
				Demographics: []string{"Ages 16-40", "All income levels", "Mobile-first", "Global audience"},
			},
			Monetization: &report.Monetization{
				Primary: "In-app purchases and premium content subscriptions",
				Alternatives: []string{
					"Advertising revenue",
					"Creator revenue sharing",
					"Virtual goods and currencies",
					"Brand partnerships and sponsorships",
				},
				RevenueProjection: "$75K-500K annually with 50K+ monthly active users",
			},
		},
		direct:   []string{"TikTok", "YouTube", "Netflix", "Spotify"},
		indirect: []string{"Traditional media", "Gaming platforms", "Social media"},
	},
	{
		name:     "education",
		keywords: []string{"learn", "education", "course", "study", "teaching", "skill", "tutorial", "training"},
		override: Partial{
			Feasibility: &report.Feasibility{
				Score: 80,
				Factors: []string{
					"Growing online education market",
					"Clear value proposition for users",
					"Subscription-based revenue model",
					"Content can be evergreen",
				},
				Challenges: []string{
					"Content creation costs and time",
					"User completion rates typically low",
					"Competition from free resources",
					"Credentialing and certification needs",
				},
			},
			TechStack: &report.TechStack{
				Frontend:   []string{"React", "Vue.js", "React Native"},
				Backend:    []string{"Node.js", "Python/Django", "GraphQL"},
				Database:   []string{"PostgreSQL", "MongoDB"},
				Additional: []string{"Video hosting", "Progress tracking", "Assessment tools", "Payment processing", "Certificates"},
			},
			TargetUsers: &report.TargetUsers{
				Primary:      "Lifelong learners and professionals seeking skill development",
				Secondary:    []string{"Students", "Career changers", "Hobbyists", "Professionals upskilling"},
				Demographics: []string{"Ages 18-50", "College-educated", "Career-focused", "Self-motivated learners"},
			},
			Monetization: &report.Monetization{
				Primary: "Course sales and subscription-based access to content library",
				Alternatives: []string{
					"Certification fees",
					"Corporate training licenses",
					"Tutoring marketplace commission",
					"Premium features and tools",
				},
				RevenueProjection: "$150K-750K annually with 1K+ paying students",
			},
		},
		direct:   []string{"Coursera", "Udemy", "Khan Academy", "Duolingo"},
		indirect: []string{"Traditional education", "YouTube tutorials", "Books"},
	},
}

var defaultTemplate = report.Report{
	Feasibility: report.Feasibility{
		Score: 70,
		Factors: []string{
			"Identifiable market need and target audience",
			"Reasonable technical complexity for MVP",
			"Potential for user engagement and retention",
			"Clear path to monetization",
		},
		Challenges: []string{
			"Market validation required before full development",
			"User acquisition and marketing costs",
			"Competition from existing solutions",
			"Technical implementation complexity",
		},
	},
	TechStack: report.TechStack{
		Frontend:   []string{"React", "TypeScript", "Tailwind CSS"},
		Backend:    []string{"Node.js", "Express.js", "REST API"},
		Database:   []string{"PostgreSQL", "Redis"},
		Additional: []string{"Authentication", "Push Notifications", "Analytics", "Cloud Hosting"},
	},
	Timeline: report.Timeline{
		MVP:         "3-4 months",
		FullVersion: "8-12 months",
		Phases: []report.Phase{
			{
				Name:        "Planning & Design",
				Duration:    "2-3 weeks",
				Description: "Requirements gathering, user research, wireframes, and UI/UX design",
			},
			{
				Name:        "MVP Development",
				Duration:    "8-12 weeks",
				Description: "Core features, basic UI, user authentication, and essential functionality",
			},
			{
				Name:        "Testing & Refinement",
				Duration:    "2-3 weeks",
				Description: "Bug fixes, performance optimization, user testing, and feedback integration",
			},
			{
				Name:        "Launch & Iteration",
				Duration:    "4-6 weeks",
				Description: "App store submission, marketing launch, user onboarding, and feature iteration",
			},
		},
	},
	TargetUsers: report.TargetUsers{
		Primary:      "Tech-savvy users aged 25-40 seeking digital solutions for daily needs",
		Secondary:    []string{"Early adopters", "Mobile-first users", "Problem-specific audience"},
		Demographics: []string{"Ages 25-40", "Middle income", "Urban/suburban", "Smartphone users"},
	},
	Monetization: report.Monetization{
		Primary: "Freemium model with premium features and subscriptions",
		Alternatives: []string{
			"In-app purchases for premium content",
			"Advertising revenue",
			"Transaction-based fees",
			"B2B licensing opportunities",
		},
		RevenueProjection: "$50K-300K annually within 18 months with strong user adoption",
	},
	Competitors: report.Competitors{
		Direct:    []string{"Category-specific established players"},
		Indirect:  []string{"General-purpose alternatives", "Manual/offline solutions"},
		MarketGap: "Opportunity exists for differentiated approach with unique value proposition",
		Differentiation: []string{
			"Superior user experience and interface design",
			"Unique feature set or approach",
			"Better performance or reliability",
			"Specialized focus on underserved niche",
		},
	},
}
