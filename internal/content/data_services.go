package content

// Services returns the offerings shown on the Services page.
func Services() []Service {
	return []Service{
		{
			ID:               "web-development",
			Title:            "Web Development",
			ShortDescription: "Fast, accessible websites and web apps.",
			Description: "Marketing sites, dashboards and web applications built for speed and " +
				"maintainability, from design handoff to deployment.",
			Icon:     "code",
			Features: []string{"Responsive design", "SEO basics", "Performance budgets", "CMS or markdown content"},
			Tools:    []string{"Go", "TypeScript", "React", "Tailwind CSS"},
			CaseStudies: []CaseStudy{
				{
					Title:   "Local bakery storefront",
					Summary: "Online ordering with pickup slots for a three-person team.",
					Outcome: "40% of weekend orders moved online in the first month.",
				},
			},
			StartingPrice: "$1,500",
		},
		{
			ID:               "ai-integration",
			Title:            "AI Integration",
			ShortDescription: "Practical AI features inside existing products.",
			Description: "Chat assistants, document search and content tooling wired into the " +
				"systems you already run, with cost and privacy limits agreed up front.",
			Icon:          "sparkles",
			Features:      []string{"Retrieval over your documents", "Prompt and cost reviews", "Human-in-the-loop flows"},
			Tools:         []string{"OpenAI API", "Anthropic API", "Vector databases"},
			StartingPrice: "$2,000",
		},
		{
			ID:               "mobile-apps",
			Title:            "Mobile App Development",
			ShortDescription: "Cross-platform apps for iOS and Android.",
			Description:      "Companion apps and small products shipped to both stores from one codebase.",
			Icon:             "smartphone",
			Features:         []string{"Offline support", "Push notifications", "Store submission"},
			Tools:            []string{"React Native", "Expo"},
			StartingPrice:    "$3,000",
		},
		{
			ID:               "3d-printing",
			Title:            "3D Printing Services",
			ShortDescription: "Prototypes, replacement parts and custom pieces.",
			Description:      "Design help and printing in PLA, PETG and TPU with finishing for presentation pieces.",
			Icon:             "printer",
			Features:         []string{"Design assistance", "Material advice", "Two-day prototype turnaround"},
			Tools:            []string{"Fusion 360", "PrusaSlicer", "Bambu Studio"},
			CaseStudies: []CaseStudy{
				{
					Title:   "Enclosure for a sensor kit",
					Summary: "Snap-fit housing iterated over four prints.",
					Outcome: "Final design went to a small injection run.",
				},
			},
			StartingPrice: "$25",
		},
		{
			ID:               "tech-consulting",
			Title:            "Tech Consulting",
			ShortDescription: "A second opinion before you build or buy.",
			Description:      "Architecture reviews, tool selection and hands-on audits for small teams.",
			Icon:             "lightbulb",
			Features:         []string{"Stack reviews", "Hosting cost audits", "Security checklists"},
			StartingPrice:    "$100/hour",
		},
	}
}

// ServiceByID returns the service with the given id.
func ServiceByID(id string) (Service, bool) {
	for _, s := range Services() {
		if s.ID == id {
			return s, true
		}
	}

	return Service{}, false
}
