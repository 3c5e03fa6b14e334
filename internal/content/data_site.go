package content

// Pricing returns the packages shown below the services.
func Pricing() []PricingTier {
	return []PricingTier{
		{
			Name:        "Starter",
			Price:       "$1,500",
			Period:      "one-time",
			Description: "A fast landing page or small business site.",
			Features:    []string{"Up to 5 pages", "Contact form", "Basic SEO", "One revision round"},
		},
		{
			Name:        "Growth",
			Price:       "$4,000",
			Period:      "one-time",
			Description: "A content site or web app with integrations.",
			Features:    []string{"Up to 15 pages", "Blog or CMS", "Analytics", "AI feature prototype", "Three revision rounds"},
			Highlighted: true,
		},
		{
			Name:        "Retainer",
			Price:       "$800",
			Period:      "per month",
			Description: "Ongoing development and maintenance.",
			Features:    []string{"20 hours per month", "Priority support", "Monthly report"},
		},
	}
}

// FAQs returns the questions on the Services page.
func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "How long does a typical website take?",
			Answer:   "Starter sites take two to three weeks, larger projects are planned in milestones.",
		},
		{
			Question: "Do you work with existing codebases?",
			Answer:   "Yes. Most consulting work starts with a short audit of what is already there.",
		},
		{
			Question: "Can I order a single 3D print?",
			Answer:   "Yes. Send the model or a sketch through the contact form with the service set to 3D printing.",
		},
		{
			Question: "How do payments work?",
			Answer:   "Projects are billed 50% up front and 50% on delivery, retainers monthly.",
		},
	}
}

// Skills returns the skill groups on the Skills page.
func Skills() []SkillGroup {
	return []SkillGroup{
		{
			Name: "Frontend",
			Icon: "layout",
			Skills: []Skill{
				{Name: "HTML & CSS", Level: 95},
				{Name: "TypeScript", Level: 85},
				{Name: "React", Level: 85},
				{Name: "Tailwind CSS", Level: 90},
			},
		},
		{
			Name: "Backend",
			Icon: "server",
			Skills: []Skill{
				{Name: "Go", Level: 80},
				{Name: "Node.js", Level: 85},
				{Name: "SQL", Level: 75},
			},
		},
		{
			Name: "Maker",
			Icon: "printer",
			Skills: []Skill{
				{Name: "3D Modelling", Level: 80},
				{Name: "FDM Printing", Level: 90},
			},
		},
		{
			Name: "Media",
			Icon: "video",
			Skills: []Skill{
				{Name: "Live Streaming", Level: 85},
				{Name: "Video Editing", Level: 70},
			},
		},
	}
}
