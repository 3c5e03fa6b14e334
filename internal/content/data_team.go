package content

// Team returns the people listed on the About page.
func Team() []TeamMember {
	return []TeamMember{
		{
			Name:   "Tycen",
			Role:   "Founder & Lead Developer",
			Bio:    "Builds web applications, AI integrations and 3D printed prototypes, and streams the process live.",
			Image:  "/static/images/team/tycen.svg",
			Skills: []string{"Web Development", "AI Integration", "3D Printing", "Live Streaming"},
			Social: map[string]string{
				"github":  "https://github.com/NosytLabs",
				"youtube": "https://www.youtube.com/@TycenYT",
				"kick":    "https://kick.com/Tycen",
			},
		},
		{
			Name:   "NosytLabs Studio",
			Role:   "Design & Content",
			Bio:    "Writes guides, tests tools and keeps the passive-income reviews current.",
			Image:  "/static/images/team/studio.svg",
			Skills: []string{"Content Writing", "UI Design", "Tool Reviews"},
			Social: map[string]string{
				"github": "https://github.com/NosytLabs",
			},
		},
	}
}
