package content

import "html/template"

// DefaultPosts are the posts written directly into the site.
// Markdown posts with the same slug are ignored.
func DefaultPosts() []RawPost {
	return []RawPost{
		{
			Slug:     "cursor-ai-review",
			Title:    "Cursor AI: A Month of Pair Programming With an Editor That Reads Your Repo",
			Excerpt:  "What worked, what did not, and where an AI-first editor fits in a small studio workflow.",
			Date:     "2025-01-15",
			Author:   "Tycen",
			Category: "AI Tools",
			Tags:     []string{"AI", "Editors", "Productivity"},
			Image:    "/static/images/blog/cursor-ai.svg",
			HTML: template.HTML(`<p>We moved two client projects into Cursor for a month. ` +
				`Tab completion that understands the surrounding files removed most boilerplate, ` +
				`and chat with repository context made refactors across components quicker to plan.</p>` +
				`<h2 id="where-it-helps">Where it helps</h2>` +
				`<p>Renaming props through a component tree, writing first drafts of tests and ` +
				`explaining unfamiliar code were the clear wins. Generated code still needs review, ` +
				`especially around error paths and accessibility attributes.</p>` +
				`<h2 id="where-it-does-not">Where it does not</h2>` +
				`<p>Large design decisions, performance tuning and anything touching payment flows ` +
				`stayed manual. The editor is a fast assistant, not an architect.</p>`),
			Source: SourceLiteral,
		},
		{
			Slug:     "trae-ai-first-look",
			Title:    "Trae AI: First Look at ByteDance's Free Coding Assistant",
			Excerpt:  "A quick tour of Trae's builder mode and how it compares with the editors we already use.",
			Date:     "2025-02-03",
			Author:   "Tycen",
			Category: "AI Tools",
			Tags:     []string{"AI", "Editors"},
			Image:    "/static/images/blog/trae-ai.svg",
			HTML: template.HTML(`<p>Trae ships a builder mode that scaffolds whole features from a prompt. ` +
				`For landing pages and small dashboards the results were usable after light edits.</p>` +
				`<p>Context handling on bigger repositories lagged behind Cursor, and the extension ` +
				`ecosystem is young. Worth watching, free to try.</p>`),
			Source: SourceLiteral,
		},
		{
			Slug:     "passive-income-bandwidth-apps",
			Title:    "Bandwidth Sharing Apps: What a Spare Device Really Earns",
			Excerpt:  "Realistic numbers for EarnApp, Honeygain and friends, measured on a home connection.",
			Date:     "2024-11-20",
			Author:   "Tycen",
			Category: "Passive Income",
			Tags:     []string{"Passive Income", "EarnApp", "Honeygain"},
			Image:    "/static/images/passive-income/bandwidth.svg",
			HTML: template.HTML(`<p>Bandwidth sharing apps pay per gigabyte that passes through your ` +
				`connection. A single always-on device usually moves a few hundred megabytes a day, ` +
				`which puts earnings at cents per day, not dollars.</p>` +
				`<p>Use the calculator on each app page to estimate your own setup and keep ` +
				`expectations grounded: more devices on more IP addresses is what moves the number.</p>`),
			Source: SourceLiteral,
		},
	}
}
