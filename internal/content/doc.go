// Package content holds the NosytLabs site content and the pipeline that turns
// blog post sources into display records.
//
// Blog posts come from two sources: hand-written literals (DefaultPosts) and
// markdown files with frontmatter matched by PostsGlob. Aggregate normalizes
// both (placeholders for missing fields, read time, slug resolution), drops
// posts without a slug, keeps the first post per slug and sorts newest first.
// Library keeps the aggregated result and reloads it on demand.
//
// Team, services, passive-income apps, pricing, FAQ and skills are plain
// literals with no lifecycle.
package content
