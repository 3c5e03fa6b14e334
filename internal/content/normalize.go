package content

import (
	"path"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholders substituted for missing post fields.
const (
	DefaultTitle    = "Untitled Post"
	DefaultExcerpt  = "No excerpt available"
	DefaultImage    = "/static/images/placeholder.svg"
	DefaultAuthor   = "NosytLabs Team"
	DefaultCategory = "General"

	// AllCategories selects every post in a category filter.
	AllCategories = "all"
	// AllCategoriesLabel is the label of the "show everything" filter button.
	AllCategoriesLabel = "All Posts"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

var titleCaser = cases.Title(language.English)

// ParseDate parses the date formats accepted in post sources.
// It returns the zero time when s is empty or matches no layout.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Slugify lowercases s and joins its letter and digit runs with dashes.
func Slugify(s string) string {
	var (
		b    strings.Builder
		dash bool
	)

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}

			b.WriteRune(r)
			dash = false

			continue
		}

		dash = true
	}

	return b.String()
}

// CategorySlug is the filter key of a category. A category named like the
// AllCategories filter gets a prefix so it stays selectable on its own.
func CategorySlug(category string) string {
	slug := Slugify(category)
	if slug == AllCategories {
		return "category-" + slug
	}

	return slug
}

// Humanize turns a slug like "web-development" into "Web Development".
// Values that already contain spaces or upper case letters are kept.
func Humanize(s string) string {
	if strings.ContainsAny(s, " ") || strings.ToLower(s) != s {
		return s
	}

	return titleCaser.String(strings.NewReplacer("-", " ", "_", " ").Replace(s))
}

// ResolveSlug picks the slug of a raw post: the explicit slug, then the id,
// then for markdown posts the file name. An empty result means the post can
// not be linked and is dropped.
func ResolveSlug(raw RawPost) string {
	for _, candidate := range []string{raw.Slug, raw.ID} {
		if s := Slugify(candidate); s != "" {
			return s
		}
	}

	if raw.Source == SourceMarkdown && raw.File != "" {
		base := path.Base(raw.File)

		return Slugify(strings.TrimSuffix(base, path.Ext(base)))
	}

	return ""
}

// Normalize fills placeholders for missing fields and computes the read time.
// ok is false when the post has no resolvable slug.
func Normalize(raw RawPost) (post BlogPost, ok bool) {
	slug := ResolveSlug(raw)
	if slug == "" {
		return BlogPost{}, false
	}

	category := strings.TrimSpace(raw.Category)
	if category == "" {
		category = DefaultCategory
	}

	post = BlogPost{
		Slug:         slug,
		Title:        orDefault(raw.Title, DefaultTitle),
		Excerpt:      orDefault(raw.Excerpt, DefaultExcerpt),
		Date:         ParseDate(raw.Date),
		Author:       orDefault(raw.Author, DefaultAuthor),
		Category:     Humanize(category),
		CategorySlug: CategorySlug(category),
		Tags:         cleanTags(raw.Tags),
		Image:        orDefault(raw.Image, DefaultImage),
		ReadTime:     ReadTime(WordCount(string(raw.HTML))),
		HTML:         raw.HTML,
		Source:       raw.Source,
	}

	return post, true
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}

	return v
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, tag)
	}

	return out
}
