package content

import (
	"bytes"
	"html/template"
	"io/fs"
	"sort"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// PostsGlob matches the markdown posts inside a content source.
const PostsGlob = "posts/*.md"

// frontMatter is the metadata block accepted at the top of a markdown post.
type frontMatter struct {
	Slug        string   `yaml:"slug"        toml:"slug"        json:"slug"`
	Title       string   `yaml:"title"       toml:"title"       json:"title"`
	Excerpt     string   `yaml:"excerpt"     toml:"excerpt"     json:"excerpt"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	Date        string   `yaml:"date"        toml:"date"        json:"date"`
	Author      string   `yaml:"author"      toml:"author"      json:"author"`
	Category    string   `yaml:"category"    toml:"category"    json:"category"`
	Tags        []string `yaml:"tags"        toml:"tags"        json:"tags"`
	Image       string   `yaml:"image"       toml:"image"       json:"image"`
	Draft       bool     `yaml:"draft"       toml:"draft"       json:"draft"`
}

// MarkdownRenderer converts markdown bodies to sanitized HTML.
type MarkdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdownRenderer returns a GFM renderer with heading ids.
func NewMarkdownRenderer() *MarkdownRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &MarkdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: policy,
	}
}

// Render converts src to HTML.
func (r *MarkdownRenderer) Render(src []byte) (template.HTML, error) {
	var buf bytes.Buffer

	if err := r.md.Convert(src, &buf); err != nil {
		return "", errors.Wrap(err, "failed to convert markdown")
	}

	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), //nolint:gosec // sanitized above
		nil
}

// LoadMarkdown reads every file matching PostsGlob in fsys.
// Files that can not be read or rendered are logged and skipped, drafts are skipped.
func LoadMarkdown(fsys fs.FS, renderer *MarkdownRenderer) ([]RawPost, error) {
	files, err := fs.Glob(fsys, PostsGlob)
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob markdown posts")
	}

	sort.Strings(files)

	posts := make([]RawPost, 0, len(files))

	for _, file := range files {
		raw, err := loadMarkdownFile(fsys, file, renderer)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("skipping markdown post")
			continue
		}

		if raw == nil {
			continue
		}

		posts = append(posts, *raw)
	}

	return posts, nil
}

func loadMarkdownFile(fsys fs.FS, file string, renderer *MarkdownRenderer) (*RawPost, error) {
	src, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read markdown post")
	}

	var fm frontMatter

	body, err := frontmatter.Parse(bytes.NewReader(src), &fm)
	if err != nil {
		// broken metadata: keep the text, placeholders cover the fields
		log.Debug().Err(err).Str("file", file).Msg("no usable frontmatter")

		body = src
		fm = frontMatter{}
	}

	if fm.Draft {
		return nil, nil //nolint:nilnil // drafts are not an error
	}

	html, err := renderer.Render(body)
	if err != nil {
		return nil, err
	}

	excerpt := fm.Excerpt
	if excerpt == "" {
		excerpt = fm.Description
	}

	return &RawPost{
		Slug:     fm.Slug,
		Title:    fm.Title,
		Excerpt:  excerpt,
		Date:     fm.Date,
		Author:   fm.Author,
		Category: fm.Category,
		Tags:     fm.Tags,
		Image:    fm.Image,
		HTML:     html,
		File:     file,
		Source:   SourceMarkdown,
	}, nil
}
