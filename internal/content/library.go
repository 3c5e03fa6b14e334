package content

import (
	"embed"
	"io/fs"
	"sync"
	"time"
)

//go:embed posts/*.md
var embeddedPosts embed.FS

// EmbeddedSource returns the markdown posts compiled into the binary.
func EmbeddedSource() fs.FS {
	return embeddedPosts
}

// Library holds the aggregated blog posts. It is safe for concurrent use.
type Library struct {
	source   fs.FS
	literals []RawPost
	renderer *MarkdownRenderer

	mu         sync.RWMutex
	posts      []BlogPost
	index      map[string]int
	categories []Category
	loadedAt   time.Time
}

// NewLibrary aggregates literals and the markdown posts of source.
// A nil source serves the literals only.
func NewLibrary(source fs.FS, literals []RawPost) (*Library, error) {
	l := &Library{
		source:   source,
		literals: literals,
		renderer: NewMarkdownRenderer(),
	}

	if err := l.Reload(); err != nil {
		return nil, err
	}

	return l, nil
}

// Reload re-reads the markdown source. On error the previous posts stay.
func (l *Library) Reload() error {
	var markdown []RawPost

	if l.source != nil {
		var err error

		markdown, err = LoadMarkdown(l.source, l.renderer)
		if err != nil {
			return err
		}
	}

	posts := Aggregate(l.literals, markdown)

	index := make(map[string]int, len(posts))
	for i, p := range posts {
		index[p.Slug] = i
	}

	categories := Categories(posts)

	l.mu.Lock()
	l.posts = posts
	l.index = index
	l.categories = categories
	l.loadedAt = time.Now()
	l.mu.Unlock()

	return nil
}

// Posts returns all posts, newest first.
func (l *Library) Posts() []BlogPost {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]BlogPost(nil), l.posts...)
}

// Post returns the post with the given slug.
func (l *Library) Post(slug string) (BlogPost, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[Slugify(slug)]
	if !ok {
		return BlogPost{}, false
	}

	return l.posts[i], true
}

// Categories returns the category list including the AllCategories entry.
func (l *Library) Categories() []Category {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Category(nil), l.categories...)
}

// Recent returns the n newest posts.
func (l *Library) Recent(n int) []BlogPost {
	posts := l.Posts()
	if len(posts) > n {
		posts = posts[:n]
	}

	return posts
}

// LoadedAt is the time of the last successful load.
func (l *Library) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.loadedAt
}
