package content

import (
	"sort"
	"strings"
)

// FilterByCategory returns the posts of one category. An empty category or
// AllCategories returns all posts. Matching is done on the category slug, so
// "Web Development", "web-development" and "WEB development" are equal.
func FilterByCategory(posts []BlogPost, category string) []BlogPost {
	want := Slugify(category)
	if want == "" || want == AllCategories {
		return posts
	}

	out := make([]BlogPost, 0, len(posts))

	for _, p := range posts {
		if p.CategorySlug == want {
			out = append(out, p)
		}
	}

	return out
}

// Card is a post in a listing. Hidden cards do not match the active filter;
// they are still rendered so the page script can show them again.
type Card struct {
	BlogPost
	Hidden bool
}

// Cards returns every post as a card, hiding those FilterByCategory would
// drop for category.
func Cards(posts []BlogPost, category string) []Card {
	visible := make(map[string]bool, len(posts))
	for _, p := range FilterByCategory(posts, category) {
		visible[p.Slug] = true
	}

	out := make([]Card, 0, len(posts))
	for _, p := range posts {
		out = append(out, Card{BlogPost: p, Hidden: !visible[p.Slug]})
	}

	return out
}

// Categories lists the categories used by posts sorted by name, preceded by
// the AllCategories entry counting every post.
func Categories(posts []BlogPost) []Category {
	counts := make(map[string]*Category)

	for _, p := range posts {
		c, ok := counts[p.CategorySlug]
		if !ok {
			c = &Category{Slug: p.CategorySlug, Name: p.Category}
			counts[p.CategorySlug] = c
		}

		c.Count++
	}

	list := make([]Category, 0, len(counts)+1)
	for _, c := range counts {
		list = append(list, *c)
	}

	sort.SliceStable(list, func(i, j int) bool {
		a, b := strings.ToLower(list[i].Name), strings.ToLower(list[j].Name)
		if a != b {
			return a < b
		}

		return list[i].Slug < list[j].Slug
	})

	return append([]Category{{Slug: AllCategories, Name: AllCategoriesLabel, Count: len(posts)}}, list...)
}

// ByTag returns the posts carrying tag, compared case-insensitively.
func ByTag(posts []BlogPost, tag string) []BlogPost {
	var out []BlogPost

	for _, p := range posts {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, p)
				break
			}
		}
	}

	return out
}

// Related returns up to limit other posts of the same category.
func Related(posts []BlogPost, post BlogPost, limit int) []BlogPost {
	var out []BlogPost

	for _, p := range posts {
		if len(out) >= limit {
			break
		}

		if p.Slug != post.Slug && p.CategorySlug == post.CategorySlug {
			out = append(out, p)
		}
	}

	return out
}
