package content

import (
	"sort"
)

// Aggregate normalizes the posts of all sources into one list.
// Posts without a resolvable slug are dropped, the first post seen for a slug
// wins, and the result is sorted by SortByDate.
func Aggregate(sources ...[]RawPost) []BlogPost {
	var (
		out  []BlogPost
		seen = make(map[string]struct{})
	)

	for _, source := range sources {
		for _, raw := range source {
			post, ok := Normalize(raw)
			if !ok {
				continue
			}

			if _, dup := seen[post.Slug]; dup {
				continue
			}

			seen[post.Slug] = struct{}{}
			out = append(out, post)
		}
	}

	SortByDate(out)

	return out
}

// SortByDate orders posts newest first. Undated posts go last and posts with
// equal dates keep their relative order.
func SortByDate(posts []BlogPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].Date, posts[j].Date

		switch {
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		default:
			return a.After(b)
		}
	})
}
