package content

import (
	"strings"

	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used for read time estimates.
const WordsPerMinute = 200

// WordCount counts the words in the text nodes of an HTML fragment.
// Plain text is a valid fragment. Script and style contents are ignored.
func WordCount(fragment string) int {
	var (
		words int
		skip  int
	)

	z := html.NewTokenizer(strings.NewReader(fragment))

	for {
		switch z.Next() {
		case html.ErrorToken:
			return words
		case html.StartTagToken:
			if isRawTextTag(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawTextTag(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				words += len(strings.Fields(string(z.Text())))
			}
		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
		}
	}
}

func isRawTextTag(z *html.Tokenizer) bool {
	name, _ := z.TagName()

	return string(name) == "script" || string(name) == "style"
}

// ReadTime converts a word count into whole minutes, rounded up, at least one.
func ReadTime(words int) int {
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}

	return minutes
}
