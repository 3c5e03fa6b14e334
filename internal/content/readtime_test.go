package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("plain text here"))
	assert.Equal(t, 4, WordCount("<h2 id=\"a\">Two words</h2><p>two <em>more</em></p>"))
	assert.Equal(t, 2, WordCount("<p>only these</p><script>var ignored = 1;</script><style>p{}</style>"))
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime(0))
	assert.Equal(t, 1, ReadTime(200))
	assert.Equal(t, 2, ReadTime(201))
	assert.Equal(t, 5, ReadTime(1000))
}

func TestReadTimeOfLongPost(t *testing.T) {
	body := "<p>" + strings.Repeat("word ", 450) + "</p>"

	post, ok := Normalize(RawPost{Slug: "long", HTML: templateHTML(body)})
	assert.True(t, ok)
	assert.Equal(t, 3, post.ReadTime)
}
