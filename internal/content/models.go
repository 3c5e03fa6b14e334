package content

import (
	"html/template"
	"strconv"
	"time"
)

// Source tells where a blog post was defined.
type Source string

const (
	// SourceLiteral is a post defined in Go.
	SourceLiteral Source = "literal"
	// SourceMarkdown is a post loaded from a markdown file.
	SourceMarkdown Source = "markdown"
)

// RawPost is a blog post as found in its source, before normalization.
// Empty strings mean the field was not given.
type RawPost struct {
	ID       string
	Slug     string
	Title    string
	Excerpt  string
	Date     string
	Author   string
	Category string
	Tags     []string
	Image    string
	// HTML is the rendered body. Markdown posts get it from goldmark.
	HTML template.HTML
	// File is the source file name for markdown posts.
	File   string
	Source Source
}

// BlogPost is a normalized post ready for rendering.
type BlogPost struct {
	Slug         string
	Title        string
	Excerpt      string
	Date         time.Time
	Author       string
	Category     string
	CategorySlug string
	Tags         []string
	Image        string
	ReadTime     int // minutes
	HTML         template.HTML
	Source       Source
}

// HasDate reports whether the post carried a parsable date.
func (p BlogPost) HasDate() bool {
	return !p.Date.IsZero()
}

// DisplayDate formats the date for cards, empty for undated posts.
func (p BlogPost) DisplayDate() string {
	if p.Date.IsZero() {
		return ""
	}

	return p.Date.Format("January 2, 2006")
}

// ReadTimeLabel returns "N min read".
func (p BlogPost) ReadTimeLabel() string {
	return strconv.Itoa(p.ReadTime) + " min read"
}

// Category is a blog category with the number of posts in it.
type Category struct {
	Slug  string
	Name  string
	Count int
}

// TeamMember is a person on the About page.
type TeamMember struct {
	Name   string
	Role   string
	Bio    string
	Image  string
	Skills []string
	Social map[string]string // platform -> URL
}

// CaseStudy is a short project story attached to a service.
type CaseStudy struct {
	Title   string
	Summary string
	Outcome string
}

// Service is an offering on the Services page.
type Service struct {
	ID               string
	Title            string
	ShortDescription string
	Description      string
	Icon             string
	Features         []string
	Tools            []string
	CaseStudies      []CaseStudy
	StartingPrice    string
}

// PassiveIncomeApp is a bandwidth sharing or rewards app guide.
type PassiveIncomeApp struct {
	ID             string
	Title          string
	Description    string
	Image          string
	Earnings       []string // estimate strings as displayed
	PaymentMethods []string
	Platforms      []string
	SetupSteps     []string
	ReferralURL    string
	// USDPerGB and ReferralShare override the calculator defaults when non-zero.
	USDPerGB      float64
	ReferralShare float64
	// Calculator is false for apps whose payout does not depend on bandwidth.
	Calculator bool
}

// PricingTier is a package on the Services page.
type PricingTier struct {
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	Highlighted bool
}

// FAQ is a question and answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// Skill is a named skill with a level from 0 to 100.
type Skill struct {
	Name  string
	Level int
}

// SkillGroup groups skills on the Skills page.
type SkillGroup struct {
	Name   string
	Icon   string
	Skills []Skill
}
