// Package stream answers whether the weekly live stream is on air.
package stream

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // schedules name IANA zones

	"github.com/nosytlabs/nosytlabs-site/internal/config"
)

var (
	// ErrInvalidWeekday is returned for a slot weekday that is not an English day name.
	ErrInvalidWeekday = errors.New("invalid stream weekday")
	// ErrInvalidStart is returned for a slot start that is not HH:MM.
	ErrInvalidStart = errors.New("invalid stream start time")
	// ErrInvalidDuration is returned for slots without a positive duration.
	ErrInvalidDuration = errors.New("stream duration must be positive")
)

// Slot is a weekly recurring stream.
type Slot struct {
	Weekday  time.Weekday
	Start    time.Duration // offset from midnight
	Duration time.Duration
	Title    string
}

// Clock formats the start as HH:MM.
func (s Slot) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(s.Start/time.Hour), int((s.Start%time.Hour)/time.Minute))
}

// Window is one occurrence of a slot.
type Window struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Status is the stream state at one instant.
type Status struct {
	Live    bool    `json:"live"`
	Current *Window `json:"current,omitempty"`
	Next    *Window `json:"next,omitempty"`
	Channel string  `json:"channel"`
	URL     string  `json:"url"`
}

// Schedule is the weekly stream plan in one time zone.
type Schedule struct {
	Channel string
	URL     string

	loc   *time.Location
	slots []Slot
}

// NewSchedule parses the configured slots.
func NewSchedule(cfg config.Stream) (*Schedule, error) {
	tz := cfg.Timezone
	if tz == "" {
		tz = "UTC"
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidStreamTimezone, tz)
	}

	s := &Schedule{
		Channel: cfg.Channel,
		URL:     cfg.URL,
		loc:     loc,
		slots:   make([]Slot, 0, len(cfg.Schedule)),
	}

	for i, c := range cfg.Schedule {
		slot, err := parseSlot(c)
		if err != nil {
			return nil, fmt.Errorf("stream slot %d: %w", i, err)
		}

		s.slots = append(s.slots, slot)
	}

	return s, nil
}

func parseSlot(c config.StreamSlot) (Slot, error) {
	day, err := ParseWeekday(c.Weekday)
	if err != nil {
		return Slot{}, err
	}

	start, err := time.Parse("15:04", strings.TrimSpace(c.Start))
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidStart, c.Start)
	}

	if c.Duration <= 0 {
		return Slot{}, ErrInvalidDuration
	}

	return Slot{
		Weekday:  day,
		Start:    time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute,
		Duration: c.Duration,
		Title:    c.Title,
	}, nil
}

// ParseWeekday accepts full and three letter English day names in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// Location is the time zone of the schedule.
func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Slots returns the parsed slots.
func (s *Schedule) Slots() []Slot {
	return append([]Slot(nil), s.slots...)
}

// windows lists the occurrences that start between one week before and one
// week after the date of now, sorted by start.
func (s *Schedule) windows(now time.Time) []Window {
	local := now.In(s.loc)
	y, m, d := local.Date()

	var out []Window

	for offset := -7; offset <= 7; offset++ {
		day := time.Date(y, m, d+offset, 0, 0, 0, 0, s.loc)

		for _, slot := range s.slots {
			if day.Weekday() != slot.Weekday {
				continue
			}

			h := int(slot.Start / time.Hour)
			mins := int((slot.Start % time.Hour) / time.Minute)
			start := time.Date(day.Year(), day.Month(), day.Day(), h, mins, 0, 0, s.loc)

			out = append(out, Window{Title: slot.Title, Start: start, End: start.Add(slot.Duration)})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	return out
}

// Status reports whether a slot is running at now and when the next one starts.
func (s *Schedule) Status(now time.Time) Status {
	st := Status{Channel: s.Channel, URL: s.URL}

	for _, w := range s.windows(now) {
		if st.Current == nil && !now.Before(w.Start) && now.Before(w.End) {
			st.Live = true
			st.Current = &w
		}

		if st.Next == nil && w.Start.After(now) {
			st.Next = &w
		}
	}

	return st
}

// Upcoming returns up to n occurrences starting after now.
func (s *Schedule) Upcoming(now time.Time, n int) []Window {
	var out []Window

	for _, w := range s.windows(now) {
		if len(out) >= n {
			break
		}

		if w.Start.After(now) {
			out = append(out, w)
		}
	}

	return out
}
