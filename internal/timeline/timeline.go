// Package timeline groups checklist items into date buckets for the
// timeline view.
package timeline

import (
	"sort"
	"time"

	"github.com/vowsync/vowsync/internal/models"
)

// Bucket is one section of the timeline.
type Bucket int

const (
	// BucketNone marks items that do not appear on the timeline: no due
	// date, or already overdue.
	BucketNone Bucket = iota
	BucketToday
	BucketTomorrow
	BucketNextWeek
	BucketNextMonth
	BucketUpcoming
)

func (b Bucket) String() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketTomorrow:
		return "Tomorrow"
	case BucketNextWeek:
		return "Next Week"
	case BucketNextMonth:
		return "Next Month"
	case BucketUpcoming:
		return "Upcoming"
	}
	return "None"
}

// boundaries are the half-open day edges separating the buckets, relative
// to now. A due date d lands in Today when startOfDay <= d < day(+1),
// Tomorrow up to day(+2), NextWeek through the end of day(+7), NextMonth
// through the end of the same calendar day one month out, and Upcoming
// beyond that. The buckets are mutually exclusive and cover every due date
// from the start of today onward.
type boundaries struct {
	dayStart  time.Time // start of today
	tomorrow  time.Time
	afterNext time.Time // start of day(+2)
	weekEnd   time.Time // exclusive: start of day(+8)
	monthEnd  time.Time // exclusive: start of the day after (today + 1 month)
}

func boundsAt(now time.Time) boundaries {
	d0 := startOfDay(now)
	return boundaries{
		dayStart:  d0,
		tomorrow:  d0.AddDate(0, 0, 1),
		afterNext: d0.AddDate(0, 0, 2),
		weekEnd:   d0.AddDate(0, 0, 8),
		monthEnd:  d0.AddDate(0, 1, 1),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Assign places a due date into its bucket as of now. BucketNone means the
// date is before the start of today.
func Assign(due, now time.Time) Bucket {
	b := boundsAt(now)
	switch {
	case due.Before(b.dayStart):
		return BucketNone
	case due.Before(b.tomorrow):
		return BucketToday
	case due.Before(b.afterNext):
		return BucketTomorrow
	case due.Before(b.weekEnd):
		return BucketNextWeek
	case due.Before(b.monthEnd):
		return BucketNextMonth
	default:
		return BucketUpcoming
	}
}

// Groups holds the bucketed timeline, each section sorted by due date
// ascending.
type Groups struct {
	Today     []models.ToDoItem
	Tomorrow  []models.ToDoItem
	NextWeek  []models.ToDoItem
	NextMonth []models.ToDoItem
	Upcoming  []models.ToDoItem
}

// Group buckets the items that carry a due date. Items without one, and
// items already overdue, are left off the timeline.
func Group(items []models.ToDoItem, now time.Time) Groups {
	var g Groups
	for _, item := range items {
		if item.DueDate == nil {
			continue
		}
		switch Assign(*item.DueDate, now) {
		case BucketToday:
			g.Today = append(g.Today, item)
		case BucketTomorrow:
			g.Tomorrow = append(g.Tomorrow, item)
		case BucketNextWeek:
			g.NextWeek = append(g.NextWeek, item)
		case BucketNextMonth:
			g.NextMonth = append(g.NextMonth, item)
		case BucketUpcoming:
			g.Upcoming = append(g.Upcoming, item)
		}
	}
	for _, section := range [][]models.ToDoItem{g.Today, g.Tomorrow, g.NextWeek, g.NextMonth, g.Upcoming} {
		sort.SliceStable(section, func(i, j int) bool {
			return section[i].DueDate.Before(*section[j].DueDate)
		})
	}
	return g
}
