package note

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

const day = 24 * time.Hour

// DerivedView filters notes by color and creation window and sorts them.
// It never mutates notes; ties keep their input order.
func DerivedView(notes []domain.Note, opts domain.ViewOptions, now time.Time) []domain.Note {
	cutoff, hasCutoff := dateCutoff(opts.Date, now)

	out := make([]domain.Note, 0, len(notes))
	for _, n := range notes {
		if opts.Color != nil && n.Color != *opts.Color {
			continue
		}
		if hasCutoff && n.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, n)
	}

	switch opts.Sort {
	case domain.SortDateAsc:
		slices.SortStableFunc(out, func(a, b domain.Note) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case domain.SortTitleAsc, domain.SortTitleDesc:
		c := collate.New(language.Und)
		sign := 1
		if opts.Sort == domain.SortTitleDesc {
			sign = -1
		}
		slices.SortStableFunc(out, func(a, b domain.Note) int {
			return sign * c.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(out, func(a, b domain.Note) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}

	return out
}

// dateCutoff returns the earliest creation time admitted by d. "today"
// starts at midnight in now's location.
func dateCutoff(d domain.DateFilter, now time.Time) (time.Time, bool) {
	switch d {
	case domain.DateToday:
		y, m, dd := now.Date()
		return time.Date(y, m, dd, 0, 0, 0, 0, now.Location()), true
	case domain.DateWeek:
		return now.Add(-7 * day), true
	case domain.DateMonth:
		return now.Add(-30 * day), true
	}
	return time.Time{}, false
}
