package puzzle

import (
	"slices"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDuplicateDay is returned when a year/day pair is registered twice.
	ErrDuplicateDay = errors.New("puzzle: day already registered")

	// ErrUnknownDay is returned by Lookup for an unregistered year/day.
	ErrUnknownDay = errors.New("puzzle: day not registered")
)

type dayKey struct{ year, day int }

// Registry indexes days by year and day number. The zero value is empty and
// ready to use.
type Registry struct {
	days  []Day
	index map[dayKey]int
}

// NewRegistry registers every day in order.
func NewRegistry(days ...Day) (*Registry, error) {
	r := &Registry{}
	for _, d := range days {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds d, keeping days sorted by year then day.
func (r *Registry) Register(d Day) error {
	if r.index == nil {
		r.index = make(map[dayKey]int)
	}
	k := dayKey{d.Year, d.Day}
	if _, ok := r.index[k]; ok {
		return errors.Wrapf(ErrDuplicateDay, "%d day %d", d.Year, d.Day)
	}
	i, _ := slices.BinarySearchFunc(r.days, k, func(e Day, k dayKey) int {
		if e.Year != k.year {
			return e.Year - k.year
		}
		return e.Day - k.day
	})
	r.days = slices.Insert(r.days, i, d)
	for j := i; j < len(r.days); j++ {
		r.index[dayKey{r.days[j].Year, r.days[j].Day}] = j
	}
	return nil
}

// Lookup returns the day registered for year and day.
func (r *Registry) Lookup(year, day int) (Day, error) {
	i, ok := r.index[dayKey{year, day}]
	if !ok {
		return Day{}, errors.Wrapf(ErrUnknownDay, "%d day %d", year, day)
	}
	return r.days[i], nil
}

// Latest returns the most recent day of the most recent year.
func (r *Registry) Latest() (Day, bool) {
	if len(r.days) == 0 {
		return Day{}, false
	}
	return r.days[len(r.days)-1], true
}

// LatestIn returns the highest day registered for year.
func (r *Registry) LatestIn(year int) (Day, bool) {
	days := r.Year(year)
	if len(days) == 0 {
		return Day{}, false
	}
	return days[len(days)-1], true
}

// Years lists every year with at least one day, ascending.
func (r *Registry) Years() []int {
	var years []int
	for _, d := range r.days {
		if n := len(years); n == 0 || years[n-1] != d.Year {
			years = append(years, d.Year)
		}
	}
	return years
}

// Year returns the days of one year in order.
func (r *Registry) Year(year int) []Day {
	var out []Day
	for _, d := range r.days {
		if d.Year == year {
			out = append(out, d)
		}
	}
	return out
}

// All returns every day ordered by year then day.
func (r *Registry) All() []Day { return slices.Clone(r.days) }

// Len is the number of registered days.
func (r *Registry) Len() int { return len(r.days) }
