package domain

import (
	"fmt"
	"time"
)

// Period is a (month, year) pair selecting the scope of aggregation.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// CurrentPeriod returns the period containing the given instant.
func CurrentPeriod(now time.Time) Period {
	return Period{Month: int(now.Month()), Year: now.Year()}
}

// Valid reports whether the period is a usable month/year pair.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 1970 && p.Year <= 9999
}

// Key returns a stable string form used for cache and cycle tagging.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Next returns the following month.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// Previous returns the preceding month.
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// Contains reports whether t falls inside this period. The comparison is
// exact-month: January 31st belongs to January only.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

func (p Period) String() string {
	return p.Key()
}
