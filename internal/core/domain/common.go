package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // Actor identity, recorded verbatim
}

// DateRange is an inclusive calendar range. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether both bounds are open.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// Through returns a range that is open at the start and ends on d.
func Through(d time.Time) DateRange {
	return DateRange{To: d}
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthOf returns the calendar month d falls in.
func MonthOf(d time.Time) MonthKey {
	return MonthKey{Year: d.Year(), Month: int(d.Month())}
}

// Less orders months chronologically.
func (k MonthKey) Less(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

// LastDay returns the final calendar day of the month in UTC.
func (k MonthKey) LastDay() time.Time {
	return time.Date(k.Year, time.Month(k.Month)+1, 0, 0, 0, 0, 0, time.UTC)
}
