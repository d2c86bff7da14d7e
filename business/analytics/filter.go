package analytics

import (
	"time"
)

// Filter narrows the merged dataset the way the dashboard sidebar does.
// Zero values mean "all".
type Filter struct {
	StartDate     time.Time
	EndDate       time.Time
	Attendance    *bool
	EventType     string
	Country       string
	PremiumStatus string
}

func (f Filter) hasDateRange() bool {
	return !f.StartDate.IsZero() || !f.EndDate.IsZero()
}

// row is one record of the merged actions x clients x transactions view.
type row struct {
	ActionID      string
	ClientID      string
	ActionLabel   string
	StartDate     time.Time
	EndDate       time.Time
	ClientPresent bool

	Country       string
	PremiumStatus string
	Contactable   bool
	hasClient     bool

	TransactionDate time.Time
	GrossAmountEuro float64
	hasTransaction  bool
}

func (f Filter) matches(r row) bool {
	if f.Attendance != nil && r.ClientPresent != *f.Attendance {
		return false
	}
	if f.EventType != "" && r.ActionLabel != f.EventType {
		return false
	}
	if f.Country != "" && r.Country != f.Country {
		return false
	}
	if f.PremiumStatus != "" && r.PremiumStatus != f.PremiumStatus {
		return false
	}

	// A date range only applies to rows that carry a transaction date;
	// rows without one are dropped once a range is set.
	if f.hasDateRange() {
		if !r.hasTransaction || r.TransactionDate.IsZero() {
			return false
		}
		if !f.StartDate.IsZero() && r.TransactionDate.Before(f.StartDate) {
			return false
		}
		if !f.EndDate.IsZero() && r.TransactionDate.After(f.EndDate) {
			return false
		}
	}

	return true
}
