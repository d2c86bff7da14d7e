package domain

// KPIReport is the headline metric trio shown on the dashboard.
type KPIReport struct {
	TotalGrossAmountEuro float64 `json:"total_gross_amount_euro"`
	AttendanceRatePct    float64 `json:"attendance_rate_pct"`
	ContactableClients   int     `json:"contactable_clients"`
}

// MonthlyAmount is one point of the monthly gross amount series.
type MonthlyAmount struct {
	Month           string  `json:"month"` // YYYY-MM
	GrossAmountEuro float64 `json:"gross_amount_euro"`
}

// CountryAttendance is attendance per country with its share of the total.
type CountryAttendance struct {
	Country       string  `json:"country"`
	Attendees     int     `json:"attendees"`
	AttendancePct float64 `json:"attendance_pct"`
}

// EventDuration is the average duration of one event type.
type EventDuration struct {
	ActionLabel     string  `json:"action_label"`
	AvgDurationDays float64 `json:"avg_duration_days"`
}
