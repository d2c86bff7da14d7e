package analytics

import (
	"context"
	"fmt"
	"sort"

	"clientCompass/domain"
)

// ---- Repository interfaces ----

type ClientRepository interface {
	FindAll(ctx context.Context) ([]domain.Client, error)
}

type TransactionRepository interface {
	FindAll(ctx context.Context) ([]domain.Transaction, error)
}

type ActionRepository interface {
	FindAll(ctx context.Context) ([]domain.Action, error)
}

type Service struct {
	clientRepo ClientRepository
	txnRepo    TransactionRepository
	actionRepo ActionRepository
}

func NewService(
	clientRepo ClientRepository,
	txnRepo TransactionRepository,
	actionRepo ActionRepository,
) *Service {
	return &Service{
		clientRepo: clientRepo,
		txnRepo:    txnRepo,
		actionRepo: actionRepo,
	}
}

// KPIs computes the headline metrics over the filtered merged view: total
// gross amount, attendance rate and the number of distinct contactable
// clients.
func (s *Service) KPIs(ctx context.Context, f Filter) (domain.KPIReport, error) {
	rows, err := s.mergedRows(ctx, f)
	if err != nil {
		return domain.KPIReport{}, err
	}

	var report domain.KPIReport

	present := 0
	contactable := make(map[string]struct{})

	for _, r := range rows {
		report.TotalGrossAmountEuro += r.GrossAmountEuro

		if r.ClientPresent {
			present++
		}
		if r.hasClient && r.Contactable {
			contactable[r.ClientID] = struct{}{}
		}
	}

	if len(rows) > 0 {
		report.AttendanceRatePct = float64(present) / float64(len(rows)) * 100
	}
	report.ContactableClients = len(contactable)

	return report, nil
}

// MonthlyGrossAmount sums gross amount per transaction month, ascending.
func (s *Service) MonthlyGrossAmount(ctx context.Context, f Filter) ([]domain.MonthlyAmount, error) {
	rows, err := s.mergedRows(ctx, f)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]float64)
	for _, r := range rows {
		if !r.hasTransaction || r.TransactionDate.IsZero() {
			continue
		}
		month := r.TransactionDate.Format("2006-01")
		byMonth[month] += r.GrossAmountEuro
	}

	out := make([]domain.MonthlyAmount, 0, len(byMonth))
	for month, amount := range byMonth {
		out = append(out, domain.MonthlyAmount{
			Month:           month,
			GrossAmountEuro: amount,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})

	return out, nil
}

// AttendanceByCountry counts attended rows per country and returns the top
// entries with their share of the overall attendance.
func (s *Service) AttendanceByCountry(ctx context.Context, f Filter, top int) ([]domain.CountryAttendance, error) {
	if top <= 0 {
		top = 10
	}

	rows, err := s.mergedRows(ctx, f)
	if err != nil {
		return nil, err
	}

	byCountry := make(map[string]int)
	total := 0

	for _, r := range rows {
		if !r.ClientPresent {
			continue
		}
		total++
		if r.hasClient && r.Country != "" {
			byCountry[r.Country]++
		}
	}

	out := make([]domain.CountryAttendance, 0, len(byCountry))
	for country, n := range byCountry {
		out = append(out, domain.CountryAttendance{
			Country:   country,
			Attendees: n,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Attendees == out[j].Attendees {
			return out[i].Country < out[j].Country
		}
		return out[i].Attendees > out[j].Attendees
	})

	if len(out) > top {
		out = out[:top]
	}

	if total > 0 {
		for i := range out {
			out[i].AttendancePct = float64(out[i].Attendees) / float64(total) * 100
		}
	}

	return out, nil
}

// EventDurations averages event length in days per event type, longest
// first. Same-day events count as one day.
func (s *Service) EventDurations(ctx context.Context, f Filter) ([]domain.EventDuration, error) {
	rows, err := s.mergedRows(ctx, f)
	if err != nil {
		return nil, err
	}

	type agg struct {
		days  float64
		count int
	}
	byLabel := make(map[string]*agg)

	for _, r := range rows {
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			continue
		}

		days := r.EndDate.Sub(r.StartDate).Hours() / 24
		if days < 1 {
			days = 1
		}

		a, ok := byLabel[r.ActionLabel]
		if !ok {
			a = &agg{}
			byLabel[r.ActionLabel] = a
		}
		a.days += days
		a.count++
	}

	out := make([]domain.EventDuration, 0, len(byLabel))
	for label, a := range byLabel {
		out = append(out, domain.EventDuration{
			ActionLabel:     label,
			AvgDurationDays: a.days / float64(a.count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgDurationDays == out[j].AvgDurationDays {
			return out[i].ActionLabel < out[j].ActionLabel
		}
		return out[i].AvgDurationDays > out[j].AvgDurationDays
	})

	return out, nil
}

// mergedRows builds the merged view: actions left-joined with clients and
// transactions on client id. A client with several transactions repeats per
// transaction, matching how the datasets are meant to be combined.
func (s *Service) mergedRows(ctx context.Context, f Filter) ([]row, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	actions, err := s.actionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load actions: %w", err)
	}
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	transactions, err := s.txnRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	clientByID := make(map[string]domain.Client, len(clients))
	for _, c := range clients {
		if _, ok := clientByID[c.ClientID]; !ok {
			clientByID[c.ClientID] = c
		}
	}

	txnsByClient := make(map[string][]domain.Transaction, len(transactions))
	for _, t := range transactions {
		txnsByClient[t.ClientID] = append(txnsByClient[t.ClientID], t)
	}

	var rows []row

	for _, a := range actions {
		base := row{
			ActionID:      a.ActionID,
			ClientID:      a.ClientID,
			ActionLabel:   a.ActionLabel,
			StartDate:     a.StartDate,
			EndDate:       a.EndDate,
			ClientPresent: a.ClientPresent,
		}

		if c, ok := clientByID[a.ClientID]; ok {
			base.hasClient = true
			base.Country = c.Country
			base.PremiumStatus = c.PremiumStatus
			base.Contactable = c.Contactable
		}

		txns := txnsByClient[a.ClientID]
		if len(txns) == 0 {
			if f.matches(base) {
				rows = append(rows, base)
			}
			continue
		}

		for _, t := range txns {
			r := base
			r.hasTransaction = true
			r.TransactionDate = t.TransactionDate
			r.GrossAmountEuro = t.GrossAmountEuro

			if f.matches(r) {
				rows = append(rows, r)
			}
		}
	}

	return rows, nil
}
