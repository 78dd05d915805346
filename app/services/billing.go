package services

import (
	"time"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// Billing owns the payment ledger: manual entries and period summaries.
// Ledger entries are append-only; corrections are new compensating
// entries, never edits.
type Billing struct {
	store store.Store

	// Now is the service clock; tests override it.
	Now func() time.Time
}

func NewBilling(st store.Store) *Billing {
	return &Billing{store: st, Now: time.Now}
}

// RecordPayment appends a manual ledger entry for a student. The amount
// defaults to the student's group session price; an override, when
// given, must not be negative (discounts and refunds are out of scope).
func (s *Billing) RecordPayment(studentID string, amountOverride *float64) (*models.Transaction, error) {
	student, err := s.store.GetStudent(studentID)
	if err != nil {
		return nil, err
	}
	if student.GroupID == nil {
		return nil, ErrNoGroup
	}
	group, err := s.store.GetGroup(*student.GroupID)
	if err != nil {
		return nil, err
	}

	amount := group.SessionPrice
	if amountOverride != nil {
		if *amountOverride < 0 {
			return nil, ErrInvalidAmount
		}
		amount = *amountOverride
	}

	txn := &models.Transaction{
		StudentID:   student.ID,
		GroupID:     group.ID,
		StudentName: student.Name,
		GroupName:   group.Name,
		Amount:      amount,
		Date:        DateOnly(s.Now()),
	}
	if err := s.store.CreateTransaction(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// List returns ledger entries, newest first.
func (s *Billing) List(f store.TransactionFilters) ([]*models.Transaction, error) {
	return s.store.ListTransactions(f)
}

// Summarize reduces the ledger over a trailing window anchored to the
// service clock: day is today, week the last 7 calendar days, month the
// last 30. Optionally filtered by group. Prices changed after a
// transaction was written never affect past summaries: the reduction
// reads only the snapshotted amounts.
func (s *Billing) Summarize(period models.SummaryPeriod, groupID string) (*models.PaymentSummary, error) {
	from, to, err := s.periodWindow(period)
	if err != nil {
		return nil, err
	}

	transactions, err := s.store.ListTransactions(store.TransactionFilters{
		GroupID: groupID,
		From:    from,
		To:      to,
	})
	if err != nil {
		return nil, err
	}

	summary := &models.PaymentSummary{Period: period}
	for _, t := range transactions {
		summary.Total += t.Amount
		summary.Count++
	}
	return summary, nil
}

// periodWindow returns [from, to) for a summary period.
func (s *Billing) periodWindow(period models.SummaryPeriod) (time.Time, time.Time, error) {
	today := DateOnly(s.Now())
	tomorrow := today.AddDate(0, 0, 1)

	switch period {
	case models.PeriodDay:
		return today, tomorrow, nil
	case models.PeriodWeek:
		return today.AddDate(0, 0, -6), tomorrow, nil
	case models.PeriodMonth:
		return today.AddDate(0, 0, -29), tomorrow, nil
	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
}

// GroupSummaries rolls the whole ledger up per group, for the finance
// overview on the groups screen.
func (s *Billing) GroupSummaries() ([]*models.GroupFinanceSummary, error) {
	groups, err := s.store.ListGroups()
	if err != nil {
		return nil, err
	}
	transactions, err := s.store.ListTransactions(store.TransactionFilters{})
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string]*models.GroupFinanceSummary, len(groups))
	summaries := make([]*models.GroupFinanceSummary, 0, len(groups))
	for _, g := range groups {
		summary := &models.GroupFinanceSummary{GroupID: g.ID, GroupName: g.Name}
		byGroup[g.ID] = summary
		summaries = append(summaries, summary)
	}
	for _, t := range transactions {
		if summary, ok := byGroup[t.GroupID]; ok {
			summary.Total += t.Amount
			summary.Count++
		}
	}
	return summaries, nil
}
