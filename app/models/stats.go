package models

// PresenceSheet is the present/absent partition of a group's students
// for one date. The two lists are disjoint and their union is exactly
// the group's membership.
type PresenceSheet struct {
	GroupID string     `json:"group_id"`
	Date    string     `json:"date"`
	Present []*Student `json:"present"`
	Absent  []*Student `json:"absent"`
}

// PaymentSummary is the reduction of ledger transactions over a period.
type PaymentSummary struct {
	Period SummaryPeriod `json:"period"`
	Total  float64       `json:"total"`
	Count  int           `json:"count"`
}

// GroupFinanceSummary is a per-group income rollup.
type GroupFinanceSummary struct {
	GroupID   string  `json:"group_id"`
	GroupName string  `json:"group_name"`
	Total     float64 `json:"total"`
	Count     int     `json:"count"`
}

// DashboardStats backs the admin dashboard landing page.
type DashboardStats struct {
	StudentsCount  int            `json:"students_count"`
	GroupsCount    int            `json:"groups_count"`
	ExamsCount     int            `json:"exams_count"`
	MonthlyIncome  float64        `json:"monthly_income"`
	RecentPayments []*Transaction `json:"recent_payments"`
}
