package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// SummaryPeriod defines the trailing windows for payment summaries.
type SummaryPeriod string

const (
	PeriodDay   SummaryPeriod = "day"
	PeriodWeek  SummaryPeriod = "week"
	PeriodMonth SummaryPeriod = "month"
)

// Role defines the possible roles for a staff user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// DateLayout is the calendar-date format used across the API.
const DateLayout = "2006-01-02"
