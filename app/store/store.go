package store

import (
	"errors"
	"time"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrConflict is returned when a create would violate a uniqueness
	// invariant (phone, qr_token, username, one presence per student-day)
	// or when a delete is blocked by dependent entities.
	ErrConflict = errors.New("store: conflict")
)

// StudentFilters narrows ListStudents.
type StudentFilters struct {
	Search  string // matches name or phone
	GroupID string
}

// TransactionFilters narrows ListTransactions. From is inclusive, To is
// exclusive; zero values leave the bound open.
type TransactionFilters struct {
	GroupID   string
	StudentID string
	From      time.Time
	To        time.Time
	Limit     int
}

// Store is the entity store the engine operates through. It exclusively
// owns all entities; components never hold private copies. Every write
// is atomic per entity, and RecordCheckIn is atomic across the three
// entities it touches.
type Store interface {
	// Students
	ListStudents(f StudentFilters) ([]*models.Student, error)
	GetStudent(id string) (*models.Student, error)
	GetStudentByPhone(phone string) (*models.Student, error)
	GetStudentByQRToken(token string) (*models.Student, error)
	CreateStudent(s *models.Student) error
	UpdateStudent(s *models.Student) error
	DeleteStudent(id string) error

	// Groups
	ListGroups() ([]*models.Group, error)
	GetGroup(id string) (*models.Group, error)
	CreateGroup(g *models.Group) error
	UpdateGroup(g *models.Group) error
	// DeleteGroup fails with ErrConflict while the group has students.
	DeleteGroup(id string) error
	CountStudentsInGroup(id string) (int, error)

	// Attendance
	GetAttendance(studentID string, date time.Time) (*models.AttendanceRecord, error)
	ListAttendanceByGroupAndDate(groupID string, date time.Time) ([]*models.AttendanceRecord, error)
	// CreateAttendance fails with ErrConflict if a record already exists
	// for (student, date).
	CreateAttendance(r *models.AttendanceRecord) error
	DeleteAttendance(studentID string, date time.Time) error

	// Transactions (append-only)
	ListTransactions(f TransactionFilters) ([]*models.Transaction, error)
	CreateTransaction(t *models.Transaction) error

	// RecordCheckIn persists a presence record and its ledger transaction
	// and bumps the student's derived caches (is_paid_current,
	// attendance_count) as one atomic unit. Fails with ErrConflict if the
	// student already has a record for the date; nothing is written then.
	RecordCheckIn(r *models.AttendanceRecord, t *models.Transaction) error

	// Exams
	ListExams(groupID string) ([]*models.Exam, error)
	GetExam(id string) (*models.Exam, error)
	CreateExam(e *models.Exam) error
	UpdateExam(e *models.Exam) error
	DeleteExam(id string) error
	SetExamScore(examID, studentID string, score float64) error

	// Users
	ListUsers() ([]*models.User, error)
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(u *models.User) error
	DeleteUser(id string) error

	// ResetPaidFlags clears is_paid_current on every student. Run by the
	// scheduler at day rollover.
	ResetPaidFlags() error
}
