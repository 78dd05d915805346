package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
)

// Memory is a mutex-guarded in-memory Store. It backs the test suite and
// the local demo mode (STORE_DRIVER=memory).
type Memory struct {
	mu           sync.RWMutex
	students     map[string]*models.Student
	groups       map[string]*models.Group
	attendance   map[string]*models.AttendanceRecord // key: studentID|YYYY-MM-DD
	transactions []*models.Transaction
	exams        map[string]*models.Exam
	scores       map[string]map[string]float64 // examID -> studentID -> score
	users        map[string]*models.User
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		students:   make(map[string]*models.Student),
		groups:     make(map[string]*models.Group),
		attendance: make(map[string]*models.AttendanceRecord),
		exams:      make(map[string]*models.Exam),
		scores:     make(map[string]map[string]float64),
		users:      make(map[string]*models.User),
	}
}

func attendanceKey(studentID string, date time.Time) string {
	return studentID + "|" + date.Format(models.DateLayout)
}

// ---- Students ----

func (m *Memory) ListStudents(f StudentFilters) ([]*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Student
	for _, s := range m.students {
		if f.GroupID != "" && (s.GroupID == nil || *s.GroupID != f.GroupID) {
			continue
		}
		if f.Search != "" {
			q := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(s.Name), q) && !strings.Contains(s.Phone, f.Search) {
				continue
			}
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetStudent(id string) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *Memory) GetStudentByPhone(phone string) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.Phone == phone {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetStudentByQRToken(token string) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.QRToken == token {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateStudent(s *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.students {
		if existing.Phone == s.Phone || existing.QRToken == s.QRToken {
			return ErrConflict
		}
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	cp := *s
	m.students[s.ID] = &cp
	return nil
}

func (m *Memory) UpdateStudent(s *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.students[s.ID]
	if !ok {
		return ErrNotFound
	}
	for id, existing := range m.students {
		if id != s.ID && existing.Phone == s.Phone {
			return ErrConflict
		}
	}
	s.QRToken = current.QRToken // immutable once issued
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now()
	cp := *s
	m.students[s.ID] = &cp
	return nil
}

func (m *Memory) DeleteStudent(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.students[id]; !ok {
		return ErrNotFound
	}
	delete(m.students, id)
	for key, r := range m.attendance {
		if r.StudentID == id {
			delete(m.attendance, key)
		}
	}
	// transactions are kept: they carry their own snapshots
	return nil
}

// ---- Groups ----

func (m *Memory) ListGroups() ([]*models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Group
	for _, g := range m.groups {
		cp := *g
		cp.StudentCount = m.countStudentsLocked(g.ID)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) GetGroup(id string) (*models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.groups[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	cp.StudentCount = m.countStudentsLocked(id)
	return &cp, nil
}

func (m *Memory) CreateGroup(g *models.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	cp := *g
	m.groups[g.ID] = &cp
	return nil
}

func (m *Memory) UpdateGroup(g *models.Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.groups[g.ID]
	if !ok {
		return ErrNotFound
	}
	g.CreatedAt = current.CreatedAt
	g.UpdatedAt = time.Now()
	cp := *g
	m.groups[g.ID] = &cp
	return nil
}

func (m *Memory) DeleteGroup(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.groups[id]; !ok {
		return ErrNotFound
	}
	if m.countStudentsLocked(id) > 0 {
		return ErrConflict
	}
	delete(m.groups, id)
	return nil
}

func (m *Memory) CountStudentsInGroup(id string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.countStudentsLocked(id), nil
}

func (m *Memory) countStudentsLocked(groupID string) int {
	n := 0
	for _, s := range m.students {
		if s.GroupID != nil && *s.GroupID == groupID {
			n++
		}
	}
	return n
}

// ---- Attendance ----

func (m *Memory) GetAttendance(studentID string, date time.Time) (*models.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.attendance[attendanceKey(studentID, date)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *Memory) ListAttendanceByGroupAndDate(groupID string, date time.Time) ([]*models.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	day := date.Format(models.DateLayout)
	var out []*models.AttendanceRecord
	for _, r := range m.attendance {
		if r.GroupID == groupID && r.DateString() == day {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *Memory) CreateAttendance(r *models.AttendanceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createAttendanceLocked(r)
}

func (m *Memory) createAttendanceLocked(r *models.AttendanceRecord) error {
	key := attendanceKey(r.StudentID, r.Date)
	if _, exists := m.attendance[key]; exists {
		return ErrConflict
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.CreatedAt = time.Now()
	cp := *r
	m.attendance[key] = &cp
	return nil
}

func (m *Memory) DeleteAttendance(studentID string, date time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := attendanceKey(studentID, date)
	if _, ok := m.attendance[key]; !ok {
		return ErrNotFound
	}
	delete(m.attendance, key)
	return nil
}

// ---- Transactions ----

func (m *Memory) ListTransactions(f TransactionFilters) ([]*models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Transaction
	for _, t := range m.transactions {
		if f.GroupID != "" && t.GroupID != f.GroupID {
			continue
		}
		if f.StudentID != "" && t.StudentID != f.StudentID {
			continue
		}
		if !f.From.IsZero() && t.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !t.Date.Before(f.To) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *Memory) CreateTransaction(t *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendTransactionLocked(t)
	return nil
}

func (m *Memory) appendTransactionLocked(t *models.Transaction) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now()
	cp := *t
	m.transactions = append(m.transactions, &cp)
}

func (m *Memory) RecordCheckIn(r *models.AttendanceRecord, t *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.createAttendanceLocked(r); err != nil {
		return err
	}
	m.appendTransactionLocked(t)
	if s, ok := m.students[r.StudentID]; ok {
		s.IsPaidCurrent = true
		s.AttendanceCount++
		s.UpdatedAt = time.Now()
	}
	return nil
}

// ---- Exams ----

func (m *Memory) ListExams(groupID string) ([]*models.Exam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.Exam
	for _, e := range m.exams {
		if groupID != "" && e.GroupID != groupID {
			continue
		}
		out = append(out, m.examWithScoresLocked(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *Memory) GetExam(id string) (*models.Exam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.exams[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m.examWithScoresLocked(e), nil
}

func (m *Memory) examWithScoresLocked(e *models.Exam) *models.Exam {
	cp := *e
	cp.Scores = make(map[string]float64, len(m.scores[e.ID]))
	for sid, score := range m.scores[e.ID] {
		cp.Scores[sid] = score
	}
	return &cp
}

func (m *Memory) CreateExam(e *models.Exam) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	cp.Scores = nil
	m.exams[e.ID] = &cp
	return nil
}

func (m *Memory) UpdateExam(e *models.Exam) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.exams[e.ID]
	if !ok {
		return ErrNotFound
	}
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now()
	cp := *e
	cp.Scores = nil
	m.exams[e.ID] = &cp
	return nil
}

func (m *Memory) DeleteExam(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.exams[id]; !ok {
		return ErrNotFound
	}
	delete(m.exams, id)
	delete(m.scores, id)
	return nil
}

func (m *Memory) SetExamScore(examID, studentID string, score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.exams[examID]; !ok {
		return ErrNotFound
	}
	if m.scores[examID] == nil {
		m.scores[examID] = make(map[string]float64)
	}
	m.scores[examID][studentID] = score
	return nil
}

// ---- Users ----

func (m *Memory) ListUsers() ([]*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.User
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (m *Memory) GetUser(id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == u.Username {
			return ErrConflict
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *Memory) UpdateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.users[u.ID]
	if !ok {
		return ErrNotFound
	}
	for id, existing := range m.users {
		if id != u.ID && existing.Username == u.Username {
			return ErrConflict
		}
	}
	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = time.Now()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *Memory) DeleteUser(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// ---- Maintenance ----

func (m *Memory) ResetPaidFlags() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.students {
		s.IsPaidCurrent = false
	}
	return nil
}
