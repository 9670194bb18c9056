package service

import (
	"errors"
	"os"
	"strings"

	"employee-manager/internal/domain"

	"go.uber.org/zap"
)

// EmployeeService is the in-memory record store. It loads once at
// construction and writes the whole set back through the repo after
// every mutation. Insertion order is kept for listings and saves.
type EmployeeService struct {
	Repo domain.RecordRepo
	Log  *zap.Logger

	employees map[string]domain.Employee
	order     []string
}

func NewEmployeeService(repo domain.RecordRepo, log *zap.Logger) *EmployeeService {
	s := &EmployeeService{
		Repo:      repo,
		Log:       log,
		employees: make(map[string]domain.Employee),
	}
	s.load()
	return s
}

func (s *EmployeeService) load() {
	records, err := s.Repo.LoadAll()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.Log.Info("no existing employee data found, starting with empty database")
		} else {
			s.Log.Warn("invalid employee data, starting with empty database", zap.Error(err))
		}
		return
	}
	for _, rec := range records {
		e, err := domain.FromRecord(rec)
		if err != nil {
			s.Log.Warn("skipping employee record", zap.String("employee_id", rec.EmployeeID), zap.Error(err))
			continue
		}
		if _, ok := s.employees[e.ID()]; !ok {
			s.order = append(s.order, e.ID())
		}
		s.employees[e.ID()] = e
	}
}

// Add inserts a new employee and persists. It reports false when the id
// is already taken, leaving the store untouched.
func (s *EmployeeService) Add(e domain.Employee) bool {
	if _, ok := s.employees[e.ID()]; ok {
		return false
	}
	s.employees[e.ID()] = e
	s.order = append(s.order, e.ID())
	s.Persist()
	return true
}

func (s *EmployeeService) Remove(id string) bool {
	if _, ok := s.employees[id]; !ok {
		return false
	}
	delete(s.employees, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.Persist()
	return true
}

func (s *EmployeeService) FindByID(id string) (domain.Employee, bool) {
	e, ok := s.employees[id]
	return e, ok
}

// SearchByName matches the name case-insensitively as a substring and
// returns hits in store order.
func (s *EmployeeService) SearchByName(name string) []domain.Employee {
	q := strings.ToLower(name)
	var found []domain.Employee
	for _, id := range s.order {
		e := s.employees[id]
		if strings.Contains(strings.ToLower(e.Name()), q) {
			found = append(found, e)
		}
	}
	return found
}

func (s *EmployeeService) All() []domain.Employee {
	out := make([]domain.Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.employees[id])
	}
	return out
}

func (s *EmployeeService) Len() int {
	return len(s.order)
}

func (s *EmployeeService) TotalPayroll() float64 {
	var total float64
	for _, id := range s.order {
		total += s.employees[id].CalculateSalary()
	}
	return total
}

// Persist writes the whole record set through the repo. A write failure
// is logged and the in-memory state kept, so callers never roll back.
func (s *EmployeeService) Persist() {
	records := make([]domain.Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.employees[id].ToRecord())
	}
	if err := s.Repo.SaveAll(records); err != nil {
		s.Log.Warn("error saving employee data", zap.Error(err))
	}
}
