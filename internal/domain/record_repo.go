package domain

import (
	"errors"
	"fmt"
)

// Record is the flat serialized form of one employee plus its type tag.
// Numeric fields are pointers so each variant only carries its own.
type Record struct {
	EmployeeID    string   `json:"employee_id"`
	Name          string   `json:"name"`
	Department    string   `json:"department"`
	MonthlySalary *float64 `json:"monthly_salary,omitempty"`
	HourlyRate    *float64 `json:"hourly_rate,omitempty"`
	HoursPerMonth *float64 `json:"hours_worked_per_month,omitempty"`
	Bonus         *float64 `json:"bonus,omitempty"`
	Type          string   `json:"type"`
}

// RecordRepo persists the whole record set; SaveAll replaces the previous
// contents entirely.
type RecordRepo interface {
	LoadAll() ([]Record, error)
	SaveAll(records []Record) error
}

var (
	ErrUnknownType = errors.New("unknown employee type")
	ErrDuplicateID = errors.New("employee id already exists")
)

// FromRecord rebuilds the concrete variant a record describes.
func FromRecord(r Record) (Employee, error) {
	switch r.Type {
	case TypeFullTime:
		return NewFullTimeEmployee(r.EmployeeID, r.Name, r.Department, f64val(r.MonthlySalary)), nil
	case TypePartTime:
		return NewPartTimeEmployee(r.EmployeeID, r.Name, r.Department, f64val(r.HourlyRate), f64val(r.HoursPerMonth)), nil
	case TypeManager:
		return NewManager(r.EmployeeID, r.Name, r.Department, f64val(r.MonthlySalary), f64val(r.Bonus)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, r.Type)
}

func f64(v float64) *float64 { return &v }

func f64val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
