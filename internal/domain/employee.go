package domain

import (
	"errors"
	"fmt"
)

const (
	TypeFullTime = "fulltime"
	TypePartTime = "parttime"
	TypeManager  = "manager"
)

// ErrNegativeValue is returned by the numeric setters; the previous value
// stays in place when it is returned.
var ErrNegativeValue = errors.New("cannot be negative")

// Employee is one record in the store, one of three variants.
type Employee interface {
	ID() string
	Name() string
	Department() string
	SetDepartment(department string)
	Type() string
	CalculateSalary() float64
	DisplayDetails() string
	ToRecord() Record
}

var (
	_ Employee = (*FullTimeEmployee)(nil)
	_ Employee = (*PartTimeEmployee)(nil)
	_ Employee = (*Manager)(nil)
)

type base struct {
	id         string
	name       string
	department string
}

func (b *base) ID() string         { return b.id }
func (b *base) Name() string       { return b.name }
func (b *base) Department() string { return b.department }

func (b *base) SetDepartment(department string) {
	b.department = department
}

func (b *base) displayDetails() string {
	return fmt.Sprintf("ID: %s, Name: %s, Dept: %s", b.id, b.name, b.department)
}

func (b *base) record() Record {
	return Record{
		EmployeeID: b.id,
		Name:       b.name,
		Department: b.department,
	}
}

type FullTimeEmployee struct {
	base
	monthlySalary float64
}

func NewFullTimeEmployee(id, name, department string, monthlySalary float64) *FullTimeEmployee {
	return &FullTimeEmployee{
		base:          base{id: id, name: name, department: department},
		monthlySalary: monthlySalary,
	}
}

func (e *FullTimeEmployee) Type() string { return TypeFullTime }

func (e *FullTimeEmployee) MonthlySalary() float64 { return e.monthlySalary }

func (e *FullTimeEmployee) SetMonthlySalary(v float64) error {
	if v < 0 {
		return fmt.Errorf("monthly salary %w", ErrNegativeValue)
	}
	e.monthlySalary = v
	return nil
}

func (e *FullTimeEmployee) CalculateSalary() float64 {
	return e.monthlySalary
}

func (e *FullTimeEmployee) DisplayDetails() string {
	return fmt.Sprintf("%s, Monthly Salary: ₹%g", e.displayDetails(), e.monthlySalary)
}

func (e *FullTimeEmployee) ToRecord() Record {
	r := e.record()
	r.MonthlySalary = f64(e.monthlySalary)
	r.Type = TypeFullTime
	return r
}

type PartTimeEmployee struct {
	base
	hourlyRate    float64
	hoursPerMonth float64
}

func NewPartTimeEmployee(id, name, department string, hourlyRate, hoursPerMonth float64) *PartTimeEmployee {
	return &PartTimeEmployee{
		base:          base{id: id, name: name, department: department},
		hourlyRate:    hourlyRate,
		hoursPerMonth: hoursPerMonth,
	}
}

func (e *PartTimeEmployee) Type() string { return TypePartTime }

func (e *PartTimeEmployee) HourlyRate() float64 { return e.hourlyRate }

func (e *PartTimeEmployee) HoursPerMonth() float64 { return e.hoursPerMonth }

func (e *PartTimeEmployee) SetHourlyRate(v float64) error {
	if v < 0 {
		return fmt.Errorf("hourly rate %w", ErrNegativeValue)
	}
	e.hourlyRate = v
	return nil
}

func (e *PartTimeEmployee) SetHoursPerMonth(v float64) error {
	if v < 0 {
		return fmt.Errorf("hours worked %w", ErrNegativeValue)
	}
	e.hoursPerMonth = v
	return nil
}

func (e *PartTimeEmployee) CalculateSalary() float64 {
	return e.hourlyRate * e.hoursPerMonth
}

func (e *PartTimeEmployee) DisplayDetails() string {
	return fmt.Sprintf("%s, Hourly Rate: ₹%g, Hours/Month: %g", e.displayDetails(), e.hourlyRate, e.hoursPerMonth)
}

func (e *PartTimeEmployee) ToRecord() Record {
	r := e.record()
	r.HourlyRate = f64(e.hourlyRate)
	r.HoursPerMonth = f64(e.hoursPerMonth)
	r.Type = TypePartTime
	return r
}

// Manager is a salaried employee with a monthly bonus on top.
type Manager struct {
	FullTimeEmployee
	bonus float64
}

func NewManager(id, name, department string, monthlySalary, bonus float64) *Manager {
	return &Manager{
		FullTimeEmployee: *NewFullTimeEmployee(id, name, department, monthlySalary),
		bonus:            bonus,
	}
}

func (m *Manager) Type() string { return TypeManager }

func (m *Manager) Bonus() float64 { return m.bonus }

func (m *Manager) SetBonus(v float64) error {
	if v < 0 {
		return fmt.Errorf("bonus %w", ErrNegativeValue)
	}
	m.bonus = v
	return nil
}

func (m *Manager) CalculateSalary() float64 {
	return m.FullTimeEmployee.CalculateSalary() + m.bonus
}

func (m *Manager) DisplayDetails() string {
	return fmt.Sprintf("%s, Bonus: ₹%g", m.FullTimeEmployee.DisplayDetails(), m.bonus)
}

func (m *Manager) ToRecord() Record {
	r := m.FullTimeEmployee.ToRecord()
	r.Bonus = f64(m.bonus)
	r.Type = TypeManager
	return r
}
