package service

import (
	"fmt"
	"strings"

	"employee-manager/internal/domain"
)

// PayrollService renders the fixed-width listings over the store.
type PayrollService struct {
	Store *EmployeeService
}

func NewPayrollService(store *EmployeeService) *PayrollService {
	return &PayrollService{Store: store}
}

func (p *PayrollService) RosterListing() string {
	employees := p.Store.All()
	if len(employees) == 0 {
		return "No employees found."
	}

	sep := strings.Repeat("=", 80)
	var b strings.Builder
	b.WriteString("\n" + sep + "\n")
	b.WriteString("ALL EMPLOYEES\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "%-10s %-20s %-15s %-15s %s\n", "ID", "Name", "Department", "User Type", "Details")
	b.WriteString(strings.Repeat("-", 80) + "\n")
	for _, e := range employees {
		fmt.Fprintf(&b, "%-10s %-20s %-15s %-15s %s\n", e.ID(), e.Name(), e.Department(), variantName(e), e.DisplayDetails())
	}
	b.WriteString(sep)
	return b.String()
}

func (p *PayrollService) PayrollReport() string {
	employees := p.Store.All()
	if len(employees) == 0 {
		return "No employees found."
	}

	sep := strings.Repeat("=", 100)
	var b strings.Builder
	b.WriteString("\n" + sep + "\n")
	b.WriteString("PAYROLL REPORT\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "%-10s %-20s %-15s %-15s %-15s\n", "ID", "Name", "Dept", "Type", "Salary")
	b.WriteString(strings.Repeat("-", 100) + "\n")

	var total float64
	for _, e := range employees {
		salary := e.CalculateSalary()
		total += salary
		fmt.Fprintf(&b, "%-10s %-20s %-15s %-15s ₹%-14.2f\n", e.ID(), e.Name(), e.Department(), variantName(e), salary)
	}

	b.WriteString(strings.Repeat("-", 100) + "\n")
	fmt.Fprintf(&b, "%-75s ₹%.2f\n", "TOTAL PAYROLL:", total)
	b.WriteString(sep)
	return b.String()
}

func variantName(e domain.Employee) string {
	switch e.(type) {
	case *domain.Manager:
		return "Manager"
	case *domain.FullTimeEmployee:
		return "FullTimeEmployee"
	case *domain.PartTimeEmployee:
		return "PartTimeEmployee"
	}
	return "Employee"
}
