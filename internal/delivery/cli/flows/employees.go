package flows

import (
	"fmt"
	"strconv"
	"strings"

	"employee-manager/internal/app/service"
	"employee-manager/internal/delivery/cli/console"
	"employee-manager/internal/delivery/cli/router"
	"employee-manager/internal/domain"

	"github.com/google/uuid"
)

func RegisterAdd(r *router.MenuRouter, con *console.Console, store *service.EmployeeService) {
	r.Register("1", func() error {
		for {
			con.Println("\nEmployee Types:")
			con.Println("1. Full-time Employee")
			con.Println("2. Part-time Employee")
			con.Println("3. Manager")
			con.Println("0. Back to Main Menu")

			empType, err := con.Prompt("Select employee type (0-3): ")
			if err != nil {
				return err
			}
			if empType == "0" {
				return nil
			}

			id, err := con.Prompt("Enter Employee ID (leave blank to generate): ")
			if err != nil {
				return err
			}
			if id == "" {
				id = uuid.NewString()
				con.Printf("Generated Employee ID: %s\n", id)
			} else if _, exists := store.FindByID(id); exists {
				con.Println("Employee with this ID already exists!")
				continue
			}

			name, err := con.Prompt("Enter Employee Name: ")
			if err != nil {
				return err
			}
			department, err := con.Prompt("Enter Department: ")
			if err != nil {
				return err
			}

			var employee domain.Employee
			switch empType {
			case "1":
				salary, ok, err := con.PromptFloat("Enter Monthly Salary: ₹")
				if err != nil {
					return err
				}
				if !ok {
					con.Println("Invalid salary amount!")
					continue
				}
				employee = domain.NewFullTimeEmployee(id, name, department, salary)
			case "2":
				rate, ok, err := con.PromptFloat("Enter Hourly Rate: ₹")
				if err != nil {
					return err
				}
				if !ok {
					con.Println("Invalid input!")
					continue
				}
				hours, ok, err := con.PromptFloat("Enter Hours Worked per Month: ")
				if err != nil {
					return err
				}
				if !ok {
					con.Println("Invalid input!")
					continue
				}
				employee = domain.NewPartTimeEmployee(id, name, department, rate, hours)
			case "3":
				salary, ok, err := con.PromptFloat("Enter Monthly Salary: ₹")
				if err != nil {
					return err
				}
				if !ok {
					con.Println("Invalid input!")
					continue
				}
				bonus, ok, err := con.PromptFloat("Enter Monthly Bonus: ₹")
				if err != nil {
					return err
				}
				if !ok {
					con.Println("Invalid input!")
					continue
				}
				employee = domain.NewManager(id, name, department, salary, bonus)
			default:
				con.Println("Invalid employee type!")
				continue
			}

			if store.Add(employee) {
				con.Println("Employee added successfully!")
			} else {
				con.Println("Failed to add employee!")
			}
			return nil
		}
	})
}

func RegisterRemove(r *router.MenuRouter, con *console.Console, store *service.EmployeeService) {
	r.Register("2", func() error {
		id, err := con.Prompt("Enter Employee ID to remove (or 0 to cancel): ")
		if err != nil {
			return err
		}
		if id == "0" {
			return nil
		}
		if store.Remove(id) {
			con.Println("Employee removed successfully!")
		} else {
			con.Println("Employee not found!")
		}
		return nil
	})
}

func RegisterFindByID(r *router.MenuRouter, con *console.Console, store *service.EmployeeService) {
	r.Register("3", func() error {
		id, err := con.Prompt("Enter Employee ID to search (or 0 to cancel): ")
		if err != nil {
			return err
		}
		if id == "0" {
			return nil
		}
		employee, ok := store.FindByID(id)
		if !ok {
			con.Println("Employee not found!")
			return nil
		}
		con.Println("\nEmployee Found:")
		con.Println(strings.Repeat("-", 40))
		con.Println(employee.DisplayDetails())
		con.Printf("Monthly Salary: ₹%.2f\n", employee.CalculateSalary())
		return nil
	})
}

func RegisterSearchByName(r *router.MenuRouter, con *console.Console, store *service.EmployeeService) {
	r.Register("4", func() error {
		name, err := con.Prompt("Enter Employee Name to search (or 0 to cancel): ")
		if err != nil {
			return err
		}
		if name == "0" {
			return nil
		}
		found := store.SearchByName(name)
		if len(found) == 0 {
			con.Println("No employees found with that name!")
			return nil
		}
		con.Printf("\nFound %d employee(s):\n", len(found))
		con.Println(strings.Repeat("-", 40))
		for _, employee := range found {
			con.Println(employee.DisplayDetails())
		}
		return nil
	})
}

func RegisterListAll(r *router.MenuRouter, con *console.Console, reports *service.PayrollService) {
	r.Register("5", func() error {
		con.Println(reports.RosterListing())
		return nil
	})
}

func RegisterTotalPayroll(r *router.MenuRouter, con *console.Console, store *service.EmployeeService) {
	r.Register("6", func() error {
		con.Printf("\nTotal Company Payroll: ₹%.2f\n", store.TotalPayroll())
		return nil
	})
}

func RegisterReport(r *router.MenuRouter, con *console.Console, reports *service.PayrollService) {
	r.Register("7", func() error {
		con.Println(reports.PayrollReport())
		return nil
	})
}

func RegisterUpdate(r *router.MenuRouter, con *console.Console, store *service.EmployeeService) {
	r.Register("8", func() error {
		id, err := con.Prompt("Enter Employee ID to update (or 0 to cancel): ")
		if err != nil {
			return err
		}
		if id == "0" {
			return nil
		}
		employee, ok := store.FindByID(id)
		if !ok {
			con.Println("Employee not found!")
			return nil
		}

		con.Println("\nUpdating employee (press Enter to keep the current value):")
		con.Println(employee.DisplayDetails())

		department, err := con.Prompt(fmt.Sprintf("Enter Department [%s]: ", employee.Department()))
		if err != nil {
			return err
		}
		if department != "" {
			employee.SetDepartment(department)
		}

		switch e := employee.(type) {
		case *domain.Manager:
			if err := updateFloat(con, "Enter Monthly Salary", e.MonthlySalary(), e.SetMonthlySalary); err != nil {
				return err
			}
			if err := updateFloat(con, "Enter Monthly Bonus", e.Bonus(), e.SetBonus); err != nil {
				return err
			}
		case *domain.FullTimeEmployee:
			if err := updateFloat(con, "Enter Monthly Salary", e.MonthlySalary(), e.SetMonthlySalary); err != nil {
				return err
			}
		case *domain.PartTimeEmployee:
			if err := updateFloat(con, "Enter Hourly Rate", e.HourlyRate(), e.SetHourlyRate); err != nil {
				return err
			}
			if err := updateFloat(con, "Enter Hours Worked per Month", e.HoursPerMonth(), e.SetHoursPerMonth); err != nil {
				return err
			}
		}

		store.Persist()
		con.Println("Employee updated successfully!")
		return nil
	})
}

func RegisterExit(r *router.MenuRouter, con *console.Console) {
	r.Register("9", func() error {
		con.Println("Thank you for using Employee Management System!")
		return router.ErrExit
	})
}

// updateFloat prompts for a replacement value. Blank keeps the current
// one, unparsable input skips the field, a rejected value prints the
// setter's warning.
func updateFloat(con *console.Console, label string, current float64, set func(float64) error) error {
	s, err := con.Prompt(fmt.Sprintf("%s [%g]: ", label, current))
	if err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	v, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		con.Println("Invalid input!")
		return nil
	}
	if serr := set(v); serr != nil {
		con.Println(serr)
	}
	return nil
}
