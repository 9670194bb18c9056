package main

import (
	"fmt"

	"employee-manager/internal/app/service"
	"employee-manager/internal/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	addID         string
	addName       string
	addDepartment string
	addSalary     float64
	addRate       float64
	addHours      float64
	addBonus      float64
)

// addCmd is the scripted counterpart of the interactive add flow.
var addCmd = &cobra.Command{
	Use:   "add [fulltime|parttime|manager]",
	Short: "Add one employee and save the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an employee by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var findCmd = &cobra.Command{
	Use:   "find [id]",
	Short: "Show one employee with its computed monthly salary",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "List employees whose name contains the given text",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the full employee roster",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Print the total payroll amount",
	Args:  cobra.NoArgs,
	RunE:  runPayroll,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the payroll report table",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	id := addID
	if id == "" {
		id = uuid.NewString()
	}

	// Values go through the setters so negatives are refused up front.
	var employee domain.Employee
	switch args[0] {
	case domain.TypeFullTime:
		e := domain.NewFullTimeEmployee(id, addName, addDepartment, 0)
		if err := e.SetMonthlySalary(addSalary); err != nil {
			return err
		}
		employee = e
	case domain.TypePartTime:
		e := domain.NewPartTimeEmployee(id, addName, addDepartment, 0, 0)
		if err := e.SetHourlyRate(addRate); err != nil {
			return err
		}
		if err := e.SetHoursPerMonth(addHours); err != nil {
			return err
		}
		employee = e
	case domain.TypeManager:
		e := domain.NewManager(id, addName, addDepartment, 0, 0)
		if err := e.SetMonthlySalary(addSalary); err != nil {
			return err
		}
		if err := e.SetBonus(addBonus); err != nil {
			return err
		}
		employee = e
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownType, args[0])
	}

	if !store.Add(employee) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
	}
	fmt.Println(employee.DisplayDetails())
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if !store.Remove(args[0]) {
		return fmt.Errorf("employee %s not found", args[0])
	}
	fmt.Println("Employee removed successfully!")
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	employee, ok := store.FindByID(args[0])
	if !ok {
		return fmt.Errorf("employee %s not found", args[0])
	}
	fmt.Println(employee.DisplayDetails())
	fmt.Printf("Monthly Salary: ₹%.2f\n", employee.CalculateSalary())
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	found := store.SearchByName(args[0])
	if len(found) == 0 {
		return fmt.Errorf("no employees found matching %q", args[0])
	}
	for _, employee := range found {
		fmt.Println(employee.DisplayDetails())
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(service.NewPayrollService(store).RosterListing())
	return nil
}

func runPayroll(cmd *cobra.Command, args []string) error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Printf("Total Company Payroll: ₹%.2f\n", store.TotalPayroll())
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(service.NewPayrollService(store).PayrollReport())
	return nil
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "Employee id (generated when empty)")
	addCmd.Flags().StringVar(&addName, "name", "", "Employee name")
	addCmd.Flags().StringVar(&addDepartment, "department", "", "Employee department")
	addCmd.Flags().Float64Var(&addSalary, "salary", 0, "Monthly salary (fulltime and manager)")
	addCmd.Flags().Float64Var(&addRate, "rate", 0, "Hourly rate (parttime)")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "Hours worked per month (parttime)")
	addCmd.Flags().Float64Var(&addBonus, "bonus", 0, "Monthly bonus (manager)")
}
