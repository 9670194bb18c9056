package cli

import (
	"errors"
	"io"
	"strings"

	"employee-manager/internal/app/service"
	"employee-manager/internal/delivery/cli/console"
	"employee-manager/internal/delivery/cli/flows"
	"employee-manager/internal/delivery/cli/router"

	"go.uber.org/zap"
)

type Handler struct {
	Con     *console.Console
	Store   *service.EmployeeService
	Reports *service.PayrollService
	Log     *zap.Logger
}

func (h *Handler) Register(r *router.MenuRouter) {
	flows.RegisterAdd(r, h.Con, h.Store)
	flows.RegisterRemove(r, h.Con, h.Store)
	flows.RegisterFindByID(r, h.Con, h.Store)
	flows.RegisterSearchByName(r, h.Con, h.Store)
	flows.RegisterListAll(r, h.Con, h.Reports)
	flows.RegisterTotalPayroll(r, h.Con, h.Store)
	flows.RegisterReport(r, h.Con, h.Reports)
	flows.RegisterUpdate(r, h.Con, h.Store)
	flows.RegisterExit(r, h.Con)
}

// Run drives the menu until exit is chosen or input ends. Flow errors
// are reported and the loop continues.
func (h *Handler) Run() error {
	r := router.New()
	h.Register(r)

	for {
		h.printMenu()
		choice, err := h.Con.Prompt("Enter your choice (1-9): ")
		if err != nil {
			return nil
		}

		handled, err := r.Dispatch(choice)
		if !handled {
			h.Con.Println("Invalid choice! Please enter a number between 1-9.")
			continue
		}
		if errors.Is(err, router.ErrExit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			h.Con.Printf("An error occurred: %v\n", err)
			h.Log.Debug("menu flow failed", zap.String("choice", choice), zap.Error(err))
		}
	}
}

func (h *Handler) printMenu() {
	sep := strings.Repeat("=", 50)
	h.Con.Println("\n" + sep)
	h.Con.Println("EMPLOYEE MANAGEMENT SYSTEM v1.0")
	h.Con.Println(sep)
	h.Con.Println("1. Add Employee")
	h.Con.Println("2. Remove Employee")
	h.Con.Println("3. Search Employee by ID")
	h.Con.Println("4. Search Employee by Name")
	h.Con.Println("5. Display All Employees")
	h.Con.Println("6. Calculate Total Payroll")
	h.Con.Println("7. Generate Payroll Report")
	h.Con.Println("8. Update Employee")
	h.Con.Println("9. Exit")
	h.Con.Println(sep)
}
