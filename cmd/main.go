package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"employee-manager/config"
	"employee-manager/internal/app/service"
	"employee-manager/internal/delivery/cli"
	"employee-manager/internal/delivery/cli/console"
	"employee-manager/internal/domain"
	"employee-manager/internal/repository/jsonfile"
	"employee-manager/internal/repository/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// Global flags
	verbose  bool
	dataFile string
	backend  string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "employee-manager",
	Short: "Employee Management System",
	Long: `Employee Management System keeps salaried, hourly and manager records
in a local store and computes payroll per employee type.

Run without arguments to start the interactive menu.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// buildStore wires the configured backend into a loaded record store.
// The returned func releases the backend when done.
func buildStore() (*service.EmployeeService, func(), error) {
	cfg, err := config.LoadConfig(backend, dataFile)
	if err != nil {
		return nil, nil, err
	}

	var repo domain.RecordRepo
	cleanup := func() {}
	switch cfg.Backend {
	case config.BackendSqlite:
		db, err := sql.Open("sqlite3", cfg.DataFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := sqlite.Migrate(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		repo = sqlite.NewSqliteRecordRepo(db)
		cleanup = func() { db.Close() }
	default:
		repo = jsonfile.NewJsonRecordRepo(cfg.DataFile)
	}

	return service.NewEmployeeService(repo, logger), cleanup, nil
}

func runInteractive() error {
	store, cleanup, err := buildStore()
	if err != nil {
		return err
	}
	defer cleanup()

	// Handle interrupt at the top-level loop
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\nExiting Employee Management System...")
		os.Exit(0)
	}()

	h := &cli.Handler{
		Con:     console.New(os.Stdin, os.Stdout),
		Store:   store,
		Reports: service.NewPayrollService(store),
		Log:     logger,
	}
	return h.Run()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "Path of the employee data store (default employees.json)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Store backend: json or sqlite (default json)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
