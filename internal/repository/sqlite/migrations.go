package sqlite

import (
	"database/sql"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    department TEXT NOT NULL,
    type TEXT NOT NULL,
    monthly_salary REAL,
    hourly_rate REAL,
    hours_worked_per_month REAL,
    bonus REAL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createEmployeesTable); err != nil {
		return err
	}
	return nil
}
