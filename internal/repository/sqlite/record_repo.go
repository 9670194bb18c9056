package sqlite

import (
	"database/sql"

	"employee-manager/internal/domain"
)

// SqliteRecordRepo keeps the record set in one table. The position column
// makes load order follow insertion order, matching the file backend.
type SqliteRecordRepo struct {
	db *sql.DB
}

func NewSqliteRecordRepo(db *sql.DB) *SqliteRecordRepo {
	return &SqliteRecordRepo{db: db}
}

func (r *SqliteRecordRepo) LoadAll() ([]domain.Record, error) {
	rows, err := r.db.Query(`SELECT employee_id, name, department, type, monthly_salary, hourly_rate, hours_worked_per_month, bonus FROM employees ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		var salary, rate, hours, bonus sql.NullFloat64
		if err := rows.Scan(&rec.EmployeeID, &rec.Name, &rec.Department, &rec.Type, &salary, &rate, &hours, &bonus); err != nil {
			return nil, err
		}
		rec.MonthlySalary = optFloat(salary)
		rec.HourlyRate = optFloat(rate)
		rec.HoursPerMonth = optFloat(hours)
		rec.Bonus = optFloat(bonus)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SqliteRecordRepo) SaveAll(records []domain.Record) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM employees`); err != nil {
		tx.Rollback()
		return err
	}
	for _, rec := range records {
		_, err := tx.Exec(`INSERT INTO employees (employee_id, name, department, type, monthly_salary, hourly_rate, hours_worked_per_month, bonus) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.EmployeeID, rec.Name, rec.Department, rec.Type, rec.MonthlySalary, rec.HourlyRate, rec.HoursPerMonth, rec.Bonus)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func optFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
