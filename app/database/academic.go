package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/yanis-san/torii-auto/app/models"
)

func CreateAcademicYear(db *sql.DB, year *models.AcademicYear) error {
	query := `INSERT INTO academic_years (name, start_date, end_date)
			  VALUES ($1, $2, $3)
			  RETURNING id, is_current, created_at, updated_at`

	err := db.QueryRow(query, year.Name, year.StartDate, year.EndDate).Scan(
		&year.ID, &year.IsCurrent, &year.CreatedAt, &year.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert academic year: %v", err)
	}
	return nil
}

func GetAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM academic_years ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		y := &models.AcademicYear{}
		err := rows.Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate, &y.IsCurrent, &y.CreatedAt, &y.UpdatedAt)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func GetCurrentAcademicYear(db *sql.DB) (*models.AcademicYear, error) {
	y := &models.AcademicYear{}
	query := `SELECT id, name, start_date, end_date, is_current, created_at, updated_at
			  FROM academic_years WHERE is_current = true LIMIT 1`

	err := db.QueryRow(query).Scan(
		&y.ID, &y.Name, &y.StartDate, &y.EndDate, &y.IsCurrent, &y.CreatedAt, &y.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return y, nil
}

// RolloverAcademicYear makes the given year current and resets every
// student's registration-fee flag in one transaction. This is the only
// operation that ever sets registration_fee_paid back to false.
func RolloverAcademicYear(db *sql.DB, yearID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`UPDATE academic_years SET is_current = true, updated_at = NOW() WHERE id = $1`, yearID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	_, err = tx.Exec(`UPDATE academic_years SET is_current = false, updated_at = NOW() WHERE id <> $1 AND is_current = true`, yearID)
	if err != nil {
		return err
	}

	result, err = tx.Exec(`UPDATE students SET registration_fee_paid = false, updated_at = NOW() WHERE registration_fee_paid = true`)
	if err != nil {
		return err
	}
	reset, _ := result.RowsAffected()
	log.Printf("Academic year rollover: reset registration fee for %d students", reset)

	return tx.Commit()
}
