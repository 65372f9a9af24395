package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/yanis-san/torii-auto/app/models"
)

func CreateTeacher(db *sql.DB, teacher *models.Teacher) error {
	query := `INSERT INTO teachers (first_name, last_name, email, phone_number, specialty)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		teacher.FirstName, teacher.LastName, teacher.Email, teacher.PhoneNumber, teacher.Specialty,
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert teacher: %v", err)
	}
	return nil
}

func GetTeachers(db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT id, first_name, last_name, email, phone_number, specialty, created_at, updated_at
			  FROM teachers WHERE deleted_at IS NULL ORDER BY last_name, first_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		t := &models.Teacher{}
		err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.PhoneNumber, &t.Specialty, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func GetTeacherByID(db *sql.DB, teacherID string) (*models.Teacher, error) {
	t := &models.Teacher{}
	query := `SELECT id, first_name, last_name, email, phone_number, specialty, created_at, updated_at
			  FROM teachers WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, teacherID).Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.PhoneNumber, &t.Specialty, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func UpdateTeacher(db *sql.DB, teacher *models.Teacher) error {
	query := `UPDATE teachers
			  SET first_name = $1, last_name = $2, email = $3, phone_number = $4, specialty = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		teacher.FirstName, teacher.LastName, teacher.Email, teacher.PhoneNumber, teacher.Specialty, teacher.ID)
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
	return nil
}

// DeleteTeacher soft-deletes so historical group assignments keep a name.
func DeleteTeacher(db *sql.DB, teacherID string) error {
	result, err := db.Exec(`UPDATE teachers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, teacherID)
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
	return nil
}
