package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/yanis-san/torii-auto/app/models"
)

// ErrDuplicateEmail is reported when a student with the same email
// already exists.
var ErrDuplicateEmail = fmt.Errorf("a student with this email already exists")

// CreateStudent inserts a student and assigns the generated student code
// in the same transaction. Codes are sequential per admission year, in
// the form YY-NNNN (e.g. 26-0012).
func CreateStudent(db *sql.DB, student *models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Next sequence number for the admission year. The UNIQUE
	// (year_short, number) constraint catches concurrent admissions.
	err = tx.QueryRow(`SELECT COALESCE(MAX(number), 0) + 1 FROM students WHERE year_short = $1`,
		student.YearShort).Scan(&student.Number)
	if err != nil {
		return fmt.Errorf("failed to allocate student number: %v", err)
	}

	student.StudentCode = fmt.Sprintf("%02d-%04d", student.YearShort, student.Number)

	query := `INSERT INTO students (student_code, first_name, last_name, email, phone_number, id_document_link, birth_date, year_short, number)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, registration_fee_paid, created_at, updated_at`

	err = tx.QueryRow(query,
		student.StudentCode, student.FirstName, student.LastName, student.Email,
		student.PhoneNumber, student.IDDocumentLink, student.BirthDate,
		student.YearShort, student.Number,
	).Scan(&student.ID, &student.RegistrationFeePaid, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert student: %v", err)
	}

	return tx.Commit()
}

func GetStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, student_code, first_name, last_name, email, phone_number, id_document_link,
			  birth_date, year_short, number, registration_fee_paid, created_at, updated_at
			  FROM students ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// SearchStudents matches name, email or student code, case-insensitively.
func SearchStudents(db *sql.DB, term string) ([]*models.Student, error) {
	query := `SELECT id, student_code, first_name, last_name, email, phone_number, id_document_link,
			  birth_date, year_short, number, registration_fee_paid, created_at, updated_at
			  FROM students
			  WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR student_code ILIKE $1
			  ORDER BY last_name, first_name`

	rows, err := db.Query(query, "%"+strings.TrimSpace(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

func scanStudents(rows *sql.Rows) ([]*models.Student, error) {
	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(
			&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.Email,
			&s.PhoneNumber, &s.IDDocumentLink, &s.BirthDate,
			&s.YearShort, &s.Number, &s.RegistrationFeePaid,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, student_code, first_name, last_name, email, phone_number, id_document_link,
			  birth_date, year_short, number, registration_fee_paid, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.Email,
		&s.PhoneNumber, &s.IDDocumentLink, &s.BirthDate,
		&s.YearShort, &s.Number, &s.RegistrationFeePaid,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
			      id_document_link = $5, birth_date = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := db.Exec(query,
		student.FirstName, student.LastName, student.Email,
		student.PhoneNumber, student.IDDocumentLink, student.BirthDate,
		student.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateEmail
		}
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

// DeleteStudent is a hard row removal; enrollments and payments cascade.
func DeleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
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

// IsRegistrationFeePaid reads the cached per-academic-year flag.
func IsRegistrationFeePaid(db *sql.DB, studentID string) (bool, error) {
	var paid bool
	err := db.QueryRow(`SELECT registration_fee_paid FROM students WHERE id = $1`, studentID).Scan(&paid)
	return paid, err
}

// MarkRegistrationFeePaid sets the flag true. Idempotent: re-marking an
// already-paid student touches no rows and is not an error. The flag is
// only ever unset by an academic-year rollover.
func MarkRegistrationFeePaid(db *sql.DB, studentID string) error {
	_, err := db.Exec(
		`UPDATE students SET registration_fee_paid = true, updated_at = NOW()
		 WHERE id = $1 AND registration_fee_paid = false`, studentID)
	return err
}
