package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/yanis-san/torii-auto/app/models"
)

// AttendanceEntry is one line of a submitted attendance sheet.
type AttendanceEntry struct {
	EnrollmentID string                  `json:"enrollment_id" validate:"required,uuid"`
	Status       models.AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
}

// RecordAttendanceSheet upserts one group's sheet for one date. A
// re-submitted sheet overwrites the earlier statuses for that date.
func RecordAttendanceSheet(db *sql.DB, date time.Time, recordedBy string, entries []AttendanceEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO attendance (enrollment_id, date, status, recorded_by)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (enrollment_id, date)
			  DO UPDATE SET status = EXCLUDED.status, recorded_by = EXCLUDED.recorded_by, updated_at = NOW()`

	for _, entry := range entries {
		if _, err := tx.Exec(query, entry.EnrollmentID, date, string(entry.Status), recordedBy); err != nil {
			return fmt.Errorf("failed to record attendance: %v", err)
		}
	}

	return tx.Commit()
}

// AttendanceRow is one student's status for a group/date listing.
type AttendanceRow struct {
	EnrollmentID string    `json:"enrollment_id"`
	StudentName  string    `json:"student_name"`
	StudentCode  string    `json:"student_code"`
	Status       string    `json:"status"`
	RecordedBy   string    `json:"recorded_by"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func GetAttendanceForGroupDate(db *sql.DB, groupID string, date time.Time) ([]*AttendanceRow, error) {
	query := `SELECT a.enrollment_id, s.first_name || ' ' || s.last_name, s.student_code,
			  a.status, a.recorded_by, a.updated_at
			  FROM attendance a
			  JOIN enrollments e ON a.enrollment_id = e.id
			  JOIN students s ON e.student_id = s.id
			  WHERE e.group_id = $1 AND a.date = $2
			  ORDER BY s.last_name, s.first_name`

	rows, err := db.Query(query, groupID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*AttendanceRow
	for rows.Next() {
		r := &AttendanceRow{}
		err := rows.Scan(&r.EnrollmentID, &r.StudentName, &r.StudentCode, &r.Status, &r.RecordedBy, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// AttendanceSummary counts statuses for a group over a date range.
type AttendanceSummary struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
}

func GetAttendanceSummary(db *sql.DB, groupID string, from, to time.Time) (*AttendanceSummary, error) {
	summary := &AttendanceSummary{}
	query := `SELECT
			  COUNT(*) FILTER (WHERE a.status = 'present'),
			  COUNT(*) FILTER (WHERE a.status = 'absent'),
			  COUNT(*) FILTER (WHERE a.status = 'late'),
			  COUNT(*) FILTER (WHERE a.status = 'excused')
			  FROM attendance a
			  JOIN enrollments e ON a.enrollment_id = e.id
			  WHERE e.group_id = $1 AND a.date BETWEEN $2 AND $3`

	err := db.QueryRow(query, groupID, from, to).Scan(
		&summary.Present, &summary.Absent, &summary.Late, &summary.Excused,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
