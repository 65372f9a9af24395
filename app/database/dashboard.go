package database

import "database/sql"

// DashboardStats are the headline numbers for the landing page.
type DashboardStats struct {
	TotalStudents     int     `json:"total_students"`
	TotalGroups       int     `json:"total_groups"`
	ActiveEnrollments int     `json:"active_enrollments"`
	TotalReceived     float64 `json:"total_received"`
	CashBalance       float64 `json:"cash_balance"`
}

func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}
	query := `SELECT
			  (SELECT COUNT(*) FROM students),
			  (SELECT COUNT(*) FROM groups),
			  (SELECT COUNT(*) FROM enrollments WHERE enrollment_active = true),
			  COALESCE((SELECT SUM(amount) FROM payments), 0)`

	err := db.QueryRow(query).Scan(
		&stats.TotalStudents, &stats.TotalGroups,
		&stats.ActiveEnrollments, &stats.TotalReceived,
	)
	if err != nil {
		return nil, err
	}

	balance, err := CurrentCashBalance(db)
	if err != nil {
		return nil, err
	}
	stats.CashBalance = balance

	return stats, nil
}

// LanguageBreakdown counts active enrollments per language.
type LanguageBreakdown struct {
	Language string `json:"language"`
	Students int    `json:"students"`
}

func GetStudentsByLanguage(db *sql.DB) ([]*LanguageBreakdown, error) {
	query := `SELECT l.name, COUNT(DISTINCT e.student_id)
			  FROM enrollments e
			  JOIN groups g ON e.group_id = g.id
			  JOIN languages l ON g.language_id = l.id
			  WHERE e.enrollment_active = true
			  GROUP BY l.name
			  ORDER BY COUNT(DISTINCT e.student_id) DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breakdown []*LanguageBreakdown
	for rows.Next() {
		b := &LanguageBreakdown{}
		if err := rows.Scan(&b.Language, &b.Students); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}
