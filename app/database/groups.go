package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/yanis-san/torii-auto/app/models"
)

// ErrTeacherAlreadyAssigned is reported on a duplicate group_teacher row.
var ErrTeacherAlreadyAssigned = fmt.Errorf("teacher is already assigned to this group")

// GroupWithCounts decorates a group with its live enrollment numbers.
type GroupWithCounts struct {
	models.Group
	LanguageName    string `json:"language_name"`
	ActiveStudents  int    `json:"active_students"`
	TeacherCount    int    `json:"teacher_count"`
	Ready           bool   `json:"ready"`
}

func CreateGroup(db *sql.DB, group *models.Group) error {
	query := `INSERT INTO groups (name, language_id, level, mode, duration_months, min_students, is_old_pricing, start_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		group.Name, group.LanguageID, group.Level, string(group.Mode),
		group.DurationMonths, group.MinStudents, group.IsOldPricing, group.StartDate,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert group: %v", err)
	}
	return nil
}

func GetGroupsWithCounts(db *sql.DB) ([]*GroupWithCounts, error) {
	query := `SELECT g.id, g.name, g.language_id, g.level, g.mode, g.duration_months,
			  g.min_students, g.is_old_pricing, g.start_date, g.created_at, g.updated_at,
			  l.name,
			  (SELECT COUNT(*) FROM enrollments e WHERE e.group_id = g.id AND e.enrollment_active = true),
			  (SELECT COUNT(*) FROM group_teacher gt WHERE gt.group_id = g.id)
			  FROM groups g
			  JOIN languages l ON g.language_id = l.id
			  ORDER BY g.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*GroupWithCounts
	for rows.Next() {
		g := &GroupWithCounts{}
		var mode string
		err := rows.Scan(
			&g.ID, &g.Name, &g.LanguageID, &g.Level, &mode, &g.DurationMonths,
			&g.MinStudents, &g.IsOldPricing, &g.StartDate, &g.CreatedAt, &g.UpdatedAt,
			&g.LanguageName, &g.ActiveStudents, &g.TeacherCount,
		)
		if err != nil {
			return nil, err
		}
		g.Mode = models.GroupMode(mode)
		g.Ready = g.ActiveStudents >= g.MinStudents
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// GetGroupByID returns the group with its language preloaded.
func GetGroupByID(db *sql.DB, groupID string) (*models.Group, error) {
	g := &models.Group{Language: &models.Language{}}
	var mode string
	query := `SELECT g.id, g.name, g.language_id, g.level, g.mode, g.duration_months,
			  g.min_students, g.is_old_pricing, g.start_date, g.created_at, g.updated_at,
			  l.id, l.name, l.created_at
			  FROM groups g
			  JOIN languages l ON g.language_id = l.id
			  WHERE g.id = $1`

	err := db.QueryRow(query, groupID).Scan(
		&g.ID, &g.Name, &g.LanguageID, &g.Level, &mode, &g.DurationMonths,
		&g.MinStudents, &g.IsOldPricing, &g.StartDate, &g.CreatedAt, &g.UpdatedAt,
		&g.Language.ID, &g.Language.Name, &g.Language.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Mode = models.GroupMode(mode)
	return g, nil
}

func UpdateGroup(db *sql.DB, group *models.Group) error {
	query := `UPDATE groups
			  SET name = $1, level = $2, duration_months = $3, min_students = $4, start_date = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := db.Exec(query,
		group.Name, group.Level, group.DurationMonths, group.MinStudents, group.StartDate, group.ID)
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

func DeleteGroup(db *sql.DB, groupID string) error {
	result, err := db.Exec(`DELETE FROM groups WHERE id = $1`, groupID)
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

func AssignTeacherToGroup(db *sql.DB, groupID, teacherID string) error {
	_, err := db.Exec(`INSERT INTO group_teacher (group_id, teacher_id) VALUES ($1, $2)`, groupID, teacherID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrTeacherAlreadyAssigned
		}
		return err
	}
	return nil
}

func RemoveTeacherFromGroup(db *sql.DB, groupID, teacherID string) error {
	result, err := db.Exec(`DELETE FROM group_teacher WHERE group_id = $1 AND teacher_id = $2`, groupID, teacherID)
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

func GetGroupTeachers(db *sql.DB, groupID string) ([]*models.Teacher, error) {
	query := `SELECT t.id, t.first_name, t.last_name, t.email, t.phone_number, t.specialty, t.created_at, t.updated_at
			  FROM teachers t
			  JOIN group_teacher gt ON gt.teacher_id = t.id
			  WHERE gt.group_id = $1 AND t.deleted_at IS NULL
			  ORDER BY t.last_name`

	rows, err := db.Query(query, groupID)
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

// GetGroupsForTeacher lists groups a teacher is assigned to, for the
// attendance screens.
func GetGroupsForTeacher(db *sql.DB, teacherID string) ([]*GroupWithCounts, error) {
	query := `SELECT g.id, g.name, g.language_id, g.level, g.mode, g.duration_months,
			  g.min_students, g.is_old_pricing, g.start_date, g.created_at, g.updated_at,
			  l.name,
			  (SELECT COUNT(*) FROM enrollments e WHERE e.group_id = g.id AND e.enrollment_active = true),
			  (SELECT COUNT(*) FROM group_teacher gt2 WHERE gt2.group_id = g.id)
			  FROM groups g
			  JOIN languages l ON g.language_id = l.id
			  JOIN group_teacher gt ON gt.group_id = g.id
			  WHERE gt.teacher_id = $1
			  ORDER BY g.name`

	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*GroupWithCounts
	for rows.Next() {
		g := &GroupWithCounts{}
		var mode string
		err := rows.Scan(
			&g.ID, &g.Name, &g.LanguageID, &g.Level, &mode, &g.DurationMonths,
			&g.MinStudents, &g.IsOldPricing, &g.StartDate, &g.CreatedAt, &g.UpdatedAt,
			&g.LanguageName, &g.ActiveStudents, &g.TeacherCount,
		)
		if err != nil {
			return nil, err
		}
		g.Mode = models.GroupMode(mode)
		g.Ready = g.ActiveStudents >= g.MinStudents
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
