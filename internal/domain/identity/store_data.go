package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
    id, fhr_id, COALESCE(ehr_id, ''), COALESCE(employee_code, ''), full_name,
    mobile, COALESCE(email, ''), role, status,
    is_account_activated, is_approved, is_profile_completed,
    base_rate, conveyance,
    COALESCE(hub, ''), COALESCE(designation, ''), COALESCE(department, ''),
    created_at`

// FindByFHRID resolves an employee by exact FHR ID, case-insensitively.
// Substring matching is deliberately not offered here; fuzzy matching is a
// spreadsheet-header concern, not an identity concern.
func (s *Store) FindByFHRID(ctx context.Context, fhrID string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE lower(fhr_id) = lower($1)
  `, strings.TrimSpace(fhrID))
	return scanEmployee(row)
}

func (s *Store) FindByMobile(ctx context.Context, mobile string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE mobile = $1
  `, strings.TrimSpace(mobile))
	return scanEmployee(row)
}

func (s *Store) FindByID(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	return scanEmployee(row)
}

func (s *Store) PasswordHash(ctx context.Context, employeeID string) (string, error) {
	var hash string
	if err := s.DB.QueryRow(ctx, "SELECT COALESCE(password_hash, '') FROM employees WHERE id = $1", employeeID).Scan(&hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}
	return hash, nil
}

func (s *Store) CreateJoiningRequest(ctx context.Context, req JoiningRequest, passwordHash string) (string, error) {
	var exists bool
	if err := s.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM employees WHERE mobile = $1)", req.Mobile).Scan(&exists); err != nil {
		return "", err
	}
	if exists {
		return "", ErrMobileTaken
	}
	if err := s.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM employees WHERE lower(fhr_id) = lower($1))", req.FHRID).Scan(&exists); err != nil {
		return "", err
	}
	if exists {
		return "", ErrFHRIDTaken
	}

	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (fhr_id, full_name, mobile, email, hub, role, status, password_hash)
    VALUES ($1,$2,$3,$4,$5,'pending',$6,$7)
    RETURNING id
  `, req.FHRID, req.FullName, req.Mobile, nullIfEmpty(req.Email), nullIfEmpty(req.Hub), StatusPending, passwordHash).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Approve(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET role = 'employee', status = $1, is_approved = true, is_account_activated = true
    WHERE id = $2
  `, StatusActive, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) Reject(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET role = 'rejected', status = $1, is_approved = false
    WHERE id = $2
  `, StatusRejected, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, employeeID, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE employees SET status = $1 WHERE id = $2", status, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) UpdateBaseline(ctx context.Context, employeeID string, baseRate, conveyance float64) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET base_rate = $1, conveyance = $2 WHERE id = $3
  `, baseRate, conveyance, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) ListPending(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE role = 'pending'
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.FHRID, &emp.EHRID, &emp.EmployeeCode, &emp.FullName,
		&emp.Mobile, &emp.Email, &emp.Role, &emp.Status,
		&emp.IsAccountActivated, &emp.IsApproved, &emp.IsProfileCompleted,
		&emp.BaseRate, &emp.Conveyance,
		&emp.Hub, &emp.Designation, &emp.Department,
		&emp.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func nullIfEmpty(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
