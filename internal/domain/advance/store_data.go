package advance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateRequest(ctx context.Context, employeeID string, amount float64, reason string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO advance_requests (employee_id, amount, reason, status)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, employeeID, amount, reason, StatusPending).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetRequest(ctx context.Context, requestID string) (Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, amount, COALESCE(reason, ''), status, approved_at, created_at
    FROM advance_requests
    WHERE id = $1
  `, requestID).Scan(&req.ID, &req.EmployeeID, &req.Amount, &req.Reason, &req.Status, &req.ApprovedAt, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrRequestNotFound
	}
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

// Approve flips a pending request to Approved and stamps approved_at. The
// status guard in the WHERE clause keeps a decided request immutable.
func (s *Store) Approve(ctx context.Context, requestID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE advance_requests SET status = $1, approved_at = now()
    WHERE id = $2 AND status = $3
  `, StatusApproved, requestID, StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyDecided
	}
	return nil
}

func (s *Store) Reject(ctx context.Context, requestID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE advance_requests SET status = $1
    WHERE id = $2 AND status = $3
  `, StatusRejected, requestID, StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyDecided
	}
	return nil
}

func (s *Store) ListForEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, amount, COALESCE(reason, ''), status, approved_at, created_at
    FROM advance_requests
    WHERE employee_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.Amount, &req.Reason, &req.Status, &req.ApprovedAt, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

// SumApprovedBetween totals approved advances whose approval timestamp lies
// inside [start, end]. Creation time is irrelevant for payout deductions.
func (s *Store) SumApprovedBetween(ctx context.Context, employeeID string, start, end time.Time) (float64, error) {
	var total float64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(amount), 0)
    FROM advance_requests
    WHERE employee_id = $1 AND status = $2 AND approved_at >= $3 AND approved_at <= $4
  `, employeeID, StatusApproved, start, end).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
