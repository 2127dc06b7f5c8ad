package payslip

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) UpsertPayslip(ctx context.Context, slip Payslip) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payslips (
      employee_id, month, year, profile_id, employee_name, employee_code,
      hub, designation, department, bank_account, pan,
      working_days, lop_days,
      basic, conveyance, incentives, other_allowances,
      tds, advance, other_deductions,
      gross_earnings, total_deductions, net_payable, pdf_path
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
    ON CONFLICT (employee_id, month, year)
    DO UPDATE SET profile_id = EXCLUDED.profile_id,
                  employee_name = EXCLUDED.employee_name,
                  employee_code = EXCLUDED.employee_code,
                  hub = EXCLUDED.hub,
                  designation = EXCLUDED.designation,
                  department = EXCLUDED.department,
                  bank_account = EXCLUDED.bank_account,
                  pan = EXCLUDED.pan,
                  working_days = EXCLUDED.working_days,
                  lop_days = EXCLUDED.lop_days,
                  basic = EXCLUDED.basic,
                  conveyance = EXCLUDED.conveyance,
                  incentives = EXCLUDED.incentives,
                  other_allowances = EXCLUDED.other_allowances,
                  tds = EXCLUDED.tds,
                  advance = EXCLUDED.advance,
                  other_deductions = EXCLUDED.other_deductions,
                  gross_earnings = EXCLUDED.gross_earnings,
                  total_deductions = EXCLUDED.total_deductions,
                  net_payable = EXCLUDED.net_payable,
                  pdf_path = EXCLUDED.pdf_path
  `, slip.EmployeeRef, slip.Month, slip.Year, slip.ProfileID, slip.EmployeeName, nullIfEmpty(slip.EmployeeID),
		nullIfEmpty(slip.Hub), nullIfEmpty(slip.Designation), nullIfEmpty(slip.Department),
		nullIfEmpty(slip.BankAccount), nullIfEmpty(slip.PAN),
		slip.WorkingDays, slip.LOPDays,
		slip.Basic, slip.Conveyance, slip.Incentives, slip.OtherAllowances,
		slip.TDS, slip.Advance, slip.OtherDeductions,
		slip.GrossEarnings, slip.TotalDeductions, slip.NetPayable, nullIfEmpty(slip.PDFPath))
	return err
}

const payslipColumns = `
    id, employee_id, month, year, profile_id, employee_name, COALESCE(employee_code, ''),
    COALESCE(hub, ''), COALESCE(designation, ''), COALESCE(department, ''),
    COALESCE(bank_account, ''), COALESCE(pan, ''),
    working_days, lop_days,
    basic, conveyance, incentives, other_allowances,
    tds, advance, other_deductions,
    gross_earnings, total_deductions, net_payable, COALESCE(pdf_path, ''), created_at`

func (s *Store) GetPayslip(ctx context.Context, employeeID string, month, year int) (Payslip, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+payslipColumns+`
    FROM payslips
    WHERE employee_id = $1 AND month = $2 AND year = $3
  `, employeeID, month, year)
	return scanPayslip(row)
}

func (s *Store) ListPayslips(ctx context.Context, employeeID string, limit, offset int) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+payslipColumns+`
    FROM payslips
    WHERE employee_id = $1
    ORDER BY year DESC, month DESC
    LIMIT $2 OFFSET $3
  `, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, slip)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayslip(row rowScanner) (Payslip, error) {
	var slip Payslip
	err := row.Scan(
		&slip.ID, &slip.EmployeeRef, &slip.Month, &slip.Year,
		&slip.ProfileID, &slip.EmployeeName, &slip.EmployeeID,
		&slip.Hub, &slip.Designation, &slip.Department,
		&slip.BankAccount, &slip.PAN,
		&slip.WorkingDays, &slip.LOPDays,
		&slip.Basic, &slip.Conveyance, &slip.Incentives, &slip.OtherAllowances,
		&slip.TDS, &slip.Advance, &slip.OtherDeductions,
		&slip.GrossEarnings, &slip.TotalDeductions, &slip.NetPayable,
		&slip.PDFPath, &slip.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payslip{}, ErrPayslipNotFound
	}
	if err != nil {
		return Payslip{}, err
	}
	return slip, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
