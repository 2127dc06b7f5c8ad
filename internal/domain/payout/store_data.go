package payout

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// AggregateReports sums one employee's daily reports inside [start, end].
// WorkingDays is the report count, not the span of the period.
func (s *Store) AggregateReports(ctx context.Context, employeeID string, start, end time.Time) (ReportAggregate, error) {
	var agg ReportAggregate
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COALESCE(SUM(delivered), 0),
           COALESCE(SUM(picked), 0),
           COALESCE(SUM(ofd), 0)
    FROM daily_reports
    WHERE employee_id = $1 AND report_date >= $2 AND report_date <= $3
  `, employeeID, start, end).Scan(&agg.WorkingDays, &agg.TotalDelivered, &agg.TotalPicked, &agg.TotalOFD)
	if err != nil {
		return ReportAggregate{}, err
	}
	return agg, nil
}

func (s *Store) SalaryStructure(ctx context.Context, employeeID string) (SalaryStructure, bool, error) {
	var structure SalaryStructure
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, base_rate, conveyance, other_allowances, incentive_rate, tds_rate
    FROM salary_structures
    WHERE employee_id = $1
  `, employeeID).Scan(&structure.EmployeeID, &structure.BaseRate, &structure.Conveyance,
		&structure.OtherAllowances, &structure.IncentiveRate, &structure.TDSRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return SalaryStructure{}, false, nil
	}
	if err != nil {
		return SalaryStructure{}, false, err
	}
	return structure, true, nil
}

func (s *Store) UpsertSalaryStructure(ctx context.Context, structure SalaryStructure) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO salary_structures (employee_id, base_rate, conveyance, other_allowances, incentive_rate, tds_rate)
    VALUES ($1,$2,$3,$4,$5,$6)
    ON CONFLICT (employee_id)
    DO UPDATE SET base_rate = EXCLUDED.base_rate,
                  conveyance = EXCLUDED.conveyance,
                  other_allowances = EXCLUDED.other_allowances,
                  incentive_rate = EXCLUDED.incentive_rate,
                  tds_rate = EXCLUDED.tds_rate
  `, structure.EmployeeID, structure.BaseRate, structure.Conveyance,
		structure.OtherAllowances, structure.IncentiveRate, structure.TDSRate)
	return err
}

func (s *Store) UpsertReport(ctx context.Context, report Report) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO payout_reports (
      employee_id, month, year, profile_id, name, hub, employee_name, employee_code,
      designation, department, working_days, paid_days, lop_days,
      delivered_count, picked_count, ofd_count,
      base_rate, basic, conveyance, incentives, final_base_amount, tds, advance,
      gross_earnings, total_deductions, net_payable, status, remark
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28)
    ON CONFLICT (employee_id, month, year)
    DO UPDATE SET profile_id = EXCLUDED.profile_id,
                  name = EXCLUDED.name,
                  hub = EXCLUDED.hub,
                  employee_name = EXCLUDED.employee_name,
                  employee_code = EXCLUDED.employee_code,
                  designation = EXCLUDED.designation,
                  department = EXCLUDED.department,
                  working_days = EXCLUDED.working_days,
                  paid_days = EXCLUDED.paid_days,
                  lop_days = EXCLUDED.lop_days,
                  delivered_count = EXCLUDED.delivered_count,
                  picked_count = EXCLUDED.picked_count,
                  ofd_count = EXCLUDED.ofd_count,
                  base_rate = EXCLUDED.base_rate,
                  basic = EXCLUDED.basic,
                  conveyance = EXCLUDED.conveyance,
                  incentives = EXCLUDED.incentives,
                  final_base_amount = EXCLUDED.final_base_amount,
                  tds = EXCLUDED.tds,
                  advance = EXCLUDED.advance,
                  gross_earnings = EXCLUDED.gross_earnings,
                  total_deductions = EXCLUDED.total_deductions,
                  net_payable = EXCLUDED.net_payable,
                  status = EXCLUDED.status,
                  remark = EXCLUDED.remark
  `, report.EmployeeRef, report.Month, report.Year, report.ProfileID, report.Name, report.Hub,
		report.EmployeeName, report.EmployeeID, report.Designation, report.Department,
		report.WorkingDays, report.PaidDays, report.LOPDays,
		report.DeliveredCount, report.PickedCount, report.OFDCount,
		report.BaseRate, report.Basic, report.Conveyance, report.Incentives,
		report.FinalBaseAmount, report.TDS, report.Advance,
		report.GrossEarnings, report.TotalDeductions, report.NetPayable,
		report.Status, nullIfEmpty(report.Remark))
	return err
}

const reportColumns = `
    id, employee_id, month, year, profile_id, name, COALESCE(hub, ''),
    employee_name, COALESCE(employee_code, ''), COALESCE(designation, ''), COALESCE(department, ''),
    working_days, paid_days, lop_days, delivered_count, picked_count, ofd_count,
    base_rate, basic, conveyance, incentives, final_base_amount, tds, advance,
    gross_earnings, total_deductions, net_payable, status, COALESCE(remark, ''), created_at`

func (s *Store) GetReport(ctx context.Context, employeeID string, month, year int) (Report, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+reportColumns+`
    FROM payout_reports
    WHERE employee_id = $1 AND month = $2 AND year = $3
  `, employeeID, month, year)
	return scanReport(row)
}

func (s *Store) GetReportByID(ctx context.Context, reportID string) (Report, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+reportColumns+`
    FROM payout_reports
    WHERE id = $1
  `, reportID)
	return scanReport(row)
}

func (s *Store) ListReports(ctx context.Context, employeeID string, limit, offset int) ([]Report, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+reportColumns+`
    FROM payout_reports
    WHERE employee_id = $1
    ORDER BY year DESC, month DESC
    LIMIT $2 OFFSET $3
  `, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, nil
}

func (s *Store) UpdateStatus(ctx context.Context, reportID, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE payout_reports SET status = $1 WHERE id = $2", status, reportID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (s *Store) UpdateRemark(ctx context.Context, reportID, remark string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE payout_reports SET remark = $1 WHERE id = $2", nullIfEmpty(remark), reportID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (Report, error) {
	var report Report
	err := row.Scan(
		&report.ID, &report.EmployeeRef, &report.Month, &report.Year,
		&report.ProfileID, &report.Name, &report.Hub,
		&report.EmployeeName, &report.EmployeeID, &report.Designation, &report.Department,
		&report.WorkingDays, &report.PaidDays, &report.LOPDays,
		&report.DeliveredCount, &report.PickedCount, &report.OFDCount,
		&report.BaseRate, &report.Basic, &report.Conveyance, &report.Incentives,
		&report.FinalBaseAmount, &report.TDS, &report.Advance,
		&report.GrossEarnings, &report.TotalDeductions, &report.NetPayable,
		&report.Status, &report.Remark, &report.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Report{}, ErrReportNotFound
	}
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
