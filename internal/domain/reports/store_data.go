package reports

import (
	"context"
	"time"
)

func (s *Store) UpsertReport(ctx context.Context, report DailyReport) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO daily_reports (employee_id, report_date, delivered, picked, ofd, ofp, hub_name)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (employee_id, report_date)
    DO UPDATE SET delivered = EXCLUDED.delivered,
                  picked = EXCLUDED.picked,
                  ofd = EXCLUDED.ofd,
                  ofp = EXCLUDED.ofp,
                  hub_name = EXCLUDED.hub_name
  `, report.EmployeeID, report.ReportDate, report.Delivered, report.Picked, report.OFD, report.OFP, nullIfEmpty(report.HubName))
	return err
}

func (s *Store) ListReports(ctx context.Context, employeeID string, from, to time.Time) ([]DailyReport, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, report_date, delivered, picked, ofd, ofp, COALESCE(hub_name, '')
    FROM daily_reports
    WHERE employee_id = $1 AND report_date >= $2 AND report_date <= $3
    ORDER BY report_date
  `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyReport
	for rows.Next() {
		var report DailyReport
		if err := rows.Scan(&report.ID, &report.EmployeeID, &report.ReportDate, &report.Delivered, &report.Picked, &report.OFD, &report.OFP, &report.HubName); err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
