package payout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/notifications"
	"fleethr/internal/domain/sheet"
)

type Directory interface {
	FindByFHRID(ctx context.Context, fhrID string) (identity.Employee, error)
}

// AdvanceSource reports approved advance totals for the deduction step.
type AdvanceSource interface {
	SumApprovedBetween(ctx context.Context, employeeID string, start, end time.Time) (float64, error)
}

type Notifier interface {
	Notify(ctx context.Context, employeeID, title, message string) error
}

type Service struct {
	directory Directory
	store     StoreAPI
	advances  AdvanceSource
	notifier  Notifier
}

func NewService(directory Directory, store StoreAPI, advances AdvanceSource, notifier Notifier) *Service {
	return &Service{directory: directory, store: store, advances: advances, notifier: notifier}
}

// Compute derives and persists the payout for one employee and month. It is
// a pure function of already-persisted daily reports and advances, so
// recomputing the same period is safe and idempotent.
func (s *Service) Compute(ctx context.Context, fhrID string, month, year int) (Report, error) {
	if month < 1 || month > 12 || year < 1000 || year > 9999 {
		return Report{}, ErrInvalidPeriod
	}

	emp, err := s.directory.FindByFHRID(ctx, fhrID)
	if err != nil {
		return Report{}, err
	}

	start, end := MonthBounds(month, year)
	agg, err := s.store.AggregateReports(ctx, emp.ID, start, end)
	if err != nil {
		return Report{}, err
	}

	params, err := s.resolveSalaryParams(ctx, emp)
	if err != nil {
		return Report{}, err
	}

	totalAdvance, err := s.advances.SumApprovedBetween(ctx, emp.ID, start, end)
	if err != nil {
		return Report{}, err
	}

	breakdown := Compute(CalcInput{
		Month:          month,
		Year:           year,
		WorkingDays:    agg.WorkingDays,
		TotalDelivered: agg.TotalDelivered,
		TotalPicked:    agg.TotalPicked,
		TotalOFD:       agg.TotalOFD,
		BaseRate:       params.BaseRate,
		Conveyance:     params.Conveyance,
		IncentiveRate:  params.IncentiveRate,
		TDSRate:        params.TDSRate,
		TotalAdvance:   totalAdvance,
	})

	report := buildReport(emp, month, year, params.BaseRate, breakdown)
	if err := s.store.UpsertReport(ctx, report); err != nil {
		return Report{}, err
	}

	if s.notifier != nil {
		message := fmt.Sprintf("Your payout for %s %d has been generated: net payable %.2f.",
			time.Month(month), year, report.NetPayable)
		if err := s.notifier.Notify(ctx, emp.ID, notifications.TitlePayoutReady, message); err != nil {
			slog.Warn("payout notification failed", "employeeId", emp.ID, "err", err)
		}
	}
	return report, nil
}

// IngestSheet processes admin-prepared payout rows. The sheet is
// authoritative for the values it carries; missing numeric columns default
// to zero and derived amounts are recomputed from what is present.
func (s *Service) IngestSheet(ctx context.Context, rows []sheet.Row, month, year int) (sheet.Summary, error) {
	if month < 1 || month > 12 || year < 1000 || year > 9999 {
		return sheet.Summary{}, ErrInvalidPeriod
	}

	var summary sheet.Summary
	for _, row := range rows {
		fhrID := sheet.TextField(row, "FHR_ID", "FHRID")
		if fhrID == "" {
			summary.RecordFailure("")
			continue
		}

		emp, err := s.directory.FindByFHRID(ctx, fhrID)
		if err != nil {
			if !errors.Is(err, identity.ErrEmployeeNotFound) {
				slog.Warn("payout sheet identity lookup failed", "fhrId", fhrID, "err", err)
			}
			summary.RecordFailure(fhrID)
			continue
		}

		report := reportFromRow(emp, row, month, year)
		if err := s.store.UpsertReport(ctx, report); err != nil {
			slog.Warn("payout sheet upsert failed", "fhrId", fhrID, "err", err)
			summary.RecordFailure(fhrID)
			continue
		}
		summary.RecordSuccess()
	}
	return summary, nil
}

func (s *Service) Get(ctx context.Context, fhrID string, month, year int) (Report, error) {
	emp, err := s.directory.FindByFHRID(ctx, fhrID)
	if err != nil {
		return Report{}, err
	}
	return s.store.GetReport(ctx, emp.ID, month, year)
}

func (s *Service) List(ctx context.Context, fhrID string, limit, offset int) ([]Report, error) {
	emp, err := s.directory.FindByFHRID(ctx, fhrID)
	if err != nil {
		return nil, err
	}
	return s.store.ListReports(ctx, emp.ID, limit, offset)
}

// UpdateStatus moves a payout along Generated -> Approved -> Paid. Any other
// move is rejected; historical snapshots stay immutable otherwise.
func (s *Service) UpdateStatus(ctx context.Context, reportID, status string) error {
	report, err := s.store.GetReportByID(ctx, reportID)
	if err != nil {
		return err
	}
	if !validTransition(report.Status, status) {
		return ErrInvalidTransition
	}
	return s.store.UpdateStatus(ctx, reportID, status)
}

func (s *Service) UpdateRemark(ctx context.Context, reportID, remark string) error {
	return s.store.UpdateRemark(ctx, reportID, remark)
}

func (s *Service) ResolveEmployee(ctx context.Context, fhrID string) (identity.Employee, error) {
	return s.directory.FindByFHRID(ctx, fhrID)
}

func (s *Service) UpsertSalaryStructure(ctx context.Context, structure SalaryStructure) error {
	return s.store.UpsertSalaryStructure(ctx, structure)
}

type salaryParams struct {
	BaseRate      float64
	Conveyance    float64
	IncentiveRate float64
	TDSRate       float64
}

func (s *Service) resolveSalaryParams(ctx context.Context, emp identity.Employee) (salaryParams, error) {
	structure, found, err := s.store.SalaryStructure(ctx, emp.ID)
	if err != nil {
		return salaryParams{}, err
	}
	if found {
		return salaryParams{
			BaseRate:      structure.BaseRate,
			Conveyance:    structure.Conveyance,
			IncentiveRate: structure.IncentiveRate,
			TDSRate:       structure.TDSRate,
		}, nil
	}
	return salaryParams{
		BaseRate:      emp.BaseRate,
		Conveyance:    emp.Conveyance,
		IncentiveRate: DefaultIncentiveRate,
		TDSRate:       DefaultTDSRate,
	}, nil
}

func buildReport(emp identity.Employee, month, year int, baseRate float64, b Breakdown) Report {
	return Report{
		EmployeeRef:     emp.ID,
		Month:           month,
		Year:            year,
		ProfileID:       emp.FHRID,
		Name:            emp.FullName,
		Hub:             emp.Hub,
		EmployeeName:    emp.FullName,
		EmployeeID:      emp.EmployeeCode,
		Designation:     emp.Designation,
		Department:      emp.Department,
		WorkingDays:     b.WorkingDays,
		PaidDays:        b.PaidDays,
		LOPDays:         b.LOPDays,
		DeliveredCount:  b.TotalDelivered,
		PickedCount:     b.TotalPicked,
		OFDCount:        b.TotalOFD,
		BaseRate:        baseRate,
		Basic:           b.Basic,
		Conveyance:      b.Conveyance,
		Incentives:      b.Incentives,
		FinalBaseAmount: b.FinalBaseAmount,
		TDS:             b.TDS,
		Advance:         b.TotalAdvance,
		GrossEarnings:   b.GrossEarnings,
		TotalDeductions: b.TotalDeductions,
		NetPayable:      b.NetPayable,
		Status:          StatusGenerated,
	}
}

func reportFromRow(emp identity.Employee, row sheet.Row, month, year int) Report {
	workingDays := int(sheet.NumberField(row, "Working_Days", "WorkingDays", "Days"))
	delivered := int(sheet.NumberField(row, "DEL", "Delivered"))
	picked := int(sheet.NumberField(row, "PICK", "Picked"))
	ofd := int(sheet.NumberField(row, "OFD"))
	baseRate := sheet.NumberField(row, "Base_Rate", "BaseRate", "Rate")
	incentiveRate := sheet.NumberField(row, "Incentive_Rate", "IncentiveRate")
	conveyance := sheet.NumberField(row, "Conveyance")
	tds := sheet.NumberField(row, "TDS")
	advanceAmount := sheet.NumberField(row, "Advance")
	otherDeductions := sheet.NumberField(row, "Other_Deductions", "OtherDeductions")

	basic := float64(workingDays) * baseRate
	incentives := float64(delivered) * incentiveRate
	gross := basic + conveyance + incentives
	deductions := tds + advanceAmount + otherDeductions

	return Report{
		EmployeeRef:     emp.ID,
		Month:           month,
		Year:            year,
		ProfileID:       emp.FHRID,
		Name:            emp.FullName,
		Hub:             emp.Hub,
		EmployeeName:    emp.FullName,
		EmployeeID:      emp.EmployeeCode,
		Designation:     emp.Designation,
		Department:      emp.Department,
		WorkingDays:     workingDays,
		PaidDays:        workingDays,
		LOPDays:         DaysInMonth(month, year) - workingDays,
		DeliveredCount:  delivered,
		PickedCount:     picked,
		OFDCount:        ofd,
		BaseRate:        baseRate,
		Basic:           basic,
		Conveyance:      conveyance,
		Incentives:      incentives,
		FinalBaseAmount: basic + incentives,
		TDS:             tds,
		Advance:         advanceAmount,
		GrossEarnings:   gross,
		TotalDeductions: deductions,
		NetPayable:      Round2(gross - deductions),
		Status:          StatusGenerated,
		Remark:          sheet.TextField(row, "Remark", "Remarks"),
	}
}

func validTransition(from, to string) bool {
	switch from {
	case StatusGenerated:
		return to == StatusApproved
	case StatusApproved:
		return to == StatusPaid
	default:
		return false
	}
}
