package payslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/notifications"
	"fleethr/internal/domain/payout"
	"fleethr/internal/domain/sheet"
)

type Directory interface {
	FindByFHRID(ctx context.Context, fhrID string) (identity.Employee, error)
}

type Notifier interface {
	Notify(ctx context.Context, employeeID, title, message string) error
}

type Service struct {
	directory Directory
	store     StoreAPI
	renderer  Renderer
	notifier  Notifier
}

func NewService(directory Directory, store StoreAPI, renderer Renderer, notifier Notifier) *Service {
	return &Service{directory: directory, store: store, renderer: renderer, notifier: notifier}
}

// IngestSheet processes salary-slip rows. Unlike the other sheet pipelines,
// the PDF is rendered before the upsert: a row whose document cannot be
// produced persists nothing at all.
func (s *Service) IngestSheet(ctx context.Context, rows []sheet.Row, month, year int) (SlipSummary, error) {
	if month < 1 || month > 12 || year < 1000 || year > 9999 {
		return SlipSummary{}, ErrInvalidPeriod
	}

	var summary SlipSummary
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		fhrID := sheet.TextField(row, "FHR_ID", "FHRID")
		if fhrID == "" {
			summary.recordFailure("", TagNotFound)
			continue
		}

		key := strings.ToLower(fhrID)
		if seen[key] {
			summary.recordFailure(fhrID, TagDuplicateEntry)
			continue
		}
		seen[key] = true

		emp, err := s.directory.FindByFHRID(ctx, fhrID)
		if err != nil {
			if !errors.Is(err, identity.ErrEmployeeNotFound) {
				slog.Warn("payslip sheet identity lookup failed", "fhrId", fhrID, "err", err)
			}
			summary.recordFailure(fhrID, TagNotFound)
			continue
		}

		slip := slipFromRow(emp, row, month, year)

		path, err := s.renderer.Render(slip)
		if err != nil {
			slog.Warn("payslip render failed", "fhrId", fhrID, "err", err)
			summary.recordFailure(fhrID, TagGenerationError)
			continue
		}
		slip.PDFPath = path

		if err := s.store.UpsertPayslip(ctx, slip); err != nil {
			slog.Warn("payslip upsert failed", "fhrId", fhrID, "err", err)
			summary.recordFailure(fhrID, TagGenerationError)
			continue
		}
		summary.recordSuccess()

		if s.notifier != nil {
			message := fmt.Sprintf("Your salary slip for %s %d is ready.", time.Month(month), year)
			if err := s.notifier.Notify(ctx, emp.ID, notifications.TitlePayslipReady, message); err != nil {
				slog.Warn("payslip notification failed", "employeeId", emp.ID, "err", err)
			}
		}
	}
	return summary, nil
}

func (s *Service) Get(ctx context.Context, fhrID string, month, year int) (Payslip, error) {
	emp, err := s.directory.FindByFHRID(ctx, fhrID)
	if err != nil {
		return Payslip{}, err
	}
	return s.store.GetPayslip(ctx, emp.ID, month, year)
}

func (s *Service) List(ctx context.Context, fhrID string, limit, offset int) ([]Payslip, error) {
	emp, err := s.directory.FindByFHRID(ctx, fhrID)
	if err != nil {
		return nil, err
	}
	return s.store.ListPayslips(ctx, emp.ID, limit, offset)
}

func slipFromRow(emp identity.Employee, row sheet.Row, month, year int) Payslip {
	workingDays := int(sheet.NumberField(row, "Working_Days", "WorkingDays", "Days"))
	basic := sheet.NumberField(row, "Basic")
	conveyance := sheet.NumberField(row, "Conveyance")
	incentives := sheet.NumberField(row, "Incentives", "Incentive")
	otherAllowances := sheet.NumberField(row, "Other_Allowances", "OtherAllowances")
	tds := sheet.NumberField(row, "TDS")
	advanceAmount := sheet.NumberField(row, "Advance")
	otherDeductions := sheet.NumberField(row, "Other_Deductions", "OtherDeductions")

	gross, ok := sheet.OptionalNumberField(row, "Gross_Earnings", "GrossEarnings", "Gross")
	if !ok {
		gross = basic + conveyance + incentives + otherAllowances
	}
	deductions, ok := sheet.OptionalNumberField(row, "Total_Deductions", "TotalDeductions", "Deductions")
	if !ok {
		deductions = tds + advanceAmount + otherDeductions
	}

	name := sheet.TextField(row, "Name", "Employee_Name")
	if name == "" {
		name = emp.FullName
	}

	return Payslip{
		EmployeeRef:     emp.ID,
		Month:           month,
		Year:            year,
		ProfileID:       emp.FHRID,
		EmployeeName:    name,
		EmployeeID:      emp.EmployeeCode,
		Hub:             emp.Hub,
		Designation:     emp.Designation,
		Department:      emp.Department,
		BankAccount:     sheet.TextField(row, "Bank_Account", "BankAccount", "Account_No"),
		PAN:             sheet.TextField(row, "PAN"),
		WorkingDays:     workingDays,
		LOPDays:         payout.DaysInMonth(month, year) - workingDays,
		Basic:           basic,
		Conveyance:      conveyance,
		Incentives:      incentives,
		OtherAllowances: otherAllowances,
		TDS:             tds,
		Advance:         advanceAmount,
		OtherDeductions: otherDeductions,
		GrossEarnings:   gross,
		TotalDeductions: deductions,
		NetPayable:      payout.Round2(gross - deductions),
	}
}
