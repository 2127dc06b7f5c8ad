package payslip

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Renderer turns a payslip into a document and returns the stored path.
type Renderer interface {
	Render(slip Payslip) (string, error)
}

// PDFRenderer writes A4 payslip PDFs under a configured directory.
type PDFRenderer struct {
	Dir string
}

func NewPDFRenderer(dir string) *PDFRenderer {
	return &PDFRenderer{Dir: dir}
}

func (r *PDFRenderer) Render(slip Payslip) (string, error) {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", err
	}
	fileName := fmt.Sprintf("%s-%04d-%02d.pdf", slip.ProfileID, slip.Year, slip.Month)
	filePath := filepath.Join(r.Dir, fileName)

	period := fmt.Sprintf("%s %d", time.Month(slip.Month), slip.Year)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Slip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", slip.EmployeeName, slip.ProfileID))
	pdf.Ln(7)
	if slip.Designation != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", slip.Designation))
		pdf.Ln(7)
	}
	if slip.Hub != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Hub: %s", slip.Hub))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Working Days: %d   LOP Days: %d", slip.WorkingDays, slip.LOPDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic: %.2f", slip.Basic))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Conveyance: %.2f", slip.Conveyance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Incentives: %.2f", slip.Incentives))
	pdf.Ln(7)
	if slip.OtherAllowances != 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Other Allowances: %.2f", slip.OtherAllowances))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Gross Earnings: %.2f", slip.GrossEarnings))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("TDS: %.2f", slip.TDS))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Advance: %.2f", slip.Advance))
	pdf.Ln(7)
	if slip.OtherDeductions != 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Other Deductions: %.2f", slip.OtherDeductions))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Total Deductions: %.2f", slip.TotalDeductions))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Net Payable: %.2f", slip.NetPayable))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
