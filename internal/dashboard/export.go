package dashboard

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// revenueHeader is the column layout of the revenue export.
var revenueHeader = []string{
	"Month", "Year", "Total Revenue", "AppSec Revenue", "ZTNA Revenue",
	"Email Revenue", "New Partners", "New Customers", "Churn Rate %",
}

// WriteRevenueWorkbook writes the revenue history as an Excel workbook.
func WriteRevenueWorkbook(history []RevenueData, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Revenue"
	file.SetSheetName("Sheet1", sheet)

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range revenueHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	endCell, _ := excelize.CoordinatesToCellName(len(revenueHeader), 1)
	if err := file.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, month := range history {
		row := i + 2
		values := []any{
			month.Month, month.Year, month.TotalRevenue, month.AppSecRevenue,
			month.ZTNARevenue, month.EmailRevenue, month.NewPartners,
			month.NewCustomers, month.ChurnRate,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteCommercialReportPDF renders one partner's commercial report as a PDF.
func WriteCommercialReportPDF(report *CommercialReport, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Commercial Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Partner: %s (%s)", report.PartnerName, report.PartnerID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Type: %s    Region: %s    Month: %s", report.PartnerType, report.Region, report.ReportMonth))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Price list: %s (effective %s)", report.PriceListApplied, report.Pricing.EffectiveDate))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Usage")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)

	rows := [][2]string{
		{"Application Security", fmt.Sprintf("%.1f TB @ %.2f %s/TB", report.AppSecUsage.Total, report.Pricing.AppSecRate, report.Pricing.Currency)},
		{"Zero Trust", fmt.Sprintf("%d seats @ %.2f %s/seat", report.ZTNAUsage.Total, report.Pricing.ZTNARate, report.Pricing.Currency)},
		{"Email Security", fmt.Sprintf("%d inboxes @ %.2f %s/inbox", report.EmailUsage.Total, report.Pricing.EmailRate, report.Pricing.Currency)},
	}
	for _, row := range rows {
		pdf.Cell(70, 7, row[0])
		pdf.Cell(0, 7, row[1])
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Commercials")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(70, 7, "Total cost")
	pdf.Cell(0, 7, fmt.Sprintf("%.2f %s", report.TotalCost, report.Pricing.Currency))
	pdf.Ln(7)
	pdf.Cell(70, 7, "Total revenue")
	pdf.Cell(0, 7, fmt.Sprintf("%.2f %s", report.TotalRevenue, report.Pricing.Currency))
	pdf.Ln(7)
	pdf.Cell(70, 7, "Margin")
	pdf.Cell(0, 7, fmt.Sprintf("%.1f%%", report.Margin))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}
