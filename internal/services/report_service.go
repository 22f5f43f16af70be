package services

import (
	"bytes"
	"context"
	"fmt"

	"carwash-backend/internal/models"
	"carwash-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// DailyPaymentLister yields the payments made on one calendar date
type DailyPaymentLister interface {
	ListByDate(ctx context.Context, date string) ([]*models.PaymentWithDetails, error)
}

// ReportStore runs the aggregate queries behind the summary report
type ReportStore interface {
	Counts(ctx context.Context) (cars, packages, services, payments int, err error)
	TotalRevenue(ctx context.Context, startDate, endDate string) (float64, error)
	RevenueByPackage(ctx context.Context, startDate, endDate string) ([]models.PackageRevenue, error)
}

type ReportService struct {
	Payments DailyPaymentLister
	Repo     ReportStore
}

func NewReportService(payments DailyPaymentLister, repo ReportStore) *ReportService {
	return &ReportService{
		Payments: payments,
		Repo:     repo,
	}
}

// Daily builds the payment report for one calendar day. An empty date means
// today in the business timezone.
func (s *ReportService) Daily(ctx context.Context, date string) (*models.DailyReport, error) {
	if date == "" {
		date = timeutil.Now().Format(timeutil.DateLayout)
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrValidation)
	}

	payments, err := s.Payments.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	report := &models.DailyReport{
		Date: date,
		Rows: make([]models.DailyReportRow, 0, len(payments)),
	}
	for _, p := range payments {
		report.Rows = append(report.Rows, models.DailyReportRow{
			PaymentNumber:      p.PaymentNumber,
			PlateNumber:        p.Service.Car.PlateNumber,
			PackageName:        p.Service.Package.PackageName,
			PackageDescription: p.Service.Package.PackageDescription,
			AmountPaid:         p.AmountPaid,
			PaymentDate:        p.PaymentDate,
		})
		report.TotalAmount += p.AmountPaid
	}

	return report, nil
}

// Summary builds the store-wide totals, optionally restricting revenue to an
// inclusive payment date range.
func (s *ReportService) Summary(ctx context.Context, startDate, endDate string) (*models.SummaryReport, error) {
	if startDate != "" {
		if _, err := timeutil.ParseDate(startDate); err != nil {
			return nil, fmt.Errorf("%w: startDate must be in YYYY-MM-DD format", ErrValidation)
		}
	}
	if endDate != "" {
		if _, err := timeutil.ParseDate(endDate); err != nil {
			return nil, fmt.Errorf("%w: endDate must be in YYYY-MM-DD format", ErrValidation)
		}
	}

	cars, packages, services, payments, err := s.Repo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.Repo.TotalRevenue(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	byPackage, err := s.Repo.RevenueByPackage(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &models.SummaryReport{
		TotalCars:        cars,
		TotalPackages:    packages,
		TotalServices:    services,
		TotalPayments:    payments,
		TotalRevenue:     revenue,
		RevenueByPackage: byPackage,
	}, nil
}

// GenerateDailyPDF renders the daily report as a printable A4 table
func (s *ReportService) GenerateDailyPDF(report *models.DailyReport, companyName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - Daily Report", companyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Date: %s", report.Date), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Payment #", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Plate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Package", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 10)
	for _, row := range report.Rows {
		desc := row.PackageDescription
		if len(desc) > 22 {
			desc = desc[:19] + "..."
		}
		pdf.CellFormat(35, 6, row.PaymentNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, row.PlateNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, row.PackageName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", row.AmountPaid), "1", 1, "R", false, 0, "")
	}

	if len(report.Rows) == 0 {
		pdf.CellFormat(190, 8, "No payments recorded on this day", "1", 1, "C", false, 0, "")
	}

	// Total
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(160, 8, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("RWF %.2f", report.TotalAmount), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
