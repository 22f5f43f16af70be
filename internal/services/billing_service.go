package services

import (
	"bytes"
	"context"
	"fmt"

	"carwash-backend/internal/models"
	"carwash-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// BillingService composes printable bills for service records. Bills are
// derived on demand and never persisted.
type BillingService struct {
	Records         ServiceRecordStore
	Payments        PaymentStore
	CompanyName     string
	CompanyLocation string
}

func NewBillingService(records ServiceRecordStore, payments PaymentStore, companyName, companyLocation string) *BillingService {
	return &BillingService{
		Records:         records,
		Payments:        payments,
		CompanyName:     companyName,
		CompanyLocation: companyLocation,
	}
}

// GetBill builds the bill for one service record. An unpaid record yields a
// "Pending" bill carrying the package price as the amount due; a paid one
// carries the settled payment details.
func (s *BillingService) GetBill(ctx context.Context, serviceRecordID int) (*models.Bill, error) {
	record, err := s.Records.Get(ctx, serviceRecordID)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: service record %d", ErrNotFound, serviceRecordID)
		}
		return nil, err
	}

	svc := record.ServiceRecord
	bill := &models.Bill{
		Car:             record.Car,
		Package:         record.Package,
		Service:         &svc,
		CompanyName:     s.CompanyName,
		CompanyLocation: s.CompanyLocation,
		BillDate:        timeutil.Now(),
	}

	payment, err := s.Payments.GetByServiceRecordID(ctx, serviceRecordID)
	if err != nil {
		// Only a missing payment means "pending"; a store failure must
		// not masquerade as an unpaid bill
		if isNoRows(err) {
			bill.Payment = &models.BillPayment{
				Status:    models.BillPending,
				AmountDue: record.Package.PackagePrice,
			}
			return bill, nil
		}
		return nil, err
	}

	paymentDate := payment.PaymentDate
	bill.Payment = &models.BillPayment{
		Status:        models.BillPaid,
		PaymentNumber: payment.PaymentNumber,
		AmountPaid:    payment.AmountPaid,
		PaymentMethod: payment.PaymentMethod,
		PaymentDate:   &paymentDate,
	}
	return bill, nil
}

// GenerateBillPDF renders a bill as a printable A4 invoice
func (s *BillingService) GenerateBillPDF(bill *models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, bill.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, bill.CompanyLocation, "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, fmt.Sprintf("Bill Date: %s", bill.BillDate.Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Car Details
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Car Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Plate Number: %s", bill.Car.PlateNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Type: %s (%s)", bill.Car.CarType, bill.Car.CarSize), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Driver: %s", bill.Car.DriverName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", bill.Car.PhoneNumber), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Service Details
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Service Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Record: %s", bill.Service.RecordNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", bill.Service.ServiceDate.Format(timeutil.DateLayout)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Package: %s", bill.Package.PackageName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Price: RWF %.2f", bill.Package.PackagePrice), "RB", 1, "L", false, 0, "")
	if bill.Package.PackageDescription != "" {
		pdf.CellFormat(190, 7, fmt.Sprintf("Description: %s", bill.Package.PackageDescription), "LRB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Payment block, highlighted by settlement state
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment", "1", 1, "L", true, 0, "")

	if bill.Payment.Status == models.BillPaid {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(95, 7, fmt.Sprintf("Payment Number: %s", bill.Payment.PaymentNumber), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Method: %s", bill.Payment.PaymentMethod), "RB", 1, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", bill.Payment.PaymentDate.Format(timeutil.DateLayout)), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, fmt.Sprintf("Amount: RWF %.2f", bill.Payment.AmountPaid), "RB", 1, "L", false, 0, "")
		pdf.SetFillColor(200, 255, 200)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(190, 10, "PAID", "1", 1, "C", true, 0, "")
	} else {
		pdf.SetFillColor(255, 200, 200)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(190, 10, fmt.Sprintf("PENDING - Amount Due: RWF %.2f", bill.Payment.AmountDue), "1", 1, "C", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
