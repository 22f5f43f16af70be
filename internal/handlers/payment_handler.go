package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"carwash-backend/internal/models"
	"carwash-backend/internal/services"
	"carwash-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	Service *services.PaymentService
	Billing *services.BillingService
}

func NewPaymentHandler(s *services.PaymentService, billing *services.BillingService) *PaymentHandler {
	return &PaymentHandler{Service: s, Billing: billing}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.Service.CreatePayment(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusCreated, payment, "Payment recorded")
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid payment id")
		return
	}

	payment, err := h.Service.GetPayment(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, payment, "")
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.ListPayments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if payments == nil {
		payments = []*models.PaymentWithDetails{}
	}

	utils.List(w, payments, len(payments))
}

// UnpaidServices returns the service records still eligible for a payment
func (h *PaymentHandler) UnpaidServices(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.UnpaidServices(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*models.ServiceRecordWithDetails{}
	}

	utils.List(w, records, len(records))
}

// GetBill returns the composed bill for a service record
func (h *PaymentHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(mux.Vars(r)["serviceId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid service record id")
		return
	}

	bill, err := h.Billing.GetBill(r.Context(), serviceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, bill, "")
}

// GetBillPDF returns the bill rendered as a PDF
func (h *PaymentHandler) GetBillPDF(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(mux.Vars(r)["serviceId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid service record id")
		return
	}

	bill, err := h.Billing.GetBill(r.Context(), serviceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pdfBytes, err := h.Billing.GenerateBillPDF(bill)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	utils.PDF(w, fmt.Sprintf("bill-%s.pdf", bill.Service.RecordNumber), pdfBytes)
}
