package handlers

import (
	"fmt"
	"net/http"

	"carwash-backend/internal/services"
	"carwash-backend/pkg/utils"
)

type ReportHandler struct {
	Service     *services.ReportService
	CompanyName string
}

func NewReportHandler(s *services.ReportService, companyName string) *ReportHandler {
	return &ReportHandler{Service: s, CompanyName: companyName}
}

// Daily returns the payment report for one day (?date=YYYY-MM-DD, default
// today)
func (h *ReportHandler) Daily(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Daily(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, report, "")
}

// DailyPDF returns the daily report rendered as a PDF
func (h *ReportHandler) DailyPDF(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Daily(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pdfBytes, err := h.Service.GenerateDailyPDF(report, h.CompanyName)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	utils.PDF(w, fmt.Sprintf("daily-report-%s.pdf", report.Date), pdfBytes)
}

// Summary returns store-wide totals (?startDate=&endDate= restrict revenue)
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.Summary(r.Context(),
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, report, "")
}
