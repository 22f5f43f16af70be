package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"carwash-backend/internal/models"
	"carwash-backend/internal/services"
	"carwash-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ServiceRecordHandler struct {
	Service *services.ServiceRecordService
}

func NewServiceRecordHandler(s *services.ServiceRecordService) *ServiceRecordHandler {
	return &ServiceRecordHandler{Service: s}
}

func (h *ServiceRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.Service.CreateRecord(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusCreated, record, "Service record created")
}

func (h *ServiceRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid service record id")
		return
	}

	record, err := h.Service.GetRecord(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, record, "")
}

func (h *ServiceRecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.ListRecords(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*models.ServiceRecordWithDetails{}
	}

	utils.List(w, records, len(records))
}

func (h *ServiceRecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid service record id")
		return
	}

	var req models.UpdateServiceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.Service.UpdateRecord(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, record, "Service record updated")
}

func (h *ServiceRecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid service record id")
		return
	}

	if err := h.Service.DeleteRecord(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Service record deleted"})
}
