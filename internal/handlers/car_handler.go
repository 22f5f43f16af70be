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

type CarHandler struct {
	Service *services.CarService
}

func NewCarHandler(s *services.CarService) *CarHandler {
	return &CarHandler{Service: s}
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car, err := h.Service.CreateCar(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusCreated, car, "Car registered")
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid car id")
		return
	}

	car, err := h.Service.GetCar(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, car, "")
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Service.ListCars(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if cars == nil {
		cars = []*models.Car{}
	}

	utils.List(w, cars, len(cars))
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid car id")
		return
	}

	var req models.UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	car, err := h.Service.UpdateCar(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, car, "Car updated")
}

func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid car id")
		return
	}

	if err := h.Service.DeleteCar(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Car deleted"})
}
