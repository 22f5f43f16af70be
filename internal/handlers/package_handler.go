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

type PackageHandler struct {
	Service *services.PackageService
}

func NewPackageHandler(s *services.PackageService) *PackageHandler {
	return &PackageHandler{Service: s}
}

func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := h.Service.CreatePackage(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusCreated, pkg, "Package created")
}

func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid package id")
		return
	}

	pkg, err := h.Service.GetPackage(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, pkg, "")
}

func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.Service.ListPackages(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if packages == nil {
		packages = []*models.Package{}
	}

	utils.List(w, packages, len(packages))
}

func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid package id")
		return
	}

	var req models.UpdatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := h.Service.UpdatePackage(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.Item(w, http.StatusOK, pkg, "Package updated")
}

func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid package id")
		return
	}

	if err := h.Service.DeletePackage(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Package deleted"})
}
