package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/usecase"
	"patient-health-api/pkg/response"
	"patient-health-api/pkg/validator"
)

type HealthCoverageHandler struct {
	coverageUsecase usecase.HealthCoverageUsecase
	validator       *validator.CustomValidator
}

func NewHealthCoverageHandler(coverageUsecase usecase.HealthCoverageUsecase, validator *validator.CustomValidator) *HealthCoverageHandler {
	return &HealthCoverageHandler{
		coverageUsecase: coverageUsecase,
		validator:       validator,
	}
}

func (h *HealthCoverageHandler) ListCoverages(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "patientId")
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	coverages, err := h.coverageUsecase.ListCoverages(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Health coverages retrieved successfully", coverages)
}

func (h *HealthCoverageHandler) GetCoverage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, r, "Invalid health coverage ID")
		return
	}

	coverage, err := h.coverageUsecase.GetCoverage(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Health coverage retrieved successfully", coverage)
}

func (h *HealthCoverageHandler) CreateCoverage(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "patientId")
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	var req dto.CreateHealthCoverageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	coverage, err := h.coverageUsecase.CreateCoverage(r.Context(), patientID, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Health coverage created successfully", coverage)
}

func (h *HealthCoverageHandler) UpdateCoverage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, r, "Invalid health coverage ID")
		return
	}
	patientID, ok := pathID(r, "patientId")
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	var req dto.UpdateHealthCoverageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	coverage, err := h.coverageUsecase.UpdateCoverage(r.Context(), id, patientID, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Health coverage updated successfully", coverage)
}

func (h *HealthCoverageHandler) DeleteCoverage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, r, "Invalid health coverage ID")
		return
	}
	patientID, ok := pathID(r, "patientId")
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	deleted, err := h.coverageUsecase.DeleteCoverage(r.Context(), id, patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !deleted {
		response.Success(w, http.StatusOK, "Health coverage was not deleted", []string{fmt.Sprintf("Health coverage with id %d cannot be deleted.", id)})
		return
	}
	response.Success(w, http.StatusOK, "Health coverage deleted successfully", []string{fmt.Sprintf("Health coverage with id %d is deleted", id)})
}
