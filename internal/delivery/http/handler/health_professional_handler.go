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

type HealthProfessionalHandler struct {
	professionalUsecase usecase.HealthProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewHealthProfessionalHandler(professionalUsecase usecase.HealthProfessionalUsecase, validator *validator.CustomValidator) *HealthProfessionalHandler {
	return &HealthProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

// ListProfessionals lists one patient's contacts when ?patientId is given.
// Without it every contact is listed, which the usecase restricts to admins.
func (h *HealthProfessionalHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("patientId")
	if raw == "" {
		professionals, err := h.professionalUsecase.ListAll(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.Success(w, http.StatusOK, "Health professionals retrieved successfully", professionals)
		return
	}

	patientID, ok := parseID(raw)
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	professionals, err := h.professionalUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Health professionals retrieved successfully", professionals)
}

func (h *HealthProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, r, "Invalid health professional ID")
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Health professional retrieved successfully", professional)
}

func (h *HealthProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHealthProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.CreateProfessional(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Health professional created successfully", professional)
}

func (h *HealthProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, r, "Invalid health professional ID")
		return
	}

	var req dto.UpdateHealthProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Health professional updated successfully", professional)
}

func (h *HealthProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, r, "Invalid health professional ID")
		return
	}
	patientID, ok := parseID(r.URL.Query().Get("patientId"))
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	deleted, err := h.professionalUsecase.DeleteProfessional(r.Context(), id, patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !deleted {
		response.Success(w, http.StatusOK, "Health professional was not deleted", []string{fmt.Sprintf("Health professional with id %d cannot be deleted.", id)})
		return
	}
	response.Success(w, http.StatusOK, "Health professional deleted successfully", []string{fmt.Sprintf("Health professional with id %d is deleted", id)})
}
