package handler

import (
	"encoding/json"
	"net/http"

	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/usecase"
	"patient-health-api/pkg/response"
	"patient-health-api/pkg/validator"
)

type AccountLinkedHandler struct {
	linkUsecase usecase.PatientAccountLinkedUsecase
	validator   *validator.CustomValidator
}

func NewAccountLinkedHandler(linkUsecase usecase.PatientAccountLinkedUsecase, validator *validator.CustomValidator) *AccountLinkedHandler {
	return &AccountLinkedHandler{
		linkUsecase: linkUsecase,
		validator:   validator,
	}
}

func (h *AccountLinkedHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "patientId")
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	links, err := h.linkUsecase.ListLinks(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Account links retrieved successfully", links)
}

func (h *AccountLinkedHandler) CheckLinks(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "patientId")
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}

	check, err := h.linkUsecase.CheckLinks(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Account links checked successfully", check)
}

func (h *AccountLinkedHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	link, err := h.linkUsecase.CreateLink(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Account link created successfully", link)
}

func (h *AccountLinkedHandler) RemoveLink(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(r, "patientId")
	if !ok {
		badRequest(w, r, "Invalid patient ID")
		return
	}
	linkedPatientID, ok := pathID(r, "linkedPatientId")
	if !ok {
		badRequest(w, r, "Invalid linked patient ID")
		return
	}

	if err := h.linkUsecase.RemoveLink(r.Context(), patientID, linkedPatientID); err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Account link removed successfully", nil)
}
