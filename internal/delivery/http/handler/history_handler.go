package handler

import (
	"net/http"

	"medicita/internal/delivery/dto"
	"medicita/internal/usecase"
	"medicita/pkg/response"
	"medicita/pkg/validator"

	"github.com/gorilla/mux"
)

type HistoryHandler struct {
	historyUsecase usecase.HistoryUsecase
	validator      *validator.CustomValidator
}

func NewHistoryHandler(historyUsecase usecase.HistoryUsecase, validator *validator.CustomValidator) *HistoryHandler {
	return &HistoryHandler{
		historyUsecase: historyUsecase,
		validator:      validator,
	}
}

func (h *HistoryHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.HistoryRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.historyUsecase.CreateRecord(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "History record created successfully", record)
}

func (h *HistoryHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.historyUsecase.GetRecord(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "History record retrieved successfully", record)
}

func (h *HistoryHandler) GetAllRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.historyUsecase.GetAllRecords(r.Context(), listFilter(r))
	if err != nil {
		response.InternalServerError(w, "Failed to get history records")
		return
	}

	response.Success(w, http.StatusOK, "History records retrieved successfully", records)
}

func (h *HistoryHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.HistoryRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.historyUsecase.UpdateRecord(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "History record updated successfully", record)
}

func (h *HistoryHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.historyUsecase.DeleteRecord(r.Context(), mux.Vars(r)["id"]); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "History record deleted successfully", nil)
}
