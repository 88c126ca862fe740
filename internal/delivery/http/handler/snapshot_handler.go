package handler

import (
	"net/http"

	"medicita/internal/usecase"
	"medicita/pkg/response"
)

type SnapshotHandler struct {
	snapshotUsecase usecase.SnapshotUsecase
}

func NewSnapshotHandler(snapshotUsecase usecase.SnapshotUsecase) *SnapshotHandler {
	return &SnapshotHandler{snapshotUsecase: snapshotUsecase}
}

func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotUsecase.Export(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Snapshot exported successfully", snapshot)
}

func (h *SnapshotHandler) Backup(w http.ResponseWriter, r *http.Request) {
	backup, err := h.snapshotUsecase.Backup(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Backup written successfully", backup)
}
