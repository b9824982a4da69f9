package handlers

import (
	"errors"
	"net/http"

	"roomly/database/repository"
	"roomly/services/scheduling"
	"roomly/services/search"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles the HTTP endpoints and their service dependencies.
type Handler struct {
	Orchestrator search.Orchestrator
	Ledger       scheduling.ReservationLedger
	Availability scheduling.AvailabilityEngine
	Confirmer    *scheduling.ConfirmationService
	RoomRepo     repository.RoomRepository
}

// NewHandler wires the endpoint handlers.
func NewHandler(
	orchestrator search.Orchestrator,
	ledger scheduling.ReservationLedger,
	availability scheduling.AvailabilityEngine,
	confirmer *scheduling.ConfirmationService,
	roomRepo repository.RoomRepository,
) *Handler {
	return &Handler{
		Orchestrator: orchestrator,
		Ledger:       ledger,
		Availability: availability,
		Confirmer:    confirmer,
		RoomRepo:     roomRepo,
	}
}

// respondError maps service errors onto HTTP statuses. Internal store
// errors are logged and replaced with a generic message so they never
// leak to the caller.
func respondError(c *gin.Context, err error) {
	var (
		validationErr  *scheduling.ValidationError
		notFoundErr    *scheduling.NotFoundError
		conflictErr    *scheduling.ConflictError
		cancelledErr   *scheduling.AlreadyCancelledError
		rejectionErr   *search.DomainRejectionError
		unparseableErr *search.UnparseableError
		unavailableErr *search.OracleUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Error())
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "Scheduling conflict", conflictErr.Error())
	case errors.As(err, &cancelledErr):
		utils.JSONError(c, http.StatusConflict, "Already cancelled", cancelledErr.Error())
	case errors.As(err, &rejectionErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Request rejected", rejectionErr.Error())
	case errors.As(err, &unparseableErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Request rejected", unparseableErr.Error())
	case errors.As(err, &unavailableErr):
		utils.JSONError(c, http.StatusServiceUnavailable, "Language service unavailable",
			"The request could not be interpreted right now. Please try again.")
	default:
		utils.GetLogger().Error("internal error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
