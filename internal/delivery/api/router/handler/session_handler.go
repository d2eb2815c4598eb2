package handler

import (
	"log/slog"
	"net/http"

	"chirpmap/internal/delivery/api/response"
	"chirpmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SyncUC usecase.LocationSyncUsecase
	Logger *slog.Logger
}

// SessionHandler serves the slot, suggestion and comparison endpoints
type SessionHandler struct {
	syncUC usecase.LocationSyncUsecase
	logger *slog.Logger
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// UpdateQueryRequest carries the current text of a slot's search box
type UpdateQueryRequest struct {
	Text string `json:"text" validate:"max=256"`
}

// SelectCandidateRequest picks one of the slot's current suggestions
type SelectCandidateRequest struct {
	CandidateID string `json:"candidate_id" validate:"required"`
}

// AddSlotResponse is returned when a comparison slot is opened
type AddSlotResponse struct {
	Index   int                   `json:"index"`
	Session *usecase.SessionState `json:"session"`
}

// GetSession returns the full synchronized state
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.syncUC.State(c.Request().Context()))
}

// AddSlot opens a second slot; a third fails with 409
func (h *SessionHandler) AddSlot(c echo.Context) error {
	ctx := c.Request().Context()

	index, err := h.syncUC.AddSlot(ctx)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, AddSlotResponse{
		Index:   index,
		Session: h.syncUC.State(ctx),
	})
}

// RemoveSlot drops a slot. Removing the last slot or an unknown index leaves the session unchanged.
func (h *SessionHandler) RemoveSlot(c echo.Context) error {
	index, err := slotIndex(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	h.syncUC.RemoveSlot(ctx, index)

	return response.Success(c, http.StatusOK, h.syncUC.State(ctx))
}

func (h *SessionHandler) UpdateQuery(c echo.Context) error {
	index, err := slotIndex(c)
	if err != nil {
		return err
	}

	var req UpdateQueryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	slot, err := h.syncUC.TypeQuery(c.Request().Context(), index, req.Text)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, slot)
}

// GetSuggestions returns the latest result set for a slot, with loading and failure flags
func (h *SessionHandler) GetSuggestions(c echo.Context) error {
	index, err := slotIndex(c)
	if err != nil {
		return err
	}

	snapshot, err := h.syncUC.Suggestions(c.Request().Context(), index)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, snapshot)
}

func (h *SessionHandler) SelectCandidate(c echo.Context) error {
	index, err := slotIndex(c)
	if err != nil {
		return err
	}

	var req SelectCandidateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	slot, err := h.syncUC.SelectCandidate(c.Request().Context(), index, req.CandidateID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, slot)
}

func (h *SessionHandler) Compare(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.syncUC.Compare(c.Request().Context()))
}
