package handler

import (
	"log/slog"
	"net/http"

	"wellness/internal/delivery/http/response"
	"wellness/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createMoodRequest struct {
	MoodType         string  `json:"moodType"`
	Level            int     `json:"level"`
	ShortDescription *string `json:"shortDescription" validate:"omitnil,max=500" label:"Descrição"`
}

type updateMoodRequest struct {
	MoodType         *string `json:"moodType"`
	Level            *int    `json:"level"`
	ShortDescription *string `json:"shortDescription" validate:"omitnil,max=500" label:"Descrição"`
}

// MoodHandler holds dependencies for mood log handlers.
type MoodHandler struct {
	uc     usecase.MoodUsecase
	logger *slog.Logger
}

// NewMoodHandler is the constructor for MoodHandler, injected by Fx.
func NewMoodHandler(uc usecase.MoodUsecase, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's entries, newest first.
func (h *MoodHandler) List(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var input usecase.ListMoodInput
	if err := echo.QueryParamsBinder(c).
		String("startDate", &input.StartDate).
		String("endDate", &input.EndDate).
		Int("limit", &input.Limit).
		BindError(); err != nil {
		return errors.WithStack(invalidQuery(err))
	}

	entries, err := h.uc.List(c.Request().Context(), session.Identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toMoodListView(entries))
}

// Create records a new mood entry for the caller.
func (h *MoodHandler) Create(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var req createMoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.uc.Create(c.Request().Context(), session.Identity.UserID, usecase.CreateMoodInput{
		MoodType:         req.MoodType,
		Level:            req.Level,
		ShortDescription: req.ShortDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, moodEntryBody{
		Message:   "Registro de humor criado com sucesso",
		MoodEntry: toMoodEntryView(entry),
	})
}

// Update applies a partial update to one of the caller's entries.
func (h *MoodHandler) Update(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var req updateMoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.uc.Update(c.Request().Context(), c.Param("id"), session.Identity.UserID, usecase.UpdateMoodInput{
		MoodType:         req.MoodType,
		Level:            req.Level,
		ShortDescription: req.ShortDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, moodEntryBody{
		Message:   "Registro de humor atualizado com sucesso",
		MoodEntry: toMoodEntryView(entry),
	})
}

// Delete removes one of the caller's entries.
func (h *MoodHandler) Delete(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), session.Identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Registro de humor deletado com sucesso")
}

// Stats returns aggregates over the caller's entries in the optional date range.
func (h *MoodHandler) Stats(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	var input usecase.StatsInput
	if err := echo.QueryParamsBinder(c).
		String("startDate", &input.StartDate).
		String("endDate", &input.EndDate).
		BindError(); err != nil {
		return errors.WithStack(invalidQuery(err))
	}

	stats, err := h.uc.Stats(c.Request().Context(), session.Identity.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, http.StatusOK, toMoodStatsView(stats))
}

// MoodTypes returns the canonical mood table as a bare array. It needs no authentication.
func (h *MoodHandler) MoodTypes(c echo.Context) error {
	return response.JSON(c, http.StatusOK, toMoodTypeViews(h.uc.MoodTypes()))
}
