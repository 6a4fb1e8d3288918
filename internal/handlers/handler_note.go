package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maooe/finance_control_app/internal/apperrors"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/dto"
	"github.com/maooe/finance_control_app/internal/middleware"
)

// noteHandler handles HTTP requests related to sticky notes.
type noteHandler struct {
	store portssvc.StoreSvcFacade
}

// registerNoteRoutes registers routes related to sticky notes.
func registerNoteRoutes(rg *gin.RouterGroup, store portssvc.StoreSvcFacade) {
	h := &noteHandler{store: store}

	notes := rg.Group("/notes")
	{
		notes.POST("", h.createNote)
		notes.GET("", h.listNotes)
		notes.PUT("/:id", h.updateNote)
		notes.DELETE("/:id", h.deleteNote)
	}
}

// createNote godoc
// @Summary Create a sticky note
// @Tags notes
// @Accept json
// @Produce json
// @Param note body dto.CreateNoteRequest true "Note details"
// @Success 201 {object} domain.Note
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create note"
// @Security BearerAuth
// @Router /notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.store.AddNote(c.Request.Context(), req.ToDomain())
	if err != nil {
		logger.Error("Failed to add note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

// listNotes godoc
// @Summary List sticky notes
// @Tags notes
// @Produce json
// @Success 200 {object} dto.ListNotesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	notes := h.store.ListNotes(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListNotesResponse{Notes: notes})
}

// updateNote godoc
// @Summary Edit a sticky note in place
// @Description Updates content and/or color of an existing note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} domain.Note
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Failure 500 {object} ErrorResponse "Failed to update note"
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *noteHandler) updateNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.store.UpdateNote(c.Request.Context(), noteID, req.Content, req.Color)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Note not found"})
		} else {
			logger.Error("Failed to update note", slog.String("error", err.Error()), slog.String("note_id", noteID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update note"})
		}
		return
	}

	c.JSON(http.StatusOK, note)
}

// deleteNote godoc
// @Summary Delete a sticky note
// @Description Removes the note with the given id; unknown ids are ignored
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to delete note"
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *noteHandler) deleteNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("id")

	if err := h.store.DeleteNote(c.Request.Context(), noteID); err != nil {
		logger.Error("Failed to delete note", slog.String("error", err.Error()), slog.String("note_id", noteID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete note"})
		return
	}

	c.Status(http.StatusNoContent)
}
