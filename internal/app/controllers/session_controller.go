package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/app/services"
	"github.com/deniz/studytrack/internal/middleware"
)

// SessionController handles study session endpoints
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// StartSession opens a new session on a course
// @Summary Start a study session
// @Description Opens a session for the course; the session stays open until explicitly ended
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.StartSessionRequest true "Optional notes"
// @Success 201 {object} dto.APIResponse{data=models.StudySession} "Session opened"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	session, err := c.sessionService.StartSession(ctx, courseID, req.Notes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now().UTC(),
	})
}

// EndSession closes an open session
// @Summary End a study session
// @Description Closes the session with a rating; a session can only be closed once
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param request body dto.EndSessionRequest true "Rating and optional notes"
// @Success 200 {object} dto.APIResponse{data=dto.SessionClosedResponse}
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already closed"
// @Router /sessions/{id}/end [post]
func (c *SessionController) EndSession(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EndSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	closed, err := c.sessionService.EndSession(ctx, sessionID, req.Rating, req.Notes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      closed,
		Timestamp: time.Now().UTC(),
	})
}

// GetSessionByID retrieves a session by ID
// @Summary Get session details
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.StudySession}
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSessionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now().UTC(),
	})
}

// GetSessionsByCourse lists a course's sessions, newest first
// @Summary List sessions of a course
// @Tags sessions
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.StudySession}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/sessions [get]
func (c *SessionController) GetSessionsByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sessions, err := c.sessionService.GetSessionsByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now().UTC(),
	})
}

// UpdateSessionNotes replaces a session's notes
// @Summary Update session notes
// @Description Notes are the only mutable field; end time and rating move only through the end operation
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSessionRequest true "New notes"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [put]
func (c *SessionController) UpdateSessionNotes(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	if err := c.sessionService.UpdateSessionNotes(ctx, id, req.Notes); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "session updated"},
		Timestamp: time.Now().UTC(),
	})
}
