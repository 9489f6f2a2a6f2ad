package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/app/services"
	"github.com/deniz/studytrack/internal/middleware"
)

// GoalController handles learning goal endpoints
type GoalController struct {
	goalService services.GoalService
}

// NewGoalController creates a new GoalController
func NewGoalController(goalService services.GoalService) *GoalController {
	return &GoalController{
		goalService: goalService,
	}
}

// CreateGoal handles goal creation
// @Summary Create a learning goal
// @Description Creates a goal, optionally tied to an existing course
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal information"
// @Success 201 {object} dto.APIResponse{data=models.LearningGoal} "Goal created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Referenced course not found"
// @Router /goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	goal, err := c.goalService.CreateGoal(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      goal,
		Timestamp: time.Now().UTC(),
	})
}

// GetGoalByID retrieves a goal by ID
// @Summary Get goal details
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.LearningGoal}
// @Failure 404 {object} dto.ErrorResponse "Goal not found"
// @Router /goals/{id} [get]
func (c *GoalController) GetGoalByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	goal, err := c.goalService.GetGoalByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      goal,
		Timestamp: time.Now().UTC(),
	})
}

// GetAllGoals lists goals
// @Summary List goals
// @Description Lists all goals; pass incomplete=true to hide completed ones
// @Tags goals
// @Produce json
// @Param incomplete query bool false "Only incomplete goals"
// @Success 200 {object} dto.APIResponse{data=[]models.LearningGoal}
// @Router /goals [get]
func (c *GoalController) GetAllGoals(ctx *gin.Context) {
	onlyIncomplete := ctx.Query("incomplete") == "true"

	goals, err := c.goalService.GetAllGoals(ctx, onlyIncomplete)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      goals,
		Timestamp: time.Now().UTC(),
	})
}

// UpdateGoal applies a partial update to a goal
// @Summary Update a goal
// @Description Applies the supplied fields; the completion flag is not updatable here
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID" Format(int64) minimum(1)
// @Param request body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.LearningGoal}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Goal not found"
// @Router /goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	goal, err := c.goalService.UpdateGoal(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      goal,
		Timestamp: time.Now().UTC(),
	})
}

// CompleteGoal marks a goal as completed
// @Summary Complete a goal
// @Description Marks the goal completed; completing it twice is rejected
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Goal not found"
// @Failure 409 {object} dto.ErrorResponse "Goal already completed"
// @Router /goals/{id}/complete [post]
func (c *GoalController) CompleteGoal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.goalService.CompleteGoal(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "goal completed"},
		Timestamp: time.Now().UTC(),
	})
}

// DeleteGoal deletes a goal
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Goal not found"
// @Router /goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.goalService.DeleteGoal(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "goal deleted"},
		Timestamp: time.Now().UTC(),
	})
}
