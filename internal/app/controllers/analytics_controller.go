package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/studytrack/internal/app/models/dto"
	"github.com/deniz/studytrack/internal/app/services"
	"github.com/deniz/studytrack/internal/middleware"
)

// AnalyticsController exposes the aggregate progress views
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetOverallStats returns the top-level progress summary
// @Summary Overall statistics
// @Description Course completion counts, total study hours, average session rating, and the current study streak
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OverallStats}
// @Router /analytics/stats [get]
func (c *AnalyticsController) GetOverallStats(ctx *gin.Context) {
	stats, err := c.analyticsService.GetOverallStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now().UTC(),
	})
}

// GetWeeklyProgress returns hours bucketed by trailing ISO weeks
// @Summary Weekly study hours
// @Description Buckets closed-session hours into the trailing N ISO weeks, zero-filled
// @Tags analytics
// @Produce json
// @Param weeks query int false "Number of trailing weeks" minimum(1) maximum(104)
// @Success 200 {object} dto.APIResponse{data=[]dto.WeekBucket}
// @Failure 400 {object} dto.ErrorResponse "Invalid weeks parameter"
// @Router /analytics/weekly [get]
func (c *AnalyticsController) GetWeeklyProgress(ctx *gin.Context) {
	weeks := 0
	if raw := ctx.Query("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			detail := dto.NewErrorDetail(dto.ErrorKindValidation, "weeks must be a positive integer").
				WithField("weeks")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}
		weeks = parsed
	}

	buckets, err := c.analyticsService.GetWeeklyProgress(ctx, weeks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      buckets,
		Timestamp: time.Now().UTC(),
	})
}

// GetDifficultyDistribution returns course counts per difficulty band
// @Summary Difficulty distribution
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DifficultyDistribution}
// @Router /analytics/difficulty [get]
func (c *AnalyticsController) GetDifficultyDistribution(ctx *gin.Context) {
	dist, err := c.analyticsService.GetDifficultyDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dist,
		Timestamp: time.Now().UTC(),
	})
}

// GetGoalDeadlines returns day countdowns for incomplete dated goals
// @Summary Goal deadlines
// @Description Days until target for each incomplete goal with a target date; overdue goals are negative
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.GoalDeadline}
// @Router /analytics/deadlines [get]
func (c *AnalyticsController) GetGoalDeadlines(ctx *gin.Context) {
	deadlines, err := c.analyticsService.GetGoalDeadlines(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      deadlines,
		Timestamp: time.Now().UTC(),
	})
}

// GenerateReport returns the full progress report
// @Summary Progress report
// @Description One snapshot combining stats, weekly hours, difficulty distribution, and goal deadlines
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProgressReport}
// @Router /analytics/report [get]
func (c *AnalyticsController) GenerateReport(ctx *gin.Context) {
	report, err := c.analyticsService.GenerateReport(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now().UTC(),
	})
}
