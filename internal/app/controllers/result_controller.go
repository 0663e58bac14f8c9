package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/app/services"
	"github.com/weerawi/University-Course-Management-System/internal/middleware"
)

// ResultController handles grading endpoints
type ResultController struct {
	resultService *services.ResultService
	logger        zerolog.Logger
}

// NewResultController creates a new ResultController
func NewResultController(resultService *services.ResultService, logger zerolog.Logger) *ResultController {
	return &ResultController{
		resultService: resultService,
		logger:        logger,
	}
}

// GetAllResults lists all recorded results
// @Summary List results
// @Tags results
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ResultResponse}
// @Security BearerAuth
// @Router /results [get]
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results))
}

// GetOwnResults lists the authenticated student's results
// @Summary List own results
// @Tags results
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ResultResponse}
// @Failure 404 {object} dto.ErrorResponse "No student profile for this account"
// @Security BearerAuth
// @Router /results/me [get]
func (c *ResultController) GetOwnResults(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	results, err := c.resultService.GetOwnResults(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results))
}

// GetTaughtResults lists results across the authenticated instructor's courses
// @Summary List results of taught courses
// @Tags results
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ResultResponse}
// @Security BearerAuth
// @Router /results/teaching [get]
func (c *ResultController) GetTaughtResults(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	results, err := c.resultService.GetResultsByInstructor(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(results))
}

// GetResultByID returns a single result
// @Summary Get result
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResultResponse}
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Security BearerAuth
// @Router /results/{id} [get]
func (c *ResultController) GetResultByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	result, err := c.resultService.GetResultByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// CreateResult records a result
// @Summary Record result
// @Description Records midterm and final scores for an enrolled student. Total and grade are computed server-side.
// @Tags results
// @Accept json
// @Produce json
// @Param request body dto.CreateResultRequest true "Result information"
// @Success 201 {object} dto.APIResponse{data=dto.ResultResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student not enrolled or result already recorded for the term"
// @Security BearerAuth
// @Router /results [post]
func (c *ResultController) CreateResult(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid result creation payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.resultService.CreateResult(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(result))
}

// UpdateResult overwrites the scores and term of a result
// @Summary Update result
// @Tags results
// @Accept json
// @Produce json
// @Param id path int true "Result ID"
// @Param request body dto.UpdateResultRequest true "Updated scores and term"
// @Success 200 {object} dto.APIResponse{data=dto.ResultResponse}
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 409 {object} dto.ErrorResponse "A result already exists for the new term"
// @Security BearerAuth
// @Router /results/{id} [put]
func (c *ResultController) UpdateResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid result update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.resultService.UpdateResult(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// DeleteResult removes a result
// @Summary Delete result
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Security BearerAuth
// @Router /results/{id} [delete]
func (c *ResultController) DeleteResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.resultService.DeleteResult(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Result deleted successfully"}))
}
