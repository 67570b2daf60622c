package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeez/internal/app/services"
	"github.com/yigit/collegeez/internal/middleware"
)

// CollegeController handles college-related operations
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// GetAllColleges returns the stored college documents
// @Summary Get all colleges
// @Description Returns every college document as stored
// @Tags colleges
// @Produce json
// @Success 200 {array} models.College
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /all [get]
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, colleges)
}

// GetCollegeRatings returns every college with its average rating
// @Summary Get colleges with ratings
// @Description Returns every college with review totals and average rating, newest first
// @Tags colleges
// @Produce json
// @Success 200 {array} dto.CollegeRatingView
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [get]
func (c *CollegeController) GetCollegeRatings(ctx *gin.Context) {
	views, err := c.collegeService.GetCollegeRatings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}

// GetCollegeByID returns one college with its average rating
// @Summary Get college by ID
// @Tags colleges
// @Produce json
// @Param collegeId path string true "College ObjectID (hex)"
// @Success 200 {object} dto.CollegeRatingView
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error, including a malformed ID"
// @Router /college/{collegeId} [get]
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	view, err := c.collegeService.GetCollegeByID(ctx.Request.Context(), ctx.Param("collegeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// GetTopColleges returns the three best rated colleges
// @Summary Get top colleges
// @Description Colleges without reviews are not ranked
// @Tags colleges
// @Produce json
// @Success 200 {array} dto.TopCollegeView
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topCollege [get]
func (c *CollegeController) GetTopColleges(ctx *gin.Context) {
	views, err := c.collegeService.GetTopColleges(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}

// GetCollegeReviews returns reviews grouped per college
// @Summary Get college reviews
// @Tags colleges
// @Produce json
// @Success 200 {array} dto.CollegeReviewsView
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [get]
func (c *CollegeController) GetCollegeReviews(ctx *gin.Context) {
	views, err := c.collegeService.GetCollegeReviews(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}

// GetResearchPapers returns the research papers of every college
// @Summary Get research papers
// @Tags colleges
// @Produce json
// @Success 200 {array} dto.ResearchPapersView
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /researchPapers [get]
func (c *CollegeController) GetResearchPapers(ctx *gin.Context) {
	views, err := c.collegeService.GetResearchPapers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, views)
}

// SearchColleges searches colleges by name
// @Summary Search colleges
// @Description Case-insensitive substring match on the college name. An empty name matches every college.
// @Tags colleges
// @Produce json
// @Param name query string false "Part of the college name"
// @Success 200 {array} models.College
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search [get]
func (c *CollegeController) SearchColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.SearchColleges(ctx.Request.Context(), ctx.Query("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, colleges)
}
