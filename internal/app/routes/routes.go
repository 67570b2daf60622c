package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/collegeez/internal/app/controllers"
)

// SetupRouter configures all application routes.
// Paths are kept flat for compatibility with existing clients.
func SetupRouter(
	router *gin.Engine,
	collegeController *controllers.CollegeController,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
) {
	// --- Liveness and readiness ---
	router.GET("/", healthController.Root)
	router.GET("/health", healthController.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	SetupSwagger(router)

	// --- College views ---
	router.GET("/all", collegeController.GetAllColleges)
	router.GET("/colleges", collegeController.GetCollegeRatings)
	router.GET("/college/:collegeId", collegeController.GetCollegeByID)
	router.GET("/topCollege", collegeController.GetTopColleges)
	router.GET("/reviews", collegeController.GetCollegeReviews)
	router.GET("/researchPapers", collegeController.GetResearchPapers)
	router.GET("/search", collegeController.SearchColleges)

	// --- Students ---
	router.GET("/students/:email", studentController.GetStudentByEmail)
	router.POST("/updateUser", studentController.RegisterStudent)
}
