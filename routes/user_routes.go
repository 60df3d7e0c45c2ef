package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/speedywheel/rental/controllers/user_controllers"
	middleware "github.com/speedywheel/rental/middlewares"
)

func RegisterUserRoutes(router *gin.Engine, db *pgxpool.Pool) {
	userController := user_controllers.NewUserController(db)

	router.POST("/jwt", middleware.NewRateLimiter("30-1m", "jwt"), userController.IssueToken)
	router.POST("/users", middleware.CombinedRateLimiter("users", "10-2m", "30-60m"), userController.Register)
}
