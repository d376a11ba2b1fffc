package routes

import (
	"editorial/internal/controllers"
	"editorial/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutes := router.Group("/article")
	articleRoutes.Use(middleware.ActorMiddleware())
	{
		articleRoutes.POST("/", articleController.SubmitArticle)
		articleRoutes.GET("/", articleController.ListArticles)
		articleRoutes.GET("/:id", articleController.GetArticleByID)
		articleRoutes.PUT("/:id", articleController.UpdateArticle)
	}
}
