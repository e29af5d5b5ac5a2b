package app

import (
	"paw_match_backend/docs"
	"paw_match_backend/internal/config"
	"paw_match_backend/internal/middleware"

	"paw_match_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/v1")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/v1")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		// 资料
		authGroup.POST("/profiles", c.profile.Upsert)
		authGroup.GET("/profiles/me", c.profile.GetMine)
		authGroup.GET("/profiles/:id", c.profile.Get)

		// 狗
		authGroup.POST("/dogs", c.dog.Create)
		authGroup.GET("/dogs", c.dog.ListMine)
		authGroup.GET("/dogs/:id", c.dog.Get)
		authGroup.PATCH("/dogs/:id", c.dog.Update)
		authGroup.DELETE("/dogs/:id", c.dog.Delete)

		// 匹配
		authGroup.POST("/matches", c.match.Request)
		authGroup.GET("/matches", c.match.List)
		authGroup.PATCH("/matches/:id", c.match.UpdateStatus)

		// 消息
		authGroup.POST("/messages", c.message.Send)
		authGroup.GET("/messages/match/:matchId", c.message.Fetch)
		authGroup.POST("/messages/mark-read", c.message.MarkRead)
		authGroup.GET("/messages/conversations", c.message.Conversations)

		// 约玩
		authGroup.POST("/playdates", c.playdate.Create)
		authGroup.GET("/playdates", c.playdate.List)
		authGroup.GET("/playdates/:id", c.playdate.Get)
		authGroup.PATCH("/playdates/:id", c.playdate.Update)

		// 评价
		authGroup.POST("/ratings", c.rating.Create)
		authGroup.GET("/ratings/dog/:dogId", c.rating.ListForDog)
		authGroup.PATCH("/ratings/:id", c.rating.Update)
		authGroup.DELETE("/ratings/:id", c.rating.Delete)
	}
}
