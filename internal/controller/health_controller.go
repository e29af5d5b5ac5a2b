package controller

import (
	"context"
	"net/http"
	"time"

	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// @Summary 健康检查
// @Description 检查服务与依赖状态
// @Tags 系统
// @Produce json
// @Success 200 {object} object
// @Router /v1/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{"database": "up", "redis": "up"}

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		components["database"] = "down"
	}

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if c.Redis == nil || c.Redis.Ping(pingCtx).Err() != nil {
		components["redis"] = "down"
	}

	if components["database"] == "down" {
		util.Error(ctx, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "components": components})
}
