package router

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// New 构建基础引擎: panic 恢复 + 结构化访问日志.
// 业务路由不在这里挂载, 各模块通过 Register/Mount 装配.
func New(logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog(logger))
	// TODO: 鉴权、CORS 中间件
	return r
}

// accessLog 用 slog 记录每个请求, 替代 gin.Logger 的平文本输出.
func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("cost", time.Since(start)),
			slog.String("client", c.ClientIP()),
		)
	}
}
