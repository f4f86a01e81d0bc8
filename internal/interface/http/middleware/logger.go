package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger 请求日志中间件
// 设计说明:
// 1. 记录每个请求的基本信息(方法、路径、耗时、状态码)
// 2. 生成唯一的请求ID并通过X-Request-ID响应头返回,便于排查问题
// 3. 超过3秒的请求额外输出慢请求警告
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		clientIP := c.ClientIP()

		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}

		statusColor := getStatusColor(c.Writer.Status())
		methodColor := getMethodColor(c.Request.Method)
		resetColor := "\033[0m"

		fmt.Printf(
			statusColor+"[GIN] %s | %3d | %13v | %15s | %-7s %s"+resetColor+" %s\n",
			time.Now().Format("2006/01/02 - 15:04:05"),
			c.Writer.Status(),
			latency,
			clientIP,
			methodColor+c.Request.Method+resetColor,
			c.Request.URL.Path,
			errMsg,
		)

		if latency > 3*time.Second {
			fmt.Printf("[WARN] Slow request: %s %s took %v\n",
				c.Request.Method,
				c.Request.URL.Path,
				latency,
			)
		}
	}
}

// getStatusColor 根据HTTP状态码返回颜色
func getStatusColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "\033[32m" // 绿色(成功)
	case statusCode >= 300 && statusCode < 400:
		return "\033[36m" // 青色(重定向)
	case statusCode >= 400 && statusCode < 500:
		return "\033[33m" // 黄色(客户端错误)
	default:
		return "\033[31m" // 红色(服务器错误)
	}
}

// getMethodColor 根据HTTP方法返回颜色
func getMethodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m"
	case "POST":
		return "\033[36m"
	case "PUT":
		return "\033[33m"
	case "DELETE":
		return "\033[31m"
	default:
		return "\033[0m"
	}
}
