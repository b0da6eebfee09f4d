package router

import (
	"strings"
	"time"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	requestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 64
)

// RequestIDMiddleware 沿用调用方传入的合法请求 ID，否则生成新的 UUID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// validRequestID 只接受字母数字与 - _ .，避免把任意输入写进日志与响应头
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

func requestIDOf(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRequestID)
}

// AccessLogMiddleware 访问日志。HTTP 状态恒为 200，日志级别按信封中的业务码决定
func AccessLogMiddleware(log *zap.Logger, skipPaths ...string) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, ok := skip[route]; ok {
			return
		}
		code, written := response.StatusCodeOf(c)
		fields := []zap.Field{
			zap.String("request_id", requestIDOf(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("http_status", c.Writer.Status()),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			zap.String("client_ip", c.ClientIP()),
		}
		if written {
			fields = append(fields, zap.Int("status_code", code))
		}
		if uid, ok := c.Get(constants.ContextKeyUserID); ok {
			fields = append(fields, zap.Any("user_id", uid))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if ce := log.Check(accessLogLevel(c, code), "request"); ce != nil {
			ce.Write(fields...)
		}
	}
}

func accessLogLevel(c *gin.Context, code int) zapcore.Level {
	switch {
	case code >= response.CodeInternal, len(c.Errors) > 0, c.Writer.Status() >= 500:
		return zapcore.ErrorLevel
	case code >= response.CodeBadRequest, c.Writer.Status() >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
