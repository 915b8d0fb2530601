package controller

import (
	"errors"
	"net/http"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// SuccessResponse 统一成功响应，key 为数据字段名
func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		"code":  "SUCCESS",
		key:     data,
		"count": count,
	})
}

// DomainErrorResponse 将领域错误映射为HTTP状态码
func DomainErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrInvalidQuestionIndex):
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_QUESTION_INDEX", err.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_TOKEN", err.Error())
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
	}
}
