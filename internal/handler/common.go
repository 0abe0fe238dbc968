package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "lucky-draw-backend/pkg/app_errors"
	"lucky-draw-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// idUri 路徑上的整數 id
type idUri struct {
	ID int `uri:"id" binding:"required,gt=0"`
}

func bindID(c *gin.Context) (int, bool) {
	var uri idUri
	if err := BindUri(c, &uri); err != nil {
		return 0, false
	}
	return uri.ID, true
}

// handleError 將 service 錯誤轉成 HTTP 狀態碼，非 500 的錯誤只記 warn
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validationErr *apperrors.ValidationError
	var duplicateErr *apperrors.DuplicateRegistrantError

	switch {
	case errors.As(err, &validationErr):
		log.Warn("Validation failed", zap.String("field", validationErr.Field))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Error(),
			"field": validationErr.Field,
		})
	case errors.As(err, &duplicateErr):
		log.Warn("Duplicate registrant", zap.String("field", duplicateErr.Field))
		c.JSON(http.StatusConflict, gin.H{
			"error": duplicateErr.Error(),
			"field": duplicateErr.Field,
		})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrActiveCompetitionExists):
		log.Warn("Active competition exists")
		c.JSON(http.StatusConflict, gin.H{"error": "An active competition already exists, end it first"})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		log.Warn("Invalid status transition")
		c.JSON(http.StatusConflict, gin.H{"error": "Competition is not active"})
	case errors.Is(err, apperrors.ErrNoActiveCompetition):
		log.Warn("No active competition")
		c.JSON(http.StatusNotFound, gin.H{"error": "No active competition"})
	case errors.Is(err, apperrors.ErrCompetitionNotFound):
		log.Warn("Competition not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ticket not found",
			"field": "ticket_id",
		})
	case errors.Is(err, apperrors.ErrPrizeTierNotFound):
		log.Warn("Prize tier not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Prize tier not found"})
	case errors.Is(err, apperrors.ErrPoolExhausted):
		log.Warn("Ticket pool exhausted")
		c.Header("Retry-After", strconv.Itoa(poolRetryAfterSeconds))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Tickets are being replenished, please retry shortly"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// poolRetryAfterSeconds 補票通常在幾秒內完成
const poolRetryAfterSeconds = 5

func handleSuccess(c *gin.Context, data interface{}, statusCode int) {
	if data != nil {
		c.JSON(statusCode, data)
	} else {
		c.Status(statusCode)
	}
}
