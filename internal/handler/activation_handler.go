package handler

import (
	"net/http"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivationHandler struct {
	service service.ActivationService
}

func NewActivationHandler(service service.ActivationService) *ActivationHandler {
	return &ActivationHandler{service: service}
}

func (h *ActivationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("activations", h.ListCurrent)
		router.POST("activations", h.Submit)
	}
}

func (h *ActivationHandler) Submit(c *gin.Context) {
	var req model.SubmitActivationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	activation, err := h.service.Submit(c, req)
	if err != nil {
		handleError(c, err, "SubmitActivation")
		return
	}
	handleSuccess(c, activation, http.StatusCreated)
}

func (h *ActivationHandler) ListCurrent(c *gin.Context) {
	activations, err := h.service.ListCurrent(c)
	if err != nil {
		handleError(c, err, "ListActivations")
		return
	}
	handleSuccess(c, activations, http.StatusOK)
}
