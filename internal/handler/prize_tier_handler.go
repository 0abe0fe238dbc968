package handler

import (
	"net/http"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PrizeTierHandler struct {
	service service.PrizeTierService
}

func NewPrizeTierHandler(service service.PrizeTierService) *PrizeTierHandler {
	return &PrizeTierHandler{service: service}
}

func (h *PrizeTierHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("prize-tiers", h.List)
		router.POST("prize-tiers", h.Save)
		router.PUT("prize-tiers/:id", h.Update)
		router.DELETE("prize-tiers/:id", h.Delete)
	}
}

func (h *PrizeTierHandler) List(c *gin.Context) {
	tiers, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListPrizeTiers")
		return
	}
	handleSuccess(c, tiers, http.StatusOK)
}

// Save 建立或覆蓋同一等級與票種的獎品
func (h *PrizeTierHandler) Save(c *gin.Context) {
	var req model.SavePrizeTierRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tier, err := h.service.Save(c, req)
	if err != nil {
		handleError(c, err, "SavePrizeTier")
		return
	}
	handleSuccess(c, tier, http.StatusOK)
}

func (h *PrizeTierHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req model.UpdatePrizeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tier, err := h.service.Update(c, id, req)
	if err != nil {
		handleError(c, err, "UpdatePrizeTier")
		return
	}
	handleSuccess(c, tier, http.StatusOK)
}

func (h *PrizeTierHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeletePrizeTier")
		return
	}
	handleSuccess(c, nil, http.StatusNoContent)
}
