package handler

import (
	"net/http"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
	// 只套用在報名端點
	registerLimiter gin.HandlerFunc
}

// NewTicketHandler registerLimiter 為 nil 時不限制
func NewTicketHandler(service service.TicketService, registerLimiter gin.HandlerFunc) *TicketHandler {
	return &TicketHandler{service: service, registerLimiter: registerLimiter}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	register := []gin.HandlerFunc{h.Register}
	if h.registerLimiter != nil {
		register = append([]gin.HandlerFunc{h.registerLimiter}, register...)
	}

	router := r.Group("/api/v1")
	{
		router.GET("tickets", h.ListCurrent)
		router.GET("tickets/:ticket_id", h.GetByTicketID)
		router.POST("tickets", register...)
	}
}

// Register 報名並配發目前活動的票
func (h *TicketHandler) Register(c *gin.Context) {
	var registrant model.Registrant
	if err := BindJson(c, &registrant); err != nil {
		return
	}

	ticket, err := h.service.IssueForCurrent(c, registrant)
	if err != nil {
		handleError(c, err, "Register")
		return
	}
	handleSuccess(c, ticket, http.StatusCreated)
}

func (h *TicketHandler) GetByTicketID(c *gin.Context) {
	ticket, err := h.service.GetByTicketID(c, c.Param("ticket_id"))
	if err != nil {
		handleError(c, err, "GetByTicketID")
		return
	}
	handleSuccess(c, ticket, http.StatusOK)
}

func (h *TicketHandler) ListCurrent(c *gin.Context) {
	tickets, err := h.service.ListCurrent(c)
	if err != nil {
		handleError(c, err, "ListTickets")
		return
	}
	handleSuccess(c, tickets, http.StatusOK)
}
