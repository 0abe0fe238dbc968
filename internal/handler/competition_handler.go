package handler

import (
	"net/http"

	"lucky-draw-backend/internal/model"
	"lucky-draw-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type CompetitionHandler struct {
	service       service.CompetitionService
	ticketService service.TicketService
}

func NewCompetitionHandler(service service.CompetitionService, ticketService service.TicketService) *CompetitionHandler {
	return &CompetitionHandler{service: service, ticketService: ticketService}
}

func (h *CompetitionHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("competitions", h.List)
		router.GET("competitions/current", h.Current)
		router.GET("competitions/:id", h.Detail)
		router.GET("competitions/:id/winners", h.Winners)
		router.GET("competitions/:id/pool", h.PoolStats)
		router.GET("competitions/:id/slots", h.Slots)
		router.POST("competitions", h.Create)
		router.POST("competitions/end", h.End)
	}
}

func (h *CompetitionHandler) Create(c *gin.Context) {
	var req model.CreateCompetitionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	params, err := req.ToParams()
	if err != nil {
		handleError(c, err, "CreateCompetition")
		return
	}

	created, err := h.service.Create(c, params)
	if err != nil {
		handleError(c, err, "CreateCompetition")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *CompetitionHandler) End(c *gin.Context) {
	ended, err := h.service.End(c)
	if err != nil {
		handleError(c, err, "EndCompetition")
		return
	}
	handleSuccess(c, ended, http.StatusOK)
}

func (h *CompetitionHandler) Current(c *gin.Context) {
	competition, err := h.service.Current(c)
	if err != nil {
		handleError(c, err, "CurrentCompetition")
		return
	}
	handleSuccess(c, competition, http.StatusOK)
}

func (h *CompetitionHandler) List(c *gin.Context) {
	competitions, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListCompetitions")
		return
	}
	handleSuccess(c, competitions, http.StatusOK)
}

func (h *CompetitionHandler) Detail(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	detail, err := h.service.Detail(c, id)
	if err != nil {
		handleError(c, err, "CompetitionDetail")
		return
	}
	handleSuccess(c, detail, http.StatusOK)
}

func (h *CompetitionHandler) Winners(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	winners, err := h.ticketService.Winners(c, id)
	if err != nil {
		handleError(c, err, "Winners")
		return
	}
	handleSuccess(c, winners, http.StatusOK)
}

func (h *CompetitionHandler) PoolStats(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	stats, err := h.service.PoolStats(c, id)
	if err != nil {
		handleError(c, err, "PoolStats")
		return
	}
	handleSuccess(c, stats, http.StatusOK)
}

// Slots 後台查看票池，可用 assigned / limit / offset 篩選
func (h *CompetitionHandler) Slots(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var query model.ListSlotsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	page, err := h.service.Slots(c, id, model.SlotFilter{
		Assigned: query.Assigned,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		handleError(c, err, "ListSlots")
		return
	}
	handleSuccess(c, page, http.StatusOK)
}
