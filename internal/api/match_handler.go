package api

import (
	"net/http"
	"strconv"

	"matchodds/internal/dto"
	"matchodds/internal/repository"
	"matchodds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MatchHandler exposes the match aggregate CRUD endpoints.
type MatchHandler struct {
	matchService *service.MatchService
	logger       *logrus.Logger
}

func NewMatchHandler(db *gorm.DB, logger *logrus.Logger) *MatchHandler {
	repo := repository.NewMatchRepository(db)
	return &MatchHandler{
		matchService: service.NewMatchService(repo, logger),
		logger:       logger,
	}
}

// Create handles POST /api/matches
func (h *MatchHandler) Create(c *gin.Context) {
	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, h.logger, err)
		return
	}
	resp, err := h.matchService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateBulk handles POST /api/matches/bulk
func (h *MatchHandler) CreateBulk(c *gin.Context) {
	var reqs []dto.MatchRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			writeError(c, h.logger, err)
			return
		}
	}
	resp, err := h.matchService.CreateBulk(c.Request.Context(), reqs)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/matches/:id (odds always included)
func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	resp, err := h.matchService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /api/matches?includeOdds=false&page=1&page_size=20&sort=matchDate,desc
func (h *MatchHandler) List(c *gin.Context) {
	includeOdds, _ := strconv.ParseBool(c.DefaultQuery("includeOdds", "false"))
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)
	sort := c.Query("sort")

	resp, err := h.matchService.ListPage(c.Request.Context(), includeOdds, page, pageSize, sort)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/matches/:id
func (h *MatchHandler) Update(c *gin.Context) {
	id, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, h.logger, err)
		return
	}
	resp, err := h.matchService.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/matches/:id
func (h *MatchHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	if err := h.matchService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
