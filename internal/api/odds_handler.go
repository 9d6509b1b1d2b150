package api

import (
	"net/http"

	"matchodds/internal/dto"
	"matchodds/internal/repository"
	"matchodds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MatchOddsHandler exposes the odds sub-resource endpoints under a match.
type MatchOddsHandler struct {
	oddsService *service.MatchOddsService
	logger      *logrus.Logger
}

func NewMatchOddsHandler(db *gorm.DB, logger *logrus.Logger) *MatchOddsHandler {
	matchRepo := repository.NewMatchRepository(db)
	oddsRepo := repository.NewMatchOddsRepository(db)
	return &MatchOddsHandler{
		oddsService: service.NewMatchOddsService(matchRepo, oddsRepo, logger),
		logger:      logger,
	}
}

// Create handles POST /api/matches/:id/odds
func (h *MatchOddsHandler) Create(c *gin.Context) {
	matchID, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	var req dto.MatchOddsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, h.logger, err)
		return
	}
	resp, err := h.oddsService.Create(c.Request.Context(), matchID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateBulk handles POST /api/matches/:id/odds/bulk
func (h *MatchOddsHandler) CreateBulk(c *gin.Context) {
	matchID, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	var reqs []dto.MatchOddsRequest
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
	resp, err := h.oddsService.CreateBulk(c.Request.Context(), matchID, reqs)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/matches/:id/odds/:oddId
func (h *MatchOddsHandler) Get(c *gin.Context) {
	matchID, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	oddID, ok := pathID(c, h.logger, "oddId")
	if !ok {
		return
	}
	resp, err := h.oddsService.Get(c.Request.Context(), matchID, oddID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /api/matches/:id/odds — flat by default, paginated when
// page or page_size is present.
func (h *MatchOddsHandler) List(c *gin.Context) {
	matchID, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	if c.Query("page") == "" && c.Query("page_size") == "" {
		resp, err := h.oddsService.ListByMatch(c.Request.Context(), matchID)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)
	resp, err := h.oddsService.ListByMatchPage(c.Request.Context(), matchID, page, pageSize, c.Query("sort"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/matches/:id/odds/:oddId
func (h *MatchOddsHandler) Update(c *gin.Context) {
	matchID, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	oddID, ok := pathID(c, h.logger, "oddId")
	if !ok {
		return
	}
	var req dto.MatchOddsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, h.logger, err)
		return
	}
	resp, err := h.oddsService.Update(c.Request.Context(), matchID, oddID, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/matches/:id/odds/:oddId
func (h *MatchOddsHandler) Delete(c *gin.Context) {
	matchID, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	oddID, ok := pathID(c, h.logger, "oddId")
	if !ok {
		return
	}
	if err := h.oddsService.Delete(c.Request.Context(), matchID, oddID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/matches/:id/odds
func (h *MatchOddsHandler) DeleteAll(c *gin.Context) {
	matchID, ok := pathID(c, h.logger, "id")
	if !ok {
		return
	}
	if err := h.oddsService.DeleteAll(c.Request.Context(), matchID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
