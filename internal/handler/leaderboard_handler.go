package handler

import (
	"net/http"
	"strconv"

	"anoa.com/bskmtclub/internal/service"
	"anoa.com/bskmtclub/pkg/response"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	pointsService service.PointsService
}

func NewLeaderboardHandler(pointsService service.PointsService) *LeaderboardHandler {
	return &LeaderboardHandler{
		pointsService: pointsService,
	}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	timeframe := c.Query("timeframe") // "", "all_time" or "trailing_year"
	if timeframe != "" && timeframe != "all_time" && timeframe != "trailing_year" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeframe must be all_time or trailing_year"})
		return
	}

	entries, err := h.pointsService.GetLeaderboard(c.Request.Context(), limit, timeframe)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
