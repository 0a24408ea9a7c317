package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/game-journal-api/internal/constants"
)

// GetLimitParam reads the limit query parameter. Missing or non-numeric values
// fall back to the default; others are clamped to [1, MaxRecommendationLimit].
func GetLimitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return constants.DefaultRecommendationLimit
	}

	if limit < 1 {
		limit = 1
	}
	if limit > constants.MaxRecommendationLimit {
		limit = constants.MaxRecommendationLimit
	}
	return limit
}
