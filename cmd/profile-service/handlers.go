package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/partsdirect/commerce/internal/profile"
)

// profileDataRequest is the aggregation request payload.
// swagger:model profileDataRequest
type profileDataRequest struct {
	UserID string `json:"userId" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
}

// @Summary      Aggregate a customer's commerce profile data
// @Description  Returns the user's addresses, stored payment methods and up to 10 most recent orders. Collections the store has no rows for come back as empty lists.
// @Accept       json
// @Produce      json
// @Param        request body profileDataRequest true "user to aggregate"
// @Success      200 {object} profile.Data
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /profile-data [post]
func getProfileDataHandler(agg *profile.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileDataRequest
		// A malformed body and a missing userId get the same client error:
		// there is nothing to aggregate either way.
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
			return
		}

		data, err := agg.Fetch(c.Request.Context(), req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}
