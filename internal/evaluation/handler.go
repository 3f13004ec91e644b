package evaluation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /validate
// --------------------------------------------------
//

func (h *Handler) Validate() gin.HandlerFunc {
	return func(c *gin.Context) {

		var idea StartupIdea
		if err := c.ShouldBindJSON(&idea); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		// The pipeline never fails outward, so a well-formed request
		// always gets an evaluation back.
		evaluation := h.service.Evaluate(c.Request.Context(), idea)

		c.JSON(http.StatusOK, evaluation)
	}
}

//
// --------------------------------------------------
// GET /health/llm
// --------------------------------------------------
//

func (h *Handler) ProbeProvider() gin.HandlerFunc {
	return func(c *gin.Context) {

		if err := h.service.Probe(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unavailable",
				"provider": h.service.Provider(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"provider": h.service.Provider(),
		})
	}
}
