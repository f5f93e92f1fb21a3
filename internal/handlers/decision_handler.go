package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Rishab260/loan-app-poc/internal/models"
	"github.com/gin-gonic/gin"
)

type DecisionService interface {
	Decide(ctx context.Context, loanID, status string) error
}

// DecisionHandler exposes manual operator overrides next to the automated
// policy path.
type DecisionHandler struct {
	Service DecisionService
}

func NewDecisionHandler(s DecisionService) *DecisionHandler {
	return &DecisionHandler{Service: s}
}

// POST /approve/:id
func (h *DecisionHandler) Approve(c *gin.Context) {
	h.decide(c, models.StatusApproved)
}

// POST /deny/:id
func (h *DecisionHandler) Deny(c *gin.Context) {
	h.decide(c, models.StatusDenied)
}

func (h *DecisionHandler) decide(c *gin.Context, status string) {
	id := c.Param("id")
	if err := h.Service.Decide(c.Request.Context(), id, status); err != nil {
		if errors.Is(err, models.ErrInvalidOption) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}
