package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acastellanos/tradegate/internal/advisor"
	"github.com/acastellanos/tradegate/internal/domain"
)

// handleFeed returns the normalized market listing. Always 200: upstream
// failures surface as source=error with sample data.
func (s *Server) handleFeed(c *gin.Context) {
	feed := s.markets.FetchMarkets(c.Request.Context())
	mtxFeed.WithLabelValues(string(feed.Source)).Inc()
	c.JSON(http.StatusOK, feed)
}

type recommendationsRequest struct {
	Strategy string `json:"strategy"`
}

// handleRecommendations runs the dual-source recommendation engine.
// The mode query parameter selects which branch's content is surfaced
// (agent is the default).
func (s *Server) handleRecommendations(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mtxAdvice.WithLabelValues(string(domain.SourceError)).Inc()
		c.JSON(http.StatusOK, gin.H{"source": domain.SourceError, "error": "invalid request body"})
		return
	}

	mode := c.DefaultQuery("mode", advisor.ModeAgent)

	advice, err := s.advisor.Advise(c.Request.Context(), req.Strategy, mode)
	if err != nil {
		// Only validation reaches here; everything downstream is
		// reconciled into the advice itself.
		if !errors.Is(err, advisor.ErrValidation) {
			slog.Error("advise failed", "err", err)
		}
		mtxAdvice.WithLabelValues(string(domain.SourceError)).Inc()
		c.JSON(http.StatusOK, gin.H{
			"source":   domain.SourceError,
			"strategy": req.Strategy,
			"error":    err.Error(),
		})
		return
	}

	mtxAdvice.WithLabelValues(string(advice.Source)).Inc()
	c.JSON(http.StatusOK, advice)
}

// handleExecute submits one trade order. Always 200; the tri-state outcome
// lives in the body's status field.
func (s *Server) handleExecute(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		mtxOrders.WithLabelValues(string(domain.OutcomeError)).Inc()
		c.JSON(http.StatusOK, domain.SubmitFailed("invalid request body"))
		return
	}
	if err := order.Normalize(); err != nil {
		mtxOrders.WithLabelValues(string(domain.OutcomeError)).Inc()
		c.JSON(http.StatusOK, domain.SubmitFailed(err.Error()))
		return
	}

	outcome := s.orders.SubmitOrder(c.Request.Context(), order)
	mtxOrders.WithLabelValues(string(outcome.Status)).Inc()
	c.JSON(http.StatusOK, outcome)
}

// handleGetOrder proxies an order-state lookup. Management endpoints use
// real status codes — the 200-always contract covers only the dashboard
// endpoints above.
func (s *Server) handleGetOrder(c *gin.Context) {
	state, err := s.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// handleCancelOrder cancels a resting order.
func (s *Server) handleCancelOrder(c *gin.Context) {
	if err := s.orders.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
