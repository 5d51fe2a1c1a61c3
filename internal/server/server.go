// Package server exposes the gateway over HTTP.
//
// Contract carried over from the original deployment: the three core
// endpoints always answer HTTP 200 and signal failure through an
// error/status field inside the body. Callers depend on that, so the
// handlers here never translate a gateway failure into a status code.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/acastellanos/tradegate/internal/advisor"
	"github.com/acastellanos/tradegate/internal/ports"
)

// Server wires the gateway components behind the inbound routes.
type Server struct {
	markets ports.MarketProvider
	orders  ports.OrderExecutor
	advisor *advisor.Orchestrator
}

// New creates the server.
func New(markets ports.MarketProvider, orders ports.OrderExecutor, orch *advisor.Orchestrator) *Server {
	return &Server{markets: markets, orders: orders, advisor: orch}
}

// Router builds the gin handler tree.
func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), cors())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/feed", s.handleFeed)
	api.POST("/recommendations", s.handleRecommendations)
	api.POST("/execute", s.handleExecute)
	api.GET("/orders/:id", s.handleGetOrder)
	api.DELETE("/orders/:id", s.handleCancelOrder)

	return r
}

// cors mirrors the permissive policy of the original dashboard proxy.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
