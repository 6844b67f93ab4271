package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

const (
	serviceName        = "GroundCite Query Analysis"
	serviceDescription = "GroundCite Query Analysis API"
	dependencyTimeout  = 5 * time.Second
)

// newSettings is swapped in tests to simulate a broken settings type
var newSettings = models.NewSettings

// HealthResponse reports process and dependency readiness
type HealthResponse struct {
	Status          string `json:"status"`
	Timestamp       string `json:"timestamp"`
	Service         string `json:"service"`
	Version         string `json:"version"`
	GroundCiteReady bool   `json:"groundcite_ready"`
	EngineReachable bool   `json:"engine_reachable"`
	StoreReady      bool   `json:"store_ready"`
	Environment     string `json:"environment"`
}

// Endpoints lists the public routes
type Endpoints struct {
	Analyze        string `json:"analyze"`
	Configurations string `json:"configurations"`
	Health         string `json:"health"`
	Stream         string `json:"stream"`
}

// RootResponse describes the API
type RootResponse struct {
	Status          string    `json:"status"`
	Timestamp       string    `json:"timestamp"`
	Version         string    `json:"version"`
	GroundCiteReady bool      `json:"groundcite_ready"`
	Endpoints       Endpoints `json:"endpoints"`
	Description     string    `json:"description"`
}

// Health godoc
// @Summary Health check
// @Description Reports readiness of the settings type, the engine and the configuration store. Degraded dependencies do not fail the check.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	defer recoverAs(c, "Health check failed")

	ctx, cancel := context.WithTimeout(c.Request.Context(), dependencyTimeout)
	defer cancel()

	storeReady := true
	if err := h.store.Ping(ctx); err != nil {
		log.Printf(`{"level":"warn","message":"Configuration store not ready","error":%q}`, err.Error())
		storeReady = false
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:          "healthy",
		Timestamp:       timestamp(),
		Service:         serviceName,
		Version:         h.info.Version,
		GroundCiteReady: groundCiteReady(),
		EngineReachable: h.service.Engine().IsHealthy(ctx),
		StoreReady:      storeReady,
		Environment:     h.info.Environment,
	})
}

// Root godoc
// @Summary API information
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Failure 500 {object} models.ErrorResponse
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	defer recoverAs(c, "Root endpoint failed")

	c.JSON(http.StatusOK, RootResponse{
		Status:          "healthy",
		Timestamp:       timestamp(),
		Version:         h.info.Version,
		GroundCiteReady: groundCiteReady(),
		Endpoints: Endpoints{
			Analyze:        "/analyze",
			Configurations: "/configs",
			Health:         "/health",
			Stream:         "/ws/analyze",
		},
		Description: serviceDescription,
	})
}

// groundCiteReady reports whether default settings can be constructed
func groundCiteReady() (ready bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf(`{"level":"warn","message":"GroundCite not ready","error":"%v"}`, r)
			ready = false
		}
	}()

	return newSettings() != nil
}

func recoverAs(c *gin.Context, prefix string) {
	if r := recover(); r != nil {
		message := fmt.Sprintf("%s: %v", prefix, r)
		log.Printf(`{"level":"error","message":%q}`, message)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: message,
			Code:  models.ErrCodeInternalError,
		})
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
