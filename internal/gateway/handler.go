package gateway

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizmatters/groundcite-gateway/internal/analysis"
	"github.com/bizmatters/groundcite-gateway/internal/models"
	"github.com/bizmatters/groundcite-gateway/internal/orchestration"
	"github.com/bizmatters/groundcite-gateway/internal/store"
)

// ServiceInfo describes the running deployment in health responses
type ServiceInfo struct {
	Version     string
	Environment string
}

// Handler handles HTTP requests for the gateway layer
type Handler struct {
	service *orchestration.Service
	store   store.ConfigurationStore
	info    ServiceInfo
}

// NewHandler creates a new gateway handler
func NewHandler(service *orchestration.Service, configStore store.ConfigurationStore, info ServiceInfo) *Handler {
	return &Handler{
		service: service,
		store:   configStore,
		info:    info,
	}
}

// Analyze godoc
// @Summary Analyze a query
// @Description Validate the request, run it through the GroundCite engine and return the result envelope
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.RequestBody true "Analysis request"
// @Success 200 {object} models.ResponseEnvelope
// @Failure 400 {object} models.ResponseEnvelope
// @Failure 500 {object} models.ResponseEnvelope
// @Router /analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		// Treated as an empty body by the decoder
		raw = nil
	}

	status, envelope := h.service.Handle(c.Request.Context(), raw)

	c.Header(orchestration.CorrelationHeader, envelope.CorrelationID)
	c.JSON(status, envelope)
}

// ConfigurationList is the response of GET /configs
type ConfigurationList struct {
	Configurations []*store.StoredConfiguration `json:"configurations"`
	Total          int                          `json:"total"`
}

// CreateConfigurationRequest saves the settings a request would produce
type CreateConfigurationRequest struct {
	Name    string              `json:"name"`
	Request *models.RequestBody `json:"request" binding:"required"`
}

// ListConfigurations godoc
// @Summary List saved configurations
// @Tags configurations
// @Produce json
// @Success 200 {object} ConfigurationList
// @Failure 500 {object} models.ErrorResponse
// @Router /configs [get]
func (h *Handler) ListConfigurations(c *gin.Context) {
	configs, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf(`{"level":"error","message":"Error getting configurations","error":%q}`, err.Error())
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Failed to get configurations: %v", err),
			Code:  models.ErrCodeStoreUnavailable,
		})
		return
	}

	c.JSON(http.StatusOK, ConfigurationList{
		Configurations: configs,
		Total:          len(configs),
	})
}

// CreateConfiguration godoc
// @Summary Save a configuration
// @Description Validate an analysis request and store the settings it assembles. Provider keys are masked.
// @Tags configurations
// @Accept json
// @Produce json
// @Param request body CreateConfigurationRequest true "Configuration"
// @Success 201 {object} map[string]store.StoredConfiguration
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /configs [post]
func (h *Handler) CreateConfiguration(c *gin.Context) {
	var req CreateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request",
			Code:  models.ErrCodeInvalidRequest,
			Details: map[string]string{
				"reason": err.Error(),
			},
		})
		return
	}

	if valid, message := analysis.Validate(req.Request); !valid {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: message,
			Code:  models.ErrCodeValidationFailed,
		})
		return
	}

	cfg := store.NewConfiguration(req.Name, analysis.AssembleSettings(req.Request))
	if err := h.store.Put(c.Request.Context(), cfg); err != nil {
		log.Printf(`{"level":"error","message":"Failed to save configuration","error":%q,"configuration_id":"%s"}`, err.Error(), cfg.ID)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprintf("Failed to save configuration: %v", err),
			Code:  models.ErrCodeStoreUnavailable,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"configuration": cfg})
}

// GetConfiguration godoc
// @Summary Get a saved configuration
// @Tags configurations
// @Produce json
// @Param id path string true "Configuration ID"
// @Success 200 {object} map[string]store.StoredConfiguration
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /configs/{id} [get]
func (h *Handler) GetConfiguration(c *gin.Context) {
	id := c.Param("id")

	cfg, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configuration": cfg})
}

// DeleteConfiguration godoc
// @Summary Delete a saved configuration
// @Tags configurations
// @Produce json
// @Param id path string true "Configuration ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /configs/{id} [delete]
func (h *Handler) DeleteConfiguration(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.storeError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) storeError(c *gin.Context, id string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Configuration not found",
			Code:  models.ErrCodeNotFound,
		})
		return
	}

	log.Printf(`{"level":"error","message":"Configuration store error","error":%q,"configuration_id":"%s"}`, err.Error(), id)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: fmt.Sprintf("Failed to access configuration: %v", err),
		Code:  models.ErrCodeStoreUnavailable,
	})
}
