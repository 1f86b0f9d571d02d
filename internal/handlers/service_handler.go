package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yrfilms/studio-backend/internal/cache"
	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/httpresp"
	"github.com/yrfilms/studio-backend/internal/models"
)

const serviceCachePrefix = "services:"

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewServiceHandler(db *gorm.DB, cache *cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cache}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Duration    string   `json:"duration" binding:"required"`
	Includes    []string `json:"includes"`
	Popular     bool     `json:"popular"`
	Enabled     *bool    `json:"enabled"`
}

type UpdateServiceRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" binding:"omitempty,gte=0"`
	Duration    *string   `json:"duration,omitempty"`
	Includes    *[]string `json:"includes,omitempty"`
	Popular     *bool     `json:"popular,omitempty"`
	Enabled     *bool     `json:"enabled,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	enabledStr := strings.TrimSpace(c.Query("enabled"))

	cacheKey := serviceCachePrefix + "list:enabled=" + enabledStr
	if body, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
		writeCached(c, body)
		return
	}

	q := h.db.Model(&models.Service{})
	if enabledStr == "true" {
		q = q.Where("enabled = ?", true)
	} else if enabledStr == "false" {
		q = q.Where("enabled = ?", false)
	}

	var services []models.Service
	if err := q.Order("popular DESC, created_at DESC").Find(&services).Error; err != nil {
		httperr.Internal(c, "Error fetching services")
		return
	}

	h.respondList(c, cacheKey, services)
}

func (h *ServiceHandler) Enabled(c *gin.Context) {
	cacheKey := serviceCachePrefix + "enabled"
	if body, ok := h.cache.Get(c.Request.Context(), cacheKey); ok {
		writeCached(c, body)
		return
	}

	var services []models.Service
	if err := h.db.
		Where("enabled = ?", true).
		Order("popular DESC, created_at DESC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "Error fetching services")
		return
	}

	h.respondList(c, cacheKey, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Service not found")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		httperr.Internal(c, "Error fetching service")
		return
	}

	httpresp.OK(c, gin.H{"service": service})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Name, description, a non-negative price and duration are required")
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Duration:    req.Duration,
		Includes:    datatypes.NewJSONSlice(req.Includes),
		Popular:     req.Popular,
		Enabled:     enabled,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "Error creating service")
		return
	}

	h.cache.Invalidate(c.Request.Context(), serviceCachePrefix)
	httpresp.Created(c, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Service not found")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		httperr.Internal(c, "Error fetching service")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid service payload")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Includes != nil {
		service.Includes = datatypes.NewJSONSlice(*req.Includes)
	}
	if req.Popular != nil {
		service.Popular = *req.Popular
	}
	if req.Enabled != nil {
		service.Enabled = *req.Enabled
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "Error updating service")
		return
	}

	h.cache.Invalidate(c.Request.Context(), serviceCachePrefix)
	httpresp.OK(c, gin.H{"service": service})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Service not found")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		httperr.Internal(c, "Error fetching service")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "Error deleting service")
		return
	}

	h.cache.Invalidate(c.Request.Context(), serviceCachePrefix)
	httpresp.OK(c, gin.H{"message": "Service deleted successfully"})
}

func (h *ServiceHandler) respondList(c *gin.Context, cacheKey string, services []models.Service) {
	body, err := marshalList("services", services)
	if err != nil {
		httperr.Internal(c, "Error fetching services")
		return
	}
	h.cache.Set(c.Request.Context(), cacheKey, body)
	writeCached(c, body)
}
