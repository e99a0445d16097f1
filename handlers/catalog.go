package handlers

import (
	"errors"
	"net/http"

	catalogRepo "fobworks/database/repository/catalog"
	"fobworks/models"
	"fobworks/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the service catalog: a public listing plus the
// admin-only editing endpoints.
type CatalogHandler struct {
	CatalogSvc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc}
}

// ListServicesHandler handles GET /api/services (active entries only).
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogSvc.ListPublic()
	if err != nil {
		zap.L().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// AdminListServicesHandler handles GET /api/admin/services (all entries).
func (h *CatalogHandler) AdminListServicesHandler(c *gin.Context) {
	services, err := h.CatalogSvc.ListAll()
	if err != nil {
		zap.L().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler handles POST /api/admin/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var in models.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	svc, err := h.CatalogSvc.Create(in)
	if err != nil {
		zap.L().Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/admin/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var in models.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	svc, err := h.CatalogSvc.Update(c.Param("id"), in)
	if errors.Is(err, catalogRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	if err != nil {
		zap.L().Error("Failed to update service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	err := h.CatalogSvc.Delete(c.Param("id"))
	if errors.Is(err, catalogRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	if err != nil {
		zap.L().Error("Failed to delete service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
