package handlers

import (
	"net/http"

	"agendly/models"
	catalogSvc "agendly/services/catalog"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the service catalog endpoints.
type CatalogHandler struct {
	Service catalogSvc.CatalogService
}

// Create handles POST /api/services.
func (h *CatalogHandler) Create(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(service)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get handles GET /api/services/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	service, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, service)
}

// List handles GET /api/services.
func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.Service.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// Update handles PATCH /api/services/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	service.ID = c.Param("id")

	updated, err := h.Service.Update(&service)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/services/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
