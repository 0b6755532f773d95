package handlers

import (
	"net/http"

	"agendly/models"
	providerSvc "agendly/services/provider"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes provider account and availability endpoints.
type ProviderHandler struct {
	Service providerSvc.ProviderService
}

// Register handles POST /api/providers/register.
func (h *ProviderHandler) Register(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Register(provider)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/providers/login.
func (h *ProviderHandler) Login(c *gin.Context) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/providers/:id.
func (h *ProviderHandler) Get(c *gin.Context) {
	provider, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Provider not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, provider)
}

// List handles GET /api/providers.
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, providers)
}

// Update handles PATCH /api/providers/me.
func (h *ProviderHandler) Update(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	provider.ID = c.GetString("userID")

	updated, err := h.Service.Update(&provider)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/providers/me.
func (h *ProviderHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Provider not found", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetWorkingWindows handles GET /api/providers/:id/working-windows.
func (h *ProviderHandler) GetWorkingWindows(c *gin.Context) {
	windows, err := h.Service.GetWorkingWindows(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Provider not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, windows)
}

// SetWorkingWindows handles PUT /api/providers/me/working-windows. The body
// replaces the provider's full weekly window set.
func (h *ProviderHandler) SetWorkingWindows(c *gin.Context) {
	var windows []models.WorkingWindow
	if err := c.ShouldBindJSON(&windows); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	provider, err := h.Service.SetWorkingWindows(c.GetString("userID"), windows)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid working windows", err.Error())
		return
	}
	c.JSON(http.StatusOK, provider)
}
