package handlers

import (
	"net/http"

	"agendly/models"
	clientSvc "agendly/services/client"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes client account endpoints.
type ClientHandler struct {
	Service clientSvc.ClientService
}

// Register handles POST /api/clients/register.
func (h *ClientHandler) Register(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Register(client)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/clients/login.
func (h *ClientHandler) Login(c *gin.Context) {
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

// Me handles GET /api/clients/me.
func (h *ClientHandler) Me(c *gin.Context) {
	client, err := h.Service.GetByID(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Client not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, client)
}
