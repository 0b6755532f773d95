package handlers

import (
	"net/http"

	"agendly/database"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle aggregates all HTTP handlers for route registration.
type HandlerBundle struct {
	Client      *ClientHandler
	Provider    *ProviderHandler
	Catalog     *CatalogHandler
	Reservation *ReservationHandler
}

// Health handles GET /health with a synchronous dependency check.
func Health(c *gin.Context) {
	status := utils.CheckHealth(c.Request.Context(),
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	for _, ok := range status.Redis {
		if !ok {
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, status)
}
