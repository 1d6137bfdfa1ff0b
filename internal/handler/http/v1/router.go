package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/animal_safety_tracker/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Прием телеметрии от трекеров и синхронизатора
	devices := api.Group("/locations", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		devices.POST("", h.ingestLocation)
		devices.POST("/batch", h.ingestLocationBatch)
	}

	userAuth := JWTAuthMiddleware(h.cfg.JWTSecret, h.logger)

	animals := api.Group("/animals/:id", userAuth)
	{
		animals.GET("/locations", h.listLocations)
		animals.GET("/alerts", h.listAlerts)
		animals.PATCH("/lost", h.setLost)
	}

	h.registerGeofenceRoutes(api.Group("/territories", userAuth), models.KindTerritory)
	h.registerGeofenceRoutes(api.Group("/danger-zones", userAuth), models.KindDangerZone)

	// Публичный реестр без авторизации, но с ограничением частоты
	lost := api.Group("/lost-animals")
	{
		lost.GET("", h.publicLimiter.Middleware(h.logger), h.listLostAnimals)
		lost.GET("/mine", userAuth, h.listMyLostAnimals)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

func (h *Handler) registerGeofenceRoutes(group *gin.RouterGroup, kind models.GeofenceKind) {
	group.POST("", h.createGeofence(kind))
	group.GET("", h.listGeofences(kind))
	group.GET("/:id", h.getGeofence(kind))
	group.PUT("/:id", h.updateGeofence(kind))
	group.DELETE("/:id", h.deleteGeofence(kind))
}
