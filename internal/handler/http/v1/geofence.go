package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/models"
)

// Территории и опасные зоны обслуживаются одними обработчиками, вид задается маршрутом

// @Summary Create a geofence
// @Description Create a territory (allowed area) or a danger zone (prohibited area) for an own animal. At least 4 points; danger_type is required for danger zones.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param geofence body GeofenceRequest true "Geofence"
// @Success 201 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Animal belongs to another user"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /territories [post]
// @Router /danger-zones [post]
func (h *Handler) createGeofence(kind models.GeofenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GeofenceRequest
		log := h.logger.WithField("method", "createGeofence").WithField("kind", kind)

		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		actor, ok := h.requireActor(c)
		if !ok {
			return
		}

		model := DTOToGeofenceModel(input, kind)
		if err := h.geofenceService.CreateGeofence(c.Request.Context(), actor, model); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, ModelToGeofenceResponse(model))
	}
}

// @Summary List own geofences
// @Description List territories or danger zones of the authenticated user.
// @Tags Geofences
// @Produce json
// @Security BearerAuth
// @Success 200 {array} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /territories [get]
// @Router /danger-zones [get]
func (h *Handler) listGeofences(kind models.GeofenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.logger.WithField("method", "listGeofences").WithField("kind", kind)

		actor, ok := h.requireActor(c)
		if !ok {
			return
		}

		geofences, err := h.geofenceService.ListGeofences(c.Request.Context(), actor, kind)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelsToGeofenceResponses(geofences))
	}
}

// @Summary Get a geofence by ID
// @Tags Geofences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Geofence ID"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Geofence belongs to another user"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /territories/{id} [get]
// @Router /danger-zones/{id} [get]
func (h *Handler) getGeofence(kind models.GeofenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
			return
		}
		log := h.logger.WithField("method", "getGeofence").WithField("id", id)

		actor, ok := h.requireActor(c)
		if !ok {
			return
		}

		geofence, err := h.geofenceService.GetGeofence(c.Request.Context(), actor, kind, id)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelToGeofenceResponse(geofence))
	}
}

// @Summary Update a geofence
// @Description Replace name, description, coordinates, animal and danger type of a geofence. The kind cannot change.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Geofence ID"
// @Param geofence body GeofenceRequest true "Geofence"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid geofence ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Geofence belongs to another user"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /territories/{id} [put]
// @Router /danger-zones/{id} [put]
func (h *Handler) updateGeofence(kind models.GeofenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
			return
		}
		log := h.logger.WithField("method", "updateGeofence").WithField("id", id)

		var input GeofenceRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		actor, ok := h.requireActor(c)
		if !ok {
			return
		}

		model := DTOToGeofenceModel(input, kind)
		model.ID = id

		if err := h.geofenceService.UpdateGeofence(c.Request.Context(), actor, model); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ModelToGeofenceResponse(model))
	}
}

// @Summary Delete a geofence
// @Description Delete a geofence; open alerts raised by it are resolved.
// @Tags Geofences
// @Security BearerAuth
// @Param id path string true "Geofence ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Geofence belongs to another user"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /territories/{id} [delete]
// @Router /danger-zones/{id} [delete]
func (h *Handler) deleteGeofence(kind models.GeofenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
			return
		}
		log := h.logger.WithField("method", "deleteGeofence").WithField("id", id)

		actor, ok := h.requireActor(c)
		if !ok {
			return
		}

		if err := h.geofenceService.DeleteGeofence(c.Request.Context(), actor, kind, id); err != nil {
			respondError(c, log, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
