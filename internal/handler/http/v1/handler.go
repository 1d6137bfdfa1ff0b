package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/animal_safety_tracker/internal/config"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/shenikar/animal_safety_tracker/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locationService service.LocationService
	geofenceService service.GeofenceService
	alertService    service.AlertService
	lostService     service.LostAnimalService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	publicLimiter   *IPRateLimiter
}

func NewHandler(
	locationService service.LocationService,
	geofenceService service.GeofenceService,
	alertService service.AlertService,
	lostService service.LostAnimalService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		locationService: locationService,
		geofenceService: geofenceService,
		alertService:    alertService,
		lostService:     lostService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
		publicLimiter:   NewIPRateLimiter(cfg.PublicRateLimitRPS, cfg.PublicRateLimitBurst),
	}
}

// @Summary Ingest a location
// @Description Persist a GPS reading of an animal and evaluate it against the animal's geofences. Requires API key.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationRequest true "Location reading"
// @Success 201 {object} IngestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) ingestLocation(c *gin.Context) {
	var input LocationRequest
	log := h.logger.WithField("method", "ingestLocation")

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

	result, err := h.locationService.Ingest(c.Request.Context(), DTOToLocationInput(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIngestResponse(result))
}

// @Summary Ingest a batch of locations
// @Description Ingest readings forwarded by the telemetry syncer. Every item is ingested independently; the batch fails only when no item could be stored because of a server error. Requires API key.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param batch body LocationBatchRequest true "Location readings"
// @Success 200 {object} BatchIngestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/batch [post]
func (h *Handler) ingestLocationBatch(c *gin.Context) {
	var input LocationBatchRequest
	log := h.logger.WithField("method", "ingestLocationBatch")

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

	resp := &BatchIngestResponse{Results: make([]*BatchItemResult, 0, len(input.Locations))}
	serverErrors := 0
	for i, item := range input.Locations {
		itemResult := &BatchItemResult{Index: i}
		resp.Results = append(resp.Results, itemResult)

		if err := h.validate.Struct(item); err != nil {
			resp.Rejected++
			itemResult.Error = err.Error()
			continue
		}

		result, err := h.locationService.Ingest(c.Request.Context(), DTOToLocationInput(item))
		if err != nil {
			resp.Rejected++
			status, body := errorResponse(err)
			if status == http.StatusInternalServerError {
				serverErrors++
				log.WithError(err).WithField("index", i).Error("Failed to ingest batch item")
			}
			itemResult.Error, _ = body["error"].(string)
			continue
		}

		resp.Accepted++
		ingested := ModelToIngestResponse(result)
		itemResult.Location = ingested.Location
		itemResult.Alerts = ingested.Alerts
	}

	// Ничего не сохранено из-за сбоя сервера: отправитель может безопасно повторить пакет целиком
	if resp.Accepted == 0 && serverErrors > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	log.WithFields(logrus.Fields{
		"accepted": resp.Accepted,
		"rejected": resp.Rejected,
	}).Info("Location batch ingested")
	c.JSON(http.StatusOK, resp)
}

// @Summary Get location history
// @Description Get the track of an animal, newest first. Only the owner or an admin.
// @Tags Animals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param limit query int false "Maximum number of points" default(100)
// @Success 200 {array} LocationResponse
// @Failure 400 {object} map[string]string "Invalid animal ID or limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /animals/{id}/locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal ID"})
		return
	}
	log := h.logger.WithField("method", "listLocations").WithField("animal_id", id)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	locations, err := h.locationService.History(c.Request.Context(), actor, id, limit)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLocationResponses(locations))
}

// @Summary Get alerts of an animal
// @Description Get alerts of an animal, newest first. Only the owner or an admin.
// @Tags Animals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param status query string false "Filter by status" Enums(triggered, resolved)
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid animal ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /animals/{id}/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal ID"})
		return
	}
	log := h.logger.WithField("method", "listAlerts").WithField("animal_id", id)

	status := models.AlertStatus(c.Query("status"))
	if status != "" && status != models.AlertStatusTriggered && status != models.AlertStatusResolved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be triggered or resolved"})
		return
	}

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), actor, id, status)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Mark an animal as lost or found
// @Description Only aggressive animals can be marked as lost. Only the owner or an admin.
// @Tags Lost animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param request body SetLostRequest true "Lost flag"
// @Success 200 {object} AnimalResponse
// @Failure 400 {object} map[string]string "Invalid animal ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden or temperament is not aggressive"
// @Failure 404 {object} map[string]string "Animal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /animals/{id}/lost [patch]
func (h *Handler) setLost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal ID"})
		return
	}
	log := h.logger.WithField("method", "setLost").WithField("animal_id", id)

	var input SetLostRequest
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

	animal, err := h.lostService.SetLost(c.Request.Context(), actor, id, *input.IsLost)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAnimalResponse(animal))
}

// @Summary Public registry of lost aggressive animals
// @Description Lost animals with aggressive temperament across all owners. Rate limited per client IP.
// @Tags Lost animals
// @Produce json
// @Success 200 {array} AnimalResponse
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lost-animals [get]
func (h *Handler) listLostAnimals(c *gin.Context) {
	log := h.logger.WithField("method", "listLostAnimals")

	animals, err := h.lostService.ListLostAggressive(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAnimalResponses(animals))
}

// @Summary Own lost animals
// @Description Lost animals of the authenticated user.
// @Tags Lost animals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AnimalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lost-animals/mine [get]
func (h *Handler) listMyLostAnimals(c *gin.Context) {
	log := h.logger.WithField("method", "listMyLostAnimals")

	actor, ok := h.requireActor(c)
	if !ok {
		return
	}

	animals, err := h.lostService.ListMyLost(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAnimalResponses(animals))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireActor достает пользователя из контекста; без него отвечает 401
func (h *Handler) requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return models.Actor{}, false
	}
	return actor, true
}
