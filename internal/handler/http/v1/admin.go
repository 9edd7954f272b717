package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/models"
)

// @Summary Create a new fire station
// @Description Create a central station or a substation. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param station body CreateStationRequest true "Station creation request"
// @Success 201 {object} StationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations [post]
func (h *Handler) createStation(c *gin.Context) {
	var input CreateStationRequest
	log := h.logger.WithField("method", "createStation")

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

	model := DTOToStationModel(input)
	if err := h.adminService.CreateStation(c.Request.Context(), model, input.Password); err != nil {
		log.WithError(err).Error("Failed to create station in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToStationResponse(model))
}

// @Summary Get a list of fire stations
// @Description Get all fire stations. Requires an admin session.
// @Tags Admin
// @Produce json
// @Success 200 {array} StationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations [get]
func (h *Handler) listStations(c *gin.Context) {
	log := h.logger.WithField("method", "listStations")

	stations, err := h.adminService.ListStations(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list stations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToStationResponses(stations))
}

// @Summary Get central stations
// @Description Get central stations for the parent station dropdown. Requires an admin session.
// @Tags Admin
// @Produce json
// @Success 200 {array} StationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations/central [get]
func (h *Handler) listCentralStations(c *gin.Context) {
	log := h.logger.WithField("method", "listCentralStations")

	stations, err := h.adminService.ListCentralStations(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list central stations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToStationResponses(stations))
}

// @Summary Get substations of a central station
// @Description Get substations attached to the given central station. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param id path string true "Central station ID"
// @Success 200 {array} StationResponse
// @Failure 400 {object} map[string]string "Invalid station ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations/{id}/substations [get]
func (h *Handler) listSubStations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid station ID"})
		return
	}
	log := h.logger.WithField("method", "listSubStations").WithField("id", id)

	stations, err := h.adminService.ListSubStations(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list substations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToStationResponses(stations))
}

// @Summary Update an existing fire station
// @Description Update a fire station by ID. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Station ID"
// @Param station body UpdateStationRequest true "Station update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid station ID or request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations/{id} [put]
func (h *Handler) updateStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid station ID"})
		return
	}
	log := h.logger.WithField("method", "updateStation").WithField("id", id)

	var input UpdateStationRequest
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

	model := DTOToStationModel(input)
	model.ID = id
	if err := h.adminService.UpdateStation(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update station in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update station in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a fire station
// @Description Delete a fire station by ID. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param id path string true "Station ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid station ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations/{id} [delete]
func (h *Handler) deleteStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid station ID"})
		return
	}
	log := h.logger.WithField("method", "deleteStation").WithField("id", id)

	if err := h.adminService.DeleteStation(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete station in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete station"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a new unit
// @Description Create a unit attached to a station. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param unit body CreateUnitRequest true "Unit creation request"
// @Success 201 {object} models.Unit
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/units [post]
func (h *Handler) createUnit(c *gin.Context) {
	var input CreateUnitRequest
	log := h.logger.WithField("method", "createUnit")

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

	model := DTOToUnitModel(input)
	if err := h.adminService.CreateUnit(c.Request.Context(), model, input.Password); err != nil {
		log.WithError(err).Error("Failed to create unit in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Get a list of units
// @Description Get all units, optionally narrowed to one station. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param station_id query string false "Station ID"
// @Success 200 {array} models.Unit
// @Failure 400 {object} map[string]string "Invalid station ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/units [get]
func (h *Handler) listUnits(c *gin.Context) {
	log := h.logger.WithField("method", "listUnits")

	if stationParam := c.Query("station_id"); stationParam != "" {
		stationID, err := uuid.Parse(stationParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid station ID"})
			return
		}
		units, err := h.adminService.ListUnitsByStation(c.Request.Context(), stationID)
		if err != nil {
			log.WithError(err).Error("Failed to list units by station from service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, units)
		return
	}

	units, err := h.adminService.ListUnits(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list units from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, units)
}

// @Summary Update an existing unit
// @Description Update a unit by ID. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param unit body UpdateUnitRequest true "Unit update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid unit ID or request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/units/{id} [put]
func (h *Handler) updateUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit ID"})
		return
	}
	log := h.logger.WithField("method", "updateUnit").WithField("id", id)

	var input UpdateUnitRequest
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

	model := DTOToUnitModel(input)
	model.ID = id
	if err := h.adminService.UpdateUnit(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update unit in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update unit in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a unit
// @Description Delete a unit by ID. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param id path string true "Unit ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid unit ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/units/{id} [delete]
func (h *Handler) deleteUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit ID"})
		return
	}
	log := h.logger.WithField("method", "deleteUnit").WithField("id", id)

	if err := h.adminService.DeleteUnit(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete unit in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete unit"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a new responder
// @Description Create a responder attached to a station. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param responder body CreateResponderRequest true "Responder creation request"
// @Success 201 {object} models.Responder
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/responders [post]
func (h *Handler) createResponder(c *gin.Context) {
	var input CreateResponderRequest
	log := h.logger.WithField("method", "createResponder")

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

	model := DTOToResponderModel(input)
	if err := h.adminService.CreateResponder(c.Request.Context(), model, input.Password); err != nil {
		log.WithError(err).Error("Failed to create responder in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Get a list of responders
// @Description Get all responders. Requires an admin session.
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Responder
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/responders [get]
func (h *Handler) listResponders(c *gin.Context) {
	log := h.logger.WithField("method", "listResponders")

	responders, err := h.adminService.ListResponders(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list responders from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, responders)
}

// @Summary Get investigators of a station
// @Description Get responders of the station with the Investigator role. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {array} models.Responder
// @Failure 400 {object} map[string]string "Invalid station ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stations/{id}/investigators [get]
func (h *Handler) listInvestigators(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid station ID"})
		return
	}
	log := h.logger.WithField("method", "listInvestigators").WithField("id", id)

	responders, err := h.adminService.ListInvestigators(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list investigators from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, responders)
}

// @Summary Update an existing responder
// @Description Update a responder by ID. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Responder ID"
// @Param responder body UpdateResponderRequest true "Responder update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid responder ID or request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/responders/{id} [put]
func (h *Handler) updateResponder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
		return
	}
	log := h.logger.WithField("method", "updateResponder").WithField("id", id)

	var input UpdateResponderRequest
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

	model := DTOToResponderModel(input)
	model.ID = id
	if err := h.adminService.UpdateResponder(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update responder in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update responder in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a responder
// @Description Delete a responder by ID. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param id path string true "Responder ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid responder ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/responders/{id} [delete]
func (h *Handler) deleteResponder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
		return
	}
	log := h.logger.WithField("method", "deleteResponder").WithField("id", id)

	if err := h.adminService.DeleteResponder(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete responder in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete responder"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get a list of application users
// @Description Get all mobile application users. Requires an admin session.
// @Tags Admin
// @Produce json
// @Success 200 {array} models.AppUser
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list users from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Update an application user
// @Description Update an application user by ID. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "User update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	log := h.logger.WithField("method", "updateUser").WithField("id", c.Param("id"))

	var input UpdateUserRequest
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

	user := &models.AppUser{
		ID:       c.Param("id"),
		Name:     input.Name,
		Email:    input.Email,
		Contact:  input.Contact,
		Profile:  input.Profile,
		IsActive: input.IsActive,
	}
	if err := h.adminService.UpdateUser(c.Request.Context(), user); err != nil {
		log.WithError(err).Error("Failed to update user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete an application user
// @Description Delete an application user by ID. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	log := h.logger.WithField("method", "deleteUser").WithField("id", c.Param("id"))

	if err := h.adminService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		log.WithError(err).Error("Failed to delete user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a deployment
// @Description Create a planned deployment. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param deployment body CreateDeploymentRequest true "Deployment creation request"
// @Success 201 {object} models.Deployment
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/deployments [post]
func (h *Handler) createDeployment(c *gin.Context) {
	var input CreateDeploymentRequest
	log := h.logger.WithField("method", "createDeployment")

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

	model := DTOToDeploymentModel(input)
	if err := h.adminService.CreateDeployment(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create deployment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Update a deployment
// @Description Update a deployment by ID. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Deployment ID"
// @Param deployment body CreateDeploymentRequest true "Deployment update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/deployments/{id} [put]
func (h *Handler) updateDeployment(c *gin.Context) {
	log := h.logger.WithField("method", "updateDeployment").WithField("id", c.Param("id"))

	var input CreateDeploymentRequest
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

	model := DTOToDeploymentModel(input)
	model.ID = c.Param("id")
	if err := h.adminService.UpdateDeployment(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update deployment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update deployment in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get a list of deployments
// @Description Get all planned deployments. Requires an admin session.
// @Tags Admin
// @Produce json
// @Success 200 {array} models.Deployment
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/deployments [get]
func (h *Handler) listDeployments(c *gin.Context) {
	log := h.logger.WithField("method", "listDeployments")

	deployments, err := h.adminService.ListDeployments(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list deployments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, deployments)
}

// @Summary Assign a unit to a deployment
// @Description Assign a unit to a planned deployment. Requires an admin session.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Deployment ID"
// @Param assignment body AssignDeploymentUnitRequest true "Unit assignment"
// @Success 201 {object} models.DeploymentUnit
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/deployments/{id}/units [post]
func (h *Handler) assignDeploymentUnit(c *gin.Context) {
	log := h.logger.WithField("method", "assignDeploymentUnit").WithField("id", c.Param("id"))

	var input AssignDeploymentUnitRequest
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

	model := DTOToDeploymentUnitModel(c.Param("id"), input)
	if err := h.adminService.AssignDeploymentUnit(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to assign unit to deployment in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Get units assigned to a deployment
// @Description Get the unit assignments of a deployment. Requires an admin session.
// @Tags Admin
// @Produce json
// @Param id path string true "Deployment ID"
// @Success 200 {array} models.DeploymentUnit
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/deployments/{id}/units [get]
func (h *Handler) listDeploymentUnits(c *gin.Context) {
	log := h.logger.WithField("method", "listDeploymentUnits").WithField("id", c.Param("id"))

	units, err := h.adminService.ListDeploymentUnits(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.WithError(err).Error("Failed to list deployment units from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, units)
}
