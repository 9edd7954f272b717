package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/config"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService      service.AuthService
	reportService    service.ReportService
	adminService     service.AdminService
	dashboardService service.DashboardService
	sessions         service.SessionStore
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(authService service.AuthService, reportService service.ReportService, adminService service.AdminService, dashboardService service.DashboardService, sessions service.SessionStore, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		authService:      authService,
		reportService:    reportService,
		adminService:     adminService,
		dashboardService: dashboardService,
		sessions:         sessions,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Sign in to the console
// @Description Authenticate with email and password. The role is resolved from the admin and station registries.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Sign in request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 403 {object} map[string]string "Email not verified"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	sess, token, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		case errors.Is(err, service.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "email not verified"})
		case errors.Is(err, service.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		default:
			log.WithError(err).Error("Failed to sign in")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	// Лента запускается сразу после входа станции, чтобы консоль
	// открывалась с уже заполненным срезом отчетов
	if sess.AccountType == models.AccountTypeFireStation {
		if err := h.reportService.StartFeed(c.Request.Context(), sess); err != nil {
			log.WithError(err).Error("Failed to start report feed")
		}
	}

	c.SetCookie("session_token", token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, SessionToLoginResponse(sess, token))
}

// @Summary Sign out of the console
// @Description Destroy the current session and stop its report feed.
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string "Signed out"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	sess := SessionFromContext(c)
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"status": "signed out"})
		return
	}

	h.reportService.StopFeed(sess.Token)
	if err := h.authService.Logout(c.Request.Context(), sess.Token); err != nil {
		log.WithError(err).Error("Failed to sign out")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.SetCookie("session_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// @Summary Request a password reset
// @Description Issue a password reset token for the given email. The response does not reveal whether the account exists.
// @Tags Auth
// @Accept json
// @Produce json
// @Param email body ForgotPasswordRequest true "Password reset request"
// @Success 200 {object} map[string]string "Reset token issued"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/forgot-password [post]
func (h *Handler) forgotPassword(c *gin.Context) {
	var input ForgotPasswordRequest
	log := h.logger.WithField("method", "forgotPassword")

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

	token, err := h.authService.SendResetLink(c.Request.Context(), input.Email)
	if err != nil {
		log.WithError(err).Error("Failed to issue reset token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Почтовый шлюз не настроен, токен возвращается в ответе
	c.JSON(http.StatusOK, gin.H{"status": "reset token issued", "reset_token": token})
}

// @Summary Reset a password
// @Description Consume a reset token and set a new password for the account.
// @Tags Auth
// @Accept json
// @Produce json
// @Param reset body ResetPasswordRequest true "Password reset"
// @Success 200 {object} map[string]string "Password reset"
// @Failure 400 {object} map[string]string "Invalid request body or expired token"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var input ResetPasswordRequest
	log := h.logger.WithField("method", "resetPassword")

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

	if err := h.authService.ResetPassword(c.Request.Context(), input.Token, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrResetTokenInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "reset token invalid or expired"})
		case errors.Is(err, service.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		default:
			log.WithError(err).Error("Failed to reset password")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password reset"})
}

// @Summary Get the live report feed
// @Description Get the reconciled report view for the current session, optionally filtered by category label.
// @Tags Reports
// @Produce json
// @Param filter query string false "Filter label" default(All Reports)
// @Success 200 {array} models.Report
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /station/reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	sess := SessionFromContext(c)

	filter := c.DefaultQuery("filter", models.FilterAllReports)

	reports, err := h.reportService.ListReports(sess.Token, filter)
	if errors.Is(err, service.ErrFeedNotStarted) {
		// Лента могла быть потеряна при перезапуске сервера, поднимаем ее
		// для существующей сессии заново
		if err := h.reportService.StartFeed(c.Request.Context(), sess); err != nil {
			log.WithError(err).Error("Failed to restart report feed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		reports, err = h.reportService.ListReports(sess.Token, filter)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// @Summary Submit a new report
// @Description Submit a new incident report into the given category. Used by the mobile application.
// @Tags Reports
// @Accept json
// @Produce json
// @Param category path string true "Report category"
// @Param report body SubmitReportRequest true "Report submission"
// @Success 201 {object} models.Report
// @Failure 400 {object} map[string]string "Invalid category or request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{category} [post]
func (h *Handler) submitReport(c *gin.Context) {
	log := h.logger.WithField("method", "submitReport")

	category := models.ReportCategory(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report category"})
		return
	}

	var input SubmitReportRequest
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

	report := DTOToReportModel(input)
	if err := h.reportService.SubmitReport(c.Request.Context(), report, category); err != nil {
		log.WithError(err).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// @Summary Accept a report
// @Description Move a pending report of the current station to the Ongoing status.
// @Tags Reports
// @Produce json
// @Param category path string true "Report category"
// @Param id path string true "Report ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid category"
// @Failure 403 {object} map[string]string "Report belongs to another station"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /station/reports/{category}/{id}/accept [put]
func (h *Handler) acceptReport(c *gin.Context) {
	log := h.logger.WithField("method", "acceptReport")
	sess := SessionFromContext(c)

	category := models.ReportCategory(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report category"})
		return
	}

	err := h.reportService.AcceptReport(c.Request.Context(), sess, c.Param("id"), category)
	if err != nil {
		h.reportError(c, log, err, "Failed to accept report")
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Assign a unit to a report
// @Description Assign one of the station units to a report. A pending report becomes Ongoing.
// @Tags Reports
// @Accept json
// @Produce json
// @Param category path string true "Report category"
// @Param id path string true "Report ID"
// @Param assignment body AssignUnitRequest true "Unit assignment"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid category or request body"
// @Failure 403 {object} map[string]string "Report belongs to another station"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /station/reports/{category}/{id}/assign [put]
func (h *Handler) assignUnit(c *gin.Context) {
	log := h.logger.WithField("method", "assignUnit")
	sess := SessionFromContext(c)

	category := models.ReportCategory(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report category"})
		return
	}

	var input AssignUnitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.UnitID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_id is required"})
		return
	}

	err := h.reportService.AssignUnit(c.Request.Context(), sess, c.Param("id"), category, input.UnitID)
	if err != nil {
		h.reportError(c, log, err, "Failed to assign unit")
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Remove a report
// @Description Remove a report from the live store. Subscribed consoles receive a removed event.
// @Tags Reports
// @Produce json
// @Param category path string true "Report category"
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid category"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /station/reports/{category}/{id} [delete]
func (h *Handler) removeReport(c *gin.Context) {
	log := h.logger.WithField("method", "removeReport")

	category := models.ReportCategory(c.Param("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report category"})
		return
	}

	if err := h.reportService.RemoveReport(c.Request.Context(), c.Param("id"), category); err != nil {
		log.WithError(err).Error("Failed to remove report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get report chat messages
// @Description Get the chat history of a report in sending order.
// @Tags Chat
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {array} models.ChatMessage
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /station/reports/{id}/messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	log := h.logger.WithField("method", "listMessages")

	messages, err := h.reportService.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.WithError(err).Error("Failed to list messages in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Send a report chat message
// @Description Append a chat message to a report. A failed send is reported to the caller and not retried.
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param message body SendMessageRequest true "Chat message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /station/reports/{id}/messages [post]
func (h *Handler) sendMessage(c *gin.Context) {
	log := h.logger.WithField("method", "sendMessage")

	var input SendMessageRequest
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

	msg := &models.ChatMessage{
		ReportID: c.Param("id"),
		Sender:   input.Sender,
		Text:     input.Text,
	}
	if err := h.reportService.SendMessage(c.Request.Context(), msg); err != nil {
		log.WithError(err).Error("Failed to send message in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "message could not be sent"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// @Summary Get station dashboard statistics
// @Description Get report counters and monthly/yearly charts for the current station.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.StationDashboard
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /station/dashboard [get]
func (h *Handler) stationDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "stationDashboard")
	sess := SessionFromContext(c)

	stats, err := h.dashboardService.StationStats(c.Request.Context(), sess.StationDocID)
	if err != nil {
		log.WithError(err).Error("Failed to compute station stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get admin dashboard statistics
// @Description Get registry counters and the number of recently active users.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.AdminDashboard
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/dashboard [get]
func (h *Handler) adminDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "adminDashboard")

	stats, err := h.dashboardService.AdminStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute admin stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// reportError переводит ошибки сервиса отчетов в HTTP-статусы
func (h *Handler) reportError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, service.ErrReportForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "report belongs to another station"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
