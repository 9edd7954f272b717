package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/config"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service"
	"github.com/shenikar/fire_incident_console/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// handlerMocks собирает моки всех зависимостей хендлера
type handlerMocks struct {
	auth      *mocks.MockAuthService
	reports   *mocks.MockReportService
	admin     *mocks.MockAdminService
	dashboard *mocks.MockDashboardService
	sessions  *mocks.MockSessionStore
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		auth:      mocks.NewMockAuthService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		admin:     mocks.NewMockAdminService(ctrl),
		dashboard: mocks.NewMockDashboardService(ctrl),
		sessions:  mocks.NewMockSessionStore(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(m.auth, m.reports, m.admin, m.dashboard, m.sessions, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// stationSession возвращает сессию станции и ожидание ее загрузки по токену
func stationSession(m *handlerMocks) (*models.Session, map[string]string) {
	sess := &models.Session{
		Token:        "station-token",
		AccountType:  models.AccountTypeFireStation,
		StationDocID: "station-1",
		StationName:  "Central Station",
		Email:        "central@console.test",
	}
	m.sessions.EXPECT().Get(gomock.Any(), sess.Token).Return(sess, nil).Times(1)
	return sess, map[string]string{"Cookie": "session_token=" + sess.Token}
}

// adminSession возвращает сессию администратора и ожидание ее загрузки
func adminSession(m *handlerMocks) (*models.Session, map[string]string) {
	sess := &models.Session{
		Token:       "admin-token",
		AccountType: models.AccountTypeAdmin,
		UserDocID:   uuid.NewString(),
		Email:       "admin@console.test",
	}
	m.sessions.EXPECT().Get(gomock.Any(), sess.Token).Return(sess, nil).Times(1)
	return sess, map[string]string{"Cookie": "session_token=" + sess.Token}
}

func TestLogin_Station_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "central@console.test", Password: "secret"}
	sess := &models.Session{
		Token:        "station-token",
		AccountType:  models.AccountTypeFireStation,
		StationDocID: "station-1",
		StationName:  "Central Station",
		Email:        reqBody.Email,
	}

	m.auth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(sess, sess.Token, nil).
		Times(1)
	// Лента станции запускается сразу после входа
	m.reports.EXPECT().StartFeed(gomock.Any(), sess).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, sess.Token, resp.Token)
	assert.Equal(t, string(models.AccountTypeFireStation), resp.AccountType)
	assert.Equal(t, "station-1", resp.StationID)

	// Токен сессии устанавливается в cookie
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.Equal(t, sess.Token, cookies[0].Value)
}

func TestLogin_Admin_NoFeed(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "admin@console.test", Password: "secret"}
	sess := &models.Session{
		Token:       "admin-token",
		AccountType: models.AccountTypeAdmin,
		Email:       reqBody.Email,
	}

	m.auth.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).Return(sess, sess.Token, nil).Times(1)
	// Для администратора лента не запускается
	m.reports.EXPECT().StartFeed(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "central@console.test", Password: "wrong!"}

	m.auth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(nil, "", service.ErrInvalidCredentials).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestLogin_EmailNotVerified(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "pending@console.test", Password: "secret"}

	m.auth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(nil, "", service.ErrEmailNotVerified).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "email not verified")
}

func TestLogin_AccountNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "nobody@console.test", Password: "secret"}

	m.auth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return(nil, "", service.ErrAccountNotFound).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "account not found")
}

func TestLogin_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "not-an-email", Password: "secret"}

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'email' tag")
}

func TestLogout_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)

	m.reports.EXPECT().StopFeed(sess.Token).Times(1)
	m.auth.EXPECT().Logout(gomock.Any(), sess.Token).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/auth/logout", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed out")
}

func TestLogout_WithoutSession(t *testing.T) {
	_, m, router := newTestHandler(t)

	// Без токена выход идемпотентен и не трогает сервисы
	m.auth.EXPECT().Logout(gomock.Any(), gomock.Any()).Times(0)
	m.reports.EXPECT().StopFeed(gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestForgotPassword_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ForgotPasswordRequest{Email: "central@console.test"}

	m.auth.EXPECT().SendResetLink(gomock.Any(), reqBody.Email).Return("reset-token", nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/forgot-password", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset-token")
}

func TestResetPassword_InvalidToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ResetPasswordRequest{Token: "expired", NewPassword: "newpass"}

	m.auth.EXPECT().
		ResetPassword(gomock.Any(), reqBody.Token, reqBody.NewPassword).
		Return(service.ErrResetTokenInvalid).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/reset-password", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "reset token invalid or expired")
}

func TestRoleGate_NoSession_RedirectsToLogin(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/station/reports", nil)

	// Ролевой шлюз отвечает редиректом на страницу входа, а не 401
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, loginPath, w.Header().Get("Location"))
}

func TestRoleGate_WrongRole_RedirectsToLogin(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)

	m.reports.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0)
	// Сессия при отказе не уничтожается
	m.sessions.EXPECT().Destroy(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/station/reports", nil, headers)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, loginPath, w.Header().Get("Location"))
}

func TestRoleGate_BearerToken_Accepted(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess := &models.Session{
		Token:        "station-token",
		AccountType:  models.AccountTypeFireStation,
		StationDocID: "station-1",
	}
	m.sessions.EXPECT().Get(gomock.Any(), sess.Token).Return(sess, nil).Times(1)
	m.reports.EXPECT().ListReports(sess.Token, models.FilterAllReports).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/station/reports", nil, map[string]string{
		"Authorization": "Bearer " + sess.Token,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListReports_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)
	expectedReports := []*models.Report{
		{ID: "report-1", FireStationID: sess.StationDocID, Status: models.ReportStatusPending},
	}

	m.reports.EXPECT().ListReports(sess.Token, "Fire Report").Return(expectedReports, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/station/reports?filter=Fire+Report", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.Report
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "report-1", resp[0].ID)
}

func TestListReports_RestartsLostFeed(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)
	expectedReports := []*models.Report{{ID: "report-1", FireStationID: sess.StationDocID}}

	// Лента потеряна (перезапуск сервера): хендлер поднимает ее заново
	first := m.reports.EXPECT().
		ListReports(sess.Token, models.FilterAllReports).
		Return(nil, service.ErrFeedNotStarted).
		Times(1)
	m.reports.EXPECT().StartFeed(gomock.Any(), sess).Return(nil).Times(1)
	m.reports.EXPECT().
		ListReports(sess.Token, models.FilterAllReports).
		Return(expectedReports, nil).
		After(first).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/station/reports", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.Report
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestSubmitReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := SubmitReportRequest{
		FireStationID: "station-1",
		UserDocID:     "user-1",
		Latitude:      14.6,
		Longitude:     121.0,
	}

	m.reports.EXPECT().
		SubmitReport(gomock.Any(), gomock.Any(), models.CategoryFire).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports/FireReport", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmitReport_InvalidCategory(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := SubmitReportRequest{
		FireStationID: "station-1",
		UserDocID:     "user-1",
		Latitude:      14.6,
		Longitude:     121.0,
	}

	m.reports.EXPECT().SubmitReport(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/reports/UnknownReport", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid report category")
}

func TestAcceptReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)

	m.reports.EXPECT().
		AcceptReport(gomock.Any(), sess, "report-1", models.CategoryFire).
		Return(nil).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/station/reports/FireReport/report-1/accept", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcceptReport_Forbidden(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)

	m.reports.EXPECT().
		AcceptReport(gomock.Any(), sess, "report-1", models.CategoryFire).
		Return(service.ErrReportForbidden).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/station/reports/FireReport/report-1/accept", nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "report belongs to another station")
}

func TestAcceptReport_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)

	m.reports.EXPECT().
		AcceptReport(gomock.Any(), sess, "ghost", models.CategoryFire).
		Return(service.ErrReportNotFound).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/station/reports/FireReport/ghost/accept", nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestAssignUnit_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)
	unitID := uuid.New()
	reqBody := AssignUnitRequest{UnitID: unitID}

	m.reports.EXPECT().
		AssignUnit(gomock.Any(), sess, "report-1", models.CategoryFire, unitID).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/station/reports/FireReport/report-1/assign", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignUnit_MissingUnitID(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := stationSession(m)

	m.reports.EXPECT().AssignUnit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/station/reports/FireReport/report-1/assign", bytes.NewBufferString(`{}`), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unit_id is required")
}

func TestRemoveReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := stationSession(m)

	m.reports.EXPECT().
		RemoveReport(gomock.Any(), "report-1", models.CategorySms).
		Return(nil).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/station/reports/SmsReport/report-1", nil, headers)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListMessages_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := stationSession(m)
	expectedMessages := []*models.ChatMessage{
		{ID: "msg-1", ReportID: "report-1", Sender: "station", Text: "On the way"},
	}

	m.reports.EXPECT().ListMessages(gomock.Any(), "report-1").Return(expectedMessages, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/station/reports/report-1/messages", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.ChatMessage
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "On the way", resp[0].Text)
}

func TestSendMessage_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := stationSession(m)
	reqBody := SendMessageRequest{Sender: "station", Text: "Unit dispatched"}

	m.reports.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, msg *models.ChatMessage) {
			assert.Equal(t, "report-1", msg.ReportID)
			assert.Equal(t, reqBody.Text, msg.Text)
		}).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/station/reports/report-1/messages", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSendMessage_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := stationSession(m)
	reqBody := SendMessageRequest{Sender: "station", Text: "Unit dispatched"}

	m.reports.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errors.New("store unavailable")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/station/reports/report-1/messages", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "message could not be sent")
}

func TestStationDashboard_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := stationSession(m)
	expectedStats := &models.StationDashboard{TotalFireReports: 3, TotalAllReports: 5}

	m.dashboard.EXPECT().StationStats(gomock.Any(), sess.StationDocID).Return(expectedStats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/station/dashboard", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.StationDashboard
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalFireReports)
	assert.Equal(t, 5, resp.TotalAllReports)
}

func TestAdminDashboard_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)
	expectedStats := &models.AdminDashboard{TotalStations: 4, ActiveUsers: 12}

	m.dashboard.EXPECT().AdminStats(gomock.Any()).Return(expectedStats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/admin/dashboard", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.AdminDashboard
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalStations)
	assert.Equal(t, 12, resp.ActiveUsers)
}

func TestCreateStation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)
	reqBody := CreateStationRequest{
		StationName: "Central Station",
		Role:        "Central",
		Email:       "central@console.test",
		Latitude:    14.6,
		Longitude:   121.0,
		Password:    "secret",
	}

	m.admin.EXPECT().
		CreateStation(gomock.Any(), gomock.Any(), reqBody.Password).
		DoAndReturn(func(_ context.Context, station *models.FireStation, _ string) error {
			station.ID = uuid.New() // Симулируем, что БД присвоила ID
			return nil
		}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/admin/stations", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp StationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.StationName, resp.StationName)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateStation_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)
	reqBody := CreateStationRequest{ // Отсутствует StationName
		Role:      "Central",
		Email:     "central@console.test",
		Latitude:  14.6,
		Longitude: 121.0,
		Password:  "secret",
	}

	m.admin.EXPECT().CreateStation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/admin/stations", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'StationName' failed on the 'required' tag")
}

func TestListStations_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)
	expectedStations := []*models.FireStation{
		{ID: uuid.New(), StationName: "Central Station", Role: models.StationRoleCentral},
		{ID: uuid.New(), StationName: "Substation 1", Role: models.StationRoleSubstation},
	}

	m.admin.EXPECT().ListStations(gomock.Any()).Return(expectedStations, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/admin/stations", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []StationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expectedStations[0].StationName, resp[0].StationName)
}

func TestListUnits_ByStation(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)
	stationID := uuid.New()
	expectedUnits := []*models.Unit{{ID: uuid.New(), UnitName: "Engine 1", StationID: stationID}}

	m.admin.EXPECT().ListUnitsByStation(gomock.Any(), stationID).Return(expectedUnits, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/admin/units?station_id=%s", stationID), nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.Unit
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Engine 1", resp[0].UnitName)
}

func TestDeleteUnit_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)

	m.admin.EXPECT().DeleteUnit(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/admin/units/invalid-uuid", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid unit ID")
}

func TestUpdateUser_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)
	reqBody := UpdateUserRequest{Name: "Juan Dela Cruz", IsActive: true}

	m.admin.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, user *models.AppUser) {
			assert.Equal(t, "user-1", user.ID)
			assert.Equal(t, reqBody.Name, user.Name)
		}).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/admin/users/user-1", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateDeployment_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := adminSession(m)
	reqBody := CreateDeploymentRequest{
		Location:  "Riverside district",
		Purpose:   "Flood response drill",
		Date:      "2026-09-15",
		Time:      "08:30",
		Latitude:  14.6,
		Longitude: 121.0,
	}

	m.admin.EXPECT().CreateDeployment(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/admin/deployments", bytes.NewBuffer(bodyBytes), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
