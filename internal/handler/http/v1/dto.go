package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/models"
)

// LoginRequest DTO для входа в консоль
// @Description DTO для входа в консоль
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse DTO для ответа на вход
// @Description DTO для ответа на вход
type LoginResponse struct {
	Token       string `json:"token"`
	AccountType string `json:"account_type"`
	StationID   string `json:"station_id,omitempty"`
	StationName string `json:"station_name,omitempty"`
	Email       string `json:"email"`
}

// ForgotPasswordRequest DTO для запроса сброса пароля
// @Description DTO для запроса сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest DTO для установки нового пароля по токену
// @Description DTO для установки нового пароля по токену
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// SubmitReportRequest DTO для поступления нового отчета
// @Description DTO для поступления нового отчета
type SubmitReportRequest struct {
	FireStationID string                         `json:"fire_station_id" validate:"required"`
	UserDocID     string                         `json:"user_doc_id" validate:"required"`
	Latitude      float64                        `json:"latitude" validate:"required,latitude"`
	Longitude     float64                        `json:"longitude" validate:"required,longitude"`
	Feedbacks     map[string]models.UserFeedback `json:"feedbacks,omitempty"`
	Details       map[string]any                 `json:"details,omitempty"`
}

// AssignUnitRequest DTO для закрепления подразделения за отчетом
// @Description DTO для закрепления подразделения за отчетом
type AssignUnitRequest struct {
	UnitID uuid.UUID `json:"unit_id" validate:"required"`
}

// SendMessageRequest DTO для отправки сообщения чата
// @Description DTO для отправки сообщения чата
type SendMessageRequest struct {
	Sender string `json:"sender" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// CreateStationRequest DTO для создания станции
// @Description DTO для создания станции
type CreateStationRequest struct {
	StationName     string     `json:"station_name" validate:"required,min=2,max=255"`
	Role            string     `json:"role" validate:"required,oneof=Central Substation"`
	ParentStationID *uuid.UUID `json:"parent_station_id,omitempty"`
	Contact         string     `json:"contact,omitempty"`
	Email           string     `json:"email" validate:"required,email"`
	Latitude        float64    `json:"latitude" validate:"required,latitude"`
	Longitude       float64    `json:"longitude" validate:"required,longitude"`
	Password        string     `json:"password" validate:"required,min=6"`
}

// UpdateStationRequest DTO для обновления станции
// @Description DTO для обновления станции
type UpdateStationRequest struct {
	StationName     string     `json:"station_name" validate:"required,min=2,max=255"`
	Role            string     `json:"role" validate:"required,oneof=Central Substation"`
	ParentStationID *uuid.UUID `json:"parent_station_id,omitempty"`
	Contact         string     `json:"contact,omitempty"`
	Latitude        float64    `json:"latitude" validate:"required,latitude"`
	Longitude       float64    `json:"longitude" validate:"required,longitude"`
	Status          string     `json:"status" validate:"required,oneof=Active Inactive"`
}

// StationResponse DTO для ответа с информацией о станции
// @Description DTO для ответа с информацией о станции
type StationResponse struct {
	ID                uuid.UUID  `json:"id"`
	StationName       string     `json:"station_name"`
	Role              string     `json:"role"`
	ParentStationID   *uuid.UUID `json:"parent_station_id,omitempty"`
	ParentStationName string     `json:"parent_station_name,omitempty"`
	Contact           string     `json:"contact,omitempty"`
	Email             string     `json:"email"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateUnitRequest DTO для создания подразделения
// @Description DTO для создания подразделения
type CreateUnitRequest struct {
	UnitName  string    `json:"unit_name" validate:"required,min=2,max=255"`
	Email     string    `json:"email" validate:"required,email"`
	StationID uuid.UUID `json:"station_id" validate:"required"`
	Password  string    `json:"password" validate:"required,min=6"`
}

// UpdateUnitRequest DTO для обновления подразделения
// @Description DTO для обновления подразделения
type UpdateUnitRequest struct {
	UnitName  string    `json:"unit_name" validate:"required,min=2,max=255"`
	Email     string    `json:"email" validate:"required,email"`
	StationID uuid.UUID `json:"station_id" validate:"required"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Status    string    `json:"status" validate:"required,oneof=Active Inactive"`
}

// CreateResponderRequest DTO для создания сотрудника
// @Description DTO для создания сотрудника
type CreateResponderRequest struct {
	ResponderName string    `json:"responder_name" validate:"required,min=2,max=255"`
	Email         string    `json:"email" validate:"required,email"`
	Contact       string    `json:"contact,omitempty"`
	Role          string    `json:"role" validate:"required"`
	StationID     uuid.UUID `json:"station_id" validate:"required"`
	Password      string    `json:"password" validate:"required,min=6"`
}

// UpdateResponderRequest DTO для обновления сотрудника
// @Description DTO для обновления сотрудника
type UpdateResponderRequest struct {
	ResponderName string    `json:"responder_name" validate:"required,min=2,max=255"`
	Email         string    `json:"email" validate:"required,email"`
	Contact       string    `json:"contact,omitempty"`
	Role          string    `json:"role" validate:"required"`
	StationID     uuid.UUID `json:"station_id" validate:"required"`
	Status        string    `json:"status" validate:"required,oneof=Active Inactive"`
}

// UpdateUserRequest DTO для обновления пользователя приложения
// @Description DTO для обновления пользователя приложения
type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email,omitempty" validate:"omitempty,email"`
	Contact  string  `json:"contact,omitempty"`
	Profile  *string `json:"profile,omitempty"`
	IsActive bool    `json:"is_active"`
}

// CreateDeploymentRequest DTO для создания развертывания
// @Description DTO для создания развертывания
type CreateDeploymentRequest struct {
	Location      string  `json:"location" validate:"required"`
	Purpose       string  `json:"purpose" validate:"required"`
	SpecificOrder string  `json:"specific_order,omitempty"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string  `json:"time" validate:"required,datetime=15:04"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
}

// AssignDeploymentUnitRequest DTO для назначения подразделения на развертывание
// @Description DTO для назначения подразделения на развертывание
type AssignDeploymentUnitRequest struct {
	UnitID      string   `json:"unit_id" validate:"required"`
	UnitName    string   `json:"unit_name,omitempty"`
	StationID   string   `json:"station_id,omitempty"`
	StationName string   `json:"station_name,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}
