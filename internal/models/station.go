package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пожарных станций
const (
	StationRoleCentral    = "Central"
	StationRoleSubstation = "Substation"
)

// FireStation - пожарная станция (центральная или подстанция)
type FireStation struct {
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
	PasswordHash      string     `json:"-"`
	EmailVerified     bool       `json:"email_verified"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Unit - подразделение (машина/бригада), закрепленное за станцией
type Unit struct {
	ID           uuid.UUID `json:"id"`
	UnitName     string    `json:"unit_name"`
	Email        string    `json:"email"`
	StationID    uuid.UUID `json:"station_id"`
	StationName  string    `json:"station_name"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Status       string    `json:"status"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Responder - сотрудник реагирования (в том числе следователь)
type Responder struct {
	ID            uuid.UUID `json:"id"`
	ResponderName string    `json:"responder_name"`
	Email         string    `json:"email"`
	Contact       string    `json:"contact,omitempty"`
	Role          string    `json:"role"`
	StationID     uuid.UUID `json:"station_id"`
	StationName   string    `json:"station_name"`
	Status        string    `json:"status"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResponderRoleInvestigator - роль следователя
const ResponderRoleInvestigator = "Investigator"

// AppUser - пользователь мобильного приложения, отправляющий отчеты.
// Идентификатор - непрозрачная строка, ее формат принадлежит хранилищу.
type AppUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	Profile   *string   `json:"profile,omitempty"`
	IsActive  bool      `json:"is_active"`
	LastSeen  int64     `json:"last_seen"`
	CreatedAt time.Time `json:"created_at"`
}

// Admin - учетная запись администратора консоли
type Admin struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}
