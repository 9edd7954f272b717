package models

import "time"

// AccountType - роль аутентифицированного аккаунта
type AccountType string

const (
	AccountTypeAdmin       AccountType = "admin"
	AccountTypeFireStation AccountType = "firestation"
)

// Session - явный объект сессии, создаваемый при входе и уничтожаемый при
// выходе. Передается компонентам через middleware, а не через глобальное
// состояние.
type Session struct {
	Token        string      `json:"token"`
	AccountType  AccountType `json:"accountType"`
	StationDocID string      `json:"stationDocId,omitempty"`
	StationName  string      `json:"stationName,omitempty"`
	UserDocID    string      `json:"userDocId,omitempty"`
	Email        string      `json:"email"`
	CreatedAt    time.Time   `json:"createdAt"`
}
