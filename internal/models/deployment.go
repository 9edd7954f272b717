package models

// Deployment - плановое развертывание, создаваемое администратором
type Deployment struct {
	ID            string  `json:"id"`
	Location      string  `json:"location"`
	Purpose       string  `json:"purpose"`
	SpecificOrder string  `json:"specificOrder,omitempty"`
	Date          string  `json:"date"` // yyyy-MM-dd
	Time          string  `json:"time"` // HH:mm
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CreatedAt     int64   `json:"createdAt"`
}

// DeploymentUnit - назначение подразделения на развертывание
type DeploymentUnit struct {
	ID           string   `json:"id"`
	DeploymentID string   `json:"deploymentId"`
	StationID    string   `json:"stationId,omitempty"`
	StationName  string   `json:"stationName,omitempty"`
	UnitID       string   `json:"unitId"`
	UnitName     string   `json:"unitName,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	CreatedAt    int64    `json:"createdAt"`
}
