package models

import "time"

// StationDashboard - сводка по отчетам станции для плиток и графиков
type StationDashboard struct {
	TotalFireReports    int `json:"total_fire_reports"`
	TotalOtherReports   int `json:"total_other_reports"`
	TotalMedicalReports int `json:"total_medical_reports"`
	TotalSmsReports     int `json:"total_sms_reports"`
	TotalOngoingReports int `json:"total_ongoing_reports"`
	TotalPendingReports int `json:"total_pending_reports"`
	TotalAllReports     int `json:"total_all_reports"`

	// Monthly - количество отчетов по месяцам текущего года, по категориям
	Monthly map[ReportCategory][12]int `json:"monthly"`
	// Yearly - суммарное количество отчетов по годам
	Yearly map[int]int `json:"yearly"`

	LastUpdated time.Time `json:"last_updated"`
}

// AdminDashboard - сводка для административной панели
type AdminDashboard struct {
	TotalStations   int `json:"total_stations"`
	TotalUnits      int `json:"total_units"`
	TotalResponders int `json:"total_responders"`
	// ActiveUsers - уникальные пользователи, активные в окне статистики
	ActiveUsers int       `json:"active_users"`
	LastUpdated time.Time `json:"last_updated"`
}
