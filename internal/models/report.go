package models

// ReportCategory - категория отчета о происшествии
type ReportCategory string

const (
	CategoryFire           ReportCategory = "FireReport"
	CategoryOtherEmergency ReportCategory = "OtherEmergencyReport"
	CategoryEMS            ReportCategory = "EmergencyMedicalServicesReport"
	CategorySms            ReportCategory = "SmsReport"
)

// FilterAllReports - метка фильтра, отключающая фильтрацию по категории
const FilterAllReports = "All Reports"

// filterLabels - таблица соответствия человекочитаемых меток фильтра категориям
var filterLabels = map[string]ReportCategory{
	"Fire Report":                       CategoryFire,
	"Other Emergency Report":            CategoryOtherEmergency,
	"Emergency Medical Services Report": CategoryEMS,
	"Sms Report":                        CategorySms,
}

// AllCategories возвращает все категории отчетов в фиксированном порядке
func AllCategories() []ReportCategory {
	return []ReportCategory{CategoryFire, CategoryOtherEmergency, CategoryEMS, CategorySms}
}

// CategoryForLabel возвращает категорию для метки фильтра.
// Неизвестная метка дает ok == false, вызывающий код не должен падать.
func CategoryForLabel(label string) (ReportCategory, bool) {
	c, ok := filterLabels[label]
	return c, ok
}

// Valid проверяет, что значение является одной из четырех категорий
func (c ReportCategory) Valid() bool {
	switch c {
	case CategoryFire, CategoryOtherEmergency, CategoryEMS, CategorySms:
		return true
	}
	return false
}

// EventChannel возвращает имя pub/sub канала событий для категории
func (c ReportCategory) EventChannel() string {
	return "reports:events:" + string(c)
}

// HashKey возвращает ключ Redis-хэша с записями отчетов категории
func (c ReportCategory) HashKey() string {
	return "reports:" + string(c)
}

// Статусы отчета
const (
	ReportStatusPending  = "Pending"
	ReportStatusOngoing  = "Ongoing"
	ReportStatusResolved = "Resolved"
)

// UserFeedback - оценка и сообщение, оставленные отправителем отчета
type UserFeedback struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// DefaultFeedback - значение, используемое при пустой карте отзывов
func DefaultFeedback() *UserFeedback {
	return &UserFeedback{Rating: 0, Message: "No message provided"}
}

// UserProfile - профиль пользователя, подмешиваемый в событие отчета.
// При недоступности профиля используется заглушка PlaceholderProfile.
type UserProfile struct {
	Name     string  `json:"name"`
	Profile  *string `json:"profile"`
	IsActive bool    `json:"isActive"`
	LastSeen int64   `json:"lastSeen"`
}

// PlaceholderProfile возвращает профиль-заглушку для недоступных пользователей
func PlaceholderProfile() *UserProfile {
	return &UserProfile{Name: "Unknown User", Profile: nil, IsActive: false, LastSeen: 0}
}

// Report - отчет о происшествии, привязанный к одной станции и одной категории.
// Category и UserFeedback являются производными полями: их проставляет
// согласователь, в удаленной записи они не хранятся.
type Report struct {
	ID            string                  `json:"id"`
	FireStationID string                  `json:"fireStationId"`
	UserDocID     string                  `json:"userDocId"`
	Status        string                  `json:"status,omitempty"`
	Latitude      float64                 `json:"latitude,omitempty"`
	Longitude     float64                 `json:"longitude,omitempty"`
	CreatedAt     int64                   `json:"createdAt,omitempty"`
	// Feedbacks - карта "id отправителя -> отзыв"
	Feedbacks map[string]UserFeedback `json:"feedbacks,omitempty"`
	// Details - непрозрачные дополнительные поля (контакты, описание и т.п.)
	Details map[string]any `json:"details,omitempty"`

	// Назначенная единица (выставляется при AssignUnit)
	AssignedUnitID   string `json:"assignedUnitId,omitempty"`
	AssignedUnitName string `json:"assignedUnitName,omitempty"`

	// Профиль отправителя, подмешанный подписчиком ленты
	UserProfile

	// Производные поля согласователя
	Category     ReportCategory `json:"category,omitempty"`
	UserFeedback *UserFeedback  `json:"userFeedback,omitempty"`
}

// ReportEvent - событие ленты отчетов, публикуемое в канал категории
type ReportEvent struct {
	Event  string  `json:"event"` // added | changed | removed
	ID     string  `json:"id"`
	Report *Report `json:"report,omitempty"`
}

// Виды событий ленты
const (
	EventAdded   = "added"
	EventChanged = "changed"
	EventRemoved = "removed"
)

// ChatMessage - сообщение чата по конкретному отчету
type ChatMessage struct {
	ID       string `json:"id"`
	ReportID string `json:"reportId"`
	Sender   string `json:"sender"`
	Text     string `json:"text"`
	SentAt   int64  `json:"sentAt"`
}
