package reconciler

import (
	"sort"
	"sync"

	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/sirupsen/logrus"
)

// Reconciler сводит события четырех независимых лент отчетов в одну
// дедуплицированную коллекцию и поддерживает отфильтрованное представление.
// Все операции атомарны относительно коллекции: обработчик события никогда
// не видит частично обновленное состояние.
type Reconciler struct {
	mu sync.Mutex

	// viewerID - id текущего зрителя для выборки персонального отзыва
	viewerID string

	// allReports - порядок вставки: новые в начале
	allReports []*models.Report
	// filtered - производное представление, пересчитывается при каждой мутации
	filtered      []*models.Report
	selectedLabel string

	logger *logrus.Logger
}

// New создает согласователь для зрителя с фильтром "All Reports"
func New(viewerID string, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		viewerID:      viewerID,
		allReports:    make([]*models.Report, 0),
		filtered:      make([]*models.Report, 0),
		selectedLabel: models.FilterAllReports,
		logger:        logger,
	}
}

// AddReport добавляет отчет в коллекцию. Возвращает false, если запись с
// таким id уже существует в любой категории: это защита от повторной
// доставки, а не от легитимной коллизии id между категориями.
func (r *Reconciler) AddReport(raw *models.Report, category models.ReportCategory) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Повторная проверка id выполняется здесь, а не у вызывающего кода:
	// к моменту завершения асинхронного поиска профиля коллекция могла
	// измениться.
	if r.indexOf(raw.ID) >= 0 {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{
				"report_id": raw.ID,
				"category":  category,
			}).Debug("Duplicate report delivery skipped")
		}
		return false
	}

	raw.Category = category
	raw.UserFeedback = r.deriveFeedback(raw)

	// Новые отчеты всегда в начале
	r.allReports = append([]*models.Report{raw}, r.allReports...)
	r.refilter()
	return true
}

// UpdateReport заменяет существующую запись на месте, сохраняя ее позицию.
// Поиск идет по всей коллекции, а не внутри категории: обновление всегда
// адресует уже существующий id. Неизвестный id игнорируется.
func (r *Reconciler) UpdateReport(raw *models.Report, category models.ReportCategory) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(raw.ID)
	if i < 0 {
		if r.logger != nil {
			r.logger.WithField("report_id", raw.ID).Debug("Change event for unknown report ignored")
		}
		return false
	}

	raw.Category = category
	raw.UserFeedback = r.deriveFeedback(raw)

	r.allReports[i] = raw
	r.refilter()
	return true
}

// RemoveReport удаляет запись с данным id независимо от категории.
// Отсутствующий id не является ошибкой.
func (r *Reconciler) RemoveReport(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}

	r.allReports = append(r.allReports[:i], r.allReports[i+1:]...)
	r.refilter()
	return true
}

// FilterReports выставляет метку фильтра и пересчитывает представление.
// Неизвестная метка дает пустой результат, исключение не выбрасывается.
func (r *Reconciler) FilterReports(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selectedLabel = label
	r.refilter()
}

// Reports возвращает копию отфильтрованного представления
func (r *Reconciler) Reports() []*models.Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Report, len(r.filtered))
	copy(out, r.filtered)
	return out
}

// AllReports возвращает копию полной коллекции
func (r *Reconciler) AllReports() []*models.Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Report, len(r.allReports))
	copy(out, r.allReports)
	return out
}

// Len возвращает размер полной коллекции
func (r *Reconciler) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.allReports)
}

// indexOf ищет запись по id по всей коллекции. Вызывать под мьютексом.
func (r *Reconciler) indexOf(id string) int {
	for i, rep := range r.allReports {
		if rep.ID == id {
			return i
		}
	}
	return -1
}

// refilter пересчитывает производное представление. Вызывать под мьютексом.
func (r *Reconciler) refilter() {
	if r.selectedLabel == models.FilterAllReports || r.selectedLabel == "" {
		r.filtered = make([]*models.Report, len(r.allReports))
		copy(r.filtered, r.allReports)
		return
	}

	category, ok := models.CategoryForLabel(r.selectedLabel)
	if !ok {
		// Промах таблицы меток: показываем пустой набор
		r.filtered = make([]*models.Report, 0)
		return
	}

	filtered := make([]*models.Report, 0, len(r.allReports))
	for _, rep := range r.allReports {
		if rep.Category == category {
			filtered = append(filtered, rep)
		}
	}
	r.filtered = filtered
}

// deriveFeedback выбирает отзыв для текущего зрителя:
//  1. запись зрителя, если она есть в карте отзывов;
//  2. иначе запись с лексикографически наименьшим id отправителя -
//     порядок обхода карты не определен, выбор должен быть детерминирован;
//  3. иначе значение по умолчанию.
func (r *Reconciler) deriveFeedback(raw *models.Report) *models.UserFeedback {
	if len(raw.Feedbacks) == 0 {
		return models.DefaultFeedback()
	}

	if fb, ok := raw.Feedbacks[r.viewerID]; ok && r.viewerID != "" {
		out := fb
		return &out
	}

	keys := make([]string, 0, len(raw.Feedbacks))
	for k := range raw.Feedbacks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := raw.Feedbacks[keys[0]]
	return &out
}
