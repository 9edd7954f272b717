package reconciler

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestReconciler — вспомогательная функция для создания согласователя
func newTestReconciler(viewerID string) *Reconciler {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return New(viewerID, logger)
}

func makeReport(id, stationID string) *models.Report {
	return &models.Report{
		ID:            id,
		FireStationID: stationID,
		UserDocID:     "user-" + id,
	}
}

func TestAddReport_PrependsNewest(t *testing.T) {
	rec := newTestReconciler("viewer-1")

	require.True(t, rec.AddReport(makeReport("r1", "S1"), models.CategoryFire))
	require.True(t, rec.AddReport(makeReport("r2", "S1"), models.CategorySms))

	all := rec.AllReports()
	require.Len(t, all, 2)
	// Свежая запись всегда на индексе 0
	assert.Equal(t, "r2", all[0].ID)
	assert.Equal(t, "r1", all[1].ID)
}

func TestAddReport_DedupAcrossCategories(t *testing.T) {
	rec := newTestReconciler("viewer-1")

	require.True(t, rec.AddReport(makeReport("r1", "S1"), models.CategoryFire))
	// Та же запись приходит из другой категории - дубликат отбрасывается
	assert.False(t, rec.AddReport(makeReport("r1", "S1"), models.CategorySms))

	assert.Equal(t, 1, rec.Len())
	all := rec.AllReports()
	assert.Equal(t, models.CategoryFire, all[0].Category)
}

func TestAddReport_TagsCategory(t *testing.T) {
	rec := newTestReconciler("viewer-1")

	rec.AddReport(makeReport("r1", "S1"), models.CategoryEMS)

	all := rec.AllReports()
	require.Len(t, all, 1)
	assert.Equal(t, models.CategoryEMS, all[0].Category)
}

func TestUpdateReport_PreservesPosition(t *testing.T) {
	rec := newTestReconciler("viewer-1")
	rec.AddReport(makeReport("r1", "S1"), models.CategoryFire)
	rec.AddReport(makeReport("r2", "S1"), models.CategoryFire)
	rec.AddReport(makeReport("r3", "S1"), models.CategoryFire)

	updated := makeReport("r2", "S1")
	updated.Status = models.ReportStatusOngoing
	require.True(t, rec.UpdateReport(updated, models.CategoryFire))

	all := rec.AllReports()
	require.Len(t, all, 3)
	// Обновление не меняет индекс записи
	assert.Equal(t, "r3", all[0].ID)
	assert.Equal(t, "r2", all[1].ID)
	assert.Equal(t, models.ReportStatusOngoing, all[1].Status)
	assert.Equal(t, "r1", all[2].ID)
}

func TestUpdateReport_UnknownIDIgnored(t *testing.T) {
	rec := newTestReconciler("viewer-1")
	rec.AddReport(makeReport("r1", "S1"), models.CategoryFire)

	assert.False(t, rec.UpdateReport(makeReport("ghost", "S1"), models.CategoryFire))
	assert.Equal(t, 1, rec.Len())
}

func TestRemoveReport_ShiftsEntries(t *testing.T) {
	rec := newTestReconciler("viewer-1")
	rec.AddReport(makeReport("r1", "S1"), models.CategoryFire)
	rec.AddReport(makeReport("r2", "S1"), models.CategorySms)
	rec.AddReport(makeReport("r3", "S1"), models.CategoryEMS)

	require.True(t, rec.RemoveReport("r2"))

	all := rec.AllReports()
	// Удаление не оставляет дыр
	require.Len(t, all, 2)
	assert.Equal(t, "r3", all[0].ID)
	assert.Equal(t, "r1", all[1].ID)
}

func TestRemoveReport_EmptyCollection(t *testing.T) {
	rec := newTestReconciler("viewer-1")

	// Удаление из пустой коллекции не является ошибкой
	assert.False(t, rec.RemoveReport("r1"))
	assert.Equal(t, 0, rec.Len())
}

func TestFilterReports_KnownLabels(t *testing.T) {
	rec := newTestReconciler("viewer-1")
	rec.AddReport(makeReport("f1", "S1"), models.CategoryFire)
	rec.AddReport(makeReport("s1", "S1"), models.CategorySms)
	rec.AddReport(makeReport("f2", "S1"), models.CategoryFire)

	rec.FilterReports("Fire Report")
	reports := rec.Reports()
	require.Len(t, reports, 2)
	// Относительный порядок allReports сохраняется
	assert.Equal(t, "f2", reports[0].ID)
	assert.Equal(t, "f1", reports[1].ID)

	rec.FilterReports("Sms Report")
	reports = rec.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, "s1", reports[0].ID)

	rec.FilterReports(models.FilterAllReports)
	assert.Len(t, rec.Reports(), 3)
}

func TestFilterReports_UnknownLabelShowsNothing(t *testing.T) {
	rec := newTestReconciler("viewer-1")
	rec.AddReport(makeReport("r1", "S1"), models.CategoryFire)

	rec.FilterReports("Bogus Report")

	// Промах таблицы меток дает пустой набор, а не панику
	assert.Empty(t, rec.Reports())
	assert.Equal(t, 1, rec.Len())
}

func TestFilterReports_RecomputedOnMutation(t *testing.T) {
	rec := newTestReconciler("viewer-1")
	rec.FilterReports("Fire Report")

	rec.AddReport(makeReport("f1", "S1"), models.CategoryFire)
	rec.AddReport(makeReport("s1", "S1"), models.CategorySms)
	assert.Len(t, rec.Reports(), 1)

	rec.RemoveReport("f1")
	assert.Empty(t, rec.Reports())
}

func TestDeriveFeedback_EmptyMap(t *testing.T) {
	rec := newTestReconciler("viewer-1")

	rec.AddReport(makeReport("r1", "S1"), models.CategoryFire)

	all := rec.AllReports()
	require.NotNil(t, all[0].UserFeedback)
	assert.Equal(t, 0, all[0].UserFeedback.Rating)
	assert.Equal(t, "No message provided", all[0].UserFeedback.Message)
}

func TestDeriveFeedback_ViewerEntryWins(t *testing.T) {
	rec := newTestReconciler("viewer-1")

	report := makeReport("r1", "S1")
	report.Feedbacks = map[string]models.UserFeedback{
		"aaa":      {Rating: 1, Message: "first"},
		"viewer-1": {Rating: 5, Message: "mine"},
	}
	rec.AddReport(report, models.CategoryFire)

	all := rec.AllReports()
	require.NotNil(t, all[0].UserFeedback)
	assert.Equal(t, 5, all[0].UserFeedback.Rating)
	assert.Equal(t, "mine", all[0].UserFeedback.Message)
}

func TestDeriveFeedback_DeterministicFallback(t *testing.T) {
	// Зрителя нет в карте - берется запись с наименьшим по алфавиту ключом
	for i := 0; i < 10; i++ {
		rec := newTestReconciler("viewer-1")

		report := makeReport(fmt.Sprintf("r%d", i), "S1")
		report.Feedbacks = map[string]models.UserFeedback{
			"zzz": {Rating: 2, Message: "late"},
			"aaa": {Rating: 4, Message: "early"},
			"mmm": {Rating: 3, Message: "middle"},
		}
		rec.AddReport(report, models.CategoryFire)

		all := rec.AllReports()
		require.NotNil(t, all[0].UserFeedback)
		assert.Equal(t, "early", all[0].UserFeedback.Message)
	}
}

func TestUpdateReport_RederivesFeedback(t *testing.T) {
	rec := newTestReconciler("viewer-1")

	report := makeReport("r1", "S1")
	rec.AddReport(report, models.CategoryFire)

	updated := makeReport("r1", "S1")
	updated.Feedbacks = map[string]models.UserFeedback{
		"viewer-1": {Rating: 4, Message: "updated"},
	}
	rec.UpdateReport(updated, models.CategoryFire)

	all := rec.AllReports()
	require.NotNil(t, all[0].UserFeedback)
	assert.Equal(t, "updated", all[0].UserFeedback.Message)
}
