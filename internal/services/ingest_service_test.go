package services

import (
	"errors"
	"kpoller/internal/config"
	"kpoller/internal/models"
	"kpoller/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	err := db.AutoMigrate(&models.Box{}, &models.BoxItem{}, &models.Subscriber{})
	if err != nil {
		panic(err)
	}
	return db
}

func testLogService() LogService {
	return NewLogService(&config.Configuration{})
}

type recordingNotifier struct {
	notified []string
	failFor  map[string]bool
}

func (n *recordingNotifier) Notify(subscriber *models.Subscriber, box *models.Box) error {
	if n.failFor[subscriber.Email] {
		return errors.New("delivery failed")
	}
	n.notified = append(n.notified, subscriber.Email)
	return nil
}

func observedJanBox() models.ObservedBox {
	return models.ObservedBox{
		Name:        "Jan Box",
		Month:       "2024-01",
		Description: "january bundle",
		Price:       "25.00",
		Items: []models.ObservedBoxItem{
			{Name: "Widget", Description: "desc", Price: "10.00"},
		},
	}
}

func TestIngestService_NewBox(t *testing.T) {
	db := setupTestDB()
	boxRepo := repository.NewBoxRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	notifier := &recordingNotifier{}
	ingest := NewIngestService(boxRepo, subscriberRepo, notifier, testLogService())

	assert.NoError(t, subscriberRepo.Create(&models.Subscriber{Email: "a@x.com", Active: true}))
	assert.NoError(t, subscriberRepo.Create(&models.Subscriber{Email: "b@x.com", Active: false}))

	result, err := ingest.Ingest(observedJanBox())
	assert.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotNil(t, result.Box)
	assert.Equal(t, 2, result.Notified)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, notifier.notified)

	stored, err := boxRepo.FindByNameAndMonth("Jan Box", "2024-01")
	assert.NoError(t, err)
	assert.Len(t, stored.Items, 1)

	unnotified, err := subscriberRepo.FindUnnotified(stored)
	assert.NoError(t, err)
	assert.Empty(t, unnotified)
}

func TestIngestService_RerunIsIdempotent(t *testing.T) {
	db := setupTestDB()
	boxRepo := repository.NewBoxRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	notifier := &recordingNotifier{}
	ingest := NewIngestService(boxRepo, subscriberRepo, notifier, testLogService())

	assert.NoError(t, subscriberRepo.Create(&models.Subscriber{Email: "a@x.com", Active: true}))

	first, err := ingest.Ingest(observedJanBox())
	assert.NoError(t, err)
	assert.True(t, first.Created)

	second, err := ingest.Ingest(observedJanBox())
	assert.NoError(t, err)
	assert.False(t, second.Created)
	assert.Zero(t, second.Notified)

	// Zero inserts, zero pointer changes on the second run.
	var boxCount int64
	db.Model(&models.Box{}).Count(&boxCount)
	assert.EqualValues(t, 1, boxCount)
	assert.Len(t, notifier.notified, 1)
}

func TestIngestService_PartialNotificationSet(t *testing.T) {
	db := setupTestDB()
	boxRepo := repository.NewBoxRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	_ = NewIngestService(boxRepo, subscriberRepo, &recordingNotifier{}, testLogService())

	a := &models.Subscriber{Email: "a@x.com", Active: true}
	b := &models.Subscriber{Email: "b@x.com", Active: false}
	assert.NoError(t, subscriberRepo.Create(a))
	assert.NoError(t, subscriberRepo.Create(b))

	janBox := models.NewBoxFromObserved(observedJanBox())
	created, err := boxRepo.CreateIfAbsent(janBox)
	assert.NoError(t, err)
	assert.True(t, created)

	unnotified, err := subscriberRepo.FindUnnotified(janBox)
	assert.NoError(t, err)
	assert.Len(t, unnotified, 2)

	assert.NoError(t, subscriberRepo.MarkNotified(a, janBox))

	unnotified, err = subscriberRepo.FindUnnotified(janBox)
	assert.NoError(t, err)
	assert.Len(t, unnotified, 1)
	assert.Equal(t, "b@x.com", unnotified[0].Email)
}

func TestIngestService_NotifierFailureSkipsPointer(t *testing.T) {
	db := setupTestDB()
	boxRepo := repository.NewBoxRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	notifier := &recordingNotifier{failFor: map[string]bool{"a@x.com": true}}
	ingest := NewIngestService(boxRepo, subscriberRepo, notifier, testLogService())

	assert.NoError(t, subscriberRepo.Create(&models.Subscriber{Email: "a@x.com", Active: true}))
	assert.NoError(t, subscriberRepo.Create(&models.Subscriber{Email: "b@x.com", Active: true}))

	result, err := ingest.Ingest(observedJanBox())
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Notified)

	// The failed delivery leaves a@x.com in the unnotified set.
	unnotified, err := subscriberRepo.FindUnnotified(result.Box)
	assert.NoError(t, err)
	assert.Len(t, unnotified, 1)
	assert.Equal(t, "a@x.com", unnotified[0].Email)
}
