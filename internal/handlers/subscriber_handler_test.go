package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"kpoller/internal/models"
	"kpoller/internal/repository"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubscriberService struct {
	mock.Mock
}

func (m *MockSubscriberService) Register(email string, active bool) (*models.Subscriber, error) {
	args := m.Called(email, active)
	subscriber, ok := args.Get(0).(*models.Subscriber)
	if !ok {
		return nil, args.Error(1)
	}
	return subscriber, args.Error(1)
}

func (m *MockSubscriberService) GetActiveSubscribers() ([]models.Subscriber, error) {
	args := m.Called()
	return args.Get(0).([]models.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) GetSubscriberByEmail(email string) (*models.Subscriber, error) {
	args := m.Called(email)
	subscriber, ok := args.Get(0).(*models.Subscriber)
	if !ok {
		return nil, args.Error(1)
	}
	return subscriber, args.Error(1)
}

func (m *MockSubscriberService) GetUnnotifiedSubscribers(box *models.Box) ([]models.Subscriber, error) {
	args := m.Called(box)
	return args.Get(0).([]models.Subscriber), args.Error(1)
}

func (m *MockSubscriberService) RecordNotification(subscriber *models.Subscriber, box *models.Box) error {
	args := m.Called(subscriber, box)
	return args.Error(0)
}

func TestSubscriberHandler_Register(t *testing.T) {
	app := fiber.New()
	mockService := new(MockSubscriberService)
	handler := NewSubscriberHandler(mockService)

	app.Post("/subscribers", handler.Register)

	subscriber := &models.Subscriber{BaseModel: models.BaseModel{ID: 1}, Email: "a@x.com", Active: true}
	mockService.On("Register", "a@x.com", true).Return(subscriber, nil)

	reqBodyJSON, err := json.Marshal(map[string]interface{}{"email": "a@x.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/subscribers", bytes.NewReader(reqBodyJSON))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestSubscriberHandler_Register_MissingEmail(t *testing.T) {
	app := fiber.New()
	mockService := new(MockSubscriberService)
	handler := NewSubscriberHandler(mockService)

	app.Post("/subscribers", handler.Register)

	req := httptest.NewRequest(http.MethodPost, "/subscribers", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubscriberHandler_Register_DuplicateEmail(t *testing.T) {
	app := fiber.New()
	mockService := new(MockSubscriberService)
	handler := NewSubscriberHandler(mockService)

	app.Post("/subscribers", handler.Register)

	mockService.On("Register", "a@x.com", true).
		Return(nil, fmt.Errorf("subscriber a@x.com: %w", repository.ErrDuplicate))

	reqBodyJSON, err := json.Marshal(map[string]interface{}{"email": "a@x.com"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/subscribers", bytes.NewReader(reqBodyJSON))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestSubscriberHandler_GetSubscriberByEmail_NotFound(t *testing.T) {
	app := fiber.New()
	mockService := new(MockSubscriberService)
	handler := NewSubscriberHandler(mockService)

	app.Get("/subscribers/:email", handler.GetSubscriberByEmail)

	mockService.On("GetSubscriberByEmail", "nobody@x.com").
		Return(nil, fmt.Errorf("subscriber nobody@x.com: %w", repository.ErrNotFound))

	req := httptest.NewRequest(http.MethodGet, "/subscribers/nobody@x.com", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestSubscriberHandler_ListActiveSubscribers(t *testing.T) {
	app := fiber.New()
	mockService := new(MockSubscriberService)
	handler := NewSubscriberHandler(mockService)

	app.Get("/subscribers", handler.ListActiveSubscribers)

	subscribers := []models.Subscriber{
		{BaseModel: models.BaseModel{ID: 1}, Email: "a@x.com", Active: true},
	}
	mockService.On("GetActiveSubscribers").Return(subscribers, nil)

	req := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}
