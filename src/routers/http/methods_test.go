package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stewardhq/steward/src/calendar"
	"github.com/stewardhq/steward/src/models"
)

func testStore(t *testing.T) *calendar.Store {
	t.Helper()
	store, err := calendar.Open(filepath.Join(t.TempDir(), "calendar.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func performRequest(r *gin.Engine, method string, path string, body []byte) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)
	return recorder
}

func TestGetConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	configuration := &models.Configuration{
		Config: models.Config{Name: "home", Monitor: models.Monitor{Device: "testdevice"}},
	}

	r := gin.New()
	r.GET("/api/config", GetConfig(configuration))

	response := performRequest(r, "GET", "/api/config", nil)
	if response.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", response.Code)
	}

	var payload struct {
		Config models.Config `json:"config"`
	}
	if err := json.Unmarshal(response.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if payload.Config.Monitor.Device != "testdevice" {
		t.Errorf("unexpected config: %+v", payload.Config)
	}
}

func TestGetPersona(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/persona", GetPersona)

	response := performRequest(r, "GET", "/api/persona", nil)
	if response.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", response.Code)
	}

	var payload struct {
		Data struct {
			Agent   string `json:"agent"`
			Session string `json:"session"`
		} `json:"data"`
	}
	if err := json.Unmarshal(response.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if payload.Data.Agent == "" || payload.Data.Session == "" {
		t.Error("persona instructions missing from the response")
	}
}

func TestCalendarEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := testStore(t)

	r := gin.New()
	r.POST("/api/calendar/events", CreateCalendarEvent(store))
	r.GET("/api/calendar/events/:id", GetCalendarEvent(store))
	r.PUT("/api/calendar/events/:id", UpdateCalendarEvent(store))
	r.DELETE("/api/calendar/events/:id", DeleteCalendarEvent(store))

	body := []byte(`{"summary":"Dentist","start":"2026-09-01 14:00:00","location":"Main Street 1"}`)
	response := performRequest(r, "POST", "/api/calendar/events", body)
	if response.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", response.Code, response.Body.String())
	}

	var created struct {
		Data models.CalendarEvent `json:"data"`
	}
	if err := json.Unmarshal(response.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("created event has no id")
	}

	response = performRequest(r, "GET", "/api/calendar/events/"+created.Data.ID, nil)
	if response.Code != http.StatusOK {
		t.Fatalf("get returned %d", response.Code)
	}

	update := []byte(`{"location":"Back Street 9"}`)
	response = performRequest(r, "PUT", "/api/calendar/events/"+created.Data.ID, update)
	if response.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", response.Code, response.Body.String())
	}

	response = performRequest(r, "DELETE", "/api/calendar/events/"+created.Data.ID, nil)
	if response.Code != http.StatusOK {
		t.Fatalf("delete returned %d", response.Code)
	}

	response = performRequest(r, "GET", "/api/calendar/events/"+created.Data.ID, nil)
	if response.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", response.Code)
	}
}

func TestCreateCalendarEventValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := testStore(t)

	r := gin.New()
	r.POST("/api/calendar/events", CreateCalendarEvent(store))

	response := performRequest(r, "POST", "/api/calendar/events", []byte(`{"start":"2026-09-01 14:00:00"}`))
	if response.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a missing summary, got %d", response.Code)
	}
}
