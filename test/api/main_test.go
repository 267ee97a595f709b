package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinichq/frontdesk-api/internal/handler"
	patientHandler "github.com/clinichq/frontdesk-api/internal/handler/patient"
	reportHandler "github.com/clinichq/frontdesk-api/internal/handler/report"
	roomHandler "github.com/clinichq/frontdesk-api/internal/handler/room"
	staffHandler "github.com/clinichq/frontdesk-api/internal/handler/staff"
	"github.com/clinichq/frontdesk-api/internal/repository/memory"
	"github.com/clinichq/frontdesk-api/internal/router"
	clinicService "github.com/clinichq/frontdesk-api/internal/service/clinic"
	"github.com/clinichq/frontdesk-api/pkg/clock"
)

var (
	baseURL       string
	waitingRoomNo int
	nameSeq       atomic.Int64
)

// APIResponse represents the API response structure
type APIResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// TestResponse wraps the API response for testing
type TestResponse struct {
	Status  string
	Message string
	Data    map[string]interface{}
	RawData string
}

func (r TestResponse) IsSuccess() bool {
	return r.Status == "success"
}

func (r TestResponse) GetString(key string) string {
	if r.Data == nil {
		return ""
	}
	if v, ok := r.Data[key].(string); ok {
		return v
	}
	return ""
}

func TestMain(m *testing.M) {
	svc := clinicService.NewService(
		"Test Clinic",
		memory.NewRoomRepository(),
		memory.NewStaffRepository(),
		memory.NewClientRepository(),
		memory.NewAssignmentRepository(),
		clock.New(),
		zerolog.Nop(),
	)

	r := router.NewRouter(
		handler.NewHandler(),
		router.Config{},
		patientHandler.NewHandler(svc),
		staffHandler.NewHandler(svc),
		roomHandler.NewHandler(svc),
		reportHandler.NewHandler(svc),
	)
	r.Setup()

	server := httptest.NewServer(r.Engine())
	baseURL = server.URL + "/api/v1"

	setupTestData()

	code := m.Run()

	server.Close()
	os.Exit(code)
}

// setupTestData creates the one waiting room every test depends on. Exam
// rooms are per test; the waiting room is shared by design.
func setupTestData() {
	resp := makeRequest("POST", "/rooms", map[string]interface{}{
		"id":   []int{0, 0, 10, 10},
		"type": "waiting",
		"name": "Main Waiting Room",
	})
	if !resp.IsSuccess() {
		fmt.Printf("Failed to create waiting room: %s\n", resp.Message)
		os.Exit(1)
	}
	waitingRoomNo = int(resp.Data["room_number"].(float64))
}

// uniqueName keeps patient and staff names distinct across tests so the
// archive's substring matching never crosses test boundaries.
func uniqueName(base string) string {
	return fmt.Sprintf("%s%d", base, nameSeq.Add(1))
}

func makeRequest(method, path string, body interface{}) TestResponse {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return TestResponse{Status: "error", Message: err.Error()}
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return TestResponse{Status: "error", Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return TestResponse{Status: "error", Message: err.Error()}
	}
	defer response.Body.Close()

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return TestResponse{Status: "error", Message: err.Error()}
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return TestResponse{
			Status:  "error",
			Message: fmt.Sprintf("HTTP %d: %s", response.StatusCode, string(respBody)),
		}
	}

	var apiResp APIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return TestResponse{
			Status:  "error",
			Message: fmt.Sprintf("Failed to parse response: %s\nRaw response: %s", err.Error(), string(respBody)),
		}
	}

	testResp := TestResponse{
		Status:  apiResp.Status,
		Message: apiResp.Message,
		RawData: string(apiResp.Data),
	}
	if len(apiResp.Data) > 0 {
		var data map[string]interface{}
		if err := json.Unmarshal(apiResp.Data, &data); err == nil {
			testResp.Data = data
		}
	}
	return testResp
}

func createExamRoom(t *testing.T, name string) int {
	t.Helper()
	resp := makeRequest("POST", "/rooms", map[string]interface{}{
		"id":   []int{10, 0, 20, 10},
		"type": "exam",
		"name": name,
	})
	if !resp.IsSuccess() {
		t.Fatalf("Failed to create exam room: %s", resp.Message)
	}
	return int(resp.Data["room_number"].(float64))
}

func createStaff(t *testing.T, occupation, firstName, lastName string) string {
	t.Helper()
	resp := makeRequest("POST", "/staff", map[string]interface{}{
		"occupation": occupation,
		"first_name": firstName,
		"last_name":  lastName,
	})
	if !resp.IsSuccess() {
		t.Fatalf("Failed to create staff: %s", resp.Message)
	}
	return resp.GetString("id")
}

func registerPatient(t *testing.T, firstName, lastName string) string {
	t.Helper()
	resp := makeRequest("POST", "/patients", map[string]interface{}{
		"first_name":      firstName,
		"last_name":       lastName,
		"birth_date":      "01/01/1990",
		"chief_complaint": "checkup",
		"body_temp":       36.6,
	})
	if !resp.IsSuccess() {
		t.Fatalf("Failed to register patient: %s", resp.Message)
	}
	patient, ok := resp.Data["patient"].(map[string]interface{})
	if !ok {
		t.Fatalf("Unexpected register response: %s", resp.RawData)
	}
	return patient["id"].(string)
}
