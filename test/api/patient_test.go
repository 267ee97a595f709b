package api_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientFlow(t *testing.T) {
	lastName := uniqueName("Lee")
	exam := createExamRoom(t, "Exam Room A")
	staffID := createStaff(t, "physician", "Amy", uniqueName("Kim"))

	// Register
	registerResp := makeRequest("POST", "/patients", map[string]interface{}{
		"first_name":      "Ann",
		"last_name":       lastName,
		"birth_date":      "01/01/1990",
		"chief_complaint": "sore throat",
		"body_temp":       37.2,
	})
	require.True(t, registerResp.IsSuccess(), "Failed to register patient: %s", registerResp.Message)
	assert.Equal(t, false, registerResp.Data["welcome_back"])

	patient := registerResp.Data["patient"].(map[string]interface{})
	patientID := patient["id"].(string)
	assert.Equal(t, float64(waitingRoomNo), patient["room_number"])

	// Get by ID
	getResp := makeRequest("GET", fmt.Sprintf("/patients/%s", patientID), nil)
	require.True(t, getResp.IsSuccess())
	assert.Equal(t, "Ann", getResp.Data["first_name"])

	// Find by name (substring match)
	findResp := makeRequest("GET", fmt.Sprintf("/patients?first_name=Ann&last_name=%s", lastName), nil)
	require.True(t, findResp.IsSuccess())
	assert.Equal(t, patientID, findResp.GetString("id"))

	// Move to the exam room
	roomResp := makeRequest("PUT", fmt.Sprintf("/patients/%s/room", patientID), map[string]interface{}{
		"room_number": exam,
	})
	require.True(t, roomResp.IsSuccess(), "Failed to assign room: %s", roomResp.Message)

	// Update the visit record
	updateResp := makeRequest("PUT", fmt.Sprintf("/patients/%s/record", patientID), map[string]interface{}{
		"chief_complaint": "strep throat",
		"body_temp":       38.4,
	})
	require.True(t, updateResp.IsSuccess())
	assert.Equal(t, "strep throat", updateResp.Data["chief_complaint"])

	// Assign staff, strict variant: second attempt conflicts
	assignResp := makeRequest("POST", fmt.Sprintf("/patients/%s/staff", patientID), map[string]interface{}{
		"staff_id": staffID,
	})
	require.True(t, assignResp.IsSuccess(), "Failed to assign staff: %s", assignResp.Message)

	dupResp := makeRequest("POST", fmt.Sprintf("/patients/%s/staff", patientID), map[string]interface{}{
		"staff_id": staffID,
	})
	assert.False(t, dupResp.IsSuccess())
	assert.Contains(t, dupResp.Message, "409")

	// Current staff
	staffResp := makeRequest("GET", fmt.Sprintf("/patients/%s/staff", patientID), nil)
	require.True(t, staffResp.IsSuccess())
	assert.Contains(t, staffResp.RawData, staffID)

	// Unassign, then unassigning again conflicts
	unassignResp := makeRequest("DELETE", fmt.Sprintf("/patients/%s/staff/%s", patientID, staffID), nil)
	require.True(t, unassignResp.IsSuccess())

	againResp := makeRequest("DELETE", fmt.Sprintf("/patients/%s/staff/%s", patientID, staffID), nil)
	assert.False(t, againResp.IsSuccess())

	// Discharge
	dischargeResp := makeRequest("POST", fmt.Sprintf("/patients/%s/discharge", patientID), map[string]interface{}{
		"approved_by": staffID,
	})
	require.True(t, dischargeResp.IsSuccess(), "Failed to discharge: %s", dischargeResp.Message)

	goneResp := makeRequest("GET", fmt.Sprintf("/patients?first_name=Ann&last_name=%s", lastName), nil)
	assert.False(t, goneResp.IsSuccess(), "discharged patient should leave the active roster")

	// Re-register: the archive recognizes the name and reactivates
	returnResp := makeRequest("POST", "/patients", map[string]interface{}{
		"first_name":      "Ann",
		"last_name":       lastName,
		"birth_date":      "01/01/1990",
		"chief_complaint": "follow up",
		"body_temp":       36.8,
	})
	require.True(t, returnResp.IsSuccess(), "Failed to re-register: %s", returnResp.Message)
	assert.Equal(t, true, returnResp.Data["welcome_back"])

	returned := returnResp.Data["patient"].(map[string]interface{})
	assert.Equal(t, patientID, returned["id"])

	// Visit history has both visits; the first entry carries the updated
	// complaint because record updates edit the history entry in place
	recordsResp := makeRequest("GET", fmt.Sprintf("/patients/%s/records", patientID), nil)
	require.True(t, recordsResp.IsSuccess())
	assert.Contains(t, recordsResp.RawData, "strep throat")
	assert.NotContains(t, recordsResp.RawData, "sore throat")
	assert.Contains(t, recordsResp.RawData, "follow up")
}

func TestPatientRegisterTwiceConflicts(t *testing.T) {
	lastName := uniqueName("Ray")
	registerPatient(t, "Bob", lastName)

	resp := makeRequest("POST", "/patients", map[string]interface{}{
		"first_name":      "Bob",
		"last_name":       lastName,
		"birth_date":      "02/02/1985",
		"chief_complaint": "cough",
		"body_temp":       37.0,
	})
	assert.False(t, resp.IsSuccess())
	assert.Contains(t, resp.Message, "409")
}

func TestPatientOccupiedRoomConflicts(t *testing.T) {
	exam := createExamRoom(t, "Exam Room B")
	first := registerPatient(t, "Cal", uniqueName("Poe"))
	second := registerPatient(t, "Dee", uniqueName("Fox"))

	resp := makeRequest("PUT", fmt.Sprintf("/patients/%s/room", first), map[string]interface{}{
		"room_number": exam,
	})
	require.True(t, resp.IsSuccess())

	resp = makeRequest("PUT", fmt.Sprintf("/patients/%s/room", second), map[string]interface{}{
		"room_number": exam,
	})
	assert.False(t, resp.IsSuccess())
	assert.Contains(t, resp.Message, "409")
}
