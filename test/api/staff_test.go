package api_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffFlow(t *testing.T) {
	lastName := uniqueName("Park")

	// Create: nurses get the "Nurse " title
	createResp := makeRequest("POST", "/staff", map[string]interface{}{
		"occupation": "nurse",
		"first_name": "Joe",
		"last_name":  lastName,
	})
	require.True(t, createResp.IsSuccess(), "Failed to create staff: %s", createResp.Message)
	staffID := createResp.GetString("id")
	assert.Equal(t, "Nurse Joe", createResp.Data["first_name"])

	// List contains the new member
	listResp := makeRequest("GET", "/staff", nil)
	require.True(t, listResp.IsSuccess())
	assert.Contains(t, listResp.RawData, staffID)

	// Ledger-style assignment: true first, then already-assigned message
	patientID := registerPatient(t, "Ann", uniqueName("Lee"))

	assignResp := makeRequest("POST", fmt.Sprintf("/staff/%s/patients", staffID), map[string]interface{}{
		"patient_id": patientID,
	})
	require.True(t, assignResp.IsSuccess(), "Failed to assign: %s", assignResp.Message)
	assert.Equal(t, true, assignResp.Data["assigned"])

	repeatResp := makeRequest("POST", fmt.Sprintf("/staff/%s/patients", staffID), map[string]interface{}{
		"patient_id": patientID,
	})
	require.True(t, repeatResp.IsSuccess())
	assert.Equal(t, false, repeatResp.Data["assigned"])
	assert.Contains(t, repeatResp.Message, "is already assigned to")

	// Current patients and the ever-assigned total
	patientsResp := makeRequest("GET", fmt.Sprintf("/staff/%s/patients", staffID), nil)
	require.True(t, patientsResp.IsSuccess())
	assert.Equal(t, float64(1), patientsResp.Data["ever_assigned"])
	assert.Contains(t, patientsResp.RawData, patientID)

	// Roster text view
	rosterResp := makeRequest("GET", "/staff/roster", nil)
	require.True(t, rosterResp.IsSuccess())
	assert.Contains(t, rosterResp.GetString("roster"), "Nurse Joe "+lastName)

	// Remove: soft, second attempt conflicts
	removeResp := makeRequest("DELETE", fmt.Sprintf("/staff/%s", staffID), nil)
	require.True(t, removeResp.IsSuccess())

	againResp := makeRequest("DELETE", fmt.Sprintf("/staff/%s", staffID), nil)
	assert.False(t, againResp.IsSuccess())
	assert.Contains(t, againResp.Message, "409")

	listResp = makeRequest("GET", "/staff", nil)
	require.True(t, listResp.IsSuccess())
	assert.NotContains(t, listResp.RawData, staffID)
}
