package api_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomFlow(t *testing.T) {
	createResp := makeRequest("POST", "/rooms", map[string]interface{}{
		"id":   []int{20, 0, 30, 10},
		"type": "exam",
		"name": "Exam Room C",
	})
	require.True(t, createResp.IsSuccess(), "Failed to create room: %s", createResp.Message)
	number := int(createResp.Data["room_number"].(float64))
	assert.Greater(t, number, waitingRoomNo)

	// Get by number
	getResp := makeRequest("GET", fmt.Sprintf("/rooms/%d", number), nil)
	require.True(t, getResp.IsSuccess())
	assert.Equal(t, "Exam Room C", getResp.Data["name"])
	assert.Equal(t, false, getResp.Data["occupied"])

	// Unknown room
	missingResp := makeRequest("GET", "/rooms/9999", nil)
	assert.False(t, missingResp.IsSuccess())
	assert.Contains(t, missingResp.Message, "404")

	// Waiting room discovery
	waitingResp := makeRequest("GET", "/rooms/waiting", nil)
	require.True(t, waitingResp.IsSuccess())
	assert.Equal(t, float64(waitingRoomNo), waitingResp.Data["room_number"])

	// Text views
	infoResp := makeRequest("GET", fmt.Sprintf("/rooms/%d/info", number), nil)
	require.True(t, infoResp.IsSuccess())
	assert.Equal(t, "Empty\n", infoResp.GetString("info"))

	allResp := makeRequest("GET", "/rooms/info", nil)
	require.True(t, allResp.IsSuccess())
	assert.Contains(t, allResp.GetString("info"), fmt.Sprintf("Room %d\n", number))
}
