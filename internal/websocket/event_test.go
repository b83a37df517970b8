package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewEvent(EventTypeUpdated, EntityTypeView, map[string]int{"pockets": 3})
	after := time.Now().UTC()

	assert.Equal(t, "view.updated", event.Type)
	assert.Equal(t, EntityTypeView, event.Entity)
	assert.False(t, event.Timestamp.Before(before))
	assert.False(t, event.Timestamp.After(after))
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name       string
		event      Event
		wantType   string
		wantEntity EntityType
	}{
		{"view updated", ViewUpdated(nil), "view.updated", EntityTypeView},
		{"status changed", StatusChanged(nil), "status.changed", EntityTypeStatus},
		{"navigation locked", NavigationLocked(nil), "navigation.locked", EntityTypeNavigation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.event.Type)
			assert.Equal(t, tt.wantEntity, tt.event.Entity)
		})
	}
}

func TestEvent_ToJSON(t *testing.T) {
	event := StatusChanged(map[string]string{"status": "refetching"})

	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "status.changed", decoded["type"])
	assert.Equal(t, "status", decoded["entity"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "refetching", payload["status"])
}
