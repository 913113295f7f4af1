package maintenance

import (
	"encoding/json"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
)

type MaintenanceStarted struct {
	Entry     types.MaintenanceEntry `json:"entry"`
	Timestamp time.Time              `json:"timestamp"`
}

func (m *MaintenanceStarted) ContentType() string {
	return "application/json"
}
func (m *MaintenanceStarted) TopicName() string {
	return "maintenance.started"
}
func (m *MaintenanceStarted) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

type MaintenanceEnded struct {
	EntryID   string    `json:"entryID"`
	RackID    string    `json:"rackID,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *MaintenanceEnded) ContentType() string {
	return "application/json"
}
func (m *MaintenanceEnded) TopicName() string {
	return "maintenance.ended"
}
func (m *MaintenanceEnded) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}
