package alerting

import (
	"encoding/json"
	"time"

	"github.com/MRUBIO121/PDUsDEFINITIVO2-sub002/pkg/types"
)

type AlertOpened struct {
	Alert     types.ActiveAlert `json:"alert"`
	Timestamp time.Time         `json:"timestamp"`
}

func (a *AlertOpened) ContentType() string {
	return "application/json"
}
func (a *AlertOpened) TopicName() string {
	return "alerts.alertOpened"
}
func (a *AlertOpened) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type AlertClosed struct {
	ID             string    `json:"id"`
	PduID          string    `json:"pduID"`
	ResolutionType string    `json:"resolutionType"`
	Timestamp      time.Time `json:"timestamp"`
}

func (a *AlertClosed) ContentType() string {
	return "application/json"
}
func (a *AlertClosed) TopicName() string {
	return "alerts.alertClosed"
}
func (a *AlertClosed) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}
