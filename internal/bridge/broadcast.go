package bridge

import (
	"encoding/json"
	"time"

	"github.com/cryptk/omnilogic-local/internal/telemetry"
)

// snapshotEnvelope is the JSON shape broadcast to every connected
// telemetry client: the decoded snapshot plus the time it was polled,
// since a client may be seconds behind the live poll loop.
type snapshotEnvelope struct {
	PolledAt time.Time           `json:"polled_at"`
	Snapshot *telemetry.Snapshot `json:"snapshot"`
}

func marshalSnapshot(snap *telemetry.Snapshot) ([]byte, error) {
	return json.Marshal(snapshotEnvelope{PolledAt: time.Now(), Snapshot: snap})
}
