// Parsing of the node's diagnostic serial stream on the host side.
package console

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ridichi14/Temperatura-sol-si-aer/internal/payload"
)

// uplinkMarker prefixes the firmware log line that carries the raw
// payload hex, e.g. "send: payload 109A08560173".
const uplinkMarker = "send: payload "

// ParseUplink extracts and decodes the payload from a firmware uplink
// log line. The second return value is false when the line is not an
// uplink line at all; a malformed uplink line returns an error.
func ParseUplink(line string) (payload.Sample, bool, error) {
	idx := strings.Index(line, uplinkMarker)
	if idx < 0 {
		return payload.Sample{}, false, nil
	}
	rest := strings.TrimSpace(line[idx+len(uplinkMarker):])
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return payload.Sample{}, true, fmt.Errorf("uplink line missing payload hex: %q", line)
	}
	raw, err := hex.DecodeString(fields[0])
	if err != nil {
		return payload.Sample{}, true, fmt.Errorf("invalid payload hex %q: %w", fields[0], err)
	}
	sample, err := payload.Decode(raw)
	if err != nil {
		return payload.Sample{}, true, err
	}
	return sample, true, nil
}
