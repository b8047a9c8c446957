// Package privacy reduces personally identifiable values before they reach
// logs. The questionnaire collects immigration answers, so request telemetry
// must never let a log line tie back to an individual applicant.
package privacy

import (
	"fmt"
	"net"
)

// AnonymizeIP truncates a client address to its network prefix: IPv4 keeps
// the /24 (last octet zeroed), IPv6 keeps the /48. The prefix is enough to
// spot traffic patterns without identifying a host. Empty input yields
// "unknown", unparseable input "invalid".
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	// /48 prefix: first 6 of the 16 IPv6 bytes.
	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}
