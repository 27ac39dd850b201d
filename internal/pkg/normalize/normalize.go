// Package normalize holds the data-cleanliness rules shared by forms and the
// wire format: DNI coercion and the time-only exchange format.
package normalize

import (
	"fmt"
	"strings"
	"time"
)

// DNI strips every non-digit character and truncates the result to 8
// characters. It never rejects, only coerces.
func DNI(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 8 {
		return digits[:8]
	}
	return digits
}

// HoraBackend converts an HH:mm value to the fixed-width time-only string the
// wire format expects, HH:mm:ss.mmmZ. The trailing "Z" is a literal suffix of
// the convention, not a UTC marker. An empty value is replaced with the
// current local wall-clock time. Values that already carry a date part keep
// only the time part.
func HoraBackend(hora string, ahora time.Time) string {
	if hora == "" {
		return fmt.Sprintf("%02d:%02d:%02d.%03dZ",
			ahora.Hour(), ahora.Minute(), ahora.Second(), ahora.Nanosecond()/1e6)
	}

	if strings.Contains(hora, "T") && strings.Contains(hora, "Z") {
		parts := strings.SplitN(hora, "T", 2)
		return parts[1]
	}

	return hora + ":00.000Z"
}

// HoraDisplay reduces a backend time-only string to HH:mm for the internal
// model. Empty input yields empty output.
func HoraDisplay(hora string) string {
	if hora == "" {
		return ""
	}
	hora = strings.ReplaceAll(hora, "Z", "")
	if len(hora) >= 5 && strings.Contains(hora, ":") {
		return hora[:5]
	}
	return hora
}
