package chunk

import "fmt"

const (
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1000
)

// SecondsToTimestamp convertit des secondes (float) en "HH:MM:SS.mmm".
// La précision sous la milliseconde est tronquée, pas arrondie : on passe
// d'abord en millisecondes entières puis on fait les divisions successives.
func SecondsToTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	totalMs := int64(sec * 1000)
	h := totalMs / msPerHour
	rem := totalMs % msPerHour
	m := rem / msPerMinute
	rem = rem % msPerMinute
	s := rem / msPerSecond
	ms := rem % msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// FormatRange compose l'intervalle "[start–end]" affiché devant chaque chunk.
func FormatRange(startSec, endSec float64) string {
	return "[" + SecondsToTimestamp(startSec) + "–" + SecondsToTimestamp(endSec) + "]"
}
