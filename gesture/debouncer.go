package gesture

import (
	"sync"
	"time"
)

// DoubleTapWindow is how close two taps on the same surface must be to count
// as a double tap.
const DoubleTapWindow = 500 * time.Millisecond

// Debouncer detects double taps across independent tap surfaces (one per
// post card, one per detail view). Safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	lastTap map[string]time.Time
	window  time.Duration
}

func NewDebouncer() *Debouncer {
	return &Debouncer{lastTap: map[string]time.Time{}, window: DoubleTapWindow}
}

// RegisterTap records a tap on the given surface and reports whether it
// completes a double tap: a previous tap on the same surface strictly less
// than the window before now. A completing tap does not reset the stored
// timestamp, so a triple tap reads as two double taps.
func (d *Debouncer) RegisterTap(surfaceId string, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	last, ok := d.lastTap[surfaceId]
	if ok && now.Sub(last) < d.window {
		return true
	}
	d.lastTap[surfaceId] = now
	return false
}

// Reset clears the detection state for one surface, used when its card is
// recycled.
func (d *Debouncer) Reset(surfaceId string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.lastTap, surfaceId)
}
