package writer

import "time"

// updater is the background repaint task for async mode: one goroutine
// per writer, started at Open and joined at Close. Each tick repaints at
// most once, folding any burst of advances since the previous tick into
// a single draw. All bar state it reads lives behind w.mu, so a torn
// snapshot is impossible.
func (w *Writer) updater() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.mu.Lock()
			if w.dirty && len(w.bars) > 0 && w.bgErr == nil {
				if err := w.redrawLocked(); err != nil {
					// Latch the first failure and stop painting; Close
					// reports it. The emitting loop must not be killed
					// from a background tick.
					w.bgErr = err
				}
			}
			w.mu.Unlock()
		case <-w.stop:
			return
		}
	}
}
