package memory

import "time"

// newerFirst: created_at DESC, id DESC (mismo orden que las queries de postgres).
func newerFirst(a, b time.Time, aID, bID int64) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return aID > bID
}
