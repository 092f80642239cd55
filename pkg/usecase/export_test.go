package usecase

import "time"

// SetClock replaces the clock used for outcome timestamps
func (uc *Blocklist) SetClock(now func() time.Time) {
	uc.now = now
}
