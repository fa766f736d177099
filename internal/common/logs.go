package common

import "sync"

var noopServiceLog chan ServiceLog
var noopServiceLogOnce sync.Once

// GetNoopServiceLog returns a shared channel that discards everything
// sent to it, for callers that have no service log wired up.
func GetNoopServiceLog() chan ServiceLog {
	noopServiceLogOnce.Do(func() {
		noopServiceLog = make(chan ServiceLog, 64)
		go func() {
			for range noopServiceLog {
			}
		}()
	})
	return noopServiceLog
}
