package scanner

import "sync/atomic"

// ScanLock keeps a second scan from starting while one is running. Callers
// that lose the race report it instead of waiting.
type ScanLock struct {
	state atomic.Int32 // 0 = idle, 1 = scanning
}

// TryAcquire takes the lock if no scan is running
func (l *ScanLock) TryAcquire() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Release ends the scan started by a successful TryAcquire
func (l *ScanLock) Release() {
	l.state.Store(0)
}

// Busy reports whether a scan holds the lock
func (l *ScanLock) Busy() bool {
	return l.state.Load() == 1
}
