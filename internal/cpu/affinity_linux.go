//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore pins the current OS thread to one CPU core. Must be called
// after runtime.LockOSThread(). A coreID outside [0, NumCPU) wraps
// around so oversized pools still get a valid core.
func pinToCore(coreID int) error {
	numCPU := runtime.NumCPU()
	if coreID < 0 || coreID >= numCPU {
		coreID = coreID % numCPU
	}

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(coreID)

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}

// SetupWorkerAffinity locks the calling goroutine to an OS thread and
// pins that thread to a CPU core. Pinning failures are ignored; the
// goroutine still runs on its own locked thread. Returns a cleanup
// function that should be deferred.
func SetupWorkerAffinity(workerID int) func() {
	runtime.LockOSThread()
	_ = pinToCore(workerID)

	return func() {
		runtime.UnlockOSThread()
	}
}
