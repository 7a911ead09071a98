//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// pinToCore pins the current OS thread to one CPU core via
// SetThreadAffinityMask (bit N of the mask = CPU N). Must be called
// after runtime.LockOSThread().
func pinToCore(coreID int) error {
	numCPU := runtime.NumCPU()
	if coreID < 0 || coreID >= numCPU {
		coreID = coreID % numCPU
	}

	handle, _, _ := getCurrentThread.Call()
	mask := uintptr(1 << coreID)

	prev, _, err := setThreadAffinityMask.Call(handle, mask)
	if prev == 0 {
		return err
	}
	return nil
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
