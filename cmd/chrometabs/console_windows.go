//go:build windows

package main

import "syscall"

// manageConsole detaches the console window unless debug output is wanted.
func manageConsole(debug bool) {
	if debug {
		return
	}
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	freeConsole := kernel32.NewProc("FreeConsole")
	freeConsole.Call()
}
