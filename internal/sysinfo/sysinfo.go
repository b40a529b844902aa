// SPDX-License-Identifier: Unlicense OR MIT

// Package sysinfo describes the operating system a benchmark ran on.
package sysinfo

import "runtime"

// OS returns the bare operating system name, as used in the results
// table.
func OS() string {
	return runtime.GOOS
}

// Release returns the kernel or build release, for example
// "6.5.0-14-generic", or "" when it cannot be determined.
func Release() string {
	return release()
}

// Describe returns the operating system name followed by its release
// when known.
func Describe() string {
	return format(OS(), Release())
}

func format(goos, release string) string {
	if release == "" {
		return goos
	}
	return goos + " " + release
}
