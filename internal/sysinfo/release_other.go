// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !windows

package sysinfo

func release() string {
	return ""
}
