// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || darwin || freebsd || openbsd || netbsd

package sysinfo

import "golang.org/x/sys/unix"

func release() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Release[:])
}
