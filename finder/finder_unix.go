//go:build darwin || linux

package finder

import "golang.org/x/sys/unix"

const attrName = "com.apple.FinderInfo"

func setFinderInfo(path string, info []byte) error {
	return unix.Setxattr(path, attrName, info, 0)
}
