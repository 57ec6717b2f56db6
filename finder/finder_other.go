//go:build !darwin && !linux

package finder

import "errors"

func setFinderInfo(path string, info []byte) error {
	return errors.New("finder: extended attributes not supported on this platform")
}
