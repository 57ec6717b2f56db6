/*
Package finder tags files with classic Mac OS type and creator codes.

The codes are stored in the com.apple.FinderInfo extended attribute,
which the Finder (and anything that speaks AppleDouble, netatalk for
example) picks up. Tagging is inherently best effort: most filesystems
outside macOS will refuse the attribute, and callers are expected to
treat a failure as a warning rather than an error.
*/
package finder

// FinderInfo is 32 bytes: the type and creator codes followed by
// Finder flags, window location and reserved fields which we leave
// zeroed.
const infoSize = 32

// MacPaint files use these codes.
const (
	TypeMacPaint    = "PNTG"
	CreatorMacPaint = "MPNT"
)

// Tag records the given four character type and creator codes on the
// file at path.
func Tag(path, fileType, creator string) error {
	var info [infoSize]byte
	copy(info[0:4], fileType)
	copy(info[4:8], creator)
	return setFinderInfo(path, info[:])
}
