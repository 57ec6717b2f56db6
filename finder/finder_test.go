package finder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/macpaint/finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagMissingFile(t *testing.T) {
	err := finder.Tag(filepath.Join(t.TempDir(), "nope"), finder.TypeMacPaint, finder.CreatorMacPaint)
	assert.Error(t, err)
}

// Tagging is best effort; most filesystems refuse the Apple attribute
// namespace, so only assert that a failure surfaces as an error rather
// than a panic or silent misbehavior.
func TestTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.mac")
	require.NoError(t, os.WriteFile(path, []byte{}, 0644))

	_ = finder.Tag(path, finder.TypeMacPaint, finder.CreatorMacPaint)
}
