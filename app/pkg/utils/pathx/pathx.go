package pathx

import (
	"path/filepath"

	"maxsubarray/app/pkg/assert"
)

// FromCwd resolves path against the working directory. An empty path is
// returned unchanged so optional settings stay unset.
func FromCwd(path string) string {
	if path == "" {
		return ""
	}

	connectedPath, err := filepath.Abs(filepath.FromSlash(path))
	assert.NoError(
		err, "not finding a path should never happen",
		assert.AssertData{"path": path},
	)

	return connectedPath
}
