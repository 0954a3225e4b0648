package mapx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyNoDuplicates(t *testing.T) {
	dst := BasicMap{"msg": "assert failed", "path": "a", "path_": "b"}
	src := BasicMap{"path": "c", "dataset": "classic"}

	duplicates := CopyNoDuplicates(src, dst)

	assert.Equal(t, []string{"path"}, duplicates)
	assert.Equal(t, BasicMap{
		"msg":     "assert failed",
		"path":    "a",
		"path_":   "b",
		"path__":  "c",
		"dataset": "classic",
	}, dst)
}
