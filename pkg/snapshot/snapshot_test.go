package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	obj := map[string]interface{}{"trump": "hearts", "stockSize": 10}

	// the first call writes the file
	ValidateSnapshot(t, obj, 0)
	_, err = os.Stat(filepath.Join("testdata", "snapshot.TestValidateSnapshot-0.json"))
	assert.NoError(t, err)

	// later runs compare against it
	funcCount = make(map[string]int)
	ValidateSnapshot(t, obj, 0)
}
