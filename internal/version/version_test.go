package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	full := FullVersion()
	assert.Contains(t, full, Version)
	assert.Contains(t, full, Commit)
	assert.Contains(t, full, Date)
}
