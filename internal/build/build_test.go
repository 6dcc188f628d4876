package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scriptmerge/internal/build"
)

func TestInfo(t *testing.T) {
	assert.Equal(t, "dev (commit none, built unknown)", build.Info())
}
