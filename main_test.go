package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyScale(t *testing.T) {
	t.Setenv("FYNE_SCALE", "")

	require.NoError(t, applyScale(0))
	assert.Empty(t, os.Getenv("FYNE_SCALE"), "zero leaves fyne's scale alone")

	require.NoError(t, applyScale(1.5))
	assert.Equal(t, "1.5", os.Getenv("FYNE_SCALE"))
}
