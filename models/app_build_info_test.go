package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Summary(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "", "9f1c2e")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Empty(t, info.BuildDate())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: N/A\nBuild commit: 9f1c2e\n", info.Summary())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", AppBuildInfo{}.Summary())
}
