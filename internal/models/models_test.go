package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidContentType(t *testing.T) {
	for _, ct := range ContentTypes {
		assert.True(t, ValidContentType(ct), ct)
	}
	assert.False(t, ValidContentType("podcast"))
	assert.False(t, ValidContentType(""))
	assert.False(t, ValidContentType("Article"), "content types are case sensitive")
}

func TestValidPlatform(t *testing.T) {
	for _, p := range Platforms {
		assert.True(t, ValidPlatform(p), p)
	}
	assert.False(t, ValidPlatform("facebook"))
	assert.False(t, ValidPlatform(""))
}

func TestValidReportReason(t *testing.T) {
	for _, r := range ReportReasons {
		assert.True(t, ValidReportReason(r), r)
	}
	assert.False(t, ValidReportReason("boring"))
}

func TestValidReportStatus(t *testing.T) {
	for _, s := range ReportStatuses {
		assert.True(t, ValidReportStatus(s), s)
	}
	assert.False(t, ValidReportStatus("archived"))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
