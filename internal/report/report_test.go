package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/securecrt-dump/models"
)

func ptr(s string) *string { return &s }

func TestRender(t *testing.T) {
	out := Render([]models.SessionRecord{
		{UnitName: "host1.ini", Hostname: ptr("host1"), Port: 22, Username: ptr("alice"), Password: ptr("Tr0ub4dor")},
		{UnitName: "locked.ini", Hostname: ptr("db.internal"), Port: 2222, Username: ptr("root")},
	})

	assert.True(t, strings.HasPrefix(out, Title))
	for _, want := range append(columns, "host1.ini", "host1", "22", "alice", "Tr0ub4dor", "locked.ini", "db.internal", "2222", "root") {
		assert.Contains(t, out, want)
	}

	// header line comes before the first record line
	assert.Less(t, strings.Index(out, "Filename"), strings.Index(out, "host1.ini"))
	assert.Less(t, strings.Index(out, "host1.ini"), strings.Index(out, "locked.ini"))
}

func TestRender_Empty(t *testing.T) {
	out := Render(nil)
	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Hostname")
}

func TestPortCell(t *testing.T) {
	assert.Equal(t, "", portCell(0))
	assert.Equal(t, "65535", portCell(65535))
}
