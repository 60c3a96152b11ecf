package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayKeyField(t *testing.T) {
	tests := []struct {
		field string
		key   string
		ok    bool
	}{
		{"roles", "name", true},
		{"services", "name", true},
		{"roleConfigGroups", "name", true},
		{"clusters", "name", true},
		{"users", "name", true},
		{"hosts", "hostId", true},
		{"parcels", "", false},
		{"items", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			key, ok := ArrayKeyField(tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestAPIPathSegment(t *testing.T) {
	assert.Equal(t, "cm/version", APIPathSegment("versionInfo"))
	assert.Equal(t, "cm/config", APIPathSegment("managerSettings"))
	assert.Equal(t, "cm/service", APIPathSegment("managementService"))
	assert.Equal(t, "cm/allHosts/config", APIPathSegment("allHostsConfig"))
	assert.Equal(t, "clusters", APIPathSegment("clusters"))
}

func TestIsSensitive(t *testing.T) {
	assert.True(t, IsSensitive("role_jceks_password"))
	assert.False(t, IsSensitive("password"))
	assert.False(t, IsSensitive("ROLE_JCEKS_PASSWORD"))
}
