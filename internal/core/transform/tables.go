package transform

// =============================================================================
// Lookup Tables
// =============================================================================

// arrayKeyFields maps array-valued section names to the element field that
// becomes the map key when the array is collapsed.
var arrayKeyFields = map[string]string{
	"roles":            "name",
	"services":         "name",
	"roleConfigGroups": "name",
	"clusters":         "name",
	"users":            "name",
	"hosts":            "hostId",
}

// apiPathSegments maps section names whose API resource differs from the
// field name.
var apiPathSegments = map[string]string{
	"versionInfo":       "cm/version",
	"managerSettings":   "cm/config",
	"managementService": "cm/service",
	"allHostsConfig":    "cm/allHosts/config",
}

var sensitiveFields = map[string]struct{}{
	"role_jceks_password": {},
}

// ArrayKeyField returns the key field used to collapse the array stored under
// field, and whether field is collapsed at all.
func ArrayKeyField(field string) (string, bool) {
	key, ok := arrayKeyFields[field]
	return key, ok
}

// APIPathSegment returns the API path segment addressing the section stored
// under field. Fields without a dedicated resource use their own name.
func APIPathSegment(field string) string {
	if segment, ok := apiPathSegments[field]; ok {
		return segment
	}
	return field
}

// IsSensitive reports whether field must never appear in output.
func IsSensitive(field string) bool {
	_, ok := sensitiveFields[field]
	return ok
}
