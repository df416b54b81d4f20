package inventory

import "regexp"

// Groups maps an Ansible group name to the host names in that group.
// Host order follows the order the API returned them.
type Groups map[string][]string

// HostVars maps a host name to its full attribute record as returned by
// the Satellite API.
type HostVars map[string]map[string]any

var unsafeGroupChars = regexp.MustCompile(`[^A-Za-z0-9\-]`)

// SafeGroupName replaces characters that are not valid in Ansible group
// names with underscores.
func SafeGroupName(name string) string {
	return unsafeGroupChars.ReplaceAllString(name, "_")
}
