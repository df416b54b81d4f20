package satellite

import "encoding/json"

// Organization is a top-level tenant in Satellite. Only the fields the
// inventory needs are decoded.
type Organization struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Hostgroup is a named grouping of hosts defined in Satellite.
type Hostgroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Host is one managed host. Name and HostgroupName are pulled out for
// grouping; everything else the API returned stays in Attributes untouched
// so it can be served back as the host's variables.
type Host struct {
	Name          string
	HostgroupName string
	Attributes    map[string]any
}

func (h *Host) UnmarshalJSON(data []byte) error {
	var attrs map[string]any
	if err := json.Unmarshal(data, &attrs); err != nil {
		return err
	}
	h.Attributes = attrs
	if v, ok := attrs["name"].(string); ok {
		h.Name = v
	}
	if v, ok := attrs["hostgroup_name"].(string); ok {
		h.HostgroupName = v
	}
	return nil
}

// collection is the Satellite v2 API response envelope.
type collection[T any] struct {
	Total   int `json:"total"`
	Results []T `json:"results"`
}
