// Package inventory builds the group-to-host mapping from Satellite and
// serves the two query modes of the CLI.
package inventory

import (
	"github.com/nstrug/ansible-satellite6/internal/cache"
	"github.com/nstrug/ansible-satellite6/internal/satellite"
)

// API is the slice of the Satellite client the builder needs.
type API interface {
	ListHostgroups(orgID int) ([]satellite.Hostgroup, error)
	ListHosts(orgID int) ([]satellite.Host, error)
}

// Builder fetches hosts from Satellite and persists the result.
type Builder struct {
	api   API
	store *cache.Store
	orgID int
}

// NewBuilder creates a Builder scoped to one organization.
func NewBuilder(api API, store *cache.Store, orgID int) *Builder {
	return &Builder{api: api, store: store, orgID: orgID}
}

// Refresh fetches hostgroups and hosts from Satellite, groups host names
// by hostgroup, and writes both cache files. Nothing is written when a
// remote call fails.
func (b *Builder) Refresh() (Groups, HostVars, error) {
	// Fetched for parity with the API surface; grouping only needs the
	// hostgroup_name carried on each host record.
	if _, err := b.api.ListHostgroups(b.orgID); err != nil {
		return nil, nil, err
	}
	hosts, err := b.api.ListHosts(b.orgID)
	if err != nil {
		return nil, nil, err
	}

	groups := make(Groups)
	hostvars := make(HostVars, len(hosts))
	for _, h := range hosts {
		group := SafeGroupName(h.HostgroupName)
		groups[group] = append(groups[group], h.Name)
		hostvars[h.Name] = h.Attributes
	}

	if err := b.store.Save(hostvars, groups); err != nil {
		return nil, nil, err
	}
	return groups, hostvars, nil
}
