package satellite

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ErrOrganizationNotFound is returned when the organization search yields
// no results. The caller maps it to exit code 1.
var ErrOrganizationNotFound = errors.New("organization not found")

// Client is an HTTP client for the Satellite 6 REST API (api/v2).
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a Satellite API client using basic auth.
// host is the base URL, e.g. "https://satellite.example.com".
func NewClient(host, username, password string, insecure bool) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure},
	}
	return &Client{
		baseURL:    host + "/api/v2",
		username:   username,
		password:   password,
		httpClient: &http.Client{Transport: transport},
	}
}

// get performs a GET request and decodes the JSON response into result.
func (c *Client) get(path string, query url.Values, result interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GET %s: HTTP %d: %s", path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("GET %s: parsing response: %w", path, err)
	}
	return nil
}

// SearchOrganization looks up an organization by name. Returns
// ErrOrganizationNotFound if the search comes back empty.
func (c *Client) SearchOrganization(name string) (*Organization, error) {
	var orgs collection[Organization]
	q := url.Values{"search": {name}}
	if err := c.get("/organizations", q, &orgs); err != nil {
		return nil, err
	}
	if len(orgs.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrOrganizationNotFound, name)
	}
	return &orgs.Results[0], nil
}

// ListHostgroups returns all hostgroups in the organization.
func (c *Client) ListHostgroups(orgID int) ([]Hostgroup, error) {
	var groups collection[Hostgroup]
	q := url.Values{"organization_id": {strconv.Itoa(orgID)}}
	if err := c.get("/hostgroups", q, &groups); err != nil {
		return nil, err
	}
	return groups.Results, nil
}

// ListHosts returns all hosts in the organization with their full
// attribute records.
func (c *Client) ListHosts(orgID int) ([]Host, error) {
	var hosts collection[Host]
	q := url.Values{"organization_id": {strconv.Itoa(orgID)}}
	if err := c.get("/hosts", q, &hosts); err != nil {
		return nil, err
	}
	return hosts.Results, nil
}
