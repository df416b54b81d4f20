package inventory

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/nstrug/ansible-satellite6/internal/cache"
	"github.com/nstrug/ansible-satellite6/internal/config"
	"github.com/nstrug/ansible-satellite6/internal/satellite"
)

// Options are the query flags of the inventory CLI.
type Options struct {
	Host         string // print this host's variables instead of the group listing
	RefreshCache bool   // bypass the cache-validity check
}

// Run parses the CLI flags, resolves the configured organization and
// executes the query. It is the whole program behind the inventory binary.
func Run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("satellite-inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts Options
	fs.Bool("list", true, "List all groups and their hosts (default)")
	fs.StringVar(&opts.Host, "host", "", "Print the cached variables for one host")
	fs.BoolVar(&opts.RefreshCache, "refresh-cache", false, "Force a refresh from Satellite, bypassing the cache")
	configPath := fs.String("config", "", "Path to the config file (default: ~/.config/satellite-inventory/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	client := satellite.NewClient(cfg.Host, cfg.Username, cfg.Password, cfg.Insecure)
	org, err := client.SearchOrganization(cfg.Organization)
	if err != nil {
		return err
	}

	store := cache.New(cfg.CacheDir, time.Duration(cfg.CacheMaxAge)*time.Second)
	return Query(opts, NewBuilder(client, store, org.ID), store, stdout)
}

// Query decides between a remote refresh and a cache load, then renders
// either the full inventory or one host's variables as JSON on stdout.
func Query(opts Options, b *Builder, store *cache.Store, stdout io.Writer) error {
	var groups Groups
	var hostvars HostVars
	var err error
	if opts.RefreshCache || !store.Valid() {
		groups, hostvars, err = b.Refresh()
	} else {
		groups, hostvars, err = store.Load()
	}
	if err != nil {
		return err
	}

	if opts.Host != "" {
		vars, ok := hostvars[opts.Host]
		if !ok {
			// The host may have appeared since the last refresh: try once
			// more against Satellite before concluding it is gone.
			if _, hostvars, err = b.Refresh(); err != nil {
				return err
			}
			vars, ok = hostvars[opts.Host]
		}
		if !ok {
			vars = map[string]any{}
		}
		return printJSON(stdout, vars)
	}
	return printJSON(stdout, groups)
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
