package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/nstrug/ansible-satellite6/internal/config"
	"github.com/nstrug/ansible-satellite6/internal/satellite"
)

// Setup runs the interactive configuration wizard for the inventory.
func Setup(args []string) error {
	reinit := false
	path := ""
	for _, a := range args {
		if a == "--reinit" || a == "-r" {
			reinit = true
		} else {
			path = a
		}
	}
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !reinit {
		fmt.Printf("A config already exists at %s. Run with --reinit to overwrite.\n", path)
		return nil
	}

	fmt.Println("Welcome to satellite-setup. Let's configure the Satellite inventory.")
	fmt.Println()

	var cfg config.Config
	maxAge := "300"
	cacheDir := defaultCacheDir()

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Satellite URL").
				Description("e.g. https://satellite.example.com").
				Value(&cfg.Host).
				Validate(func(s string) error {
					if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
						return fmt.Errorf("must start with http:// or https://")
					}
					return nil
				}),
			huh.NewInput().
				Title("Username").
				Value(&cfg.Username).
				Validate(notEmpty("username")),
			huh.NewInput().
				Title("Password").
				Description("Stored in the config file with 0600 perms; SATELLITE_PASSWORD overrides it.").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Password).
				Validate(notEmpty("password")),
			huh.NewInput().
				Title("Organization").
				Description("The Satellite organization to inventory.").
				Value(&cfg.Organization).
				Validate(notEmpty("organization")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Cache directory").
				Value(&cacheDir).
				Validate(func(s string) error {
					if !strings.HasPrefix(s, "/") {
						return fmt.Errorf("must be an absolute path")
					}
					return nil
				}),
			huh.NewInput().
				Title("Cache max age (seconds)").
				Value(&maxAge).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("must be a positive number of seconds")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Skip TLS certificate verification?").
				Description("Only for Satellites with self-signed certificates.").
				Value(&cfg.Insecure),
		),
	).Run(); err != nil {
		return err
	}

	cfg.CacheDir = cacheDir
	cfg.CacheMaxAge, _ = strconv.Atoi(maxAge)

	if err := config.Save(&cfg, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Created %s\n", path)

	fmt.Printf("Checking connectivity to %s...\n", cfg.Host)
	client := satellite.NewClient(cfg.Host, cfg.Username, cfg.Password, cfg.Insecure)
	org, err := client.SearchOrganization(cfg.Organization)
	if err != nil {
		fmt.Printf("warning: could not verify organization %q: %v\n", cfg.Organization, err)
		fmt.Println("The config was written anyway; fix the connection details and re-run with --reinit if needed.")
		return nil
	}
	fmt.Printf("Found organization %q (id %d).\n", org.Name, org.ID)

	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println("  1. Run: satellite-inventory --list")
	fmt.Println("  2. Point Ansible at the binary: ansible -i satellite-inventory all -m ping")

	return nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/var/cache/satellite-inventory"
	}
	return home + "/.cache/satellite-inventory"
}
