package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to reelsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Remote content source (optional).
	sourcePrompt := promptui.Select{
		Label: "Content source",
		Items: []string{
			"local  — edit content through the built-in admin editor",
			"remote — pull content from a Supabase project",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 1 {
		urlPrompt := promptui.Prompt{
			Label: "Supabase project URL",
			Validate: func(s string) error {
				if s == "" {
					return fmt.Errorf("URL is required for the remote source")
				}
				return nil
			},
		}
		cfg.SupabaseURL, err = urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("supabase url: %w", err)
		}

		keyPrompt := promptui.Prompt{
			Label: "Supabase anon key",
			Mask:  '*',
			Validate: func(s string) error {
				if s == "" {
					return fmt.Errorf("key is required for the remote source")
				}
				return nil
			},
		}
		cfg.SupabaseKey, err = keyPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("supabase key: %w", err)
		}
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("port must be a number in 1..65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (local content database)",
		Default: cfg.DataDir,
	}
	cfg.DataDir, err = dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 4. Admin password.
	passPrompt := promptui.Prompt{
		Label:   "Admin editor password",
		Default: cfg.AdminPassword,
		Mask:    '*',
	}
	cfg.AdminPassword, err = passPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("admin password: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
