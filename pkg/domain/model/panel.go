package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Default markup contract of the panel
const (
	DefaultLoginPath        = "/login"
	DefaultBlocklistPath    = "/blocklist"
	DefaultUsernameSelector = "input[name='Username']"
	DefaultPasswordSelector = "input[name='Password']"
	DefaultSubmitSelector   = "button[type='submit'], input[type='submit']"
	DefaultSuccessSelector  = ".alert-success, .toast-success"
	DefaultErrorSelector    = ".alert-danger, .alert-error"
)

// PanelProfile describes the paths and CSS selectors the relay relies on
type PanelProfile struct {
	LoginPath        string `yaml:"login_path"`
	BlocklistPath    string `yaml:"blocklist_path"`
	UsernameSelector string `yaml:"username_selector"`
	PasswordSelector string `yaml:"password_selector"`
	SubmitSelector   string `yaml:"submit_selector"`
	SuccessSelector  string `yaml:"success_selector"`
	ErrorSelector    string `yaml:"error_selector"`
}

// DefaultPanelProfile returns the profile matching the panel's current markup
func DefaultPanelProfile() PanelProfile {
	return PanelProfile{
		LoginPath:        DefaultLoginPath,
		BlocklistPath:    DefaultBlocklistPath,
		UsernameSelector: DefaultUsernameSelector,
		PasswordSelector: DefaultPasswordSelector,
		SubmitSelector:   DefaultSubmitSelector,
		SuccessSelector:  DefaultSuccessSelector,
		ErrorSelector:    DefaultErrorSelector,
	}
}

// WithDefaults fills empty fields from the default profile
func (p PanelProfile) WithDefaults() PanelProfile {
	d := DefaultPanelProfile()
	if p.LoginPath == "" {
		p.LoginPath = d.LoginPath
	}
	if p.BlocklistPath == "" {
		p.BlocklistPath = d.BlocklistPath
	}
	if p.UsernameSelector == "" {
		p.UsernameSelector = d.UsernameSelector
	}
	if p.PasswordSelector == "" {
		p.PasswordSelector = d.PasswordSelector
	}
	if p.SubmitSelector == "" {
		p.SubmitSelector = d.SubmitSelector
	}
	if p.SuccessSelector == "" {
		p.SuccessSelector = d.SuccessSelector
	}
	if p.ErrorSelector == "" {
		p.ErrorSelector = d.ErrorSelector
	}
	return p
}

// Validate validates the panel profile
func (p PanelProfile) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"login_path", p.LoginPath},
		{"blocklist_path", p.BlocklistPath},
		{"username_selector", p.UsernameSelector},
		{"password_selector", p.PasswordSelector},
		{"submit_selector", p.SubmitSelector},
		{"success_selector", p.SuccessSelector},
		{"error_selector", p.ErrorSelector},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return goerr.New("panel profile field is required", goerr.V("field", f.name))
		}
	}

	for _, path := range []string{p.LoginPath, p.BlocklistPath} {
		if !strings.HasPrefix(path, "/") {
			return goerr.New("panel path must start with '/'", goerr.V("path", path))
		}
	}

	return nil
}
