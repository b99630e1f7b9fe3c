package config

import (
	"strings"
	"time"
)

const (
	defaultSlotKey            = "academicSuite_user"
	defaultMaxResidentClients = 10000
)

// AuthConfig groups login and session manager configuration.
type AuthConfig struct {
	// LoginDelay is the simulated latency applied to every login attempt.
	// Zero disables it.
	LoginDelay time.Duration `env:"LOGIN_DELAY" envDefault:"1s"`

	// DirectoryFile is an optional YAML file replacing the built-in demo identities.
	DirectoryFile string `env:"AUTH_DIRECTORY_FILE"`

	// SlotKey namespaces the persisted identity of each client.
	SlotKey string `env:"SESSION_SLOT_KEY" envDefault:"academicSuite_user"`

	// MaxResidentClients bounds how many client session managers stay in memory.
	MaxResidentClients int `env:"AUTH_MAX_RESIDENT_CLIENTS" envDefault:"10000"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.LoginDelay < 0 {
		a.LoginDelay = 0
	}
	a.DirectoryFile = strings.TrimSpace(a.DirectoryFile)
	if a.SlotKey = strings.TrimSpace(a.SlotKey); a.SlotKey == "" {
		a.SlotKey = defaultSlotKey
	}
	if a.MaxResidentClients <= 0 {
		a.MaxResidentClients = defaultMaxResidentClients
	}
}
