// Package agentconfig parses the audited installation's configuration.
// OpenClaw configs are authored as JSONC (JSON extended with comments
// and trailing commas), with arbitrary extra keys permitted; parsing
// strips the extensions with tidwall/jsonc and unmarshals the result.
//
// Optional booleans are modeled as *bool so checks can distinguish
// absent / explicitly false / explicitly true: several checks treat
// absence and false identically while others only fire on an explicit
// setting. The original source text is kept as a side channel because
// some checks pattern-match literal layout (for example, whether a
// secret is inline or an environment-variable reference), which the
// parsed structure cannot answer.
package agentconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Config is the parsed agent configuration plus its raw source text.
type Config struct {
	// Path is the config file the values came from.
	Path string `json:"-"`

	// Raw is the original source text, before comment stripping.
	Raw string `json:"-"`

	Gateway   *Gateway   `json:"gateway,omitempty"`
	Sandbox   *Sandbox   `json:"sandbox,omitempty"`
	Model     *Model     `json:"model,omitempty"`
	Tools     *Tools     `json:"tools,omitempty"`
	Logging   *Logging   `json:"logging,omitempty"`
	CloudSync *CloudSync `json:"cloudSync,omitempty"`
	Update    *Update    `json:"update,omitempty"`
	Access    *Access    `json:"access,omitempty"`
}

// Gateway configures the local gateway server.
type Gateway struct {
	Bind string       `json:"bind,omitempty"`
	Port *int         `json:"port,omitempty"`
	Auth *GatewayAuth `json:"auth,omitempty"`
	TLS  *TLS         `json:"tls,omitempty"`
}

// GatewayAuth configures gateway authentication.
type GatewayAuth struct {
	Enabled  *bool  `json:"enabled,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Token    string `json:"token,omitempty"`
	Password string `json:"password,omitempty"`
}

// TLS configures gateway transport security.
type TLS struct {
	Enabled *bool `json:"enabled,omitempty"`
}

// Sandbox configures agent execution isolation.
type Sandbox struct {
	Enabled          *bool  `json:"enabled,omitempty"`
	Mode             string `json:"mode,omitempty"`
	AllowHostNetwork *bool  `json:"allowHostNetwork,omitempty"`
}

// Model configures which models the installation may talk to.
type Model struct {
	Primary   string   `json:"primary,omitempty"`
	Allowlist []string `json:"allowlist,omitempty"`
}

// Tools configures the agent tool surface.
type Tools struct {
	AllowShell         *bool    `json:"allowShell,omitempty"`
	ConfirmDestructive *bool    `json:"confirmDestructive,omitempty"`
	Deny               []string `json:"deny,omitempty"`
}

// Logging configures log output and redaction.
type Logging struct {
	Level         string `json:"level,omitempty"`
	RedactSecrets *bool  `json:"redactSecrets,omitempty"`
}

// CloudSync configures workspace replication to a remote provider.
type CloudSync struct {
	Enabled  *bool  `json:"enabled,omitempty"`
	Encrypt  *bool  `json:"encrypt,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// Update configures self-update behavior.
type Update struct {
	AutoUpdate *bool  `json:"autoUpdate,omitempty"`
	Channel    string `json:"channel,omitempty"`
}

// Access configures who may drive the agent. AllowedGroups keeps the
// absent-vs-explicitly-empty distinction: nil means unset, an empty
// slice means the operator wrote "allowedGroups": [].
type Access struct {
	AllowedGroups []string `json:"allowedGroups,omitempty"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result. Raw keeps the original bytes.
func Parse(data []byte) (*Config, error) {
	stripped := jsonc.ToJSON(data)

	var cfg Config
	if err := json.Unmarshal(stripped, &cfg); err != nil {
		return nil, fmt.Errorf("parsing agent config: %w", err)
	}
	cfg.Raw = string(data)
	return &cfg, nil
}

// Load reads and parses the config file at path. A file that exists but
// fails to parse returns an error; the caller degrades the parsed
// config to nil so config-dependent checks are skipped as a category.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// DetectToolVersion reads the installed agent version from the
// installation's package.json, or returns "" when unavailable.
func DetectToolVersion(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.Version
}
