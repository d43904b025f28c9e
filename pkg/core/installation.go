package core

// Installation describes a Visual Studio installation found by a discovery
// tool such as vswhere. Only InstallationPath is required.
type Installation struct {
	InstallationPath string `yaml:"installation_path" toml:"installation_path" json:"installationPath"`
	InstanceID       string `yaml:"instance_id,omitempty" toml:"instance_id" json:"instanceId,omitempty"`
	DisplayName      string `yaml:"display_name,omitempty" toml:"display_name" json:"displayName,omitempty"`
	Version          string `yaml:"version,omitempty" toml:"version" json:"installationVersion,omitempty"`
}
