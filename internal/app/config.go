package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"paperwire/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Width     int
	GroupSize int
	ParityTag string // a single printable character
	Compress  bool
	Logger    *zap.Logger // optional; defaults to a no-op logger
}

// DefaultConfig returns a Config matching domain.DefaultParams.
func DefaultConfig() Config {
	p := domain.DefaultParams()
	return Config{Width: p.Width, GroupSize: p.GroupSize, ParityTag: string(p.ParityTag)}
}

// Params converts the Config to validated transcript parameters.
func (c Config) Params() (domain.Params, error) {
	if len(c.ParityTag) != 1 {
		return domain.Params{}, fmt.Errorf("parity tag must be a single character, got %q", c.ParityTag)
	}
	p := domain.Params{Width: c.Width, GroupSize: c.GroupSize, ParityTag: c.ParityTag[0]}
	if err := p.Validate(); err != nil {
		return domain.Params{}, err
	}
	return p, nil
}

// Profile is a saved parameter set; both ends of a transfer can point at
// the same file instead of repeating flags. Absent fields keep their
// current value.
type Profile struct {
	Width     *int    `yaml:"width"`
	GroupSize *int    `yaml:"group_size"`
	ParityTag *string `yaml:"parity_tag"`
	Compress  *bool   `yaml:"compress"`
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Apply overlays the profile's set fields onto c.
func (c *Config) Apply(p Profile) {
	if p.Width != nil {
		c.Width = *p.Width
	}
	if p.GroupSize != nil {
		c.GroupSize = *p.GroupSize
	}
	if p.ParityTag != nil {
		c.ParityTag = *p.ParityTag
	}
	if p.Compress != nil {
		c.Compress = *p.Compress
	}
}
