package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/bestpick/cardnav/internal/motion"
	"github.com/bestpick/cardnav/internal/validate"
	"github.com/bestpick/cardnav/internal/viewport"
)

// MaxCards is the number of cards the panel lays out. Extra cards are kept in
// the loaded config but never rendered.
//
// TODO: confirm with product whether a fourth card should wrap to a second row
// instead of being dropped.
const MaxCards = 3

// Defaults applied to empty fields after loading.
const (
	DefaultLogo       = "◆"
	DefaultLogoAlt    = "Logo"
	DefaultBrandText  = "Best Pick"
	DefaultHref       = "#"
	DefaultNavBg      = "#FFFFFF"
	DefaultMenuColor  = "#000000"
	DefaultCtaBg      = "#000000"
	DefaultCtaText    = "#FFFFFF"
	DefaultCardBg     = "#171717"
	DefaultCardText   = "#FFFFFF"
	DefaultCtaLabel   = "Get Started"
	DefaultConfigName = "cardnav.yaml"
)

// ErrUnknownFormat is returned for config files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown config file format")

// Link is one entry inside a card.
type Link struct {
	Label     string `json:"label"               koanf:"label"     validate:"required" yaml:"label"`
	Href      string `json:"href,omitempty"      koanf:"href"                          yaml:"href,omitempty"`
	AriaLabel string `json:"ariaLabel"           koanf:"ariaLabel" validate:"required" yaml:"ariaLabel"`
}

// Card is one panel card.
type Card struct {
	Label     string `json:"label"               koanf:"label"     validate:"required" yaml:"label"`
	BgClass   string `json:"bgClass,omitempty"   koanf:"bgClass"   validate:"color"    yaml:"bgClass,omitempty"`
	TextClass string `json:"textClass,omitempty" koanf:"textClass" validate:"color"    yaml:"textClass,omitempty"`
	Links     []Link `json:"links"               koanf:"links"     validate:"dive"     yaml:"links"`
}

// Layout holds responsive layout knobs.
type Layout struct {
	// Breakpoint is the widest terminal width, in columns, treated as narrow.
	Breakpoint int `json:"breakpoint,omitempty" koanf:"breakpoint" validate:"gte=0" yaml:"breakpoint,omitempty"`
}

// Config is the static, externally supplied configuration of the nav.
// Style-hint fields are opaque to the animation core.
type Config struct {
	Logo           string `json:"logo,omitempty"           koanf:"logo"                                   yaml:"logo,omitempty"`
	LogoAlt        string `json:"logoAlt,omitempty"        koanf:"logoAlt"                                yaml:"logoAlt,omitempty"`
	BrandText      string `json:"brandText,omitempty"      koanf:"brandText"                              yaml:"brandText,omitempty"`
	BrandTextClass string `json:"brandTextClass,omitempty" koanf:"brandTextClass" validate:"color"        yaml:"brandTextClass,omitempty"`
	Ease           string `json:"ease,omitempty"           koanf:"ease"           validate:"omitempty,ease" yaml:"ease,omitempty"`
	NavBgClass     string `json:"navBgClass,omitempty"     koanf:"navBgClass"     validate:"color"        yaml:"navBgClass,omitempty"`
	MenuColorClass string `json:"menuColorClass,omitempty" koanf:"menuColorClass" validate:"color"        yaml:"menuColorClass,omitempty"`
	CtaBgClass     string `json:"ctaBgClass,omitempty"     koanf:"ctaBgClass"     validate:"color"        yaml:"ctaBgClass,omitempty"`
	CtaTextClass   string `json:"ctaTextClass,omitempty"   koanf:"ctaTextClass"   validate:"color"        yaml:"ctaTextClass,omitempty"`
	Layout         Layout `json:"layout"                   koanf:"layout"                                 yaml:"layout"`
	Items          []Card `json:"items"                    koanf:"items"          validate:"dive"         yaml:"items"`

	// Path is where the config was loaded from; empty for the built-in default.
	Path string `json:"-" koanf:"-" yaml:"-"`
}

// Default returns the built-in three-card configuration.
func Default() *Config {
	c := &Config{
		LogoAlt: "Company Logo",
		Items: []Card{
			{
				Label: "About", BgClass: "#0D0716", TextClass: "#FFFFFF",
				Links: []Link{
					{Label: "Company", Href: "#company", AriaLabel: "About Company"},
					{Label: "Careers", Href: "#careers", AriaLabel: "About Careers"},
				},
			},
			{
				Label: "Projects", BgClass: "#170D27", TextClass: "#FFFFFF",
				Links: []Link{
					{Label: "Featured", Href: "#featured", AriaLabel: "Featured Projects"},
					{Label: "Case Studies", Href: "#case-studies", AriaLabel: "Project Case Studies"},
				},
			},
			{
				Label: "Contact", BgClass: "#271E37", TextClass: "#FFFFFF",
				Links: []Link{
					{Label: "Email", Href: "#email", AriaLabel: "Email us"},
					{Label: "Twitter", Href: "#twitter", AriaLabel: "Twitter"},
					{Label: "LinkedIn", Href: "#linkedin", AriaLabel: "LinkedIn"},
				},
			},
		},
	}
	c.ApplyDefaults()
	return c
}

// Load reads, parses, defaults and validates the config at path. The format is
// chosen from the extension: .json, .yaml/.yml or .toml.
func Load(path string) (*Config, error) {
	expanded, err := expandTilde(path)
	if err != nil {
		return nil, err
	}
	logrus.Debug("Loading nav config from: ", expanded)

	c := &Config{}
	if err := decode(expanded, c); err != nil {
		return nil, fmt.Errorf("load %s: %w", expanded, err)
	}
	c.Path = expanded
	c.ApplyDefaults()

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", expanded, err)
	}
	if len(c.Items) > MaxCards {
		logrus.WithFields(logrus.Fields{
			"supplied": len(c.Items),
			"rendered": MaxCards,
		}).Warn("Only the first cards of the nav config are rendered; extra cards are ignored.")
	}
	return c, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// ApplyDefaults fills empty fields. It is idempotent.
func (c *Config) ApplyDefaults() {
	if c.Logo == "" {
		c.Logo = DefaultLogo
	}
	if c.LogoAlt == "" {
		c.LogoAlt = DefaultLogoAlt
	}
	if c.BrandText == "" {
		c.BrandText = DefaultBrandText
	}
	if c.Ease == "" {
		c.Ease = motion.DefaultEase
	}
	if c.NavBgClass == "" {
		c.NavBgClass = DefaultNavBg
	}
	if c.MenuColorClass == "" {
		c.MenuColorClass = DefaultMenuColor
	}
	if c.CtaBgClass == "" {
		c.CtaBgClass = DefaultCtaBg
	}
	if c.CtaTextClass == "" {
		c.CtaTextClass = DefaultCtaText
	}
	if c.Layout.Breakpoint == 0 {
		c.Layout.Breakpoint = viewport.DefaultBreakpoint
	}
	for i := range c.Items {
		item := &c.Items[i]
		if item.BgClass == "" {
			item.BgClass = DefaultCardBg
		}
		if item.TextClass == "" {
			item.TextClass = DefaultCardText
		}
		for j := range item.Links {
			if item.Links[j].Href == "" {
				item.Links[j].Href = DefaultHref
			}
		}
	}
}

// Cards returns the cards that are laid out: at most MaxCards, in order.
func (c *Config) Cards() []Card {
	if len(c.Items) > MaxCards {
		return c.Items[:MaxCards]
	}
	return c.Items
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
