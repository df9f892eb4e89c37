// Package tier describes the ordered approval chain content moves through.
package tier

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownTier        = errors.New("unknown tier")
	ErrTransitionDisabled = errors.New("transition not enabled for tier")
)

// PublishedName is the name of the canonical collection set at the top of the chain.
const PublishedName = "published"

// AliasName is the route group that mirrors the first tier.
const AliasName = "content"

type ForwardMode string

const (
	// ModeReplace deletes each destination kind before inserting the source document.
	ModeReplace ForwardMode = "replace"
	// ModeMerge adds source content to the destination without deleting it.
	ModeMerge ForwardMode = "merge"
)

type Forward struct {
	Mode        ForwardMode `toml:"mode"`
	ClearSource bool        `toml:"clear_source"`
}

type Reject struct {
	Enabled    bool   `toml:"enabled"`
	NotifyRole string `toml:"notify_role"`
}

// Tier is one approval stage. Prefix selects its collection set.
type Tier struct {
	Name    string  `toml:"name"`
	Role    string  `toml:"role"`
	Prefix  string  `toml:"prefix"`
	Forward Forward `toml:"forward"`
	Reject  Reject  `toml:"reject"`
	Restore bool    `toml:"restore"`
}

// Namespace identifies a collection set in the store.
type Namespace struct {
	Name   string
	Prefix string
}

func (t Tier) Namespace() Namespace {
	return Namespace{Name: t.Name, Prefix: t.Prefix}
}

// Chain is ordered lowest tier first. The last tier forwards into the
// published set.
type Chain struct {
	Tiers           []Tier `toml:"tiers"`
	PublishedPrefix string `toml:"published_prefix"`
}

// Default mirrors how the site has always been run.
func Default() Chain {
	return Chain{
		Tiers: []Tier{
			{
				Name:    "admin",
				Role:    "admin",
				Prefix:  "admin_",
				Forward: Forward{Mode: ModeReplace, ClearSource: true},
				Restore: true,
			},
			{
				Name:    "leadadmin",
				Role:    "leadadmin",
				Prefix:  "leadadmin_",
				Forward: Forward{Mode: ModeReplace, ClearSource: false},
				// Rejections go back to the submitting role, as the site was deployed.
				Reject:  Reject{Enabled: true, NotifyRole: "admin"},
				Restore: true,
			},
			{
				Name:    "superadmin",
				Role:    "superadmin",
				Prefix:  "superadmin_",
				Forward: Forward{Mode: ModeMerge, ClearSource: false},
				Reject:  Reject{Enabled: true, NotifyRole: "leadadmin"},
			},
		},
		PublishedPrefix: "",
	}
}

func (c Chain) Published() Namespace {
	return Namespace{Name: PublishedName, Prefix: c.PublishedPrefix}
}

// Lookup returns the tier called name and its position in the chain.
func (c Chain) Lookup(name string) (Tier, int, error) {
	for i, t := range c.Tiers {
		if t.Name == name {
			return t, i, nil
		}
	}
	return Tier{}, -1, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// Destination is where Forward on the named tier writes to.
func (c Chain) Destination(name string) (Namespace, error) {
	_, i, err := c.Lookup(name)
	if err != nil {
		return Namespace{}, err
	}
	if i == len(c.Tiers)-1 {
		return c.Published(), nil
	}
	return c.Tiers[i+1].Namespace(), nil
}

// Rank is the chain position of the tier owning role, or -1.
func (c Chain) Rank(role string) int {
	for i, t := range c.Tiers {
		if t.Role == role {
			return i
		}
	}
	return -1
}

// Allows reports whether role may act on the named tier: any role at or above
// the tier in the chain.
func (c Chain) Allows(role, name string) bool {
	_, i, err := c.Lookup(name)
	if err != nil {
		return false
	}
	r := c.Rank(role)
	return r >= 0 && r >= i
}

// Validate checks the chain is usable before the server starts.
func (c Chain) Validate() error {
	if len(c.Tiers) == 0 {
		return errors.New("tier chain is empty")
	}
	names := map[string]bool{PublishedName: true, AliasName: true}
	prefixes := map[string]bool{c.PublishedPrefix: true}
	roles := map[string]bool{}
	for _, t := range c.Tiers {
		if t.Name == "" {
			return errors.New("tier name is required")
		}
		if t.Name == PublishedName || t.Name == AliasName {
			return fmt.Errorf("tier name %q is reserved", t.Name)
		}
		if names[t.Name] {
			return fmt.Errorf("duplicate tier name %q", t.Name)
		}
		names[t.Name] = true
		if t.Prefix == "" || prefixes[t.Prefix] {
			return fmt.Errorf("tier %q: prefix %q must be unique and non-empty", t.Name, t.Prefix)
		}
		prefixes[t.Prefix] = true
		if t.Role == "" {
			return fmt.Errorf("tier %q: role is required", t.Name)
		}
		roles[t.Role] = true
		switch t.Forward.Mode {
		case ModeReplace, ModeMerge:
		default:
			return fmt.Errorf("tier %q: unknown forward mode %q", t.Name, t.Forward.Mode)
		}
	}
	for _, t := range c.Tiers {
		if t.Reject.Enabled && t.Reject.NotifyRole != "" && !roles[t.Reject.NotifyRole] {
			return fmt.Errorf("tier %q: notify role %q is not in the chain", t.Name, t.Reject.NotifyRole)
		}
	}
	return nil
}

// Order is the lock order of ns. The published set sorts last.
func (c Chain) Order(ns Namespace) int {
	for i, t := range c.Tiers {
		if t.Name == ns.Name {
			return i
		}
	}
	return len(c.Tiers)
}
