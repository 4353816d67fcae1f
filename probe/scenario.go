// Package probe runs data-driven checks against the visibility decision
// table: each scenario states an ambient configuration and the token
// expansions and declaration rewrites expected under it. Scenarios are
// the executable form of the distribution's compile-time guarantees.
package probe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lumenworks/visgen/errors"
)

// Scenario is one probe file: a configuration plus expectations.
type Scenario struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`

	Config Config `toml:"config"`

	Predefines []Predefine   `toml:"predefine"`
	Expects    []Expectation `toml:"expect"`
	Rewrites   []Rewrite     `toml:"rewrite"`
}

// Config mirrors the build profile shape inside a scenario file.
type Config struct {
	Build    string            `toml:"build"`
	Platform string            `toml:"platform"`
	Compiler string            `toml:"compiler"`
	Roles    map[string]string `toml:"roles"`
}

// Predefine installs a consumer override before the header applies.
type Predefine struct {
	Module string `toml:"module"`
	Token  string `toml:"token"`
	Value  string `toml:"value"`
}

// Expectation states the text one token must expand to.
type Expectation struct {
	Module string `toml:"module"`
	Token  string `toml:"token"`
	Value  string `toml:"value"`
}

// Rewrite states what an annotated declaration must rewrite to.
type Rewrite struct {
	Module string `toml:"module"`
	Decl   string `toml:"decl"`
	Want   string `toml:"want"`
}

// Load reads one scenario file. A scenario without a name takes its
// filename; a scenario without expectations is rejected outright since
// it could never fail.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}

	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario %s", path)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(s.Expects) == 0 && len(s.Rewrites) == 0 {
		return nil, errors.Newf("scenario %s has no expectations", path)
	}
	return &s, nil
}

// LoadAll reads several scenario files, failing on the first bad one.
func LoadAll(paths []string) ([]*Scenario, error) {
	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
