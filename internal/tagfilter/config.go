package tagfilter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagexpr"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// Config is the content of an items file: the items to filter and
// default include/exclude expressions.
type Config struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	Items   []Item   `yaml:"items"`
}

// hclConfig mirrors Config with item blocks labelled by name:
//
//	include = ["fast"]
//
//	item "api/users" {
//	  tags = ["fast", "api"]
//	}
type hclConfig struct {
	Include []string  `hcl:"include,optional"`
	Exclude []string  `hcl:"exclude,optional"`
	Items   []hclItem `hcl:"item,block"`
}

type hclItem struct {
	Name string   `hcl:"name,label"`
	Tags []string `hcl:"tags,optional"`
}

// LoadConfigFile reads and validates an items file. The format is chosen by
// extension: .hcl, or .yaml, .yml and .json.
func LoadConfigFile(ctx context.Context, path string) (*Config, error) {
	var cfg *Config

	err := TraceConfigLoad(ctx, path, func(_ context.Context) error {
		src, err := os.ReadFile(path)
		if err != nil {
			return errors.New(err)
		}

		cfg, err = ParseConfig(path, src)

		return err
	})
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseConfig decodes src according to the extension of filename and validates the result.
func ParseConfig(filename string, src []byte) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		cfg, err = parseHCL(filename, src)
	case ".yaml", ".yml", ".json":
		cfg, err = parseYAML(src)
	default:
		return nil, errors.New(UnsupportedFileFormatError{Path: filename})
	}

	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseHCL(filename string, src []byte) (*Config, error) {
	var raw hclConfig

	if err := hclsimple.Decode(filename, src, nil, &raw); err != nil {
		return nil, errors.New(err)
	}

	cfg := &Config{
		Include: raw.Include,
		Exclude: raw.Exclude,
		Items:   make([]Item, len(raw.Items)),
	}

	for i, item := range raw.Items {
		cfg.Items[i] = Item{Name: item.Name, Tags: item.Tags}
	}

	return cfg, nil
}

func parseYAML(src []byte) (*Config, error) {
	cfg := &Config{}

	if err := yaml.Unmarshal(src, cfg); err != nil {
		return nil, errors.New(err)
	}

	return cfg, nil
}

// Validate checks item names and tags. Tag names are trimmed in place.
func (cfg *Config) Validate() error {
	var errs *errors.MultiError

	seen := make(map[string]struct{}, len(cfg.Items))

	for i := range cfg.Items {
		item := &cfg.Items[i]

		if strings.TrimSpace(item.Name) == "" {
			errs = errs.Append(InvalidItemError{Item: fmt.Sprintf("#%d", i), Reason: "name must not be blank"})
			continue
		}

		if _, ok := seen[item.Name]; ok {
			errs = errs.Append(InvalidItemError{Item: item.Name, Reason: "duplicate name"})
			continue
		}

		seen[item.Name] = struct{}{}

		for j, tag := range item.Tags {
			if err := tagexpr.ValidateTag(tag); err != nil {
				errs = errs.Append(InvalidItemError{Item: item.Name, Reason: err.Error()})
				continue
			}

			item.Tags[j] = strings.TrimSpace(tag)
		}
	}

	return errs.ErrorOrNil()
}
