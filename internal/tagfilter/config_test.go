package tagfilter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gruntwork-io/tagexpr/internal/errors"
	"github.com/gruntwork-io/tagexpr/internal/tagfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hclConfig = `
include = ["fast"]
exclude = ["flaky"]

item "api/users" {
  tags = ["fast", "api"]
}

item "db/migrate" {
  tags = [" slow ", "db"]
}

item "untagged" {}
`

const yamlConfig = `
include:
  - fast
exclude:
  - flaky
items:
  - name: api/users
    tags: [fast, api]
  - name: db/migrate
    tags: [" slow ", db]
  - name: untagged
`

const jsonConfig = `{
  "include": ["fast"],
  "exclude": ["flaky"],
  "items": [
    {"name": "api/users", "tags": ["fast", "api"]},
    {"name": "db/migrate", "tags": [" slow ", "db"]},
    {"name": "untagged"}
  ]
}`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	expected := &tagfilter.Config{
		Include: []string{"fast"},
		Exclude: []string{"flaky"},
		Items: []tagfilter.Item{
			{Name: "api/users", Tags: []string{"fast", "api"}},
			{Name: "db/migrate", Tags: []string{"slow", "db"}},
			{Name: "untagged"},
		},
	}

	tests := []struct {
		filename string
		src      string
	}{
		{filename: "items.hcl", src: hclConfig},
		{filename: "items.yaml", src: yamlConfig},
		{filename: "items.YML", src: yamlConfig},
		{filename: "items.json", src: jsonConfig},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()

			cfg, err := tagfilter.ParseConfig(tt.filename, []byte(tt.src))
			require.NoError(t, err)

			assert.Equal(t, expected.Include, cfg.Include)
			assert.Equal(t, expected.Exclude, cfg.Exclude)
			require.Len(t, cfg.Items, len(expected.Items))

			for i, item := range expected.Items {
				assert.Equal(t, item.Name, cfg.Items[i].Name)
				assert.ElementsMatch(t, item.Tags, cfg.Items[i].Tags)
			}
		})
	}
}

func TestParseConfigUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := tagfilter.ParseConfig("items.toml", []byte(""))

	var formatErr tagfilter.UnsupportedFileFormatError

	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "items.toml", formatErr.Path)
}

func TestParseConfigSyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		src      string
	}{
		{filename: "items.hcl", src: `item "a" { tags = [`},
		{filename: "items.hcl", src: `unknown = true`},
		{filename: "items.yaml", src: "items: [\n"},
		{filename: "items.json", src: `{"items": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.filename+" "+tt.src, func(t *testing.T) {
			t.Parallel()

			_, err := tagfilter.ParseConfig(tt.filename, []byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := &tagfilter.Config{
		Items: []tagfilter.Item{
			{Name: "ok", Tags: []string{"fast"}},
			{Name: " ", Tags: []string{"fast"}},
			{Name: "ok", Tags: []string{"slow"}},
			{Name: "bad", Tags: []string{"a&b", "two words", ""}},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errs := errors.UnwrapMultiErrors(err)
	require.Len(t, errs, 5)

	var itemErr tagfilter.InvalidItemError

	require.ErrorAs(t, errs[0], &itemErr)
	assert.Equal(t, "#1", itemErr.Item)

	require.ErrorAs(t, errs[1], &itemErr)
	assert.Equal(t, "duplicate name", itemErr.Reason)

	for _, err := range errs[2:] {
		require.ErrorAs(t, err, &itemErr)
		assert.Equal(t, "bad", itemErr.Item)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "items.hcl")
	require.NoError(t, os.WriteFile(path, []byte(hclConfig), 0o600))

	cfg, err := tagfilter.LoadConfigFile(t.Context(), path)
	require.NoError(t, err)

	f, err := tagfilter.New(t.Context(), cfg.Include, cfg.Exclude)
	require.NoError(t, err)

	selected, err := f.Evaluate(t.Context(), cfg.Items)
	require.NoError(t, err)

	assert.Equal(t, []string{"api/users"}, tagfilter.Items(selected).Names())
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()

	_, err := tagfilter.LoadConfigFile(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
