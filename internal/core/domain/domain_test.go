package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scriptmerge/internal/core/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, []string{"scripts", "composables", "logic"}, cfg.Dirs)
	assert.Equal(t, []string{".script.js", ".js"}, cfg.Extensions)
	assert.Empty(t, cfg.Alias)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.PreferSameDir)
	assert.Equal(t, "src", cfg.SrcDir)
	assert.Contains(t, cfg.Comment, domain.FilenamePlaceholder)
	assert.Nil(t, cfg.Locator)
	assert.Nil(t, cfg.Transformer)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := domain.Config{Dirs: []string{"custom"}}.WithDefaults()

	assert.Equal(t, []string{"custom"}, cfg.Dirs)
	assert.Equal(t, domain.DefaultExtensions(), cfg.Extensions)
	assert.NotNil(t, cfg.Alias)
	assert.Equal(t, domain.DefaultSrcDir, cfg.SrcDir)
	assert.Equal(t, domain.DefaultComment, cfg.Comment)
	assert.False(t, cfg.PreferSameDir, "booleans are not defaulted")
}

func TestConfig_Clone(t *testing.T) {
	orig := domain.Config{
		Dirs:  []string{"a"},
		Alias: map[string]string{"@": "/src"},
	}
	clone := orig.Clone()
	clone.Dirs[0] = "b"
	clone.Alias["@"] = "/other"

	assert.Equal(t, "a", orig.Dirs[0])
	assert.Equal(t, "/src", orig.Alias["@"])
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, domain.DefaultConfig().Validate())

	cfg := domain.DefaultConfig()
	cfg.Extensions = []string{".js", " "}
	require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidExtension)

	cfg = domain.DefaultConfig()
	cfg.Dirs = []string{""}
	require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidSearchDir)
}

func TestIsComponent(t *testing.T) {
	assert.True(t, domain.IsComponent("/src/App.vue"))
	assert.False(t, domain.IsComponent("/src/App.vue?vue&type=style"))
	assert.False(t, domain.IsComponent("/src/main.js"))
}

func TestStrategyAdapters(t *testing.T) {
	loc := domain.LocatorFunc(func(p string) (string, bool) { return p + ".js", true })
	got, ok := loc.Locate("Foo")
	assert.True(t, ok)
	assert.Equal(t, "Foo.js", got)

	tr := domain.TransformerFunc(func(in domain.TransformInput) (string, bool, error) {
		return in.Source + in.Script, true, errors.New("boom")
	})
	out, ok, err := tr.Transform(domain.TransformInput{Source: "a", Script: "b"})
	assert.Equal(t, "ab", out)
	assert.True(t, ok)
	assert.EqualError(t, err, "boom")
}

func TestSummarize(t *testing.T) {
	s := domain.Summarize([]domain.FileResult{
		{Status: domain.StatusMerged},
		{Status: domain.StatusMerged},
		{Status: domain.StatusUpToDate},
		{Status: domain.StatusUnchanged},
		{Status: domain.StatusFailed},
	})

	assert.Equal(t, domain.BuildSummary{Total: 5, Merged: 2, UpToDate: 1, Unchanged: 1, Failed: 1}, s)
	assert.Equal(t, "up-to-date", domain.StatusUpToDate.String())
}
