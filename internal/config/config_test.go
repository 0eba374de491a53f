package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"org2opml/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("ORG2OPML_LOG_LEVEL", "debug")
	t.Setenv("ORG2OPML_TAG_ORDER", "sorted")
	t.Setenv("ORG2OPML_KEYWORDS_FILE", " /tmp/keywords/../keywords.yaml ")

	cfg := config.Load()
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "sorted", cfg.TagOrder)
	require.Equal(t, "/tmp/keywords.yaml", cfg.KeywordsFile)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORG2OPML_LOG_LEVEL", "")
	t.Setenv("ORG2OPML_TAG_ORDER", "")
	t.Setenv("ORG2OPML_KEYWORDS_FILE", "")

	cfg := config.Load()
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "insertion", cfg.TagOrder)
	require.Empty(t, cfg.KeywordsFile)
}

func TestOutputPath(t *testing.T) {
	require.Equal(t, "notes.org.opml", config.OutputPath("notes.org"))
	require.Equal(t, "/a/b/todo.org.opml", config.OutputPath("/a/b/todo.org"))
}
