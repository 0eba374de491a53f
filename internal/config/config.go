package config

import (
	"os"
	"path/filepath"
	"strings"
)

// OutputSuffix is appended to the input path to name the OPML file.
const OutputSuffix = ".opml"

type Config struct {
	LogLevel     string
	TagOrder     string
	KeywordsFile string
}

func Load() Config {
	level := os.Getenv("ORG2OPML_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	tagOrder := os.Getenv("ORG2OPML_TAG_ORDER")
	if tagOrder == "" {
		tagOrder = "insertion"
	}
	keywordsFile := strings.TrimSpace(os.Getenv("ORG2OPML_KEYWORDS_FILE"))
	if keywordsFile != "" {
		keywordsFile = filepath.Clean(keywordsFile)
	}

	return Config{
		LogLevel:     level,
		TagOrder:     tagOrder,
		KeywordsFile: keywordsFile,
	}
}

// OutputPath names the OPML file written for inputPath.
func OutputPath(inputPath string) string {
	return inputPath + OutputSuffix
}
