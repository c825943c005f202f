package services

import (
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/lovsok/internal/core/domain"
	"github.com/custodia-labs/lovsok/internal/core/ports/driven"
)

// EnvDataRoot overrides the configured data root.
const EnvDataRoot = "LOVSOK_DATA_ROOT"

// SettingsService resolves runtime settings from the config store,
// environment and command-line overrides.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service. A nil store yields
// defaults.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Corpus returns the corpus settings. The data root is taken from, in order,
// dataRootFlag, the environment, the config file and the default.
func (s *SettingsService) Corpus(dataRootFlag string) domain.CorpusSettings {
	settings := domain.DefaultCorpusSettings()

	settings.DataRoot = firstNonEmpty(
		dataRootFlag,
		s.getenv(EnvDataRoot),
		s.getString(driven.ConfigDataRoot),
		domain.DefaultDataRoot,
	)
	settings.XMLDir = firstNonEmpty(s.getString(driven.ConfigXMLDir), settings.XMLDir)
	settings.HTMLDir = firstNonEmpty(s.getString(driven.ConfigHTMLDir), settings.HTMLDir)
	settings.MarkdownDir = firstNonEmpty(s.getString(driven.ConfigMarkdownDir), settings.MarkdownDir)
	settings.JSONDir = firstNonEmpty(s.getString(driven.ConfigJSONDir), settings.JSONDir)

	if n := s.getInt(driven.ConfigWorkers); n > 0 {
		settings.Workers = n
	}
	if ms := s.getInt(driven.ConfigDebounceMilli); ms > 0 {
		settings.Debounce = time.Duration(ms) * time.Millisecond
	}

	return settings
}

// DefaultSearchLimit returns the configured result count for searches,
// clamped to the allowed range.
func (s *SettingsService) DefaultSearchLimit() int {
	n := s.getInt(driven.ConfigDefaultLimit)
	if n <= 0 {
		return domain.DefaultSearchLimit
	}
	return domain.ClampLimit(n, domain.MaxSearchLimit)
}

func (s *SettingsService) getString(key string) string {
	if s.configStore == nil {
		return ""
	}
	return strings.TrimSpace(s.configStore.GetString(key))
}

func (s *SettingsService) getInt(key string) int {
	if s.configStore == nil {
		return 0
	}
	return s.configStore.GetInt(key)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
