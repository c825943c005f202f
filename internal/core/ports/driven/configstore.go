package driven

// Configuration keys read by lovsok. Nested TOML tables are flattened to
// dot-notation, so [corpus] data_root = "..." is read as "corpus.data_root".
const (
	ConfigDataRoot      = "corpus.data_root"
	ConfigXMLDir        = "corpus.xml_dir"
	ConfigHTMLDir       = "corpus.html_dir"
	ConfigMarkdownDir   = "corpus.markdown_dir"
	ConfigJSONDir       = "corpus.json_dir"
	ConfigWorkers       = "corpus.workers"
	ConfigDefaultLimit  = "search.default_limit"
	ConfigDebounceMilli = "watch.debounce_ms"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// Keys returns every configured key in sorted order.
	Keys() []string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
