package edenweb

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the generator's settings. Every field has a working default;
// a YAML file overrides selectively and CLI flags override the file.
type Config struct {
	// SourceDir is the directory of archive page files.
	SourceDir string `yaml:"source_dir"`

	// OutputDir is where the generated site is written.
	OutputDir string `yaml:"output_dir"`

	// Addr is the preview server listen address.
	Addr string `yaml:"addr"`

	// BaseURL, when set, is the absolute site root used for sitemap.xml.
	// Empty disables sitemap generation.
	BaseURL string `yaml:"base_url"`

	// MinTextLen and CenterKeepLen are the extraction thresholds, in runes.
	MinTextLen    int `yaml:"min_text_len"`
	CenterKeepLen int `yaml:"center_keep_len"`

	// DropdownLimit caps how many chapters appear in a reading page's
	// chapter-select control. Zero shows all chapters.
	DropdownLimit int `yaml:"dropdown_limit"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		SourceDir:     "sacred-texts",
		OutputDir:     "website",
		Addr:          ":8000",
		MinTextLen:    DefaultMinTextLen,
		CenterKeepLen: DefaultCenterKeepLen,
		DropdownLimit: 20,
	}
}

// ExtractOptions derives extractor options from the config.
func (c Config) ExtractOptions() ExtractOptions {
	opts := DefaultExtractOptions()
	opts.MinTextLen = c.MinTextLen
	opts.CenterKeepLen = c.CenterKeepLen
	return opts
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, Errorf(ENOTFOUND, "config file %q not found", path)
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, Errorf(EINVALID, "invalid config file %q: %v", path, err)
	}
	return cfg, nil
}
