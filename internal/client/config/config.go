package config

// Config holds runtime settings for the proofpost CLI.
//
// Fields:
//   - BaseURL: root of the review service API, with trailing slash.
//   - APIKey: pre-provisioned user API key; supplied out-of-band via the
//     environment (or .env), never via flags or the JSON file.
//   - FilesDir: local directory searched for attachment candidates.
//   - Projects: the fixed set of project ids offered by the CLI. Ids are not
//     validated remotely before use.
//   - PageLimit: item list page size; only the first page is ever fetched.
//   - ClearUploadAfterPost: reset the upload handle after a successful
//     comment post instead of keeping it reusable.
type Config struct {
	BaseURL              string
	APIKey               string
	FilesDir             string
	Projects             []string
	PageLimit            int
	ClearUploadAfterPost bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://api.brushup.net/v2/"
	c.FilesDir = "files"
	c.Projects = []string{"185690", "181437"}
	c.PageLimit = 100
	c.ClearUploadAfterPost = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
