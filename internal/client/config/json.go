package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/proofpost/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config only when set, so the file can override a
// subset of fields. The API key deliberately has no JSON field; secrets do
// not belong in config files.
type JsonConfig struct {
	BaseURL              string   `json:"base_url"`
	FilesDir             string   `json:"files_dir"`
	Projects             []string `json:"projects"`
	PageLimit            int      `json:"page_limit"`
	ClearUploadAfterPost *bool    `json:"clear_upload_after_post"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.FilesDir != "" {
		cfg.FilesDir = jc.FilesDir
	}
	if len(jc.Projects) > 0 {
		cfg.Projects = jc.Projects
	}
	if jc.PageLimit > 0 {
		cfg.PageLimit = jc.PageLimit
	}
	if jc.ClearUploadAfterPost != nil {
		cfg.ClearUploadAfterPost = *jc.ClearUploadAfterPost
	}
}
