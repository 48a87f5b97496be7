// Package config loads runtime configuration for the proofpost CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file in the working
//     directory loaded via godotenv (see parseEnv). The API key is only ever
//     supplied this way or interactively; there is no flag for it.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the review service API
//	-d string   local directory searched for attachment files
//	-l int      item list page size
//
// # JSON schema
//
//	{
//	  "base_url": "https://api.brushup.net/v2/",
//	  "files_dir": "/data/proofs",
//	  "projects": ["185690", "181437"],
//	  "page_limit": 100,
//	  "clear_upload_after_post": false
//	}
package config
