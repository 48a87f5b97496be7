package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/proofpost/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the review service API
//	-d string   local directory searched for attachment files
//	-l int      item list page size
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the review service API")
	fs.StringVar(&cfg.FilesDir, "d", cfg.FilesDir, "local directory searched for attachment files")
	fs.IntVar(&cfg.PageLimit, "l", cfg.PageLimit, "item list page size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
