package config

import (
	"flag"
	"os"

	"github.com/py2dev/repeatermap/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-n          disable bootstrap seeding of an empty store
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.BoolVar(&cfg.SeedDisabled, "n", cfg.SeedDisabled, "disable bootstrap seeding")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
