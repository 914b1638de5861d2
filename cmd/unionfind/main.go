// Command unionfind runs connectivity scenarios backed by the dsu forest.
//
// Each subcommand reads a YAML scenario, prints the answer and, when the
// scenario carries an `expect` value, exits non-zero on a mismatch:
//
//	unionfind acquaintance testdata/acquaintance_six.yaml
//	unionfind mst testdata/mst_three_cities.yaml
//	unionfind malware testdata/malware_quarantine.yaml
//	unionfind stress -n 1000000 -unions 2000000
//
// Settings are read from the environment, optionally seeded from a .env file
// in the working directory (see config.go).
package main

import (
	"flag"
	"os"

	"github.com/maruel/subcommands"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		// The logger is not configured yet; go-logging's default backend still prints.
		log.Errorf("config: %s", err)
		os.Exit(2)
	}
	setupLogging(cfg.LogLevel)

	flag.Parse()
	os.Exit(subcommands.Run(newApplication(cfg), flag.Args()))
}

func newApplication(cfg config) *subcommands.DefaultApplication {
	return &subcommands.DefaultApplication{
		Name:  "unionfind",
		Title: "Disjoint-set connectivity scenarios.",
		Commands: []*subcommands.Command{
			subcommands.CmdHelp,
			cmdAcquaintance(),
			cmdMST(),
			cmdMalware(),
			cmdStress(cfg),
		},
	}
}
