package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/unionfind/acquaintance"
	"github.com/katalvlaran/unionfind/malware"
	"github.com/katalvlaran/unionfind/prim_kruskal"
)

// acquaintanceScenario is the YAML shape read by the acquaintance subcommand.
//
//	n: 4
//	logs:
//	  - {ts: 0, a: 2, b: 0}
//	expect: 3
type acquaintanceScenario struct {
	N    int `yaml:"n"`
	Logs []struct {
		TS int64 `yaml:"ts"`
		A  int   `yaml:"a"`
		B  int   `yaml:"b"`
	} `yaml:"logs"`
	// Expect, when set, is the earliest timestamp; -1 means never.
	Expect *int64 `yaml:"expect"`
}

func (s acquaintanceScenario) logs() []acquaintance.Log {
	out := make([]acquaintance.Log, len(s.Logs))
	for i, l := range s.Logs {
		out[i] = acquaintance.Log{Timestamp: l.TS, A: l.A, B: l.B}
	}

	return out
}

// mstScenario is the YAML shape read by the mst subcommand. Cities are 1-based.
type mstScenario struct {
	Cities      int    `yaml:"cities"`
	Method      string `yaml:"method"`
	Connections []struct {
		A    int   `yaml:"a"`
		B    int   `yaml:"b"`
		Cost int64 `yaml:"cost"`
	} `yaml:"connections"`
	// Expect, when set, is the total cost; -1 means disconnected.
	Expect *int64 `yaml:"expect"`
}

func (s mstScenario) connections() []prim_kruskal.Connection {
	out := make([]prim_kruskal.Connection, len(s.Connections))
	for i, c := range s.Connections {
		out[i] = prim_kruskal.Connection{A: c.A, B: c.B, Cost: c.Cost}
	}

	return out
}

// malwareScenario is the YAML shape read by the malware subcommand.
type malwareScenario struct {
	Graph   [][]int `yaml:"graph"`
	Initial []int   `yaml:"initial"`
	// Mode is "quarantine" (default) or "removal".
	Mode   string `yaml:"mode"`
	Expect *int   `yaml:"expect"`
}

func (s malwareScenario) mode() (malware.Mode, error) {
	switch s.Mode {
	case "", malware.Quarantine.String():
		return malware.Quarantine, nil
	case malware.Removal.String():
		return malware.Removal, nil
	default:
		return 0, fmt.Errorf("%w: %q", malware.ErrInvalidMode, s.Mode)
	}
}

// loadScenario strictly decodes a YAML file into out; unknown keys are errors.
func loadScenario(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	return nil
}
