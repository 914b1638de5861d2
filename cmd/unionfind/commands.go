package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/unionfind/acquaintance"
	"github.com/katalvlaran/unionfind/malware"
	"github.com/katalvlaran/unionfind/prim_kruskal"
)

// errMismatch is returned when a scenario's answer differs from its expect value.
var errMismatch = errors.New("unionfind: answer does not match expectation")

// scenarioRun is the shared CommandRun for subcommands taking one scenario path.
type scenarioRun struct {
	subcommands.CommandRunBase

	name string
	run  func(path string, w io.Writer) error
}

func (r *scenarioRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 1 {
		fmt.Fprintf(a.GetErr(), "%s: expected exactly one scenario path, got %d\n", r.name, len(args))
		return 1
	}
	log.Debugf("%s: running %s", r.name, args[0])
	if err := r.run(args[0], a.GetOut()); err != nil {
		log.Errorf("%s: %s", r.name, err)
		return 1
	}

	return 0
}

func scenarioCommand(name, short string, run func(string, io.Writer) error) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: name + " <scenario.yaml>",
		ShortDesc: short,
		CommandRun: func() subcommands.CommandRun {
			return &scenarioRun{name: name, run: run}
		},
	}
}

func cmdAcquaintance() *subcommands.Command {
	return scenarioCommand("acquaintance", "earliest time everyone is acquainted", runAcquaintance)
}

func cmdMST() *subcommands.Command {
	return scenarioCommand("mst", "minimum cost to connect all cities", runMST)
}

func cmdMalware() *subcommands.Command {
	return scenarioCommand("malware", "initial node whose removal minimizes malware spread", runMalware)
}

func runAcquaintance(path string, w io.Writer) error {
	var s acquaintanceScenario
	if err := loadScenario(path, &s); err != nil {
		return err
	}

	got, err := acquaintance.EarliestAcq(s.logs(), s.N)
	switch {
	case errors.Is(err, acquaintance.ErrNeverAcquainted):
		got = -1
	case err != nil:
		return err
	}

	moments, err := acquaintance.Timeline(s.logs(), s.N)
	if err != nil {
		return err
	}
	for _, m := range moments {
		log.Debugf("t=%d joined %d-%d: %d groups, largest %d", m.Timestamp, m.A, m.B, m.Groups, m.Largest)
	}

	fmt.Fprintln(w, got)

	return checkExpect(s.Expect, got)
}

func runMST(path string, w io.Writer) error {
	var s mstScenario
	if err := loadScenario(path, &s); err != nil {
		return err
	}

	var opts []prim_kruskal.Option
	if s.Method != "" {
		opts = append(opts, prim_kruskal.WithMethod(s.Method))
	}
	got, err := prim_kruskal.MinimumCost(s.Cities, s.connections(), opts...)
	switch {
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		log.Infof("cities cannot all be connected")
		got = -1
	case err != nil:
		return err
	}

	fmt.Fprintln(w, got)

	return checkExpect(s.Expect, got)
}

func runMalware(path string, w io.Writer) error {
	var s malwareScenario
	if err := loadScenario(path, &s); err != nil {
		return err
	}
	mode, err := s.mode()
	if err != nil {
		return err
	}

	scores, err := malware.Impact(s.Graph, s.Initial, mode)
	if err != nil {
		return err
	}
	for _, sc := range scores {
		log.Debugf("%s of node %d saves %d", mode, sc.Node, sc.Saved)
	}

	var got int
	if mode == malware.Removal {
		got, err = malware.MinimizeSpreadRemoval(s.Graph, s.Initial)
	} else {
		got, err = malware.MinimizeSpread(s.Graph, s.Initial)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, got)

	var want *int64
	if s.Expect != nil {
		v := int64(*s.Expect)
		want = &v
	}

	return checkExpect(want, int64(got))
}

// checkExpect compares got against an optional expectation.
func checkExpect(want *int64, got int64) error {
	if want == nil {
		return nil
	}
	if *want != got {
		return fmt.Errorf("%w: got %d, want %d", errMismatch, got, *want)
	}
	log.Infof("answer %d matches expectation", got)

	return nil
}
