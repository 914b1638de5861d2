package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"

	"github.com/katalvlaran/unionfind/dsu"
)

func cmdStress(cfg config) *subcommands.Command {
	return &subcommands.Command{
		UsageLine: "stress [-n N] [-unions U] [-seed S]",
		ShortDesc: "random unions on a large forest",
		LongDesc:  "Performs U random unions on N elements, then checks that the root sizes add up to N.",
		CommandRun: func() subcommands.CommandRun {
			r := &stressRun{}
			r.Flags.IntVar(&r.n, "n", 1_000_000, "number of elements")
			r.Flags.IntVar(&r.unions, "unions", 1_000_000, "number of random unions")
			r.Flags.Int64Var(&r.seed, "seed", cfg.Seed, "random seed (default from "+envSeed+")")
			return r
		},
	}
}

type stressRun struct {
	subcommands.CommandRunBase

	n      int
	unions int
	seed   int64
}

func (r *stressRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "stress: unexpected arguments %q\n", args)
		return 1
	}
	if err := stress(r.n, r.unions, r.seed, a.GetOut()); err != nil {
		log.Errorf("stress: %s", err)
		return 1
	}

	return 0
}

// stressReport summarizes one stress run.
type stressReport struct {
	Sets    int
	Largest int
	Merges  int
}

// stress runs the random workload and prints a one-line summary to w.
func stress(n, unions int, seed int64, w io.Writer) error {
	start := time.Now()
	rep, err := runStress(n, unions, seed)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "%s elements, %s unions (%s merges): %s sets, largest %s, %s\n",
		humanize.Comma(int64(n)), humanize.Comma(int64(unions)), humanize.Comma(int64(rep.Merges)),
		humanize.Comma(int64(rep.Sets)), humanize.Comma(int64(rep.Largest)), elapsed.Round(time.Millisecond))

	return nil
}

func runStress(n, unions int, seed int64) (stressReport, error) {
	f, err := dsu.New(n, dsu.WithNonEmpty())
	if err != nil {
		return stressReport{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	var rep stressReport
	for i := 0; i < unions; i++ {
		merged, err := f.Union(rng.Intn(n), rng.Intn(n))
		if err != nil {
			return stressReport{}, err
		}
		if merged {
			rep.Merges++
		}
	}

	total := 0
	for _, root := range f.Roots() {
		size, err := f.Size(root)
		if err != nil {
			return stressReport{}, err
		}
		total += size
		if size > rep.Largest {
			rep.Largest = size
		}
	}
	if total != n {
		return stressReport{}, fmt.Errorf("root sizes add up to %d, want %d", total, n)
	}
	rep.Sets = f.Count()
	log.Debugf("stress seed=%d: %d sets after %d merges", seed, rep.Sets, rep.Merges)

	return rep, nil
}
