// SPDX-License-Identifier: MIT

package commands

import (
	"flag"
	"os"
	"sync"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

var (
	klogOnce  sync.Once
	klogFlags *flag.FlagSet
)

// logFlags registers klog's flags once per process and returns them.
func logFlags() *flag.FlagSet {
	klogOnce.Do(func() {
		klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(klogFlags)
		_ = klogFlags.Set("logtostderr", "true")
		klog.SetFormatter(&klog.FmtConstWidth{
			FileNameCharWidth: 16,
			UseColor:          true,
		})
	})

	return klogFlags
}

// NewRootCommand builds the command tree. Each call returns independent
// commands, so tests can execute them with their own flags and writers.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "mststep",
		Short: "Step through Prim and Kruskal minimum spanning tree runs",
		Long: `mststep - record every decision of Prim's or Kruskal's algorithm and replay it.

A graph comes from exactly one source:
  --edges   inline edge list, e.g. "A-B:1, B-C:2, C-D:3, A-D:10, A-C:5"
  --file    YAML document with nodes and edges
  --random  N nodes, connected, seeded with --seed

Examples:
  # Print every Kruskal step
  mststep run --edges "A-B:1, B-C:2, C-D:3, A-D:10, A-C:5"

  # Auto-play Prim from C, one step every 300ms
  mststep play --method prim --start C --interval 300ms --file graph.yaml

  # Verbose logging from the navigator and scheduler
  mststep run --random 8 --seed 3 -v 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML file with defaults (method, start, interval)")
	pf.StringVar(&opts.method, "method", "", "algorithm: prim or kruskal (default kruskal)")
	pf.StringVar(&opts.start, "start", "", "Prim start node label (default: first node)")
	pf.BoolVar(&opts.componentOnly, "component-only", false, "Prim stays in the start node's component")
	pf.BoolVar(&opts.inverseUndo, "inverse-undo", false, "step backward with recorded inverse actions")
	pf.StringVar(&opts.edges, "edges", "", "inline edge list")
	pf.StringVar(&opts.file, "file", "", "YAML graph document")
	pf.IntVar(&opts.random, "random", 0, "random connected graph with N nodes")
	pf.Int64Var(&opts.seed, "seed", 1, "seed for --random")
	pf.AddGoFlagSet(logFlags())

	root.AddCommand(newRunCommand(opts), newPlayCommand(opts))

	return root
}

// Execute runs the root command against the process arguments.
func Execute() error {
	root := NewRootCommand()
	root.SetArgs(os.Args[1:])

	return root.Execute()
}
