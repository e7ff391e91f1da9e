// SPDX-License-Identifier: MIT

package commands

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mststep/builder"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/graphio"
	"github.com/katalvlaran/mststep/playback"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/katalvlaran/mststep/session"
)

// defaultPlayInterval is the play tick period when neither flag nor config sets one.
const defaultPlayInterval = 500 * time.Millisecond

// maxRandomExtra caps the chords added on top of a random spanning chain.
const maxRandomExtra = 12

var (
	errNoSource    = errors.New("exactly one of --edges, --file or --random is required")
	errBadInterval = errors.New("--interval must be positive")
)

// fileConfig is the YAML shape of --config.
type fileConfig struct {
	Method   string        `yaml:"method"`
	Start    string        `yaml:"start"`
	Interval time.Duration `yaml:"interval"`
}

// options holds the flags shared by run and play.
type options struct {
	configPath    string
	method        string
	start         string
	componentOnly bool
	inverseUndo   bool
	edges         string
	file          string
	random        int
	seed          int64
	interval      time.Duration
	observer      func(playback.Event)
}

// resolve fills unset flags from the config file, then from defaults.
func (o *options) resolve() error {
	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return errors.Wrap(err, "read config")
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return errors.Wrapf(err, "parse config %s", o.configPath)
		}
		if o.method == "" {
			o.method = fc.Method
		}
		if o.start == "" {
			o.start = fc.Start
		}
		if o.interval == 0 {
			o.interval = fc.Interval
		}
	}
	if o.method == "" {
		o.method = prim_kruskal.MethodKruskal
	}
	if o.interval == 0 {
		o.interval = defaultPlayInterval
	}
	if o.interval < 0 {
		return errBadInterval
	}

	return nil
}

// graph loads the graph from the single selected source.
func (o *options) graph() (*core.Graph, error) {
	sources := 0
	for _, set := range []bool{o.edges != "", o.file != "", o.random > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errNoSource
	}

	switch {
	case o.edges != "":
		return graphio.ParseEdgeList(o.edges)
	case o.file != "":
		return graphio.LoadFile(o.file)
	default:
		extra := o.random*(o.random-1)/2 - (o.random - 1)
		if extra > o.random/2 {
			extra = o.random / 2
		}
		if extra > maxRandomExtra {
			extra = maxRandomExtra
		}
		return builder.BuildGraph(
			[]builder.BuilderOption{
				builder.WithSeed(o.seed),
				builder.WithWeightFn(builder.UniformWeightFn(1, 20)),
			},
			builder.RandomConnected(o.random, extra),
		)
	}
}

// engineOptions maps flags onto prim_kruskal options. An unknown start label is
// passed through as a missing node id, so Prim falls back and warns.
func (o *options) engineOptions(g *core.Graph) []prim_kruskal.Option {
	opts := []prim_kruskal.Option{prim_kruskal.WithMethod(o.method)}
	if o.componentOnly {
		opts = append(opts, prim_kruskal.WithComponentOnly())
	}
	if o.start == "" {
		return opts
	}
	root := -1
	for _, n := range g.Nodes() {
		if n.Label == o.start {
			root = n.ID
			break
		}
	}

	return append(opts, prim_kruskal.WithRoot(root))
}

// sessionOptions maps flags onto session options.
func (o *options) sessionOptions() []session.Option {
	opts := []session.Option{session.WithInterval(o.interval)}
	if o.inverseUndo {
		opts = append(opts, session.WithInverseUndo())
	}
	if o.observer != nil {
		opts = append(opts, session.WithObserver(o.observer))
	}

	return opts
}

// withObserver sets the playback observer and returns o.
func (o *options) withObserver(fn func(playback.Event)) *options {
	o.observer = fn

	return o
}
