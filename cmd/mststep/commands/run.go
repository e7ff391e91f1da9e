// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mststep/navigator"
	"github.com/katalvlaran/mststep/session"
)

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Compute a step log and print every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, r, err := prepare(cmd, opts)
			if err != nil {
				return err
			}
			if err := stepAll(s.Navigator(), r); err != nil {
				return err
			}
			r.summary(s.View())

			return nil
		},
	}
}

// prepare resolves options, loads the graph, runs the engine and prints the header.
func prepare(cmd *cobra.Command, opts *options) (*session.Session, renderer, error) {
	if err := opts.resolve(); err != nil {
		return nil, renderer{}, err
	}
	g, err := opts.graph()
	if err != nil {
		return nil, renderer{}, err
	}
	s, err := session.New(g, opts.sessionOptions()...)
	if err != nil {
		return nil, renderer{}, err
	}
	r := renderer{w: cmd.OutOrStdout(), g: s.Graph(), st: newStyles()}

	warning, err := s.Run(opts.engineOptions(s.Graph())...)
	if err != nil {
		return nil, renderer{}, err
	}
	r.header(s.Log())
	if warning != nil {
		r.warning(warning)
	}

	return s, r, nil
}

// stepAll renders every step up to the end of the log. Reaching the end is not an error.
func stepAll(nav *navigator.Navigator, r renderer) error {
	for {
		err := nav.StepForward()
		switch {
		case errors.Is(err, navigator.ErrNavigationBoundary):
			return nil
		case err != nil:
			return errors.Wrapf(err, "step %d", nav.Cursor())
		}
		r.view(nav.CurrentView())
	}
}

// complete reports whether v is the final view.
func complete(v navigator.View) bool { return v.Status == navigator.StatusComplete }
