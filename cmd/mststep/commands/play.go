// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mststep/playback"
	"github.com/katalvlaran/mststep/session"
)

func newPlayCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Auto-play a step log, one step per tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Rendering happens on the playback goroutine, right after each step,
			// so the navigator is only ever touched from there.
			var (
				s    *session.Session
				r    renderer
				done = make(chan error, 1)
			)
			observe := func(e playback.Event) {
				switch e.Kind {
				case playback.EventStep:
					r.view(s.View())
				case playback.EventFinished:
					r.summary(s.View())
					done <- nil
				case playback.EventError:
					done <- e.Err
				}
			}

			var err error
			s, r, err = prepare(cmd, opts.withObserver(observe))
			if err != nil {
				return err
			}
			if complete(s.View()) {
				r.summary(s.View())
				return nil
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
			defer stop()
			if err = s.Player().Play(ctx); err != nil {
				return err
			}

			select {
			case err = <-done:
				return err
			case <-ctx.Done():
				s.Player().Pause()
				return errors.New("interrupted")
			}
		},
	}
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "time between steps (default 500ms)")

	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
