package replay

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/Girgetto/iracing-pitwall-tui/log"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/config"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/pitwall"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/render"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/source/replay"
)

func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "shows the pitwall for a recorded session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay()
		},
	}
	cmd.Flags().StringVarP(&config.ReplayFile,
		"file", "f", "", "recorded feed to replay")
	cmd.Flags().IntVar(&config.ReplaySpeed,
		"speed", 1, "Recording speed (0 means: go as fast as possible)")
	//nolint:errcheck // cobra marks the flag, nothing to handle here
	cmd.MarkFlagRequired("file")
	return cmd
}

func runReplay() error {
	interval, err := time.ParseDuration(config.RefreshInterval)
	if err != nil {
		log.Warn("invalid refresh interval. using default",
			log.String("value", config.RefreshInterval))
		interval = 500 * time.Millisecond
	}

	f, err := os.Open(config.ReplayFile)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := replay.New(f,
		replay.WithSpeed(config.ReplaySpeed),
		replay.WithLogger(log.Default().Named("replay")))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := src.Run(ctx); err != nil {
			log.Error("replay terminated", log.ErrorField(err))
			stop()
		}
	}()

	p := pitwall.New(src,
		render.NewRenderer(os.Stdout, render.WithClearScreen()),
		pitwall.WithInterval(interval))
	if err := p.Run(ctx); err != nil {
		return err
	}
	log.Info("pitwall terminated")
	return nil
}
