package live

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
	"github.com/Girgetto/iracing-pitwall-tui/pkg/source/relay"
	"github.com/Girgetto/iracing-pitwall-tui/pkg/utils"
)

func NewLiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "shows the pitwall for a live session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive()
		},
	}
	cmd.Flags().StringVar(&config.URL,
		"url",
		"ws://localhost:8088/telemetry",
		"websocket url of the telemetry relay")
	cmd.Flags().StringVar(&config.WaitForRelay,
		"wait-for-relay",
		"15s",
		"wait this duration for the relay to be reachable")
	return cmd
}

func runLive() error {
	interval, err := time.ParseDuration(config.RefreshInterval)
	if err != nil {
		log.Warn("invalid refresh interval. using default",
			log.String("value", config.RefreshInterval))
		interval = 500 * time.Millisecond
	}
	if waitFor, err := time.ParseDuration(config.WaitForRelay); err == nil {
		addr, _ := utils.ExtractFromWebsocketURL(config.URL)
		if addr != "" {
			if err := utils.WaitForTCP(addr, waitFor); err != nil {
				return err
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src := relay.New(config.URL,
		relay.WithLogger(log.Default().Named("relay")))
	go func() {
		if err := src.Run(ctx); err != nil {
			log.Error("relay connection terminated", log.ErrorField(err))
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
