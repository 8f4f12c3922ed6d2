package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	sse "github.com/r3labs/sse/v2"
	"github.com/spf13/cobra"
	"github.com/wheelibin/ledpanel/internal/constants"
	"github.com/wheelibin/ledpanel/internal/events"
	"github.com/wheelibin/ledpanel/internal/models"
)

var stripsCmd = &cobra.Command{
	Use:   "strips",
	Short: "List the configured strips",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()

		strips, err := p.ListStrips()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tHOST")
		for _, s := range strips {
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.Host)
		}
		return w.Flush()
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <hue> <saturation> <lightness>",
	Short: "Set strips to a single colour",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		hue, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid hue: %w", err)
		}
		saturation, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid saturation: %w", err)
		}
		lightness, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid lightness: %w", err)
		}

		p, _, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := selectStrips(cmd, p); err != nil {
			return err
		}
		return p.SetColor(cmd.Context(), hue, saturation, lightness)
	},
}

var whiteCmd = &cobra.Command{
	Use:   "white <lightness>",
	Short: "Set strips to white",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lightness, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid lightness: %w", err)
		}

		p, _, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := selectStrips(cmd, p); err != nil {
			return err
		}
		return p.SetWhite(cmd.Context(), lightness)
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Turn strips off",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := selectStrips(cmd, p); err != nil {
			return err
		}
		return p.SetOff(cmd.Context())
	},
}

var configCmd = &cobra.Command{
	Use:   "config <strip> [file]",
	Short: "Print a strip's config, or save it from a json file ('-' for stdin)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()

		s, err := findStrip(p, args[0])
		if err != nil {
			return err
		}

		if len(args) == 2 {
			data, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			cfg := models.DeviceConfig{}
			if err := json.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return p.SaveConfig(cmd.Context(), s.ID, cfg)
		}

		cfg, err := p.GetConfig(cmd.Context(), s.ID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

var scriptCmd = &cobra.Command{
	Use:   "script <strip> <name> [file]",
	Short: "Print a script, or save it from a file ('-' for stdin)",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()

		s, err := findStrip(p, args[0])
		if err != nil {
			return err
		}

		if len(args) == 3 {
			data, err := readInput(cmd, args[2])
			if err != nil {
				return err
			}
			return p.SaveScript(cmd.Context(), s.ID, args[1], string(data))
		}

		text, err := p.GetScript(cmd.Context(), s.ID, args[1])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

var sceneCmd = &cobra.Command{
	Use:   "scene <strip> <name> [file]",
	Short: "Print a scene, or save it from a file ('-' for stdin)",
	Long: `Print a scene, or save it from a file ('-' for stdin).

With --send the scene is rendered locally and posted to the strip as a colour frame,
--animate keeps posting it, rotating by one led per accepted frame, until interrupted.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		send, _ := cmd.Flags().GetBool("send")
		animate, _ := cmd.Flags().GetBool("animate")
		interval, _ := cmd.Flags().GetDuration("interval")

		p, _, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()

		s, err := findStrip(p, args[0])
		if err != nil {
			return err
		}

		var text string
		if len(args) == 3 {
			data, err := readInput(cmd, args[2])
			if err != nil {
				return err
			}
			text = string(data)
			if !send && !animate {
				return p.SaveScene(cmd.Context(), s.ID, args[1], text)
			}
		} else {
			text, err = p.GetScene(cmd.Context(), s.ID, args[1])
			if err != nil {
				return err
			}
		}

		switch {
		case animate:
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return p.Animate(ctx, s.ID, text, interval)
		case send:
			return p.SendScene(cmd.Context(), s.ID, text)
		}

		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Evaluate a command list ('-' for stdin) and print the led colours",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		leds, _ := cmd.Flags().GetInt("leds")
		format, _ := cmd.Flags().GetString("format")

		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}

		p, logger, err := newPanel()
		if err != nil {
			return err
		}
		defer p.Close()

		preview, err := p.Preview(string(data), leds, models.AllChannels())
		if err != nil {
			logger.Warn(err)
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(preview)
		case "hsl":
			for i, led := range preview {
				fmt.Fprintf(out, "%d\t%s\n", i, led.HTMLColor)
			}
		default:
			for i, led := range preview {
				fmt.Fprintf(out, "%d\t%s\n", i, led.Hex)
			}
		}
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the preview or scene stream of a running ledpaneld",
	RunE: func(cmd *cobra.Command, args []string) error {
		server, _ := cmd.Flags().GetString("server")

		client := sse.NewClient(server + "/events")
		client.OnConnect(func(_ *sse.Client) {
			fmt.Fprintln(cmd.ErrOrStderr(), "connected to", server)
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		handler := func(msg *sse.Event) {
			e := events.PreviewUpdated{}
			if err := json.Unmarshal(msg.Data, &e); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "bad preview event:", err)
				return
			}
			fmt.Fprintf(out, "%s leds=%d\n", time.Now().Format("15:04:05"), e.LedCount)
			for _, led := range e.Leds {
				fmt.Fprint(out, led.Hex, " ")
			}
			fmt.Fprintln(out)
		}
		stream := constants.StreamPreview
		if scenes, _ := cmd.Flags().GetBool("scenes"); scenes {
			stream = constants.StreamScene
			handler = func(msg *sse.Event) {
				e := events.SceneChanged{}
				if err := json.Unmarshal(msg.Data, &e); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "bad scene event:", err)
					return
				}
				fmt.Fprintf(out, "%s scene=%q\n%s\n", time.Now().Format("15:04:05"), e.Name, e.Text)
			}
		}

		err := client.SubscribeWithContext(ctx, stream, handler)
		if err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, nil
}

func init() {
	sceneCmd.Flags().Bool("send", false, "post the rendered scene to the strip")
	sceneCmd.Flags().Bool("animate", false, "post the rendered scene repeatedly, rotating it along the strip")
	sceneCmd.Flags().Duration("interval", constants.AnimateInterval, "delay between animation frames")

	previewCmd.Flags().IntP("leds", "n", 0, "number of leds (default previewLedCount)")
	previewCmd.Flags().StringP("format", "f", "hex", "output format: hex, hsl or json")

	watchCmd.Flags().String("server", "http://localhost:8080", "ledpaneld base url")
	watchCmd.Flags().Bool("scenes", false, "follow scene changes instead of previews")
}
