package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/wheelibin/ledpanel/internal/config"
	"github.com/wheelibin/ledpanel/internal/models"
	"github.com/wheelibin/ledpanel/internal/panel"
)

var (
	configFile string
	stripNames []string
)

var rootCmd = &cobra.Command{
	Use:           "ledctl",
	Short:         "Control networked LED strips",
	Long:          `ledctl sends one-off commands to the strips listed in the ledpanel config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringSliceVarP(&stripNames, "strip", "s", nil, "strip names or ids to act on (default all)")

	rootCmd.AddCommand(
		stripsCmd,
		colorCmd,
		whiteCmd,
		offCmd,
		configCmd,
		scriptCmd,
		sceneCmd,
		previewCmd,
		watchCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newPanel loads the config and wires a panel with the --strip strips selected
func newPanel() (*panel.Panel, *log.Logger, error) {
	cfg, err := config.InitialiseConfig(configFile)
	if err != nil {
		return nil, nil, err
	}
	logger := config.NewLogger(os.Stderr, cfg)

	p, err := panel.New(logger, cfg)
	if err != nil {
		return nil, nil, err
	}
	return p, logger, nil
}

func selectStrips(cmd *cobra.Command, p *panel.Panel) error {
	if len(stripNames) == 0 {
		return p.SelectAll(cmd.Context())
	}
	ids := []int{}
	for _, name := range stripNames {
		s, err := findStrip(p, name)
		if err != nil {
			return err
		}
		ids = append(ids, s.ID)
	}
	return p.SelectStrips(cmd.Context(), ids)
}

// findStrip matches a strip by name, host or id
func findStrip(p *panel.Panel, ref string) (models.Strip, error) {
	strips, err := p.ListStrips()
	if err != nil {
		return models.Strip{}, err
	}
	s, found := lo.Find(strips, func(s models.Strip) bool {
		return s.Name == ref || s.Host == ref || fmt.Sprint(s.ID) == ref
	})
	if !found {
		return models.Strip{}, fmt.Errorf("no strip named %q in config", ref)
	}
	return s, nil
}
