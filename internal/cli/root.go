package cli

import (
	"github.com/spf13/cobra"

	"tod/pkg/config"
)

const ServiceName = "dashboard"

// LoadFunc produces the configuration used by every subcommand.
type LoadFunc func(serviceName string) (*config.Config, error)

type app struct {
	load LoadFunc
	cfg  *config.Config
}

// NewRootCommand wires the dashboard subcommands. load is called once before
// any subcommand runs.
func NewRootCommand(load LoadFunc) *cobra.Command {
	a := &app{load: load}

	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Normalize dashboard API URLs and alert payloads",
		Long: `dashboard builds the backend URLs the dashboard UI calls and turns raw
alert payloads from the backend into canonical alert records.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(ServiceName)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.AddCommand(
		newEndpointsCommand(a),
		newSanitizeCommand(a),
	)
	return root
}
