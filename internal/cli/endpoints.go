package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "tod/pkg/errors"
)

type endpointsOutput struct {
	APIBase     string            `json:"apiBase"`
	ProxyTarget string            `json:"proxyTarget"`
	Endpoints   map[string]string `json:"endpoints"`
}

func newEndpointsCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "endpoints [suffix...]",
		Short: "Print the API base and endpoint URLs",
		Long: `Print the API base URL built from FASTAPI_LOCAL_URL, FASTAPI_DEV_SERVER_PORT
and VUE_API_BASE_PATH, followed by one URL per endpoint. Without arguments the
configured endpoints are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = a.cfg.Endpoints
			}

			out := endpointsOutput{
				APIBase:     a.cfg.APIBase(),
				ProxyTarget: a.cfg.ProxyTarget(),
				Endpoints:   make(map[string]string, len(names)),
			}
			for _, name := range names {
				out.Endpoints[name] = a.cfg.Endpoint(name)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(out); err != nil {
					return apperrors.Internal("failed to write endpoints", err)
				}
				return nil
			}

			fmt.Fprintf(w, "api_base\t%s\n", out.APIBase)
			fmt.Fprintf(w, "proxy_target\t%s\n", out.ProxyTarget)
			for _, name := range names {
				fmt.Fprintf(w, "%s\t%s\n", name, out.Endpoints[name])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
