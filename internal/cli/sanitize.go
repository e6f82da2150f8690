package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tod/internal/alerts/validator"
	"tod/pkg/alert"
	apperrors "tod/pkg/errors"
)

func newSanitizeCommand(a *app) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Convert raw alert JSON into canonical alerts",
		Long: `Read a JSON object or array of alert objects from file (or stdin when no file
is given) and write the canonical alerts as a JSON array.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return apperrors.InvalidInput("failed to open alert file", err)
				}
				defer f.Close()
				in = f
			}
			return a.sanitize(in, cmd.OutOrStdout(), pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}

func (a *app) sanitize(r io.Reader, w io.Writer, pretty bool) error {
	log := a.cfg.Log

	raws, err := alert.Decode(r)
	if err != nil {
		log.Exception("Failed to decode alert payload", err)
		return err
	}

	s := alert.New(
		alert.WithLocale(a.cfg.Locale),
		alert.WithLocation(a.cfg.Location()),
	)
	alerts := s.SanitizeAll(raws)

	v := validator.NewAlertValidator(log)
	for i := range alerts {
		if err := v.Validate(&alerts[i]); err != nil {
			log.Error("Sanitized alert violates canonical shape", "index", i, "id", alerts[i].ID, "error", err)
			return apperrors.Validation("sanitized alert violates canonical shape", map[string]any{
				"index": i,
				"id":    alerts[i].ID,
				"error": err.Error(),
			})
		}
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(alerts); err != nil {
		return apperrors.Internal("failed to write alerts", err)
	}

	log.Info("Alerts sanitized", "count", len(alerts))
	return nil
}
