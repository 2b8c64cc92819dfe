package admin

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/louisbranch/translating.space/internal/services/mt"
	"github.com/spf13/cobra"
)

func (a *Admin) mtServicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mt-services",
		Short: "List enabled machine translation services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := a.translator(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ids := registry.IDs()
			if len(ids) == 0 {
				fmt.Fprintln(out, "Machine translation is disabled.")
				return nil
			}
			for _, id := range ids {
				svc, _ := registry.Lookup(id)
				fmt.Fprintf(out, "%s\t%s\n", id, svc.Name())
			}
			return nil
		},
	}
}

func (a *Admin) mtTranslateCommand() *cobra.Command {
	var service, source, target string
	cmd := &cobra.Command{
		Use:   "mt-translate <text>",
		Short: "Ask machine translation services for suggestions",
		Long:  "Ask one service, or every enabled service when --service is empty, to translate text.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(target) == "" {
				return errors.New("--target is required")
			}
			registry, err := a.translator(cmd.Context())
			if err != nil {
				return err
			}
			req := mt.Request{
				Text:           strings.Join(args, " "),
				SourceLanguage: source,
				TargetLanguage: target,
			}
			var suggestions []mt.Suggestion
			if service = strings.TrimSpace(service); service == "" {
				suggestions, err = registry.TranslateAll(cmd.Context(), req)
			} else {
				suggestions, err = registry.Translate(cmd.Context(), service, req)
			}
			if err != nil {
				return err
			}
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range suggestions {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Quality, s.Service, s.Text)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&service, "service", "", "Service id; empty asks every service")
	cmd.Flags().StringVar(&source, "source", "en", "Source language code")
	cmd.Flags().StringVar(&target, "target", "", "Target language code")
	return cmd
}
