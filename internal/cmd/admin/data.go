package admin

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/louisbranch/translating.space/internal/services/web/storage/fixture"
	"github.com/spf13/cobra"
)

func (a *Admin) loadDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "loaddata <file.yaml>...",
		Short: "Load YAML fixtures into the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			loader := fixture.NewLoader(store, fixture.WithPasswordCost(a.passwordCost))
			var total fixture.Summary
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open fixture: %w", err)
				}
				summary, err := loader.Load(cmd.Context(), f)
				_ = f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				total.Add(summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Installed %d languages, %d users, %d projects, %d subprojects, %d translations and %d units from %d file(s)\n",
				total.Languages, total.Users, total.Projects, total.Subprojects, total.Translations, total.Units, len(args),
			)
			return nil
		},
	}
}

func (a *Admin) messagesCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List messages sent through the contact form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			messages, err := store.ListContactMessages(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list messages: %w", err)
			}
			if len(messages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No messages.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tFROM\tSUBJECT\tMESSAGE")
			for _, m := range messages {
				fmt.Fprintf(tw, "%s\t%s <%s>\t%s\t%s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Name, m.Email, m.Subject, m.Message)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of messages to show")
	return cmd
}
