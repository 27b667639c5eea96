package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"persondesk/internal/records/models"
	"persondesk/internal/records/service"
	"persondesk/internal/records/state"
	"persondesk/internal/tui"
	id "persondesk/pkg/domain"
	"persondesk/pkg/platform/sentinel"
)

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "persondesk",
		Short: "Manage personal details, related officials and bank details",
		Long: `persondesk keeps a local draft of a person and its related records and
reconciles it with the personal-details backend on save, update and delete.

Run without arguments to open the interactive screen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&f.apiURL, "api-url", "", "backend base URL (overrides config)")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&f.metricsAddr, "metrics-addr", "", "serve /metrics on this address while running")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the interactive screen",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runTUI(cmd, f)
			},
		},
		newListCmd(f),
		newShowCmd(f),
		newCreateCmd(f),
		newDeleteCmd(f),
		newBankDetailsCmd(f),
	)
	return root
}

// withApp wires the dependencies for one non-interactive command run.
func withApp(cmd *cobra.Command, f *flags, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(cmd, f, false)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.run(cmd.Context(), func(ctx context.Context) error {
		return fn(ctx, a)
	})
}

func runTUI(cmd *cobra.Command, f *flags) error {
	a, err := newApp(cmd, f, true)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.run(cmd.Context(), func(ctx context.Context) error {
		m := tui.New(a.svc, a.store,
			tui.WithContext(ctx),
			tui.WithLogger(a.log),
			tui.WithMessageTTL(a.cfg.MessageTTL),
		)
		defer m.Close()
		_, err := tea.NewProgram(m,
			tea.WithContext(ctx),
			tea.WithAltScreen(),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List persons, optionally filtered by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, f, func(ctx context.Context, a *app) error {
				if err := a.svc.LoadUsers(ctx); err != nil {
					return err
				}
				var query string
				if len(args) == 1 {
					query = args[0]
				}
				users := a.svc.Search(query)

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME")
				for _, u := range users {
					fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.FirstName, u.LastName)
				}
				return w.Flush()
			})
		},
	}
}

func newShowCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a person with its related officials and bank details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := id.ParsePersonID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, f, func(ctx context.Context, a *app) error {
				if _, err := a.svc.Select(ctx, personID); err != nil {
					return err
				}
				printDraft(cmd.OutOrStdout(), personID, a.store.State())
				return nil
			})
		},
	}
}

func printDraft(out io.Writer, personID id.PersonID, st state.State) {
	fmt.Fprintf(out, "#%s %s %s\n", personID, st.Person.User.FirstName, st.Person.User.LastName)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nRELATED OFFICIALS\t\t")
	if len(st.Person.Officials) == 0 {
		fmt.Fprintln(w, "  (none)\t\t")
	}
	for _, o := range st.Person.Officials {
		fmt.Fprintf(w, "  #%d\t%s\t%s\n", o.ID.Int64, o.Name, o.IDNumber)
	}
	fmt.Fprintln(w, "\nBANK DETAILS\t\t\t")
	if len(st.Bank.Details) == 0 {
		fmt.Fprintln(w, "  (none)\t\t\t")
	}
	for _, b := range st.Bank.Details {
		fmt.Fprintf(w, "  #%d\t%s\tloans=%s\tleasing=%s\n", b.ID.Int64, b.AccountDetails, dash(b.Loans), dash(b.LeasingFacilities))
	}
	_ = w.Flush()
}

func newCreateCmd(f *flags) *cobra.Command {
	var (
		first, last string
		officials   []string
		banks       []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a person with related officials and bank details",
		Example: `  persondesk create --first Ada --last Lovelace \
    --official "Mary Somerville:NIC-1" --bank "ACC-001:1500.50:"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			offRows, err := parseOfficials(officials)
			if err != nil {
				return err
			}
			bankRows, err := parseBankDetails(banks)
			if err != nil {
				return err
			}
			return withApp(cmd, f, func(ctx context.Context, a *app) error {
				a.store.Dispatch(state.SetUser{User: models.Person{FirstName: first, LastName: last}})
				for _, o := range offRows {
					a.store.Dispatch(state.AddOfficial{Official: o})
				}
				for _, b := range bankRows {
					a.store.Dispatch(state.AddBankDetail{BankDetail: b})
				}

				report, err := a.svc.Save(ctx)
				printToast(cmd.OutOrStdout(), a.store.State())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "person #%s\n", report.PersonID)
				for _, r := range report.Children {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+r.String())
				}
				return report.Children.Err()
			})
		},
	}
	cmd.Flags().StringVar(&first, "first", "", "first name")
	cmd.Flags().StringVar(&last, "last", "", "last name")
	cmd.Flags().StringArrayVar(&officials, "official", nil, `related official as "name:nic" (repeatable)`)
	cmd.Flags().StringArrayVar(&banks, "bank", nil, `bank details as "account:loans:leasing" (repeatable)`)
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	return cmd
}

func newDeleteCmd(f *flags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Soft-delete a person and all of its related records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := id.ParsePersonID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, f, func(ctx context.Context, a *app) error {
				if _, err := a.svc.Select(ctx, personID); err != nil {
					return err
				}
				confirm := promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
				if yes {
					confirm = func(string) bool { return true }
				}

				report, err := a.svc.Delete(ctx, confirm)
				if errors.Is(err, service.ErrCancelled) {
					fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
				printToast(cmd.OutOrStdout(), a.store.State())
				if err != nil {
					return err
				}
				for _, r := range report.Children {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+r.String())
				}
				return report.Children.Err()
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newBankDetailsCmd(f *flags) *cobra.Command {
	var bankID int64
	cmd := &cobra.Command{
		Use:   "bank-details",
		Short: "List every bank-details row, or show one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, f, func(ctx context.Context, a *app) error {
				var rows []models.BankDetailRecord
				if cmd.Flags().Changed("id") {
					rec, err := a.svc.BankDetail(ctx, id.BankDetailID(bankID))
					if err != nil {
						return err
					}
					rows = append(rows, *rec)
				} else {
					all, err := a.svc.BankDetails(ctx)
					if err != nil {
						return err
					}
					rows = all
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tPERSON\tACCOUNT\tLOANS\tLEASING\tDELETED")
				for _, b := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n", b.ID, b.PersonID, b.AccountDetails,
						dash(models.FormatAmount(b.Loans)), dash(models.FormatAmount(b.LeasingFacilities)), b.Deleted)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().Int64Var(&bankID, "id", 0, "bank details id")
	return cmd
}

// promptConfirm asks on out and accepts "y" or "yes" from in.
func promptConfirm(in io.Reader, out io.Writer) service.ConfirmFunc {
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

func printToast(out io.Writer, st state.State) {
	if st.Person.Message.Visible {
		fmt.Fprintln(out, st.Person.Message.Text)
	}
}

func parseOfficials(values []string) ([]models.RelatedOfficial, error) {
	rows := make([]models.RelatedOfficial, 0, len(values))
	for _, v := range values {
		name, nic, _ := strings.Cut(v, ":")
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("--official %q: name is required: %w", v, sentinel.ErrInvalidInput)
		}
		rows = append(rows, models.RelatedOfficial{Name: name, IDNumber: nic})
	}
	return rows, nil
}

func parseBankDetails(values []string) ([]models.BankDetail, error) {
	rows := make([]models.BankDetail, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ":", 3)
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		row := models.BankDetail{AccountDetails: parts[0], Loans: parts[1], LeasingFacilities: parts[2]}
		if _, err := row.Input(); err != nil {
			return nil, fmt.Errorf("--bank %q: %w", v, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
