package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/showerplanner/internal/auth"
	"github.com/mmynk/showerplanner/internal/codec"
	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/storage"
)

func newUsersListCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(ctx context.Context, store storage.Store) error {
				users, err := store.ListUsers(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "USERNAME\tEMAIL\tNAME\tPASSWORD")
				for _, u := range users {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Username, u.Email, u.DisplayName, passwordState(u.PasswordHash))
				}
				return w.Flush()
			})
		},
	}
}

func passwordState(stored string) string {
	switch {
	case stored == "":
		return "none"
	case auth.IsHashed(stored):
		return "hashed"
	default:
		return "plaintext"
	}
}

func newHashPasswordsCmd(open storeOpener) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "hash-passwords",
		Short: "Replace plaintext password cells with bcrypt hashes",
		Long: `Scan the users table and replace every password cell that is not yet a
bcrypt hash with the hash of its content. Already hashed cells and empty
cells are left alone, so the command can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(ctx context.Context, store storage.Store) error {
				n, err := hashPasswords(ctx, store, dryRun)
				if err != nil {
					return err
				}
				verb := "Hashed"
				if dryRun {
					verb = "Would hash"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d password(s)\n", verb, n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	return cmd
}

// hashPasswords upgrades plaintext password cells and returns how many
// needed it.
func hashPasswords(ctx context.Context, store storage.Store, dryRun bool) (int, error) {
	users, err := store.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, u := range users {
		if u.PasswordHash == "" || auth.IsHashed(u.PasswordHash) {
			continue
		}
		n++
		if dryRun {
			continue
		}
		hash, err := auth.HashPassword(u.PasswordHash)
		if err != nil {
			return n, fmt.Errorf("failed to hash password of %s: %w", u.Username, err)
		}
		if err := store.UpdatePasswordHash(ctx, u.Username, hash); err != nil {
			return n, err
		}
		slog.Info("Password hashed", "username", u.Username)
	}
	return n, nil
}

func newResetCmd(open storeOpener) *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "reset <username>",
		Short: "Clear every collection of a user, keeping the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := models.NormalizeUsername(args[0])
			if !confirmed {
				return fmt.Errorf("refusing to reset %s without --yes", username)
			}
			return withStore(cmd, open, func(ctx context.Context, store storage.Store) error {
				user, err := store.GetUser(ctx, username)
				if err != nil {
					return err
				}
				if user == nil {
					return fmt.Errorf("%w: %s", storage.ErrUserNotFound, username)
				}
				if err := store.ResetAllDataForUser(ctx, username); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reset planning data of %s\n", username)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the reset; it cannot be undone")
	return cmd
}

// export is the JSON document written by the export command.
type export struct {
	Username    string              `json:"username"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	Event       exportEvent         `json:"event"`
	Guests      []string            `json:"guests"`
	Checklist   []exportTask        `json:"checklist"`
	Budget      float64             `json:"budget"`
	Expenses    []models.Expense    `json:"expenses"`
	Gifts       []models.Gift       `json:"gifts"`
	Suggestions []models.Suggestion `json:"suggestions"`
	Games       []models.Game       `json:"games"`
}

type exportEvent struct {
	Babies []exportBaby `json:"babies"`
	Date   string       `json:"date"`
	Title  string       `json:"title"`
	Twins  bool         `json:"twins"`
}

type exportBaby struct {
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type exportTask struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

func newExportCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "export <username>",
		Short: "Print all planning data of a user as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := models.NormalizeUsername(args[0])
			return withStore(cmd, open, func(ctx context.Context, store storage.Store) error {
				doc, err := buildExport(ctx, store, username)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			})
		},
	}
}

func buildExport(ctx context.Context, store storage.Store, username string) (*export, error) {
	user, err := store.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrUserNotFound, username)
	}

	doc := &export{Username: user.Username, Email: user.Email, Name: user.DisplayName}

	event, err := store.GetEvent(ctx, username)
	if err != nil {
		return nil, err
	}
	doc.Event = exportEvent{
		Babies: []exportBaby{},
		Date:   codec.EncodeDate(event.Date),
		Title:  event.Title,
		Twins:  event.Twins,
	}
	for _, b := range event.Babies {
		doc.Event.Babies = append(doc.Event.Babies, exportBaby{Name: b.Name, Sex: string(b.Sex)})
	}

	if doc.Guests, err = store.GetGuests(ctx, username); err != nil {
		return nil, err
	}
	tasks, err := store.GetChecklist(ctx, username)
	if err != nil {
		return nil, err
	}
	doc.Checklist = []exportTask{}
	for _, t := range tasks {
		doc.Checklist = append(doc.Checklist, exportTask{Name: t.Name, Done: t.Done})
	}
	if doc.Budget, err = store.GetBudget(ctx, username); err != nil {
		return nil, err
	}
	if doc.Expenses, err = store.GetExpenses(ctx, username); err != nil {
		return nil, err
	}
	if doc.Gifts, err = store.GetGifts(ctx, username); err != nil {
		return nil, err
	}
	if doc.Suggestions, err = store.GetSuggestions(ctx, username); err != nil {
		return nil, err
	}
	if doc.Games, err = store.GetGames(ctx, username); err != nil {
		return nil, err
	}
	return doc, nil
}
