package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/web/storage"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func (a *Admin) createUserCommand() *cobra.Command {
	var user storage.User
	var password string
	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user.Username = strings.TrimSpace(user.Username)
			if user.Username == "" {
				return errors.New("--username is required")
			}
			if password == "" {
				return errors.New("--password is required")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), a.passwordCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			user.PasswordHash = string(hash)

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			created, err := store.CreateUser(cmd.Context(), user)
			if errors.Is(err, storage.ErrAlreadyExists) {
				return fmt.Errorf("user %q already exists", user.Username)
			}
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", created.Username, created.ID)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&user.Username, "username", "", "Login name")
	flags.StringVar(&user.Email, "email", "", "Email address")
	flags.StringVar(&user.FirstName, "first-name", "", "First name")
	flags.StringVar(&user.LastName, "last-name", "", "Last name")
	flags.StringVar(&password, "password", "", "Initial password")
	flags.BoolVar(&user.IsSuperuser, "superuser", false, "Grant superuser status")
	return cmd
}

func (a *Admin) changePasswordCommand() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "changepassword",
		Short: "Set a new password for an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				return errors.New("--password is required")
			}
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			user, err := store.GetUserByUsername(cmd.Context(), strings.TrimSpace(username))
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("user %q does not exist", username)
			}
			if err != nil {
				return fmt.Errorf("get user: %w", err)
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), a.passwordCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			if err := store.SetPassword(cmd.Context(), user.ID, string(hash)); err != nil {
				return fmt.Errorf("set password: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Password changed for %s\n", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Login name")
	cmd.Flags().StringVar(&password, "password", "", "New password")
	return cmd
}
