package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/lettings/pkg/listings"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(
		newUsersListCmd(),
		newUsersRegisterCmd(),
		newUsersCreateCmd(),
		newUsersResetPasswordCmd(),
	)
	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.Users.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			fmt.Printf("%-8s  %-24s  %-32s  %s\n", "ID", "USERNAME", "EMAIL", "ROLES")
			fmt.Printf("%-8s  %-24s  %-32s  %s\n", "--", "--------", "-----", "-----")
			for _, u := range users {
				fmt.Printf("%-8d  %-24s  %-32s  %s\n", u.ID, u.Username, u.Email, strings.Join(u.Roles, ","))
			}
			return nil
		},
	}
}

func newUsersRegisterCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Self-register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Users.Register(cmd.Context(), listings.RegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}
			fmt.Printf("Registered user %d (%s)\n", user.ID, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersCreateCmd() *cobra.Command {
	var username, email, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account with a role (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}

			// The backend expects roles as an array even for a single role.
			var roles []string
			if role != "" {
				roles = []string{role}
			}
			user, err := client.Users.AdminRegister(cmd.Context(), listings.AdminRegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
				Roles:    roles,
			})
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Printf("Created user %d (%s)\n", user.ID, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&role, "role", "", "Role (e.g. USER, ADMIN)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersResetPasswordCmd() *cobra.Command {
	var newPassword string

	cmd := &cobra.Command{
		Use:   "reset-password <id>",
		Short: "Reset an account's password (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if newPassword == "" {
				return fmt.Errorf("--password is required")
			}
			if err := client.Users.ResetPassword(cmd.Context(), id, newPassword); err != nil {
				return fmt.Errorf("reset password: %w", err)
			}
			fmt.Printf("Password reset for user %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&newPassword, "password", "", "New password")
	return cmd
}
