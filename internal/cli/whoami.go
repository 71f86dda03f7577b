package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := sessions.Current()
			if sess == nil {
				fmt.Println("Not logged in.")
				return nil
			}

			fmt.Printf("Subject: %s\n", sess.Subject)
			fmt.Printf("Roles:   %s\n", strings.Join(sess.Roles, ", "))
			if sess.ExpiresAt != nil {
				fmt.Printf("Expires: %s (%s)\n", sess.ExpiresAt.Format("2006-01-02 15:04:05"), humanize.Time(*sess.ExpiresAt))
			} else {
				fmt.Println("Expires: unknown (no exp claim; treated as expired)")
			}
			fmt.Printf("Admin:   %v\n", sessions.Admin())
			if !sessions.Authenticated() {
				fmt.Println("\nToken is expired; it has been cleared. Run 'lettings login'.")
			}
			return nil
		},
	}
}
