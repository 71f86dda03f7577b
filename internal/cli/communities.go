package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/lettings/pkg/listings"
)

func newCommunitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "communities",
		Aliases: []string{"community"},
		Short:   "Browse and manage communities",
	}
	cmd.AddCommand(
		newCommunitiesListCmd(),
		newCommunitiesGetCmd(),
		newCommunitiesCreateCmd(),
		newCommunitiesUpdateCmd(),
		newCommunitiesDeleteCmd(),
	)
	return cmd
}

func newCommunitiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all communities",
		RunE: func(cmd *cobra.Command, args []string) error {
			communities, err := client.Communities.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list communities: %w", err)
			}
			if len(communities) == 0 {
				fmt.Println("No communities found.")
				return nil
			}

			fmt.Printf("%-8s  %-30s  %s\n", "ID", "NAME", "DESCRIPTION")
			fmt.Printf("%-8s  %-30s  %s\n", "--", "----", "-----------")
			for _, c := range communities {
				fmt.Printf("%-8d  %-30s  %s\n", c.ID, c.Name, c.Description)
			}
			return nil
		},
	}
}

func newCommunitiesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one community",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			community, err := client.Communities.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get community: %w", err)
			}
			printCommunity(community)
			return nil
		},
	}
}

func newCommunitiesCreateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a community (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			community, err := client.Communities.Create(cmd.Context(), listings.CommunityPayload{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("create community: %w", err)
			}
			fmt.Printf("Created community %d\n", community.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Community name")
	cmd.Flags().StringVar(&description, "description", "", "Community description")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newCommunitiesUpdateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a community (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// Unchanged flags keep the current values.
			current, err := client.Communities.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get community: %w", err)
			}
			payload := listings.CommunityPayload{Name: current.Name, Description: current.Description}
			if cmd.Flags().Changed("name") {
				payload.Name = name
			}
			if cmd.Flags().Changed("description") {
				payload.Description = description
			}

			updated, err := client.Communities.Update(cmd.Context(), id, payload)
			if err != nil {
				return fmt.Errorf("update community: %w", err)
			}
			printCommunity(updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Community name")
	cmd.Flags().StringVar(&description, "description", "", "Community description")
	return cmd
}

func newCommunitiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a community (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := client.Communities.Remove(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete community: %w", err)
			}
			fmt.Printf("Deleted community %d\n", id)
			return nil
		},
	}
}

func printCommunity(c *listings.Community) {
	fmt.Printf("Community: %d\n", c.ID)
	fmt.Printf("  Name:        %s\n", c.Name)
	fmt.Printf("  Description: %s\n", c.Description)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
