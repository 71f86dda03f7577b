package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/lettings/pkg/listings"
)

func newApartmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apartments",
		Aliases: []string{"apartment"},
		Short:   "Browse and manage apartments",
	}
	cmd.AddCommand(
		newApartmentsListCmd(),
		newApartmentsGetCmd(),
		newApartmentsCreateCmd(),
		newApartmentsUpdateCmd(),
		newApartmentsDeleteCmd(),
	)
	return cmd
}

func newApartmentsListCmd() *cobra.Command {
	var communityID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List apartments, optionally for one community",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				apartments []listings.Apartment
				err        error
			)
			if cmd.Flags().Changed("community") {
				apartments, err = client.Apartments.ListByCommunity(cmd.Context(), communityID)
			} else {
				apartments, err = client.Apartments.List(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("list apartments: %w", err)
			}
			if len(apartments) == 0 {
				fmt.Println("No apartments found.")
				return nil
			}

			fmt.Printf("%-8s  %-30s  %-10s  %-9s  %s\n", "ID", "TITLE", "PRICE", "AVAILABLE", "COMMUNITY")
			fmt.Printf("%-8s  %-30s  %-10s  %-9s  %s\n", "--", "-----", "-----", "---------", "---------")
			for _, a := range apartments {
				price := "-"
				if a.Price != nil {
					price = fmt.Sprintf("%.2f", *a.Price)
				}
				fmt.Printf("%-8d  %-30s  %-10s  %-9v  %s\n", a.ID, a.Title, price, a.Available, a.CommunityName)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&communityID, "community", 0, "Only apartments in this community")
	return cmd
}

func newApartmentsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one apartment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			apartment, err := client.Apartments.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get apartment: %w", err)
			}
			printApartment(apartment)
			return nil
		},
	}
}

// apartmentFlags collects the editable apartment fields shared by create
// and update.
type apartmentFlags struct {
	title       string
	number      string
	description string
	price       float64
	bedrooms    int
	bathrooms   int
	sqft        int
	address     string
	available   bool
	latitude    float64
	longitude   float64
	communityID int64
}

func (f *apartmentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Listing title")
	cmd.Flags().StringVar(&f.number, "number", "", "Apartment number")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().Float64Var(&f.price, "price", 0, "Monthly price")
	cmd.Flags().IntVar(&f.bedrooms, "bedrooms", 0, "Bedroom count")
	cmd.Flags().IntVar(&f.bathrooms, "bathrooms", 0, "Bathroom count")
	cmd.Flags().IntVar(&f.sqft, "sqft", 0, "Floor area in square feet")
	cmd.Flags().StringVar(&f.address, "address", "", "Street address")
	cmd.Flags().BoolVar(&f.available, "available", false, "Available for rent")
	cmd.Flags().Float64Var(&f.latitude, "latitude", 0, "Latitude")
	cmd.Flags().Float64Var(&f.longitude, "longitude", 0, "Longitude")
	cmd.Flags().Int64Var(&f.communityID, "community", 0, "Community id")
}

func newApartmentsCreateCmd() *cobra.Command {
	var f apartmentFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an apartment (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}

			record := listings.ApartmentUpload{
				Title:           &f.title,
				ApartmentNumber: optFlagString(cmd, "number", f.number),
				Description:     optFlagString(cmd, "description", f.description),
				Price:           optFlagFloat(cmd, "price", f.price),
				Bedrooms:        optFlagFloat(cmd, "bedrooms", float64(f.bedrooms)),
				Bathrooms:       optFlagFloat(cmd, "bathrooms", float64(f.bathrooms)),
				Sqft:            optFlagFloat(cmd, "sqft", float64(f.sqft)),
				Address:         optFlagString(cmd, "address", f.address),
				Available:       f.available,
				Latitude:        optFlagFloat(cmd, "latitude", f.latitude),
				Longitude:       optFlagFloat(cmd, "longitude", f.longitude),
			}
			if cmd.Flags().Changed("community") {
				record.CommunityID = float64(f.communityID)
			}

			apartment, err := client.Apartments.Create(cmd.Context(), record)
			if err != nil {
				return fmt.Errorf("create apartment: %w", err)
			}
			fmt.Printf("Created apartment %d\n", apartment.ID)
			return nil
		},
	}

	f.register(cmd)
	cmd.MarkFlagRequired("title")
	return cmd
}

func newApartmentsUpdateCmd() *cobra.Command {
	var f apartmentFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an apartment (admin)",
		Long:  "Fetch the apartment, apply the given flags, and send back the full merged record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			apartment, err := client.Apartments.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get apartment: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				apartment.Title = f.title
			}
			if flags.Changed("number") {
				apartment.ApartmentNumber = &f.number
			}
			if flags.Changed("description") {
				apartment.Description = &f.description
			}
			if flags.Changed("price") {
				apartment.Price = &f.price
			}
			if flags.Changed("bedrooms") {
				apartment.Bedrooms = &f.bedrooms
			}
			if flags.Changed("bathrooms") {
				apartment.Bathrooms = &f.bathrooms
			}
			if flags.Changed("sqft") {
				apartment.Sqft = &f.sqft
			}
			if flags.Changed("address") {
				apartment.Address = &f.address
			}
			if flags.Changed("available") {
				apartment.Available = f.available
			}
			if flags.Changed("latitude") {
				apartment.Latitude = &f.latitude
			}
			if flags.Changed("longitude") {
				apartment.Longitude = &f.longitude
			}
			if flags.Changed("community") {
				apartment.CommunityID = &f.communityID
			}

			updated, err := client.Apartments.Update(cmd.Context(), id, *apartment)
			if err != nil {
				return fmt.Errorf("update apartment: %w", err)
			}
			printApartment(updated)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func newApartmentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an apartment (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := client.Apartments.Remove(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete apartment: %w", err)
			}
			fmt.Printf("Deleted apartment %d\n", id)
			return nil
		},
	}
}

func printApartment(a *listings.Apartment) {
	fmt.Printf("Apartment: %d\n", a.ID)
	fmt.Printf("  Title:     %s\n", a.Title)
	if a.ApartmentNumber != nil {
		fmt.Printf("  Number:    %s\n", *a.ApartmentNumber)
	}
	if a.Description != nil {
		fmt.Printf("  About:     %s\n", *a.Description)
	}
	if a.Price != nil {
		fmt.Printf("  Price:     %.2f\n", *a.Price)
	}
	if a.Bedrooms != nil && a.Bathrooms != nil {
		fmt.Printf("  Layout:    %d bed / %d bath\n", *a.Bedrooms, *a.Bathrooms)
	}
	if a.Sqft != nil {
		fmt.Printf("  Sqft:      %d\n", *a.Sqft)
	}
	if a.Address != nil {
		fmt.Printf("  Address:   %s\n", *a.Address)
	}
	fmt.Printf("  Available: %v\n", a.Available)
	if a.CommunityName != "" {
		fmt.Printf("  Community: %s\n", a.CommunityName)
	} else if a.CommunityID != nil {
		fmt.Printf("  Community: %d\n", *a.CommunityID)
	}
}

func optFlagString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) || value == "" {
		return nil
	}
	return &value
}

func optFlagFloat(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
