package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		profiles, err := st.ProfileRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}

		fmt.Printf("Profiles: %d\n", len(profiles))
		for _, p := range profiles {
			views, err := st.ViewEventRepo().Count(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("count views for %s: %w", p.Name, err)
			}
			favs, err := st.FavoriteRepo().Get(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("load favorites for %s: %w", p.Name, err)
			}
			fmt.Printf("  %-20s %4d views  %3d favorites\n", p.Name, views, len(favs))
		}

		anonViews, err := st.ViewEventRepo().Count(ctx, 0)
		if err != nil {
			return fmt.Errorf("count anonymous views: %w", err)
		}
		fmt.Printf("Anonymous views: %d\n", anonViews)
		return nil
	},
}
