package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/acarvalho/pausas/internal/cli/formatter"
	"github.com/acarvalho/pausas/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Workspace limits, coffee window and weekly schedule",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsScheduleCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			settings, err := app.Settings.Get(ctx, ws.ID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSettings(settings))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var coffeeStart, coffeeEnd string
	var bathroomLimit, coffeeLimit int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change break limits and the coffee window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			settings, err := app.Settings.Get(ctx, ws.ID)
			if err != nil {
				return err
			}

			if coffeeStart != "" {
				if settings.CoffeeStart, err = domain.ParseClock(coffeeStart); err != nil {
					return fmt.Errorf("invalid coffee window start: %w", err)
				}
			}
			if coffeeEnd != "" {
				if settings.CoffeeEnd, err = domain.ParseClock(coffeeEnd); err != nil {
					return fmt.Errorf("invalid coffee window end: %w", err)
				}
			}
			if cmd.Flags().Changed("bathroom-limit") {
				settings.BathroomLimitMin = bathroomLimit
			}
			if cmd.Flags().Changed("coffee-limit") {
				settings.CoffeeLimitMin = coffeeLimit
			}

			if err := app.Settings.Update(ctx, ws.ID, settings); err != nil {
				return err
			}
			fmt.Println("Settings updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&coffeeStart, "coffee-start", "", "Coffee window start (HH:MM)")
	cmd.Flags().StringVar(&coffeeEnd, "coffee-end", "", "Coffee window end (HH:MM)")
	cmd.Flags().IntVar(&bathroomLimit, "bathroom-limit", 0, "Bathroom break limit in minutes")
	cmd.Flags().IntVar(&coffeeLimit, "coffee-limit", 0, "Coffee break limit in minutes")

	return cmd
}

func newSettingsScheduleCmd(app *App) *cobra.Command {
	var start, end string
	var enable, disable bool

	cmd := &cobra.Command{
		Use:   "schedule WEEKDAY",
		Short: "Change one weekday's work hours (0 = Sunday)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid weekday %q", args[0])
			}
			if enable && disable {
				return fmt.Errorf("--enable and --disable are mutually exclusive")
			}

			ctx := context.Background()
			ws, err := currentWorkspace(ctx, app)
			if err != nil {
				return err
			}

			settings, err := app.Settings.Get(ctx, ws.ID)
			if err != nil {
				return err
			}
			if weekday < 0 || weekday > 6 {
				return fmt.Errorf("weekday must be 0-6, got %d", weekday)
			}
			day := settings.Schedule[weekday]

			if start != "" {
				if day.Start, err = domain.ParseClock(start); err != nil {
					return fmt.Errorf("invalid start: %w", err)
				}
			}
			if end != "" {
				if day.End, err = domain.ParseClock(end); err != nil {
					return fmt.Errorf("invalid end: %w", err)
				}
			}
			if enable {
				day.Enabled = true
			}
			if disable {
				day.Enabled = false
			}

			if err := app.Settings.SetScheduleDay(ctx, ws.ID, weekday, day); err != nil {
				return err
			}
			fmt.Println("Schedule updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Day start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Day end (HH:MM)")
	cmd.Flags().BoolVar(&enable, "enable", false, "Enable the day")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable the day")

	return cmd
}
