package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gatherly/gatherly/client"
)

var (
	apiFlag     string
	latencyFlag time.Duration
	verboseFlag bool
	rootCmd     = &cobra.Command{
		Use:   "activityctl",
		Short: "CLI client for the activity service REST API",
	}
)

func newClient() *client.Client {
	opts := []client.Option{
		client.WithLatency(latencyFlag),
		client.WithHooks(client.Hooks{
			Notify: func(msg string) { fmt.Fprintln(os.Stderr, "warning:", msg) },
			RecordServerError: func(se client.ServerError) {
				fmt.Fprintln(os.Stderr, "server error:", se.Message)
			},
		}),
	}
	if verboseFlag {
		opts = append(opts,
			client.WithLogger(zerolog.New(os.Stderr).With().Timestamp().Logger()),
			client.WithDebugLogging(true),
		)
	}
	return client.New(apiFlag, opts...)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:5000/api", "Activity service base URL")
	rootCmd.PersistentFlags().DurationVar(&latencyFlag, "latency", 0, "Artificial delay applied to successful responses")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Dump HTTP traffic to stderr")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			acts, err := newClient().ListActivities(context.Background())
			if err != nil {
				return err
			}
			return printJSON(acts)
		},
	}
	rootCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get ACTIVITY_ID",
		Short: "Get an activity by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newClient().GetActivity(context.Background(), args[0])
			if err != nil {
				if client.IsNotFound(err) {
					return fmt.Errorf("activity %s not found", args[0])
				}
				return err
			}
			return printJSON(a)
		},
	}
	rootCmd.AddCommand(getCmd)

	var title, date, description, category, city, venue string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := client.NewActivityStore(newClient(), zerolog.Nop())
			a := client.Activity{
				Title:       title,
				Date:        date,
				Description: description,
				Category:    category,
				City:        city,
				Venue:       venue,
			}
			if err := store.CreateActivity(context.Background(), a); err != nil {
				return err
			}
			return printJSON(store.SelectedActivity())
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "t", "", "Title (required)")
	createCmd.Flags().StringVarP(&date, "date", "d", "", "Date, YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&description, "description", "", "Description")
	createCmd.Flags().StringVar(&category, "category", "", "Category")
	createCmd.Flags().StringVar(&city, "city", "", "City")
	createCmd.Flags().StringVar(&venue, "venue", "", "Venue")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(createCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete ACTIVITY_ID",
		Short: "Delete an activity by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteActivity(context.Background(), args[0]); err != nil {
				if client.IsNotFound(err) {
					return fmt.Errorf("activity %s not found", args[0])
				}
				return err
			}
			fmt.Fprintln(os.Stdout, "deleted", args[0])
			return nil
		},
	}
	rootCmd.AddCommand(deleteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
