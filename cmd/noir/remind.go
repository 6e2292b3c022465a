package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var (
	remindDays  int
	remindJSON  bool
	remindYear  int
	remindMonth int
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage review reminders",
}

var remindSetCmd = &cobra.Command{
	Use:   "set [date]",
	Short: "Schedule a review of a note",
	Long:  `Schedule a review of the note (default today's) --days from today. Setting again replaces the review date.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		ack, err := svc.SetReminder(context.Background(), dateArg(svc, args), remindDays)
		if err != nil {
			fatal("Failed to set reminder", err)
		}
		fmt.Println(ack.Message)
	},
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the reminders of notes in a month",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		year, month0 := resolveMonth(remindYear, remindMonth)
		reminders, err := svc.RemindersForMonth(context.Background(), year, month0)
		if err != nil {
			fatal("Failed to list reminders", err)
		}

		if remindJSON {
			printJSON(reminders)
			return
		}

		dates := make([]string, 0, len(reminders))
		for d := range reminders {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			fmt.Printf("%s -> %s\n", d, reminders[d])
		}
	},
}

var remindDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Remove the reminder of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		if err := svc.DeleteReminder(context.Background(), args[0]); err != nil {
			fatal("Failed to delete reminder", err)
		}
		fmt.Printf("Reminder deleted: %s\n", args[0])
	},
}

var remindDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List reminders due today or earlier",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		due, err := svc.DueReminders(context.Background())
		if err != nil {
			fatal("Failed to list due reminders", err)
		}

		if remindJSON {
			printJSON(due)
			return
		}

		if len(due) == 0 {
			fmt.Println("Nothing to review.")
			return
		}
		for _, r := range due {
			fmt.Printf("%s  %s (due %s)\n", r.NoteDate, r.Title, r.ReviewDate)
		}
	},
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fatal("Failed to encode JSON", err)
	}
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.AddCommand(remindSetCmd, remindListCmd, remindDeleteCmd, remindDueCmd)

	remindSetCmd.Flags().IntVar(&remindDays, "days", 1, "Days from today until the review (0 = today, negative = past)")
	remindCmd.PersistentFlags().BoolVar(&remindJSON, "json", false, "Output in JSON format")
	monthFlags(remindListCmd, &remindYear, &remindMonth)
}
