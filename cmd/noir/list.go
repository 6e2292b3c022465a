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
	listJSON  bool
	listYear  int
	listMonth int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of a month",
	Long:  `List the dates that have a note in the given month, with their titles and review dates.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()
		ctx := context.Background()

		year, month0 := resolveMonth(listYear, listMonth)
		dates, err := svc.NotesForMonth(ctx, year, month0)
		if err != nil {
			fatal("Failed to list notes", err)
		}
		sort.Strings(dates)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(dates); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		reminders, err := svc.RemindersForMonth(ctx, year, month0)
		if err != nil {
			fatal("Failed to list reminders", err)
		}

		for _, date := range dates {
			title, err := svc.NoteTitle(ctx, date)
			if err != nil {
				fatal("Failed to read note", err)
			}
			line := date
			if title != "" {
				line += " - " + title
			}
			if review, ok := reminders[date]; ok {
				line += fmt.Sprintf(" (review %s)", review)
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	monthFlags(listCmd, &listYear, &listMonth)
}
