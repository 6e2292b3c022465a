package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var titleCmd = &cobra.Command{
	Use:   "title [date]",
	Short: "Print the title of a note",
	Long:  `Print the first non-blank line of the note, without heading marks.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		title, err := svc.NoteTitle(context.Background(), dateArg(svc, args))
		if err != nil {
			fatal("Failed to read note", err)
		}
		fmt.Println(title)
	},
}

func init() {
	rootCmd.AddCommand(titleCmd)
}
