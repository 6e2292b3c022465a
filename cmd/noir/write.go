package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	writeContent string
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write [date]",
	Short: "Write a note",
	Long: `Create or replace the note for a date (default today).
The content comes from --content, or from stdin when it is not a terminal.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content := writeContent
		if !cmd.Flags().Changed("content") {
			if isatty.IsTerminal(os.Stdin.Fd()) {
				fatal("No content", fmt.Errorf("use --content or pipe the note on stdin"))
			}
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		svc := openService()
		defer svc.Close()
		date := dateArg(svc, args)

		if err := svc.SaveNote(context.Background(), date, content); err != nil {
			fatal("Failed to save note", err)
		}

		fmt.Printf("Note '%s' saved.\n", date)
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Note content")
}
