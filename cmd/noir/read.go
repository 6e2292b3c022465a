package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/noir"
)

var (
	readJSON bool
)

var readCmd = &cobra.Command{
	Use:   "read [date]",
	Short: "Read a note",
	Long:  `Read the note for a date (default today). Outputs raw markdown by default, or a JSON object with --json.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()
		date := dateArg(svc, args)

		content, err := svc.LoadNote(context.Background(), date)
		if err != nil {
			fatal("Failed to read note", err)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(noir.Note{Date: date, Content: content}); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Print(content)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
}
