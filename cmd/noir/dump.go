package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/noir"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every note as JSON",
	Long:  `Print all notes as a JSON array of {"dateString", "content"} objects, for search tools.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		notes, err := svc.AllNotes(context.Background())
		if err != nil {
			fatal("Failed to read notes", err)
		}
		if notes == nil {
			notes = []noir.Note{}
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(notes); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
