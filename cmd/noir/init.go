package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory",
	Long:  `Create the notes and images directories. Running it again is harmless.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		fmt.Println("Initialized noir data directory in", filepath.Dir(svc.ImagesPath()))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
