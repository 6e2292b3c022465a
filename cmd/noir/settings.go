package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/noir"
)

var (
	settingsYAML bool
	settingsRaw  bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change user settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print the settings, or one key",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		doc, err := settingsMap(svc.Settings(context.Background()))
		if err != nil {
			fatal("Failed to encode settings", err)
		}

		var out any = doc
		if len(args) == 1 {
			v, ok := doc[args[0]]
			if !ok {
				fatal("Unknown setting", fmt.Errorf("%q is not set", args[0]))
			}
			out = v
		}

		if settingsYAML {
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				fatal("Failed to encode YAML", err)
			}
			return
		}
		if s, ok := out.(string); ok {
			fmt.Println(s)
			return
		}
		printJSON(out)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save the document. The value is stored as a string
unless --raw is given, in which case it must be a JSON value.
Keys noir does not know are kept as-is.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]

		raw := json.RawMessage(value)
		if !settingsRaw {
			quoted, err := json.Marshal(value)
			if err != nil {
				fatal("Invalid value", err)
			}
			raw = quoted
		} else if !json.Valid(raw) {
			fatal("Invalid value", fmt.Errorf("%q is not valid JSON", value))
		}

		svc := openService()
		defer svc.Close()
		ctx := context.Background()

		current, err := json.Marshal(svc.Settings(ctx))
		if err != nil {
			fatal("Failed to encode settings", err)
		}
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(current, &doc); err != nil {
			fatal("Failed to encode settings", err)
		}
		doc[key] = raw

		merged, err := json.Marshal(doc)
		if err != nil {
			fatal("Failed to encode settings", err)
		}
		var next noir.Settings
		if err := json.Unmarshal(merged, &next); err != nil {
			fatal("Invalid value for "+key, err)
		}

		if err := svc.SaveSettings(ctx, next); err != nil {
			fatal("Failed to save settings", err)
		}
		fmt.Printf("Setting '%s' saved.\n", key)
	},
}

// settingsMap flattens settings (including unknown keys) into a generic document.
func settingsMap(s noir.Settings) (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)

	settingsGetCmd.Flags().BoolVar(&settingsYAML, "yaml", false, "Output in YAML format")
	settingsSetCmd.Flags().BoolVar(&settingsRaw, "raw", false, "Parse the value as JSON")
}
