package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the message payload without sending it",
	Long: `Assemble the JSON payload exactly as it would be sent, including
signature fields when a secret is configured, and print it to stdout.

Useful for checking keyword highlighting and bot configuration before
pointing at a real webhook.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		msg := buildFromFlags(cfg, time.Now().Unix())
		data, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding message: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}
