package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/7a6163/lark-notifier/internal/config"
	"github.com/7a6163/lark-notifier/internal/lark"
	"github.com/7a6163/lark-notifier/internal/segment"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagWebhookURL string
	flagSecret     string
	flagTitle      string
	flagContent    string
	flagKeywords   string
	flagConfig     string
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})
)

var rootCmd = &cobra.Command{
	Use:   "lark-notifier",
	Short: "Send a post message to a Lark webhook",
	Long: `lark-notifier sends a titled post message to a Lark/Feishu custom-bot
webhook, optionally signing the request with the bot secret and highlighting
keywords in the message body.`,
	SilenceUsage: true,
	RunE:         runSend,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagWebhookURL, "webhook-url", "", "Lark webhook URL (falls back to LARK_WEBHOOK_URL)")
	rootCmd.PersistentFlags().StringVar(&flagSecret, "secret", "", "bot secret for signed messages (falls back to LARK_SECRET)")
	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", "", "message title")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "message content")
	rootCmd.PersistentFlags().StringVar(&flagKeywords, "keywords", "", "keywords to highlight (comma separated)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lark-notifier %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	webhookURL, err := config.Resolve(flagWebhookURL, "LARK_WEBHOOK_URL", cfg.WebhookURL)
	if err != nil {
		return err
	}

	msg := buildFromFlags(cfg, time.Now().Unix())
	client := lark.NewClient()
	if err := client.Send(context.Background(), webhookURL, msg); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Failed to send notification"))
		return err
	}

	fmt.Println(successStyle.Render("Successfully sent notification to Lark"))
	return nil
}

// loadSettings validates the message flags and loads .env plus the config
// file. .env is a convenience for local use; its absence is fine.
func loadSettings() (*config.Config, error) {
	if flagTitle == "" {
		return nil, fmt.Errorf("required flag --title not set")
	}
	if flagContent == "" {
		return nil, fmt.Errorf("required flag --content not set")
	}
	_ = godotenv.Load()
	return config.Load(flagConfig)
}

// buildFromFlags assembles the message from the current flag values. The
// result is signed when a secret resolves from any source.
func buildFromFlags(cfg *config.Config, timestamp int64) *lark.Message {
	secret := config.ResolveOptional(flagSecret, "LARK_SECRET", cfg.Secret)
	return buildMessage(flagTitle, flagContent, flagKeywords, secret, timestamp)
}

func buildMessage(title, content, keywords, secret string, timestamp int64) *lark.Message {
	segments := segment.Split(content, segment.Parse(keywords))
	msg := lark.NewMessage(title, segments)
	if secret != "" {
		msg.SignWith(secret, timestamp)
	}
	return msg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
