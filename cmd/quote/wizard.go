package main

import (
	"context"
	"fmt"

	"festquote/config"
	"festquote/services/catalog"
	"festquote/services/dispatch"
	"festquote/services/session"
	"festquote/tui"
	"festquote/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var wizardFlags struct {
	dataAPIURL  string
	anonKey     string
	accessToken string
	host        string
	number      string
}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Start the quote-request wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyWizardFlags(cmd)
		return runWizard(cmd.Context())
	},
}

func init() {
	f := wizardCmd.Flags()
	f.StringVar(&wizardFlags.dataAPIURL, "data-api-url", "", "data API base URL (overrides DATA_API_URL)")
	f.StringVar(&wizardFlags.anonKey, "anon-key", "", "data API anonymous key (overrides DATA_API_ANON_KEY)")
	f.StringVar(&wizardFlags.accessToken, "token", "", "access token forwarded to the data API")
	f.StringVar(&wizardFlags.host, "whatsapp-host", "", "messaging host (overrides WHATSAPP_HOST)")
	f.StringVar(&wizardFlags.number, "whatsapp-number", "", "recipient number (overrides WHATSAPP_NUMBER)")
}

// applyWizardFlags copies explicitly set flags over the loaded configuration.
func applyWizardFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("data-api-url") {
		config.AppConfig.DataAPIURL = wizardFlags.dataAPIURL
	}
	if f.Changed("anon-key") {
		config.AppConfig.DataAPIAnonKey = wizardFlags.anonKey
	}
	if f.Changed("whatsapp-host") {
		config.AppConfig.WhatsAppHost = wizardFlags.host
	}
	if f.Changed("whatsapp-number") {
		config.AppConfig.WhatsAppNumber = wizardFlags.number
	}
}

func runWizard(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.AppConfig

	source := catalog.NewClient(cfg.DataAPIURL, cfg.DataAPITimeout, cfg.DataAPIRequireAuth)
	var images catalog.ImageResolver
	cld, err := utils.Cloudinary()
	if err != nil {
		return err
	}
	if cld != nil {
		images = cld
	}
	gateway := catalog.NewGateway(source, images, logger)
	dispatcher, err := dispatch.NewDispatcher(cfg.WhatsAppHost, cfg.WhatsAppNumber, dispatch.ClipboardOpener{}, logger)
	if err != nil {
		return err
	}
	svc := session.NewService(session.NewMemoryStore(cfg.SessionTTL), gateway, dispatcher, logger).WithSubmitTimeout(cfg.SubmitLockTTL)

	model, err := tui.New(ctx, svc, catalog.AuthSession{AnonKey: cfg.DataAPIAnonKey, AccessToken: wizardFlags.accessToken})
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	if m, ok := final.(*tui.Model); ok && m.Done() {
		fmt.Println(m.Link())
	}
	return nil
}
