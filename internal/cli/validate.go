package cli

import (
	"fmt"

	"github.com/alanmeadows/sheetsmart/internal/assistant"
	"github.com/spf13/cobra"
)

var validateCredentials string

func init() {
	validateCmd.Flags().StringVar(&validateCredentials, "credentials", "", "Service-account credentials.json")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the API key against the model service",
	Long: `Check that an API key is set and accepted by the configured model
provider. The key is read from OPENAI_API_KEY (or GEMINI_API_KEY).
For the google sheets backend a credentials file is also required.`,
	Example: `  OPENAI_API_KEY=sk-... sheetsmart validate --credentials ./credentials.json`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := assistant.NewSession(newSessionOptions(appConfig))
		sess.APIKey = apiKeyFromEnv(appConfig)
		sess.CredentialsPath = validateCredentials

		out := cmd.OutOrStdout()
		if err := sess.Validate(cmd.Context()); err != nil {
			fmt.Fprintln(out, classify(err).render())
			return err
		}

		client := sess.Client()
		fmt.Fprintln(out, notice{
			title: "Valid",
			text:  fmt.Sprintf("API key accepted by %s (model %s).", client.Name(), client.Model()),
			style: successStyle,
		}.render())
		return nil
	},
}
