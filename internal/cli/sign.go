package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/tagsync/internal/signature"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Compute the signature header for a payload",
		Long:  "Compute the X-Webhook-Signature value for a payload. Payload comes from --payload or stdin.",
		Run:   runSign,
	}

	cmd.Flags().String("secret", "", "Shared webhook secret (overrides config file)")
	cmd.Flags().String("payload", "", "Payload file (default: stdin)")

	RootCmd.AddCommand(cmd)
}

func runSign(cmd *cobra.Command, args []string) {
	fc, err := loadFileConfig()
	if err != nil {
		exitErr("load config", err)
	}

	secretFlag, _ := cmd.Flags().GetString("secret")
	secret := pick(secretFlag, fc.Secret)
	if secret == "" {
		exitErr("sign", fmt.Errorf("secret is required (--secret or config file)"))
	}

	body, err := readPayload(cmd)
	if err != nil {
		exitErr("read payload", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signature.Sign(body, []byte(secret)))
}
