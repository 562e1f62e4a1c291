package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pkordes/tagsync/internal/handler"
	"github.com/pkordes/tagsync/internal/signature"
)

func init() {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Sign and deliver a webhook payload",
		Long:  "Sign a payload and POST it to a running tagsync service with the same headers the order system sends. Useful for replaying dropped deliveries.",
		Run:   runSend,
	}

	cmd.Flags().String("url", "", "Webhook endpoint, e.g. http://localhost:8080/webhooks/orders")
	cmd.Flags().String("secret", "", "Shared webhook secret (overrides config file)")
	cmd.Flags().String("event", "", "Event kind header (default: order.updated)")
	cmd.Flags().String("payload", "", "Payload file (default: stdin)")
	cmd.Flags().String("delivery", "", "Delivery ID header (default: generated)")

	RootCmd.AddCommand(cmd)
}

func runSend(cmd *cobra.Command, args []string) {
	fc, err := loadFileConfig()
	if err != nil {
		exitErr("load config", err)
	}

	urlFlag, _ := cmd.Flags().GetString("url")
	secretFlag, _ := cmd.Flags().GetString("secret")
	eventFlag, _ := cmd.Flags().GetString("event")
	deliveryFlag, _ := cmd.Flags().GetString("delivery")

	endpoint := pick(urlFlag, fc.URL)
	secret := pick(secretFlag, fc.Secret)
	event := pick(eventFlag, fc.Event, "order.updated")
	if endpoint == "" {
		exitErr("send", fmt.Errorf("url is required (--url or config file)"))
	}
	if secret == "" {
		exitErr("send", fmt.Errorf("secret is required (--secret or config file)"))
	}

	body, err := readPayload(cmd)
	if err != nil {
		exitErr("read payload", err)
	}

	delivery := deliveryFlag
	if delivery == "" {
		delivery = uuid.NewString()
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		exitErr("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.HeaderEvent, event)
	req.Header.Set(handler.HeaderDelivery, delivery)
	req.Header.Set(handler.HeaderSignature, signature.Sign(body, []byte(secret)))

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		exitErr("deliver", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "delivery %s: %s\n", delivery, resp.Status)
	if trimmed := strings.TrimSpace(string(respBody)); trimmed != "" {
		fmt.Fprintln(out, trimmed)
	}
}
