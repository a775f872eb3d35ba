package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier delivers the completion email. Delivery is best effort: the
// report workflow logs failures and carries on.
type Notifier interface {
	SendProjectCompleted(ctx context.Context, to, projectName, reportURL string) error
}

// RelayNotifier invokes the deployed email-relay function over HTTP with the
// {to, subject, html} body the relay expects.
type RelayNotifier struct {
	relayURL string
	client   *http.Client
}

func NewRelayNotifier(relayURL string) *RelayNotifier {
	return &RelayNotifier{
		relayURL: relayURL,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (n *RelayNotifier) SendProjectCompleted(ctx context.Context, to, projectName, reportURL string) error {
	payload := map[string]string{
		"to":      to,
		"subject": fmt.Sprintf("✅ Proyecto Completado: %s", projectName),
		"html": fmt.Sprintf(
			`<p>El proyecto <strong>%s</strong> ha sido completado.</p>`+
				`<a href="%s" style="padding: 10px 20px; background-color: #2563EB; color: white; text-decoration: none; border-radius: 5px;">Descargar Reporte</a>`,
			projectName, reportURL),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.relayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}
