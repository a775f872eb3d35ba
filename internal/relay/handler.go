package relay

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/resend/resend-go/v2"
)

// EmailSender forwards one message to the transactional-email provider and
// returns the provider's response payload.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) (interface{}, error)
}

// ResendSender sends through the Resend API with a bearer credential.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(ctx context.Context, to, subject, html string) (interface{}, error) {
	return s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
}

// Handler is the relay function body: one request, one provider call, no
// state between invocations. Pre-flight requests are answered by the CORS
// wrapper around it.
type Handler struct {
	sender EmailSender
}

func NewHandler(sender EmailSender) *Handler {
	return &Handler{sender: sender}
}

type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	data, err := h.sender.Send(r.Context(), req.To, req.Subject, req.HTML)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	// Relay the provider's response verbatim.
	json.NewEncoder(w).Encode(data)
}
