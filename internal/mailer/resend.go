package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const resendAPIURL = "https://api.resend.com/emails"

type ResendTransport struct {
	APIKey  string
	From    string
	BaseURL string
	Client  *http.Client
}

func NewResendTransport(apiKey, from string) *ResendTransport {
	return &ResendTransport{
		APIKey:  apiKey,
		From:    from,
		BaseURL: resendAPIURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func (t *ResendTransport) Send(to, subject, htmlBody string) error {
	// Dry-run when no key is configured, mirroring local development.
	if t.APIKey == "" {
		log.Printf("[mailer][dry-run] to=%s subject=%q", to, subject)
		return nil
	}

	payload, err := json.Marshal(resendRequest{
		From:    t.From,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, t.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(body))
	}

	var result resendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse email response: %w", err)
	}
	log.Printf("[mailer][sent] to=%s id=%s", to, result.ID)
	return nil
}
