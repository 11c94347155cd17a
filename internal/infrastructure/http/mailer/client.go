package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
)

// Client delivers messages by POSTing {to, subject, body} to the
// external email relay. The relay owns the actual transport (SMTP or a
// simulated sink); this client only cares about the handoff.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient(cfg config.MailConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type emailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send hands one message to the relay. The caller bounds the attempt
// with its context; there is no retry here.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if c.endpoint == "" {
		return fmt.Errorf("email endpoint is empty")
	}

	payload, err := json.Marshal(emailPayload{To: to, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call email relay: %w", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email relay status %d", resp.StatusCode)
	}
	return nil
}
