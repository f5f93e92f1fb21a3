package admin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Rishab260/loan-app-poc/internal/models"
)

// Client calls the external admin dashboard's sync webhook. The call is
// advisory: callers log failures and move on, and the dashboard treats
// repeats for the same user as idempotent updates.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SyncLoanChoice posts the user's final loan choice to the dashboard.
// Any response status of 400 or above is an error; the caller decides
// whether that matters.
func (c *Client) SyncLoanChoice(ctx context.Context, choice models.LoanChoice) error {
	form := url.Values{}
	form.Set("user_id", choice.UserID)
	form.Set("opted", choice.Opted)
	form.Set("name", choice.Name)
	form.Set("address", choice.Address)
	form.Set("loan_amount", choice.LoanAmount)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/opt-by-id", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error building admin sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error calling admin sync webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("admin sync webhook returned status %d", resp.StatusCode)
	}
	return nil
}
