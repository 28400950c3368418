package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyOrderEvent posts an order event to the webhook configured via
// ORDER_WEBHOOK_URL. Delivery is best-effort; callers log failures and move
// on. A missing URL disables the webhook entirely.
func NotifyOrderEvent(orderID uint, status string, email string) error {
	url := os.Getenv("ORDER_WEBHOOK_URL")
	if url == "" {
		return nil
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"orderId": orderID,
			"status":  status,
			"email":   email,
		}).
		Post(url)

	if err != nil {
		return err
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook request failed with status %d", resp.StatusCode())
	}

	return nil
}
