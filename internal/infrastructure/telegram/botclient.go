package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	sharedConfig "github.com/hys-retail/storedesk/internal/shared/config"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

const (
	defaultAPIBaseURL       = "https://api.telegram.org"
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
)

// BotClient sends messages to a single configured chat.
type BotClient struct {
	enabled    bool
	chatID     string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[struct{}]
	logger     logger.Interface
}

// NewBotClient creates a client for cfg. It is usable even when cfg is not
// Enabled; callers check Enabled before sending.
func NewBotClient(cfg sharedConfig.TelegramConfig, log logger.Interface) *BotClient {
	apiBase := strings.TrimRight(cfg.APIBaseURL, "/")
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}

	c := &BotClient{
		enabled: cfg.Enabled(),
		chatID:  cfg.ChatID,
		baseURL: fmt.Sprintf("%s/bot%s", apiBase, cfg.BotToken),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log,
	}

	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "telegram",
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		// A rejected message says nothing about the API's health.
		IsSuccessful: func(err error) bool {
			return err == nil || isNonRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("telegram circuit breaker state changed", "from", from.String(), "to", to.String())
		},
	})
	return c
}

// Enabled reports whether a chat is configured.
func (c *BotClient) Enabled() bool {
	return c.enabled
}

// SendMessage posts an HTML message, packed into chunks within Telegram's limit.
func (c *BotClient) SendMessage(ctx context.Context, text string) error {
	for _, chunk := range chunkLines(text, maxMessageLength) {
		_, err := c.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, c.sendChunk(ctx, chunk)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return ErrCircuitOpen
			}
			return err
		}
	}
	return nil
}

func (c *BotClient) sendChunk(ctx context.Context, text string) error {
	body := map[string]any{
		"chat_id":                  c.chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	}
	return c.makeRequest(ctx, c.baseURL+"/sendMessage", body)
}

// apiResponse represents the envelope of every Bot API response
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after,omitempty"`
	} `json:"parameters,omitempty"`
}

func (c *BotClient) makeRequest(ctx context.Context, url string, body map[string]any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if !result.OK {
		apiErr := &APIError{ErrorCode: result.ErrorCode, Description: result.Description}
		if apiErr.ErrorCode == 0 {
			apiErr.ErrorCode = resp.StatusCode
		}
		if result.Parameters != nil {
			apiErr.RetryAfter = result.Parameters.RetryAfter
		}
		return apiErr
	}

	return nil
}
