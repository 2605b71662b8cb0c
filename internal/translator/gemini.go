package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/valpere/gemtran/internal"
	"github.com/valpere/gemtran/internal/validator"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second
)

// GeminiClient calls the generateContent endpoint once per Translate call.
// It holds no mutable state and is safe for concurrent use.
type GeminiClient struct {
	apiKey    string
	baseURL   string
	model     string
	client    *http.Client
	validator *validator.Validator
	log       *slog.Logger
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

func NewGeminiClient(cfg ServiceConfig, log *slog.Logger) *GeminiClient {
	if log == nil {
		log = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &GeminiClient{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		model:     cfg.Model,
		client:    &http.Client{Timeout: cfg.Timeout},
		validator: validator.New(log),
		log:       log,
	}
}

func (c *GeminiClient) Name() string {
	return "gemini"
}

func (c *GeminiClient) Model() string {
	return c.model
}

// Translate validates the input, sends one request and returns the first
// candidate's text exactly as received.
func (c *GeminiClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	c.log.Info("translating text", "target", targetLanguage, "text", preview(text, 50))

	if err := c.validator.Validate(text, targetLanguage); err != nil {
		return "", err
	}

	jsonData, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(text, targetLanguage)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", internal.NewNetworkError(c.redact(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Info("sending request to Gemini API", "model", c.model)
	resp, err := c.client.Do(httpReq)
	if err != nil {
		nerr := internal.NewNetworkError(c.redact(err))
		c.log.Error("network error during API request", "error", nerr.Message, "timeout", nerr.Timeout())
		return "", nerr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		nerr := internal.NewNetworkError(c.redact(err))
		c.log.Error("failed to read API response", "error", nerr.Message)
		return "", nerr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstreamMessage(resp.StatusCode, body)
		c.log.Error("API request failed", "status", resp.StatusCode, "error", msg)
		return "", internal.NewUpstreamError(resp.StatusCode, msg)
	}

	c.log.Info("received response from Gemini API", "bytes", len(body))

	translated, err := extractText(body)
	if err != nil {
		c.log.Error("failed to parse API response", "error", err)
		return "", internal.NewParseError(err)
	}

	c.log.Info("translation successful", "target", targetLanguage)
	return translated, nil
}

func (c *GeminiClient) endpoint() string {
	q := url.Values{"key": {c.apiKey}}
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", c.baseURL, c.model, q.Encode())
}

// redact strips the API key from the URL carried by *url.Error so it never
// reaches logs or callers.
func (c *GeminiClient) redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && c.apiKey != "" {
		uerr.URL = strings.ReplaceAll(uerr.URL, url.QueryEscape(c.apiKey), "REDACTED")
	}
	return err
}

func buildPrompt(text, targetLanguage string) string {
	return fmt.Sprintf("Translate the following text to %s accurately, preserving tone and context:\n\n'%s'", targetLanguage, text)
}

// upstreamMessage prefers error.message from a JSON error body and falls
// back to the raw body.
func upstreamMessage(statusCode int, body []byte) string {
	var errResp struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	if strings.TrimSpace(string(body)) != "" {
		return string(body)
	}
	return http.StatusText(statusCode)
}

func preview(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}
