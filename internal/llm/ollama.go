package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// OllamaClient streams completions from a local Ollama daemon. The daemon
// holds no credentials, so availability is the only precondition: Complete
// probes /api/tags first and skips the expensive generation call when the
// daemon is down.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaClient(baseURL, model string, timeout time.Duration) *OllamaClient {
	return &OllamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (o *OllamaClient) Name() string {
	return "ollama"
}

// Ping asks the daemon for its tag list. Anything but a 200 counts as
// unreachable.
func (o *OllamaClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: tags endpoint returned status %d", ErrUnreachable, resp.StatusCode)
	}
	return nil
}

// Complete probes the daemon, then streams /api/generate and concatenates
// the fragments in arrival order. A fragment that does not parse is skipped,
// never fatal.
func (o *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := o.Ping(ctx); err != nil {
		return "", err
	}

	payload := map[string]any{
		"model":  o.model,
		"prompt": prompt,
		"stream": true,
		"options": map[string]any{
			"temperature":    genTemperature,
			"top_p":          genTopP,
			"repeat_penalty": ollamaRepeatPenalty,
			"num_predict":    genMaxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/api/generate",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{Status: resp.StatusCode}
	}

	var text strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var piece struct {
			Response string `json:"response"`
			Done     bool   `json:"done"`
		}
		if err := json.Unmarshal([]byte(line), &piece); err != nil {
			logrus.WithField("fragment", line).Debug("OLLAMA_FRAGMENT_SKIPPED")
			continue
		}
		text.WriteString(piece.Response)
	}

	if err := scanner.Err(); err != nil {
		if text.Len() == 0 {
			return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		// Keep whatever arrived; repair and validation decide its fate.
		logrus.WithError(err).Warn("OLLAMA_STREAM_TRUNCATED")
	}

	out := text.String()
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
