package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const systemPrompt = `You are an AI assistant that helps organize voice notes into folders.

Based on the folder structure described below, analyze the transcript and decide:
1. Which folder it belongs in
2. A short title (max 50 chars)
3. A brief summary (max 100 chars)
4. A URL-safe slug for the filename (lowercase, hyphens, max 30 chars)

## Folder Structure:
%s

Respond with JSON only:
{"folder": "folder_name", "title": "Short Title", "summary": "Brief summary", "slug": "url-safe-slug"}`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends the transcript to the remote model. Without an API key the
// network is skipped entirely and a synthesized response is returned; every
// transport or API failure degrades to the same fallback shape.
func (c *implClassifier) Classify(ctx context.Context, transcript, taxonomy, defaultFolder string) string {
	if c.cfg.APIKey == "" {
		title := transcript
		if len([]rune(title)) > 30 {
			title = truncate(title, 30) + "..."
		}
		return fallbackJSON(defaultFolder, title, truncate(transcript, 100))
	}

	raw, err := c.call(ctx, transcript, taxonomy)
	if err != nil {
		c.logger.Error(ctx, "Classifier API error: %v", err)
		return fallbackJSON(defaultFolder, truncate(transcript, 30), truncate(transcript, 100))
	}

	return raw
}

func (c *implClassifier) call(ctx context.Context, transcript, taxonomy string) (string, error) {
	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(systemPrompt, taxonomy)},
			{Role: "user", Content: "Transcript: " + transcript},
		},
		MaxTokens: c.cfg.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("classifier returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// fallbackJSON mirrors the wire shape the model is instructed to produce so
// the same Interpret path handles both.
func fallbackJSON(folder, title, summary string) string {
	data, _ := json.Marshal(Result{
		Folder:  folder,
		Title:   title,
		Summary: summary,
		Slug:    "note",
	})
	return string(data)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
