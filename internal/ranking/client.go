package ranking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/swiftdispatch/emergency_dispatch_system/internal/apperr"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
)

const systemInstruction = `You are an emergency dispatch assistant. Rank up to 4 hospitals from the reference dataset below by availability, specialty match and proximity to the emergency described by the user. Respond with strict JSON only, no prose: an object whose keys are the ranks "1" to "4" and whose values are objects with the fields "name", "geo" (a "lat,lon" string), "specialities" and "address".

Reference hospital dataset:
`

// Client - клиент эндпоинта chat completions, ранжирующего больницы.
// Справочник больниц загружается один раз при старте процесса и передается
// сюда по ссылке как неизменяемый блоб.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	dataset    []byte
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration, dataset []byte) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		dataset: dataset,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model           string        `json:"model"`
	Messages        []chatMessage `json:"messages"`
	MaxTokens       int           `json:"max_tokens"`
	Temperature     float64       `json:"temperature"`
	TopP            float64       `json:"top_p"`
	PresencePenalty float64       `json:"presence_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete отправляет сводку о происшествии модели и возвращает сырой текст
// ответа. Вызов атомарный: либо весь текст, либо ошибка, частичных
// результатов нет.
func (c *Client) Complete(ctx context.Context, emergencyData string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction + string(c.dataset)},
			{Role: "user", Content: emergencyData},
		},
		MaxTokens:       4096,
		Temperature:     0.7,
		TopP:            0.75,
		PresencePenalty: 0,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apperr.UpstreamError{Op: "llm", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &apperr.UpstreamError{
			Op:  "llm",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, snippet),
		}
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", &apperr.ParseError{Op: "llm", Err: err}
	}

	if len(chat.Choices) == 0 {
		return "", &apperr.ParseError{Op: "llm", Err: fmt.Errorf("completion returned no choices")}
	}

	return chat.Choices[0].Message.Content, nil
}

// Rank выполняет полный шаг ранжирования: запрос к модели и декодирование
// ответа в типизированные записи кандидатов.
func (c *Client) Rank(ctx context.Context, emergencyData string) ([]models.HospitalCandidate, error) {
	content, err := c.Complete(ctx, emergencyData)
	if err != nil {
		return nil, err
	}
	return ParseRanking(content)
}
