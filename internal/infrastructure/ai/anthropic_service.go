package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService adaptador que implementa LLMService usando la API REST de
// Anthropic (Claude, Messages API con bloques de imagen). Usa net/http de la
// librería estándar; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador. model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type   string           `json:"type"` // "text" | "image"
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"` // "base64"
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo
// envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// IdentifyProduct busca un identificador (código de barras, SKU o nombre) en la imagen.
func (s *AnthropicService) IdentifyProduct(ctx context.Context, imageBase64 string) (string, error) {
	text, err := s.message(ctx, "", []anthropicBlock{
		imageBlock(imageBase64),
		{Type: "text", Text: identifyPrompt},
	}, 128)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, notFoundSentinel) {
		return "", nil
	}
	return text, nil
}

// ExtractProductDetails extrae la ficha estructurada de una etiqueta de producto.
func (s *AnthropicService) ExtractProductDetails(ctx context.Context, imageBase64 string) (*dto.AIProductDetailsDTO, error) {
	text, err := s.message(ctx, "", []anthropicBlock{
		imageBlock(imageBase64),
		{Type: "text", Text: extractPrompt},
	}, 512)
	if err != nil {
		return nil, err
	}
	cleanJSON := extractJSON(text)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", text)
	}
	var details dto.AIProductDetailsDTO
	if err := json.Unmarshal([]byte(cleanJSON), &details); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de detalles: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return &details, nil
}

// InventoryInsights genera viñetas de asesoría a partir del resumen de inventario y ventas.
func (s *AnthropicService) InventoryInsights(ctx context.Context, inventory []ports.InsightProduct, recentSales []ports.InsightSaleLine) (string, error) {
	contextJSON, err := json.Marshal(map[string]any{
		"inventory":   inventory,
		"recentSales": recentSales,
	})
	if err != nil {
		return "", fmt.Errorf("AI: serializar contexto: %w", err)
	}
	text, err := s.message(ctx, insightsPrompt, []anthropicBlock{
		{Type: "text", Text: string(contextJSON)},
	}, 1024)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func imageBlock(imageBase64 string) anthropicBlock {
	return anthropicBlock{
		Type: "image",
		Source: &anthropicSource{
			Type:      "base64",
			MediaType: "image/jpeg",
			Data:      imageBase64,
		},
	}
}

// message ejecuta una llamada a la Messages API y devuelve el texto del primer bloque.
func (s *AnthropicService) message(ctx context.Context, system string, blocks []anthropicBlock, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: blocks},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}
	return anthResp.Content[0].Text, nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Primero elimina bloques de código markdown y luego captura el primer {...}.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
