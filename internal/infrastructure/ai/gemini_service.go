// Package ai contiene los adaptadores del puerto LLMService hacia proveedores
// de visión/lenguaje. Usan únicamente net/http de la librería estándar: el
// protocolo REST de ambos proveedores es lo bastante simple para no justificar
// un SDK.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// notFoundSentinel es la respuesta acordada con el modelo cuando la imagen
	// no contiene ningún identificador legible.
	notFoundSentinel = "NOT_FOUND"

	identifyPrompt = `Analiza la imagen de un producto de retail. Busca en este orden:
1. Un código de barras legible (devuelve los dígitos).
2. Un SKU o código de producto impreso.
3. El nombre comercial del producto.
Responde ÚNICAMENTE con el identificador encontrado, sin texto adicional.
Si no encuentras ninguno, responde exactamente: ` + notFoundSentinel

	extractPrompt = `Analiza la etiqueta del producto en la imagen y devuelve ÚNICAMENTE un objeto JSON con esta estructura exacta:
{
  "name": "<nombre comercial del producto>",
  "sku": "<SKU o código de barras si es visible, si no cadena vacía>",
  "batchNumber": "<número de lote si es visible, si no cadena vacía>",
  "expiryDate": "<fecha de vencimiento en formato YYYY-MM-DD si es visible, si no cadena vacía>",
  "price": <precio numérico si es visible, si no 0>,
  "category": "<categoría sugerida, ej. Groceries>"
}
No incluyas texto fuera del JSON.`

	insightsPrompt = `Eres un asesor de negocios para una tienda de retail pequeña.
A partir del inventario y las ventas recientes (JSON a continuación), genera de 3 a 5 viñetas accionables en el idioma del inventario:
- productos con riesgo de quiebre de stock o vencimiento
- oportunidades de precio o de rotación
- patrones de venta relevantes
Sé concreto y breve. Responde solo las viñetas.`
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini (texto e imágenes inline).
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 25 * time.Second, // timeout de red; el use case también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// IdentifyProduct busca un identificador (código de barras, SKU o nombre) en la imagen.
// Devuelve "" sin error cuando el modelo responde el sentinel de no encontrado.
func (s *GeminiService) IdentifyProduct(ctx context.Context, imageBase64 string) (string, error) {
	parts := []geminiPart{
		{Text: identifyPrompt},
		{InlineData: &geminiInlineData{MIMEType: "image/jpeg", Data: imageBase64}},
	}
	text, err := s.generate(ctx, parts, genConfig{Temperature: 0.1, MaxOutputTokens: 128})
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
func (s *GeminiService) ExtractProductDetails(ctx context.Context, imageBase64 string) (*dto.AIProductDetailsDTO, error) {
	parts := []geminiPart{
		{Text: extractPrompt},
		{InlineData: &geminiInlineData{MIMEType: "image/jpeg", Data: imageBase64}},
	}
	text, err := s.generate(ctx, parts, genConfig{
		ResponseMIMEType: "application/json",
		Temperature:      0.2,
		MaxOutputTokens:  512,
	})
	if err != nil {
		return nil, err
	}
	var details dto.AIProductDetailsDTO
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &details); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, text)
	}
	return &details, nil
}

// InventoryInsights genera viñetas de asesoría a partir del resumen de inventario y ventas.
func (s *GeminiService) InventoryInsights(ctx context.Context, inventory []ports.InsightProduct, recentSales []ports.InsightSaleLine) (string, error) {
	contextJSON, err := json.Marshal(map[string]any{
		"inventory":   inventory,
		"recentSales": recentSales,
	})
	if err != nil {
		return "", fmt.Errorf("AI: serializar contexto: %w", err)
	}
	parts := []geminiPart{
		{Text: insightsPrompt + "\n\n" + string(contextJSON)},
	}
	text, err := s.generate(ctx, parts, genConfig{Temperature: 0.5, MaxOutputTokens: 1024})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate ejecuta una llamada generateContent y devuelve el texto del primer candidato.
func (s *GeminiService) generate(ctx context.Context, parts []geminiPart, cfg genConfig) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: cfg,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}
