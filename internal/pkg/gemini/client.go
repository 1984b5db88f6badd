// Package gemini wraps the Google generative AI client for lot photo
// captioning.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const describePrompt = `Você é um avaliador de veículos de leilão. Descreva em português,
em até 3 frases, o estado aparente do veículo na foto: lataria, pintura,
pneus e danos visíveis. Seja objetivo e não invente detalhes que não
estejam na imagem.`

type Client struct {
	model *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient -> %w", err)
	}

	return &Client{model: client.GenerativeModel(modelName)}, nil
}

// DescribeImage captions a vehicle photo given as a base64 data URL or a
// bare base64 JPEG payload.
func (c *Client) DescribeImage(ctx context.Context, image string) (string, error) {
	payload := image
	mimeType := "jpeg"
	if strings.HasPrefix(image, "data:") {
		meta, rest, found := strings.Cut(image, ",")
		if !found {
			return "", fmt.Errorf("malformed data URL")
		}
		payload = rest
		if strings.Contains(meta, "image/png") {
			mimeType = "png"
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("base64.StdEncoding.DecodeString -> %w", err)
	}

	resp, err := c.model.GenerateContent(ctx,
		genai.ImageData(mimeType, raw),
		genai.Text(describePrompt),
	)
	if err != nil {
		return "", fmt.Errorf("c.model.GenerateContent -> %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response part type")
	}

	return string(text), nil
}
