package ai

import (
	"context"
	"fmt"
	"strings"

	"roomly/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiOracle implements Oracle against the Gemini API.
type GeminiOracle struct {
	model *genai.GenerativeModel
}

// NewGeminiOracle creates the production oracle client.
func NewGeminiOracle(apiKey string) (*GeminiOracle, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiOracle{model: model}, nil
}

func (g *GeminiOracle) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// ExtractRequirements implements Oracle.
func (g *GeminiOracle) ExtractRequirements(ctx context.Context, freeText string) (string, error) {
	return g.generate(ctx, buildExtractPrompt(freeText))
}

// RankCandidates implements Oracle.
func (g *GeminiOracle) RankCandidates(ctx context.Context, reqs models.RoomRequirements, rooms []models.Room) (string, error) {
	return g.generate(ctx, buildRankPrompt(reqs, rooms))
}

// ConfirmationMessage implements Oracle.
func (g *GeminiOracle) ConfirmationMessage(ctx context.Context, res models.Reservation, room models.Room) (string, error) {
	return g.generate(ctx, buildConfirmPrompt(res, room))
}
