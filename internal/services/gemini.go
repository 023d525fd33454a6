package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/dhvanil3103/ats-resume/internal/config"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("no text content in response")

// TextGenerator sends a prompt to a language model and returns its raw text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiService struct {
	client *genai.Client
	cfg    config.GeminiConfig
	log    *logrus.Logger
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, log *logrus.Logger) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		cfg:    cfg,
		log:    log,
	}, nil
}

// GenerateText implements TextGenerator.
func (g *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.cfg.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.cfg.MaxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
			g.log.WithField("finish_reason", resp.Candidates[0].FinishReason).Debug("Gemini returned an empty candidate")
		}
		return "", ErrEmptyResponse
	}

	g.log.WithFields(logrus.Fields{
		"model":           g.cfg.Model,
		"prompt_length":   len(prompt),
		"response_length": len(text),
	}).Debug("Gemini response received")

	return text, nil
}
