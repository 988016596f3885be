package aigen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/config"
	"google.golang.org/genai"
)

const generationModel = "gemini-2.0-flash"

// FileHandle is the provider-side reference returned by file ingestion.
// Handles live only for the generation call that follows; they are never
// cached across requests.
type FileHandle struct {
	Name     string
	URI      string
	MIMEType string
}

type ModelConfig struct {
	Temperature     float32
	MaxOutputTokens int32
}

// Client is the injectable surface over the LLM provider so orchestrators
// and parsers can be tested against canned text.
type Client interface {
	UploadFile(ctx context.Context, fileURL, fileName string) (*FileHandle, error)
	GenerateContent(ctx context.Context, system, user string, files []FileHandle, cfg ModelConfig) (string, error)
}

type geminiClient struct {
	client     *genai.Client
	httpClient *http.Client
}

func NewGeminiClient(ctx context.Context) (Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiClient{
		client:     client,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// UploadFile streams the document bytes from object storage into the
// provider's file-ingestion endpoint.
func (c *geminiClient) UploadFile(ctx context.Context, fileURL, fileName string) (*FileHandle, error) {
	log := config.WithContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, apperr.Upstream("document fetch failed", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Errorf("Failed to fetch document %q from storage", fileName)
		return nil, apperr.Upstream("document fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Upstream("document fetch failed",
			fmt.Errorf("storage returned status %d for %q", resp.StatusCode, fileName))
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	file, err := c.client.Files.Upload(ctx, resp.Body, &genai.UploadFileConfig{
		DisplayName: fileName,
		MIMEType:    mimeType,
	})
	if err != nil {
		log.WithError(err).Errorf("Failed to upload document %q to Gemini", fileName)
		return nil, apperr.Upstream("document upload failed", err)
	}

	return &FileHandle{
		Name:     file.Name,
		URI:      file.URI,
		MIMEType: file.MIMEType,
	}, nil
}

func (c *geminiClient) GenerateContent(ctx context.Context, system, user string, files []FileHandle, cfg ModelConfig) (string, error) {
	log := config.WithContext(ctx)

	parts := []*genai.Part{genai.NewPartFromText(user)}
	for _, f := range files {
		parts = append(parts, genai.NewPartFromURI(f.URI, f.MIMEType))
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		generationModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			Temperature:       genai.Ptr(cfg.Temperature),
			MaxOutputTokens:   cfg.MaxOutputTokens,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini generation call failed")
		return "", apperr.Upstream("content generation failed", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", apperr.Upstream("content generation failed",
			fmt.Errorf("model returned no text"))
	}

	log.Debugf("Raw Gemini response:\n%s", raw)
	return raw, nil
}
