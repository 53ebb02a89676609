package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/recipeai/backend/config"
	"github.com/recipeai/backend/internal/grocery"
	"github.com/recipeai/backend/internal/model"
)

// DocumentService renders printable grocery documents and optionally
// uploads them to S3 for sharing.
type DocumentService struct {
	s3Config *config.S3Config
}

// NewDocumentService creates a new DocumentService instance. s3Config may
// be nil, in which case uploads are disabled and only rendering works.
func NewDocumentService(s3Config *config.S3Config) *DocumentService {
	return &DocumentService{s3Config: s3Config}
}

// Render writes the printable HTML document for a meal plan and grocery
// list to the given buffer.
func (s *DocumentService) Render(plan model.MealPlan, items []model.GroceryItem) ([]byte, error) {
	var buf bytes.Buffer
	if err := grocery.RenderDocument(&buf, plan, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UploadEnabled reports whether an S3 bucket is configured.
func (s *DocumentService) UploadEnabled() bool {
	return s.s3Config != nil
}

// Upload stores a rendered document in S3 and returns its public URL.
func (s *DocumentService) Upload(ctx context.Context, document []byte) (string, error) {
	if s.s3Config == nil {
		return "", fmt.Errorf("document upload is not configured")
	}

	fileName := fmt.Sprintf("grocery-lists/%s.html", time.Now().UTC().Format("2006-01-02T15-04-05"))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(document),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[DocumentService] Uploaded grocery document to S3: %s", publicURL)

	return publicURL, nil
}
