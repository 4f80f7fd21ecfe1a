package gdocs

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// Client wraps the Google Docs API service.
type Client struct {
	service *docs.Service
}

// NewClientFromCredentialsFile creates a Docs client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, docs.DocumentsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := docs.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Docs client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ReadDocument fetches a document and flattens its body to plain text.
func (c *Client) ReadDocument(ctx context.Context, docID string) (*Document, error) {
	doc, err := c.service.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", docID, err)
	}

	var sb strings.Builder
	if doc.Body != nil {
		for _, elem := range doc.Body.Content {
			if elem.Paragraph == nil {
				continue
			}
			for _, pe := range elem.Paragraph.Elements {
				if pe.TextRun != nil {
					sb.WriteString(pe.TextRun.Content)
				}
			}
		}
	}

	return &Document{ID: doc.DocumentId, Title: doc.Title, Body: sb.String()}, nil
}

// AppendText inserts text at the end of the document body.
func (c *Client) AppendText(ctx context.Context, docID, text string) error {
	req := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Text:                 text,
					EndOfSegmentLocation: &docs.EndOfSegmentLocation{},
				},
			},
		},
	}

	if _, err := c.service.Documents.BatchUpdate(docID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to append to document %s: %w", docID, err)
	}
	return nil
}
