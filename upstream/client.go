// Package upstream is the client for the backend REST API that owns
// categories, sous-categories, products and commandes. Reads are JSON,
// writes are multipart/form-data (the write endpoints carry image
// uploads), and every non-2xx response surfaces as an APIError carrying
// the status and the response body text.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Body)
}

// FormFile is a file attached to a multipart write.
type FormFile struct {
	Name    string
	Content io.Reader
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// getJSON performs a GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// delete performs a DELETE and discards any body.
func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// formField is one ordered multipart field; files and plain values share
// the ordering so repeated fields like images arrive the way the backend
// expects them.
type formField struct {
	key   string
	value string
	file  *FormFile
}

// submitForm performs a multipart write (POST or PUT) and decodes the
// returned entity into out.
func (c *Client) submitForm(ctx context.Context, method, path string, fields []formField, out any) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range fields {
		if f.file != nil {
			part, err := writer.CreateFormFile(f.key, f.file.Name)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, f.file.Content); err != nil {
				return err
			}
			continue
		}
		if err := writer.WriteField(f.key, f.value); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(errorBody)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
