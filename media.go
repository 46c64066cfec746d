package underboss

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/google/uuid"
)

// MediaFile is one file to attach to a job posting.
type MediaFile struct {
	// Name is the filename reported to the server.
	Name string
	// ContentType is the MIME type, e.g. "image/jpeg".
	ContentType string
	// Reader supplies the file contents.
	Reader io.Reader
}

// MediaUploadResult is the server's accounting of a multipart upload.
type MediaUploadResult struct {
	Uploaded []Media `json:"uploaded_media"`
	Count    int     `json:"count"`
}

// MediaClient uploads and downloads job-posting attachments. These are the
// two binary endpoints: upload is multipart form data, download returns raw
// bytes. Both go through the same auth precheck and error normalization as
// JSON dispatches.
type MediaClient struct {
	client *Client
}

func (m *MediaClient) ensureInitialized() error {
	if m == nil || m.client == nil {
		return fmt.Errorf("underboss: media client not initialized")
	}
	return nil
}

// Upload attaches files to a posting.
func (m *MediaClient) Upload(ctx context.Context, papsID uuid.UUID, files []MediaFile) (MediaUploadResult, error) {
	if err := m.ensureInitialized(); err != nil {
		return MediaUploadResult{}, err
	}
	const endpoint = "paps.media.upload"
	desc, err := m.client.registry.Resolve(endpoint)
	if err != nil {
		return MediaUploadResult{}, &NormalizedError{Category: CategoryUnknown, Endpoint: endpoint, Message: err.Error(), cause: err}
	}
	if desc.RequiresAuth && !m.client.session.IsAuthenticated() {
		return MediaUploadResult{}, &NormalizedError{Category: CategoryAuthentication, Endpoint: endpoint, Message: CategoryMessage(CategoryAuthentication)}
	}
	if len(files) == 0 {
		verr := &ValidationError{Field: "files", Message: "At least one file is required"}
		return MediaUploadResult{}, &NormalizedError{Category: CategoryValidation, Endpoint: endpoint, Message: verr.Message, cause: verr}
	}
	path, _, err := expandPath(desc.PathTemplate, Fields{"paps_id": papsID.String()})
	if err != nil {
		return MediaUploadResult{}, &NormalizedError{Category: CategoryValidation, Endpoint: endpoint, Message: err.Error(), cause: err}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, file.Name))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return MediaUploadResult{}, &NormalizedError{Category: CategoryFileError, Endpoint: endpoint, Message: fmt.Sprintf("could not encode file %q", file.Name), cause: err}
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return MediaUploadResult{}, &NormalizedError{Category: CategoryFileError, Endpoint: endpoint, Message: fmt.Sprintf("could not read file %q", file.Name), cause: err}
		}
	}
	if err := writer.Close(); err != nil {
		return MediaUploadResult{}, &NormalizedError{Category: CategoryFileError, Endpoint: endpoint, Message: "could not finalize upload body", cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, m.client.buildURL(path), bytes.NewReader(buf.Bytes()))
	if err != nil {
		return MediaUploadResult{}, &NormalizedError{Category: CategoryUnknown, Endpoint: endpoint, Message: err.Error(), cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	injectTraceparent(ctx, req)

	resp, nerr := m.client.do(req, endpoint)
	if nerr != nil {
		return MediaUploadResult{}, nerr
	}
	defer func() { _ = resp.Body.Close() }()
	var result MediaUploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return MediaUploadResult{}, &NormalizedError{Category: CategoryUnknown, StatusCode: resp.StatusCode, Endpoint: endpoint, Message: "response body could not be decoded", cause: err}
	}
	return result, nil
}

// Download fetches a stored media object, returning its raw bytes and
// content type.
func (m *MediaClient) Download(ctx context.Context, mediaID uuid.UUID) ([]byte, string, error) {
	if err := m.ensureInitialized(); err != nil {
		return nil, "", err
	}
	const endpoint = "media.download"
	desc, err := m.client.registry.Resolve(endpoint)
	if err != nil {
		return nil, "", &NormalizedError{Category: CategoryUnknown, Endpoint: endpoint, Message: err.Error(), cause: err}
	}
	path, _, err := expandPath(desc.PathTemplate, Fields{"media_id": mediaID.String()})
	if err != nil {
		return nil, "", &NormalizedError{Category: CategoryValidation, Endpoint: endpoint, Message: err.Error(), cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, desc.Method, m.client.buildURL(path), nil)
	if err != nil {
		return nil, "", &NormalizedError{Category: CategoryUnknown, Endpoint: endpoint, Message: err.Error(), cause: err}
	}
	injectTraceparent(ctx, req)
	resp, nerr := m.client.do(req, endpoint)
	if nerr != nil {
		return nil, "", nerr
	}
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &NormalizedError{Category: CategoryNetworkError, Endpoint: endpoint, Message: "response body could not be read", cause: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
