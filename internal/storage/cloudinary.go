package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"team-registration-backend/internal/config"
	apperrors "team-registration-backend/internal/errors"
)

// CloudinaryUploader uploads files to Cloudinary's unsigned upload endpoint
// and returns the secure URL of the stored asset.
type CloudinaryUploader struct {
	cfg        *config.Config
	httpClient *http.Client
	baseURL    string
}

// NewCloudinaryUploader creates a new Cloudinary-backed uploader
func NewCloudinaryUploader(cfg *config.Config) *CloudinaryUploader {
	return &CloudinaryUploader{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.UploadTimeout()},
		baseURL:    "https://api.cloudinary.com/v1_1",
	}
}

// cloudinaryUploadResponse represents the subset of Cloudinary's upload
// response we consume.
type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file to Cloudinary under the given folder tag. The call is
// bounded by both the client timeout and the caller's context; a deadline hit
// surfaces as ErrUploadTimeout so the enclosing mutation can abort cleanly.
func (u *CloudinaryUploader) Upload(ctx context.Context, folder, filename string, file io.Reader) (string, error) {
	if u.cfg.CloudinaryCloudName == "" || u.cfg.CloudinaryUploadPreset == "" {
		return "", apperrors.NewUploadError("cloudinary configuration missing (CLOUDINARY_CLOUD_NAME or CLOUDINARY_UPLOAD_PRESET)", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, u.cfg.UploadTimeout())
	defer cancel()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.NewUploadError("building upload body", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", apperrors.NewUploadError("reading file payload", err)
	}
	if err := writer.WriteField("upload_preset", u.cfg.CloudinaryUploadPreset); err != nil {
		return "", apperrors.NewUploadError("building upload body", err)
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", apperrors.NewUploadError("building upload body", err)
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.NewUploadError("building upload body", err)
	}

	uploadURL := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cfg.CloudinaryCloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &body)
	if err != nil {
		return "", apperrors.NewUploadError("creating upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			return "", apperrors.ErrUploadTimeout
		}
		return "", apperrors.NewUploadError("sending upload request", err)
	}
	defer resp.Body.Close()

	var result cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperrors.NewUploadError("decoding upload response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := result.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return "", apperrors.NewUploadError(msg, nil)
	}

	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	if result.URL != "" {
		return result.URL, nil
	}
	return "", apperrors.NewUploadError("upload response missing asset URL", nil)
}

func isClientTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// WithTimeout overrides the per-call timeout. Used by tests.
func (u *CloudinaryUploader) WithTimeout(d time.Duration) *CloudinaryUploader {
	u.httpClient.Timeout = d
	return u
}
