package usecase

import (
	"io"
	"os"
	"path/filepath"

	"portfolio-backend/internal/shared/errors"
	"portfolio-backend/internal/shared/logger"

	"github.com/google/uuid"
)

// allowedUploadTypes is the fixed allow-list of declared upload content
// types. No image validation happens beyond this header check.
var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// UploadResult is the reference returned for a stored asset.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadUsecaseInterface stores uploaded assets under collision-free names.
type UploadUsecaseInterface interface {
	SaveUpload(originalName, contentType string, content io.Reader) (*UploadResult, error)
}

// UploadUsecase persists uploads to a local directory served under /uploads.
type UploadUsecase struct {
	dir string
	log logger.Logger
}

// NewUploadUsecase creates the upload usecase, ensuring the target directory
// exists.
func NewUploadUsecase(dir string, log logger.Logger) (*UploadUsecase, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadUsecase{
		dir: dir,
		log: log.WithComponent("uploads"),
	}, nil
}

// SaveUpload validates the declared content type against the allow-list,
// writes the byte stream under a generated unique filename and returns the
// relative URL.
func (u *UploadUsecase) SaveUpload(originalName, contentType string, content io.Reader) (*UploadResult, error) {
	if _, ok := allowedUploadTypes[contentType]; !ok {
		return nil, errors.NewInvalidFileTypeError(contentType)
	}

	filename := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(u.dir, filename)

	out, err := os.Create(path)
	if err != nil {
		return nil, errors.WrapError(err, "failed to create upload file")
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		os.Remove(path)
		return nil, errors.WrapError(err, "failed to write upload file")
	}

	u.log.Infof("stored upload %s (%s)", filename, contentType)
	return &UploadResult{
		URL:      "/uploads/" + filename,
		Filename: filename,
	}, nil
}

var _ UploadUsecaseInterface = (*UploadUsecase)(nil)
