package media

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"plantcare/internal/domain/service"

	"github.com/pkg/errors"
)

type multipartSource struct {
	header *multipart.FileHeader
}

// NewMultipartSource adapts an uploaded form file.
func NewMultipartSource(header *multipart.FileHeader) service.ImageSource {
	return &multipartSource{header: header}
}

func (s *multipartSource) Name() string {
	return s.header.Filename
}

func (s *multipartSource) Open() (io.ReadCloser, error) {
	file, err := s.header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open multipart file")
	}

	return file, nil
}

type fileSource struct {
	path string
}

// NewFileSource adapts a file on the local disk.
func NewFileSource(path string) service.ImageSource {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return filepath.Base(s.path)
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "open image file")
	}

	return file, nil
}
