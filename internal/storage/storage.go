// Package storage stores and retrieves content on IPFS.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/gammazero/workerpool"
	shell "github.com/ipfs/go-ipfs-api"
	"github.com/sirupsen/logrus"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/model"
)

const (
	defaultWorkers = 4
	maxFetchBytes  = 64 << 20
)

// Adder adds content to an IPFS node and returns its CID
type Adder interface {
	Add(r io.Reader, options ...shell.AddOpts) (string, error)
}

// Gateway reads content by CID over HTTP
type Gateway interface {
	Do(ctx context.Context, cid string) (io.ReadCloser, http.Header, error)
	URL(cid string) string
}

// File is one file to upload
type File struct {
	Name string
	Type string
	Size int64
	Open func() (io.ReadCloser, error)
}

// Content is a fetched document
type Content struct {
	ContentType string
	Body        []byte
}

// IsJSON reports whether the gateway served the document as JSON
func (c *Content) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(c.ContentType)
	return err == nil && mediaType == "application/json"
}

// Service uploads through the node API and fetches through the gateway
type Service struct {
	adder   Adder
	gateway Gateway
	workers int
	// maxFetch caps the size of a fetched document
	maxFetch int64
}

// NewService creates a storage service. workers bounds concurrent uploads in UploadFiles.
func NewService(adder Adder, gateway Gateway, workers int) *Service {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{adder: adder, gateway: gateway, workers: workers, maxFetch: maxFetchBytes}
}

// UploadFile pins the content of r and returns its CID and gateway URL
func (s *Service) UploadFile(ctx context.Context, name string, r io.Reader) (model.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return model.UploadResult{}, apperr.Wrap(apperr.KindStorageFailed, "upload cancelled", err)
	}

	cid, err := s.adder.Add(r, shell.Pin(true), shell.CidVersion(1))
	if err != nil {
		return model.UploadResult{}, apperr.Wrap(apperr.KindStorageFailed, fmt.Sprintf("failed to upload %s", name), err)
	}

	logger.For(ctx).WithFields(logrus.Fields{"name": name, "cid": cid}).Debug("uploaded file")
	return model.UploadResult{CID: cid, URL: s.gateway.URL(cid)}, nil
}

// UploadJSON serialises v and uploads it
func (s *Service) UploadJSON(ctx context.Context, v interface{}) (model.UploadResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return model.UploadResult{}, apperr.Wrap(apperr.KindStorageFailed, "failed to encode metadata", err)
	}
	return s.UploadFile(ctx, "metadata.json", bytes.NewReader(data))
}

// UploadFiles uploads files concurrently and returns their descriptors in input order.
// The first failure (in input order) is returned.
func (s *Service) UploadFiles(ctx context.Context, files []File) ([]model.FileDescriptor, error) {
	descriptors := make([]model.FileDescriptor, len(files))
	errs := make([]error, len(files))

	wp := workerpool.New(s.workers)
	for i, f := range files {
		i, f := i, f
		wp.Submit(func() {
			rc, err := f.Open()
			if err != nil {
				errs[i] = apperr.Wrap(apperr.KindStorageFailed, fmt.Sprintf("failed to open %s", f.Name), err)
				return
			}
			defer rc.Close()

			res, err := s.UploadFile(ctx, f.Name, rc)
			if err != nil {
				errs[i] = err
				return
			}
			descriptors[i] = model.FileDescriptor{
				Name: f.Name,
				Type: f.Type,
				Size: f.Size,
				CID:  res.CID,
				URL:  res.URL,
			}
		})
	}
	wp.StopWait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return descriptors, nil
}

// Fetch retrieves a document by CID
func (s *Service) Fetch(ctx context.Context, cid string) (*Content, error) {
	if cid == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "empty cid")
	}

	body, header, err := s.gateway.Do(ctx, cid)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageFailed, fmt.Sprintf("failed to fetch %s", cid), err)
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, s.maxFetch+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorageFailed, fmt.Sprintf("failed to read %s", cid), err)
	}
	if int64(len(data)) > s.maxFetch {
		return nil, apperr.Wrap(apperr.KindStorageFailed, "content too large", fmt.Errorf("%s exceeds %d bytes", cid, s.maxFetch))
	}

	return &Content{ContentType: header.Get("Content-Type"), Body: data}, nil
}

// FetchJSON retrieves a document by CID and decodes it into v
func (s *Service) FetchJSON(ctx context.Context, cid string, v interface{}) error {
	content, err := s.Fetch(ctx, cid)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content.Body, v); err != nil {
		return apperr.Wrap(apperr.KindStorageFailed, fmt.Sprintf("failed to decode %s", cid), err)
	}
	return nil
}

// URL returns the gateway URL for a CID
func (s *Service) URL(cid string) string {
	return s.gateway.URL(cid)
}
