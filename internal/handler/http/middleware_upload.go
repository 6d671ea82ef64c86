// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/cardify/internal/app"
	"github.com/MKhiriev/cardify/internal/logger"
	"github.com/MKhiriev/cardify/internal/utils"
)

const (
	uploadFieldName = "file"

	// multipartOverhead is the slack given to boundaries and part headers on
	// top of the file size limit.
	multipartOverhead = 64 << 10
)

var excelExtensions = map[string]struct{}{
	".xlsx": {},
	".xls":  {},
}

// uploadedFile is a guest list spooled to disk by withUpload.
type uploadedFile struct {
	name string
	size int64
	path string
}

type uploadCtxKey struct{}

// withUpload streams the "file" part of a multipart request into a
// temporary file, rejecting anything that is not an Excel workbook or that
// exceeds the size limit before the handler runs. The temporary file is
// removed once the handler returns. A request without a file goes through
// untouched so that the handler can report the missing field.
func (h *Handler) withUpload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		file, err := h.receiveUpload(w, r)
		switch {
		case errors.Is(err, ErrUnsupportedFileType):
			log.Info().Err(err).Msg("upload rejected")
			utils.SendResponse(w, http.StatusBadRequest, false, app.MsgOnlyExcelAllowed, nil)
			return
		case errors.Is(err, ErrFileTooLarge):
			log.Info().Err(err).Int64("limit", h.uploadMaxSize).Msg("upload rejected")
			utils.SendResponse(w, http.StatusRequestEntityTooLarge, false, app.MsgFileTooLarge, nil)
			return
		case err != nil:
			log.Err(err).Msg("upload could not be read")
			utils.SendError(w, app.NewValidationError(app.MsgInvalidBody))
			return
		}

		if file != nil {
			defer func() {
				if err := os.Remove(file.path); err != nil && !errors.Is(err, os.ErrNotExist) {
					log.Warn().Err(err).Str("path", file.path).Msg("temporary upload not removed")
				}
			}()
			r = r.WithContext(context.WithValue(r.Context(), uploadCtxKey{}, file))
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) receiveUpload(w http.ResponseWriter, r *http.Request) (*uploadedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize+multipartOverhead)

	reader, err := r.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read multipart form: %w", err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, sizeError(fmt.Errorf("read multipart part: %w", err))
		}

		if part.FormName() != uploadFieldName || part.FileName() == "" {
			part.Close()
			continue
		}

		name := filepath.Base(part.FileName())
		if !isExcel(name) {
			part.Close()
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, name)
		}

		file, err := h.spool(part, name)
		part.Close()
		return file, err
	}
}

func (h *Handler) spool(src io.Reader, name string) (*uploadedFile, error) {
	tmp, err := os.CreateTemp(h.uploadTempDir, "guests-*"+strings.ToLower(filepath.Ext(name)))
	if err != nil {
		return nil, fmt.Errorf("create temporary upload: %w", err)
	}

	size, copyErr := io.Copy(tmp, io.LimitReader(src, h.uploadMaxSize+1))
	closeErr := tmp.Close()

	switch {
	case copyErr != nil:
		err = sizeError(fmt.Errorf("write temporary upload: %w", copyErr))
	case closeErr != nil:
		err = fmt.Errorf("close temporary upload: %w", closeErr)
	case size > h.uploadMaxSize:
		err = fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, h.uploadMaxSize)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}

	return &uploadedFile{name: name, size: size, path: tmp.Name()}, nil
}

// sizeError turns a body limit hit into ErrFileTooLarge.
func sizeError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: %v", ErrFileTooLarge, err)
	}
	return err
}

func isExcel(name string) bool {
	_, ok := excelExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

func uploadFromContext(r *http.Request) (*uploadedFile, bool) {
	file, ok := r.Context().Value(uploadCtxKey{}).(*uploadedFile)
	return file, ok && file != nil
}
