// Copyright (c) 2025 Loftwire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package multipart reads multipart/form-data requests into memory while
// screening every part against the forbidden pattern set. Text fields, field
// names and file names are all untrusted input; a single match rejects the
// whole request.
package multipart

import (
	"io"
	stdmultipart "mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/loftwire/loftwire-api/internal/apperr"
	"github.com/loftwire/loftwire-api/internal/pkg/content"
)

// FilePart is one uploaded file, fully read into memory.
type FilePart struct {
	FieldName   string
	Filename    string
	ContentType string
	Data        []byte
}

// Form is the screened result of parsing a multipart request.
type Form struct {
	// Fields holds the first value of each text field.
	Fields map[string]string
	// Files holds the first file of each file field.
	Files map[string]*FilePart
}

// Options controls parsing and screening.
type Options struct {
	// Patterns is the forbidden pattern set applied to field names, text
	// values and file names. Required.
	Patterns *content.PatternSet
	// MaxFileSize rejects file parts larger than this many bytes before
	// reading them. Zero means no limit here.
	MaxFileSize int64
	// AllowFilename, when set, vets each file name (extension policy).
	AllowFilename func(string) bool
}

// Field returns the named text field and whether it was present.
func (f *Form) Field(name string) (string, bool) {
	v, ok := f.Fields[name]
	return v, ok
}

// File returns the named file part, or nil when absent.
func (f *Form) File(name string) *FilePart {
	return f.Files[name]
}

// Parse screens and reads a parsed multipart form. Values are checked in
// order: field name, then text value or file name, then the file payload is
// read. The first violation aborts parsing.
func Parse(form *stdmultipart.Form, opts Options) (*Form, error) {
	result := &Form{
		Fields: make(map[string]string),
		Files:  make(map[string]*FilePart),
	}

	for name, values := range form.Value {
		if opts.Patterns.Matches(name) {
			return nil, apperr.Wrapf(apperr.ErrForbidden, "forbidden pattern in field name %q", name)
		}
		if len(values) == 0 {
			continue
		}
		if opts.Patterns.Matches(values[0]) {
			return nil, apperr.Wrapf(apperr.ErrForbidden, "forbidden pattern in field %q", name)
		}
		result.Fields[name] = values[0]
	}

	for name, headers := range form.File {
		if opts.Patterns.Matches(name) {
			return nil, apperr.Wrapf(apperr.ErrForbidden, "forbidden pattern in field name %q", name)
		}
		if len(headers) == 0 {
			continue
		}

		part, err := readFilePart(name, headers[0], opts)
		if err != nil {
			return nil, err
		}
		result.Files[name] = part
	}

	return result, nil
}

func readFilePart(name string, header *stdmultipart.FileHeader, opts Options) (*FilePart, error) {
	filename := header.Filename
	if opts.Patterns.Matches(filename) {
		return nil, apperr.Wrapf(apperr.ErrForbidden, "forbidden pattern in file name %q", filename)
	}
	if strings.Contains(filename, "..") || strings.Contains(filename, "/") {
		return nil, apperr.Wrapf(apperr.ErrInvalidFileName, "file name %q contains path separators", filename)
	}
	if opts.AllowFilename != nil && !opts.AllowFilename(filename) {
		return nil, apperr.Wrapf(apperr.ErrUnsupportedFileExtension, "file name %q has a disallowed extension", filename)
	}
	if opts.MaxFileSize > 0 && header.Size > opts.MaxFileSize {
		return nil, apperr.Wrapf(apperr.ErrFileSizeExceeded, "file %q exceeds %d bytes", filename, opts.MaxFileSize)
	}

	f, err := header.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidFileData, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInvalidFileData, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	return &FilePart{
		FieldName:   name,
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
