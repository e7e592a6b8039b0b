// Package specsource loads job specs as generic documents from files, stdin,
// or S3, ready for the types Decode functions.
package specsource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported spec format")

// Stdin is the reference that reads from standard input.
const Stdin = "-"

// ObjectStore reads and writes objects by bucket and key.
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// Loader resolves spec references. Store may be nil when no s3:// reference
// is used.
type Loader struct {
	Stdin io.Reader
	Store ObjectStore
}

// Load reads ref and decodes it into a document. ref is a file path, "-" for
// stdin (JSON), or an s3://bucket/key URL.
func (l *Loader) Load(ctx context.Context, ref string) (map[string]any, error) {
	data, format, err := l.read(ctx, ref)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return doc, nil
}

func (l *Loader) read(ctx context.Context, ref string) ([]byte, Format, error) {
	if ref == Stdin {
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, FormatJSON, nil
	}

	format, err := FormatOf(ref)
	if err != nil {
		return nil, "", err
	}
	if bucket, key, ok := ParseS3URL(ref); ok {
		if l.Store == nil {
			return nil, "", fmt.Errorf("%s: no object store configured", ref)
		}
		data, err := l.Store.GetObject(ctx, bucket, key)
		if err != nil {
			return nil, "", err
		}
		return data, format, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, "", err
	}
	return data, format, nil
}

// FormatOf picks the format from the extension of ref.
func FormatOf(ref string) (Format, error) {
	switch strings.ToLower(path.Ext(ref)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ref)
}

// Decode parses data into a generic document. The top level must be an
// object.
func Decode(format Format, data []byte) (map[string]any, error) {
	var doc map[string]any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if doc == nil {
		return nil, errors.New("spec is empty or not an object")
	}
	return doc, nil
}

// ParseS3URL splits s3://bucket/key. ok is false for anything else,
// including a URL without a key.
func ParseS3URL(ref string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(ref, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
