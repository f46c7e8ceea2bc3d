// Package yamlutil wraps YAML decoding so callers never import the YAML library
// directly. It also knows how to peel a YAML front matter block off a Markdown
// document.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

const frontMatterFence = "---"

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes data into v and rejects unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// rest of a Markdown document. The closing fence may be "---" or "...".
// When no complete block is present, ok is false and body is src unchanged.
func SplitFrontMatter(src []byte) (meta, body []byte, ok bool) {
	rest, found := cutLine(src, frontMatterFence)
	if !found {
		return nil, src, false
	}

	offset := 0
	for offset < len(rest) {
		end := bytes.IndexByte(rest[offset:], '\n')
		var line []byte
		next := len(rest)
		if end >= 0 {
			line = rest[offset : offset+end]
			next = offset + end + 1
		} else {
			line = rest[offset:]
		}
		trimmed := bytes.TrimRight(line, " \t\r")
		if string(trimmed) == frontMatterFence || string(trimmed) == "..." {
			return rest[:offset], rest[next:], true
		}
		offset = next
	}
	return nil, src, false
}

// cutLine reports whether src begins with a line equal to want and returns
// the bytes after that line.
func cutLine(src []byte, want string) ([]byte, bool) {
	end := bytes.IndexByte(src, '\n')
	if end < 0 {
		return nil, false
	}
	if string(bytes.TrimRight(src[:end], " \t\r")) != want {
		return nil, false
	}
	return src[end+1:], true
}
