package mdreport

import "errors"

// Sentinel errors returned by the converters. Callers test them with
// errors.Is; the wrapped message carries the detail.
var (
	ErrFileNotFound  = errors.New("file not found")
	ErrParse         = errors.New("markdown parse failed")
	ErrWrite         = errors.New("write failed")
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrLayout        = errors.New("page layout failed")

	// Option validation errors.
	ErrInvalidTOCDepth  = errors.New("invalid TOC depth")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrInvalidMargin    = errors.New("invalid margin")
	ErrInvalidTOCRule   = errors.New("invalid TOC rule")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
