package main

import (
	"errors"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
)

// formatError appends an actionable hint to err's message when one applies.
func formatError(err error) string {
	return err.Error() + hintFor(err)
}

func hintFor(err error) string {
	var notFound *config.NotFoundError
	switch {
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Paths)
	case errors.Is(err, md2docx.ErrThemeNotFound):
		return hints.ForThemeNotFound(md2docx.Themes())
	case errors.Is(err, md2docx.ErrInvalidPageSize):
		return hints.ForPageSize(md2docx.PageSizes)
	case errors.Is(err, ErrInvalidCoverField), errors.Is(err, md2docx.ErrInvalidCoverField):
		return hints.ForCoverField()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForInvalidExtension()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, ErrWriteDOCX):
		return hints.ForOutputDirectory()
	}
	return ""
}
