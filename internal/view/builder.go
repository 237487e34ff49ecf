package view

import (
	"github.com/chmouel/lazycode/internal/filetype"
)

// DefaultTitle names the application in the editor placeholder and status bar.
const DefaultTitle = "lazycode"

// Builder holds presentation options shared by the render functions.
type Builder struct {
	Icons filetype.IconStyle
	Title string
}

// NewBuilder returns a builder with the given icon style.
func NewBuilder(icons filetype.IconStyle) Builder {
	return Builder{Icons: icons, Title: DefaultTitle}
}

func (b Builder) title() string {
	if b.Title == "" {
		return DefaultTitle
	}
	return b.Title
}

var defaultBuilder = NewBuilder(filetype.IconStyleEmoji)
