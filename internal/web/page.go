package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/chmouel/lazycode/internal/view"
)

//go:embed static/index.html
var staticFS embed.FS

var pageTemplate = template.Must(template.ParseFS(staticFS, "static/index.html"))

// cssRoles are exported to the page as --role custom properties.
var cssRoles = []view.Role{
	view.RoleText,
	view.RoleBright,
	view.RoleMuted,
	view.RoleAccent,
	view.RoleSelection,
	view.RolePanel,
	view.RoleHeading,
	view.RoleStatus,
	view.RoleStatusFg,
}

type cssVar struct {
	Name  string
	Value template.CSS
}

type pageData struct {
	Title      string
	Width      int
	Height     int
	TabWidth   int
	Sidebar    int
	Background template.CSS
	Vars       []cssVar
}

func newPageData(s *Server) pageData {
	data := pageData{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		TabWidth:   s.TabWidth,
		Sidebar:    view.SidebarWidth * 10,
		Background: template.CSS(string(s.Theme.Background)), //nolint:gosec
	}
	for _, role := range cssRoles {
		data.Vars = append(data.Vars, cssVar{
			Name:  string(role),
			Value: template.CSS(string(s.Theme.RoleColor(role))), //nolint:gosec
		})
	}
	return data
}

func renderPage(w io.Writer, data pageData) error {
	return pageTemplate.Execute(w, data)
}
