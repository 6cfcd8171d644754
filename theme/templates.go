package theme

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2"
)

//go:embed templates/*.tpl
var builtin embed.FS

// Formats lists the names of the built-in export templates.
func Formats() []string {
	entries, _ := builtin.ReadDir("templates")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".tpl"))
	}
	sort.Strings(names)
	return names
}

// Builtin returns the built-in template for format.
func Builtin(format string) (*pongo2.Template, error) {
	src, e := builtin.ReadFile("templates/" + format + ".tpl")
	if e != nil {
		return nil, fmt.Errorf("'%s' is not a supported format (want one of %s)", format, strings.Join(Formats(), ", "))
	}
	return pongo2.FromString(string(src))
}

// Render executes tpl with the theme as context.
func (t *Theme) Render(tpl *pongo2.Template) (string, error) {
	return tpl.Execute(pongo2.Context(*t))
}
