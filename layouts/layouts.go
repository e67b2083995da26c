// Package layouts wraps rendered page bodies in the shared header and footer.
package layouts

import (
	"fmt"
	"strings"

	"github.com/bep/overlayfs"
	"github.com/spf13/afero"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/log"
	"github.com/sunwei/mdsite/paths"
)

// TitlePlaceholder is the literal token substituted in the header.
const TitlePlaceholder = "{title}"

const defaultHeader = `<!DOCTYPE html>
<html>
<head><title>{title}</title></head>
<body>
`

const defaultFooter = `</body>
</html>
`

// Spec holds the header and footer of a run. Both are loaded exactly once,
// in NewSpec.
type Spec struct {
	header string
	footer string
}

// NewSpec loads the header and footer templates from the input root. Lookup
// goes through an overlay of the project directory over an in-memory
// filesystem holding the built-in defaults, so a missing template falls back
// without failing the run. The default header keeps the title placeholder,
// which keeps substitution well-defined.
func NewSpec(fs afero.Fs, p *paths.Paths, cfg config.Provider) (*Spec, error) {
	names := cfg.GetStringMapString("templates")
	headerName := names["header"]
	if headerName == "" {
		headerName = "header.html"
	}
	footerName := names["footer"]
	if footerName == "" {
		footerName = "footer.html"
	}

	project := afero.NewBasePathFs(fs, p.InputRoot)

	defaults := afero.NewMemMapFs()
	if err := afero.WriteFile(defaults, headerName, []byte(defaultHeader), 0666); err != nil {
		return nil, fmt.Errorf("prepare default header: %w", err)
	}
	if err := afero.WriteFile(defaults, footerName, []byte(defaultFooter), 0666); err != nil {
		return nil, fmt.Errorf("prepare default footer: %w", err)
	}

	lookup := overlayfs.New(overlayfs.Options{
		Fss: []afero.Fs{project, defaults},
	})

	header, err := loadTemplate(lookup, project, headerName)
	if err != nil {
		return nil, err
	}
	footer, err := loadTemplate(lookup, project, footerName)
	if err != nil {
		return nil, err
	}

	return &Spec{
		header: header,
		footer: footer,
	}, nil
}

func loadTemplate(lookup, project afero.Fs, name string) (string, error) {
	if ok, _ := afero.Exists(project, name); !ok {
		log.Warnf("layouts: no %s found, using the built-in default", name)
	}
	b, err := afero.ReadFile(lookup, name)
	if err != nil {
		return "", fmt.Errorf("load template %q: %w", name, err)
	}
	return string(b), nil
}

// Assemble wraps body in the header and footer, substituting the title
// placeholder in the header. The footer receives no substitution.
func (s *Spec) Assemble(title string, body []byte) []byte {
	header := strings.ReplaceAll(s.header, TitlePlaceholder, title)

	out := make([]byte, 0, len(header)+len(body)+len(s.footer))
	out = append(out, header...)
	out = append(out, body...)
	out = append(out, s.footer...)
	return out
}
