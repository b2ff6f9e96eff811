package gitapi

import (
	"net/url"
	"sort"
	"strings"
)

// Params binds named path placeholders to the values substituted for them.
// Values are plain identifiers (usernames, repository names, SHAs, numeric
// IDs) and receive standard path-segment escaping on expansion.
type Params map[string]string

// expandTemplate fills every {name} placeholder in template with the value
// bound to that name in params. Every placeholder must have a binding and
// every binding must be used; any mismatch is a *TemplateError.
func expandTemplate(template string, params Params) (string, error) {
	var (
		b       strings.Builder
		missing []string
		used    = make(map[string]bool, len(params))
	)

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])

		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", &TemplateError{Template: template, Missing: []string{rest[open+1:]}}
		}
		name := rest[open+1 : open+end]
		rest = rest[open+end+1:]

		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		used[name] = true
		b.WriteString(url.PathEscape(value))
	}

	var unused []string
	for name := range params {
		if !used[name] {
			unused = append(unused, name)
		}
	}

	if len(missing) > 0 || len(unused) > 0 {
		sort.Strings(missing)
		sort.Strings(unused)
		return "", &TemplateError{Template: template, Missing: missing, Unused: unused}
	}
	return b.String(), nil
}
