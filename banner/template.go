package banner

import "sort"

// DefaultTemplate is the banner shown on startup. 55 columns wide, so
// it fits an 80 column terminal with room to breathe.
const DefaultTemplate = `
 _____  ___  ___  __  __  ___   ___   _     ___   ___
|_   _|| __|| _ \|  \/  || __| / _ \ | |   |_ _| / _ \
  | |  | _| |   /| |\/| || _| | (_) || |__  | | | (_) |
  |_|  |___||_|_\|_|  |_||_|   \___/ |____||___| \___/
`

// compactTemplate is a single-line fallback for narrow terminals.
const compactTemplate = `
[ t e r m f o l i o ]
`

// initialsTemplate is a two-letter block mark for very small windows.
const initialsTemplate = `
████████╗███████╗
╚══██╔══╝██╔════╝
   ██║   █████╗
   ██║   ██╔══╝
   ██║   ██║
   ╚═╝   ╚═╝
`

var templates = map[string]string{
	"default":  DefaultTemplate,
	"compact":  compactTemplate,
	"initials": initialsTemplate,
}

// LookupTemplate resolves a template name. The empty name resolves to
// "default".
func LookupTemplate(name string) (string, bool) {
	if name == "" {
		name = "default"
	}
	t, ok := templates[name]
	return t, ok
}

// TemplateNames lists the registered template names sorted.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
