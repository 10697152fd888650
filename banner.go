package minilog

import (
	"runtime"
	"strings"

	"github.com/valyala/fasttemplate"
)

// DefaultBannerTemplate is the layout used by Banner. Placeholders are
// {name}, {version}, {mode} (debug or release, following the build's level
// floor) and {go} (the Go runtime version).
const DefaultBannerTemplate = "{name} v{version} ({mode})"

// Banner writes "<name> v<version> (<mode>)" as one raw line. The banner
// bypasses level filtering and all line decoration.
func (l *Logger) Banner(name, version string) {
	l.BannerTemplate(DefaultBannerTemplate, name, version)
}

// BannerTemplate renders tmpl with the banner placeholders and writes it as
// one raw line. Unknown placeholders render empty.
func (l *Logger) BannerTemplate(tmpl, name, version string) {
	line := fasttemplate.ExecuteString(tmpl, "{", "}", map[string]any{
		"name":    name,
		"version": strings.TrimPrefix(version, "v"),
		"mode":    buildMode,
		"go":      runtime.Version(),
	})
	lb := acquireLine()
	lb.writeString(line)
	if !strings.HasSuffix(line, "\n") {
		lb.writeByte('\n')
	}
	l.output().write(lb.buf)
	releaseLine(lb)
}
