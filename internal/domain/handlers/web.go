package handlers

import (
	"bytes"
	"context"
	"strings"

	"golang.org/x/net/html"

	"github.com/softwarewrighter/sw-checklist/internal/adapter"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// webAssetDirs mark a unit as serving a browser UI.
var webAssetDirs = []string{"static", "public", "dist", "assets", "www"}

// WebFields are looked up in a web UI's sources and index.html.
var WebFields = []FieldSpec{
	{Name: "Copyright", Patterns: []string{"copyright"}},
	{Name: "License", Patterns: []string{"license"}},
	{Name: "Repository", Patterns: []string{"github.com", "gitlab.com", "repository"}},
	{Name: "Build Host", Patterns: []string{"build_host", "build host"}},
	{Name: "Build Commit", Patterns: []string{"build_commit", "commit"}},
	{Name: "Build Time", Patterns: []string{"build_time", "timestamp"}},
}

// WebHandler checks the static assets of browser-targeted units.
type WebHandler struct {
	fs adapter.SourceFSAdapter
}

// NewWebHandler constructs a WebHandler.
func NewWebHandler(fs adapter.SourceFSAdapter) *WebHandler {
	return &WebHandler{fs: fs}
}

// Name returns the handler name.
func (h *WebHandler) Name() string {
	return "wasm"
}

// Handles selects browser-targeted units that are not virtual workspaces.
func (h *WebHandler) Handles(unit m.Unit) bool {
	return unit.Capabilities.Has(m.CapBrowser) && !unit.Workspace
}

// Check runs the browser asset checks for one unit. Units that are also CLI
// get their test check from the CLI handler.
func (h *WebHandler) Check(_ context.Context, cc m.CheckContext) []m.CheckResult {
	unit := cc.Unit
	label := unitLabel(unit)

	var results []m.CheckResult

	if h.isWebUI(unit.RootDir) {
		results = append(results, m.Pass("Web UI "+label, "Found Web UI crate"))
		results = append(results, h.checkIndex(unit.RootDir, label)...)
		results = append(results, h.checkFavicon(unit.RootDir, label))
		results = append(results, h.checkMetadata(unit.RootDir, label)...)
	} else {
		results = append(results, m.Pass("WASM Dependency "+label, unit.Name+" uses WASM (server-side)"))
	}

	if !unit.Capabilities.Has(m.CapCLI) {
		results = append(results, checkTests(h.fs, unit, true))
	}

	return results
}

func (h *WebHandler) isWebUI(dir m.Path) bool {
	candidates := append([]string{"index.html", "Trunk.toml"}, webAssetDirs...)
	for _, name := range candidates {
		if h.fs.Exists(h.fs.JoinPath(string(dir), name)) {
			return true
		}
	}

	return false
}

func (h *WebHandler) checkIndex(dir m.Path, label string) []m.CheckResult {
	data, err := h.fs.ReadFile(h.fs.JoinPath(string(dir), "index.html"))
	if err != nil {
		return []m.CheckResult{m.Fail("index.html "+label, "WASM projects should have an index.html file")}
	}

	results := []m.CheckResult{m.Pass("index.html "+label, "Found index.html")}

	if inspectHTML(data).favicon {
		results = append(results, m.Pass("Favicon Reference "+label, "index.html references favicon"))
	} else {
		results = append(results, m.Fail("Favicon Reference "+label, "index.html should reference favicon.ico"))
	}

	return results
}

func (h *WebHandler) checkFavicon(dir m.Path, label string) m.CheckResult {
	if h.fs.Exists(h.fs.JoinPath(string(dir), "favicon.ico")) {
		return m.Pass("favicon.ico "+label, "Found favicon.ico")
	}

	return m.Fail("favicon.ico "+label, "WASM projects should have a favicon.ico file")
}

func (h *WebHandler) checkMetadata(dir m.Path, label string) []m.CheckResult {
	srcDir := h.fs.JoinPath(string(dir), "src")
	if !h.fs.IsDir(srcDir) {
		return []m.CheckResult{m.Warn("Web UI Metadata "+label, "No src/ directory")}
	}

	var (
		content strings.Builder
		footer  bool
	)

	for _, source := range readRustSources(h.fs, srcDir) {
		footer = footer || sourceHasFooter(source)

		content.WriteString(source)
		content.WriteString("\n")
	}

	if data, err := h.fs.ReadFile(h.fs.JoinPath(string(dir), "index.html")); err == nil {
		footer = footer || inspectHTML(data).footer

		content.Write(data)
	}

	lower := strings.ToLower(content.String())
	results := make([]m.CheckResult, 0, 1+len(WebFields))

	switch {
	case footer:
		results = append(results, m.Pass("Footer Presence "+label, "Found footer element"))
	case strings.Contains(lower, "footer"):
		results = append(results, m.Warn("Footer Presence "+label, "Found 'footer' but no element"))
	default:
		results = append(results, m.Warn("Footer Presence "+label, "No footer element found"))
	}

	for _, field := range WebFields {
		name := field.Name + " " + label
		if field.Matches(lower) {
			results = append(results, m.Pass(name, "Found "+field.Name))
		} else {
			results = append(results, m.Warn(name, "No "+field.Name+" found"))
		}
	}

	return results
}

func sourceHasFooter(source string) bool {
	lower := strings.ToLower(source)

	return strings.Contains(lower, "<footer") ||
		strings.Contains(lower, `class="footer"`) ||
		(strings.Contains(lower, "fn footer") && strings.Contains(lower, "html!"))
}

type htmlFacts struct {
	favicon bool
	footer  bool
}

// inspectHTML tokenizes a document looking for a favicon reference and a
// footer element. Scanning stops at EOF or the first tokenizer error.
func inspectHTML(data []byte) htmlFacts {
	var facts htmlFacts

	tokenizer := html.NewTokenizer(bytes.NewReader(data))

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			return facts
		}

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		token := tokenizer.Token()

		if token.Data == "footer" {
			facts.footer = true
		}

		for _, attr := range token.Attr {
			value := strings.ToLower(attr.Val)

			if strings.Contains(value, "favicon.ico") {
				facts.favicon = true
			}

			if token.Data == "link" && attr.Key == "rel" && strings.Contains(value, "icon") {
				facts.favicon = true
			}

			if attr.Key == "class" && containsField(value, "footer") {
				facts.footer = true
			}
		}
	}
}

func containsField(classes, name string) bool {
	for _, class := range strings.Fields(classes) {
		if class == name {
			return true
		}
	}

	return false
}
