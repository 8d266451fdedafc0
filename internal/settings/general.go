// Package settings implements the locale document resolution and merge
// model for the dashboard's per-locale site settings, plus the global
// appearance settings.
package settings

import (
	"encoding/json"
	"fmt"
)

// Author identifies one site author in the metadata document.
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SiteMetadata holds the per-locale site metadata.
type SiteMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Authors     []Author `json:"authors"`
}

// DashboardFooter holds the two free-text footer lines. The lines may
// contain serialized rich-text documents or HTML.
type DashboardFooter struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

// LocaleSettings is the fully resolved document for one locale. Every
// leaf is populated; absent input fields are filled from defaults.
type LocaleSettings struct {
	Metadata        SiteMetadata    `json:"metadata"`
	DashboardFooter DashboardFooter `json:"dashboardFooter"`
}

// toMap returns raw as an object, or an empty object for any non-object
// value (nil, scalars, arrays, malformed input).
func toMap(raw any) map[string]any {
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// stringify renders a leaf value the way the dashboard stores it:
// strings pass through, everything else is formatted.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func stringField(obj map[string]any, key, fallback string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return fallback
	}
	return stringify(v)
}

// NormalizeMetadata coerces an arbitrary value into complete site
// metadata. Missing or malformed fields default; keywords must be an
// array (empty entries are dropped), authors a non-empty array.
func NormalizeMetadata(raw any) SiteMetadata {
	obj := toMap(raw)
	def := DefaultMetadata()

	out := SiteMetadata{
		Title:       stringField(obj, "title", def.Title),
		Description: stringField(obj, "description", def.Description),
	}

	if arr, ok := obj["keywords"].([]any); ok {
		out.Keywords = make([]string, 0, len(arr))
		for _, k := range arr {
			if k == nil {
				continue
			}
			if s := stringify(k); s != "" {
				out.Keywords = append(out.Keywords, s)
			}
		}
	} else {
		out.Keywords = def.Keywords
	}

	if arr, ok := obj["authors"].([]any); ok && len(arr) > 0 {
		out.Authors = make([]Author, 0, len(arr))
		for _, a := range arr {
			rec := toMap(a)
			out.Authors = append(out.Authors, Author{
				Name: stringField(rec, "name", ""),
				URL:  stringField(rec, "url", ""),
			})
		}
	} else {
		out.Authors = def.Authors
	}

	return out
}

// NormalizeFooter coerces an arbitrary value into a complete dashboard
// footer, defaulting each line independently.
func NormalizeFooter(raw any) DashboardFooter {
	obj := toMap(raw)
	def := DefaultFooter()
	return DashboardFooter{
		Line1: stringField(obj, "line1", def.Line1),
		Line2: stringField(obj, "line2", def.Line2),
	}
}

// ResolveLocale resolves one stored locale value into a complete
// document. A document with a "metadata" key uses the nested layout;
// otherwise the whole object is treated as the metadata itself, the
// legacy flat layout written by early versions of the dashboard.
func ResolveLocale(raw any) LocaleSettings {
	obj := toMap(raw)

	metadataValue := any(obj)
	if v, ok := obj["metadata"]; ok {
		metadataValue = v
	}
	footerValue := any(obj)
	if v, ok := obj["dashboardFooter"]; ok {
		footerValue = v
	}

	return LocaleSettings{
		Metadata:        NormalizeMetadata(metadataValue),
		DashboardFooter: NormalizeFooter(footerValue),
	}
}

// MergeLocale resolves prev and overrides only the top-level keys
// explicitly present in incoming, each re-normalized wholesale. There is
// no partial merge inside metadata or dashboardFooter: providing a
// metadata value replaces the whole sub-object.
func MergeLocale(prev any, incoming map[string]any) LocaleSettings {
	resolved := ResolveLocale(prev)
	if v, ok := incoming["metadata"]; ok {
		resolved.Metadata = NormalizeMetadata(v)
	}
	if v, ok := incoming["dashboardFooter"]; ok {
		resolved.DashboardFooter = NormalizeFooter(v)
	}
	return resolved
}

// MergeFooter overrides only the footer lines present in incoming,
// keeping the previous value for absent or nil lines.
func MergeFooter(prev DashboardFooter, incoming map[string]any) DashboardFooter {
	return DashboardFooter{
		Line1: stringField(incoming, "line1", prev.Line1),
		Line2: stringField(incoming, "line2", prev.Line2),
	}
}

// LocaleDocument is a stored locale value decoded once at the storage
// boundary, tagged with the layout it was written in.
type LocaleDocument struct {
	// Legacy is true for flat documents that predate the nested layout.
	Legacy bool
	// Fields holds the raw top-level keys of the stored object.
	Fields map[string]any
}

// DecodeLocaleDocument decodes one locale column. Malformed or empty
// JSON decodes to an empty nested document.
func DecodeLocaleDocument(data []byte) LocaleDocument {
	var raw any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			raw = nil
		}
	}
	obj := toMap(raw)
	_, nested := obj["metadata"]
	return LocaleDocument{Legacy: !nested && len(obj) > 0, Fields: obj}
}

// Resolve resolves the decoded document into a complete locale document.
func (d LocaleDocument) Resolve() LocaleSettings {
	return ResolveLocale(d.Fields)
}

// StoredFooter returns the footer lines exactly as stored, "" for lines
// the document never carried. Unlike Resolve it never fills defaults, so
// write paths can merge against the raw previous value.
func (d LocaleDocument) StoredFooter() DashboardFooter {
	raw := any(d.Fields)
	if v, ok := d.Fields["dashboardFooter"]; ok {
		raw = v
	}
	obj := toMap(raw)
	return DashboardFooter{
		Line1: stringField(obj, "line1", ""),
		Line2: stringField(obj, "line2", ""),
	}
}

// Apply writes next into the document, migrating legacy documents to the
// nested layout and preserving unknown sibling keys of nested ones.
func (d LocaleDocument) Apply(next LocaleSettings) map[string]any {
	out := make(map[string]any, len(d.Fields)+2)
	if !d.Legacy {
		for k, v := range d.Fields {
			out[k] = v
		}
	}
	out["metadata"] = next.Metadata
	out["dashboardFooter"] = next.DashboardFooter
	return out
}

// Encode marshals an applied document for storage.
func Encode(doc map[string]any) ([]byte, error) {
	return json.Marshal(doc)
}
