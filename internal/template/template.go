package template

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template kinds for the tribenest site.
const (
	KindDefault   = "default"    // catch-all server for unmatched hosts
	KindSiteHTTP  = "site_http"  // HTTP-only proxy site (pre-certificate)
	KindSiteHTTPS = "site_https" // HTTPS proxy site with HTTP redirect
)

// SiteData contains data for rendering nginx config templates
type SiteData struct {
	Domain   string
	Upstream string
	SSLCert  string
	SSLKey   string
}

// Render renders the named nginx config template
func Render(kind string, data *SiteData) (string, error) {
	tmplPath := fmt.Sprintf("nginx/%s.tmpl", kind)

	content, err := nginxTemplates.ReadFile(tmplPath)
	if err != nil {
		return "", fmt.Errorf("template not found: %s", kind)
	}

	tmpl, err := template.New(kind).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

// Available returns all template kinds
func Available() []string {
	return []string{KindDefault, KindSiteHTTP, KindSiteHTTPS}
}
