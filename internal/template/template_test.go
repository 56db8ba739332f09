package template

import (
	"strings"
	"testing"
)

func TestRenderDefault(t *testing.T) {
	content, err := Render(KindDefault, &SiteData{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(content, "default_server") {
		t.Error("default template should declare a default_server")
	}
	if !strings.Contains(content, "return 444;") {
		t.Error("default template should drop unmatched requests with 444")
	}
}

func TestRenderSiteHTTP(t *testing.T) {
	data := &SiteData{
		Domain:   "example.com",
		Upstream: "http://127.0.0.1:3000",
	}

	content, err := Render(KindSiteHTTP, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	checks := []string{
		"server_name example.com *.example.com;",
		"listen 80;",
		"proxy_pass http://127.0.0.1:3000;",
		"proxy_set_header Upgrade $http_upgrade;",
		"proxy_set_header Host $host;",
	}
	for _, want := range checks {
		if !strings.Contains(content, want) {
			t.Errorf("HTTP template missing %q\n%s", want, content)
		}
	}

	if strings.Contains(content, "ssl_certificate") {
		t.Error("HTTP template should not reference certificates")
	}
	if strings.Contains(content, "return 301") {
		t.Error("HTTP template should not redirect")
	}
}

func TestRenderSiteHTTPS(t *testing.T) {
	data := &SiteData{
		Domain:   "example.com",
		Upstream: "http://127.0.0.1:3000",
		SSLCert:  "/etc/letsencrypt/live/example.com/fullchain.pem",
		SSLKey:   "/etc/letsencrypt/live/example.com/privkey.pem",
	}

	content, err := Render(KindSiteHTTPS, data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	checks := []string{
		"return 301 https://$host$request_uri;",
		"listen 443 ssl;",
		"server_name example.com *.example.com;",
		"ssl_certificate /etc/letsencrypt/live/example.com/fullchain.pem;",
		"ssl_certificate_key /etc/letsencrypt/live/example.com/privkey.pem;",
		"proxy_pass http://127.0.0.1:3000;",
	}
	for _, want := range checks {
		if !strings.Contains(content, want) {
			t.Errorf("HTTPS template missing %q\n%s", want, content)
		}
	}

	// Redirect server and TLS server are separate blocks
	if strings.Count(content, "server {") != 2 {
		t.Errorf("HTTPS template should contain two server blocks:\n%s", content)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := Render("nope", &SiteData{})
	if err == nil {
		t.Error("expected error for unknown template kind")
	}
}

func TestAvailable(t *testing.T) {
	kinds := Available()
	if len(kinds) != 3 {
		t.Fatalf("expected 3 template kinds, got %d", len(kinds))
	}
	for _, kind := range kinds {
		if _, err := Render(kind, &SiteData{Domain: "x.dev", Upstream: "http://127.0.0.1:3000"}); err != nil {
			t.Errorf("Render(%s) failed: %v", kind, err)
		}
	}
}
