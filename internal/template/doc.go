// Package template renders the embedded nginx configuration bodies used
// by the provisioning pipeline.
//
// Three templates are embedded:
//
//   - default: a catch-all server that returns 444 for requests whose
//     Host header does not match the tribenest site
//   - site_http: the HTTP-only reverse proxy site written before the
//     certificate exists
//   - site_https: the final site, with an HTTP-to-HTTPS redirect server
//     and a TLS server carrying the wildcard certificate
//
// Usage:
//
//	content, err := template.Render(template.KindSiteHTTPS, &template.SiteData{
//	    Domain:   "example.com",
//	    Upstream: "http://127.0.0.1:3000",
//	    SSLCert:  "/etc/letsencrypt/live/example.com/fullchain.pem",
//	    SSLKey:   "/etc/letsencrypt/live/example.com/privkey.pem",
//	})
package template
