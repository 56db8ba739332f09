package config

import "time"

// SiteName is the nginx site file name for the deployed application.
const SiteName = "tribenest"

// Deployment records a completed (or partially completed) provisioning run
type Deployment struct {
	Domain    string    `yaml:"domain"`
	Email     string    `yaml:"email"`
	Upstream  string    `yaml:"upstream"`
	SSL       bool      `yaml:"ssl"`
	SSLCert   string    `yaml:"ssl_cert,omitempty"`
	SSLKey    string    `yaml:"ssl_key,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// WildcardDomain returns the wildcard form covered by the certificate.
func (d *Deployment) WildcardDomain() string {
	return "*." + d.Domain
}
