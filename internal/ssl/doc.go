// Package ssl wraps Certbot for Let's Encrypt wildcard certificates.
//
// Wildcard certificates require the DNS-01 challenge, so issuance runs
// certbot in manual mode with the terminal attached: certbot prints the
// _acme-challenge TXT record, the operator publishes it at their DNS
// provider, and presses Enter for certbot to validate. There is no DNS
// provider API integration; the operator controls DNS out of band.
//
// # Basic Usage
//
//	if !ssl.IsInstalled() {
//	    // install certbot first
//	}
//
//	cert, err := ssl.IssueWildcard("example.com", "admin@example.com")
//	// cert.CertPath: /etc/letsencrypt/live/example.com/fullchain.pem
//	// cert.KeyPath:  /etc/letsencrypt/live/example.com/privkey.pem
//
// Renewal of manual DNS-01 certificates also requires operator
// involvement; Renew and RenewAll exist for the cert subcommands but no
// scheduling is performed.
//
// # Testing
//
// The package uses a global executor that can be replaced for testing:
//
//	mockExec := &executor.MockExecutor{}
//	ssl.SetExecutor(mockExec)
//	defer ssl.ResetExecutor()
package ssl
