// Package nginx manages the tribenest site config and the nginx system
// service.
//
// The Service type writes the site config into the layout detected by
// the platform package (sites-available plus a sites-enabled symlink on
// Debian-family hosts, conf.d directly on RHEL-family hosts), validates
// syntax with nginx -t, and drives the service through systemctl with a
// service(8) fallback.
//
// All file operations are idempotent: stale config removal ignores
// missing files and InstallSite overwrites the previous site body, so a
// failed run can simply be rerun.
package nginx
