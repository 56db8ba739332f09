// Package config persists the deployment record for the tribenest
// provisioning tool.
//
// The record is stored as YAML in ~/.config/tribenest/config.yaml and
// captures what the last setup run did: domain, contact email, app
// upstream, and whether the wildcard certificate was installed. The
// status and teardown commands read it; setup writes it.
package config
