// Package config provides the YAML configuration model for the server.
//
// Configuration covers collaborator endpoints and timeouts (NTP pool,
// geocoding service) and the listen addresses for the HTTP transport and
// the metrics server. All fields have defaults; a missing config file is
// created on first load so operators have a template to edit.
package config
