// Package config holds the interpreter's on-disk configuration.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name of the configuration inside the
	// configuration directory.
	ConfigurationName = "config.yaml"
	// HostKeyName is the file name of the SSH host key.
	HostKeyName = "host_key"
	// DefaultPrompt is used when the configured prompt is blank.
	DefaultPrompt = `\u@\h:\w\$ `
)

type Configuration struct {
	// Prompt is the template printed before every read, with \u, \h,
	// \w and \$ expanded.
	Prompt string `json:"prompt"`

	// HistoryFile is where line history persists between sessions.
	// Empty disables persistence.
	HistoryFile string `json:"history_file"`

	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`

	// Color controls prompt coloring.
	Color string `json:"color" validate:"oneof=always auto never"`

	SSH SSH `json:"ssh"`
}

type SSH struct {
	// Port the SSH front end listens on. Zero disables it.
	Port int `json:"port" validate:"gte=0,lte=65535"`

	// Motd is printed at the start of every SSH session.
	Motd string `json:"motd"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return validate.Struct(c)
}

// Default returns the embedded default configuration. It panics on an
// invalid default because that can only be a build error.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
