package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name looked up in the config directory.
	ConfigurationName = "config.yaml"

	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

// Configuration holds the session settings for the interpreter.
type Configuration struct {
	// Prompt is a PS1 style template; \u, \h, \w and \$ are expanded.
	Prompt string `json:"prompt" validate:"required"`

	// MaxArgs caps the number of tokens accepted per input line.
	MaxArgs int `json:"max_args" validate:"gte=1,lte=1024"`

	// Color controls diagnostic coloring.
	Color string `json:"color" validate:"oneof=always auto never"`

	// HistoryFile, when set, persists readline history across sessions.
	HistoryFile string `json:"history_file"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// ShouldColor resolves the color setting against whether the session is
// attached to a terminal.
func (c *Configuration) ShouldColor(isTerminal bool) bool {
	switch c.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return isTerminal
	}
}
