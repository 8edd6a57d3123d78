// Package config provides the compiled-in configuration for the preview generator.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds every path and endpoint the generator touches. Values are
// compiled-in defaults rather than flags: the output naming and directory layout
// are a contract with the website that serves the images, so callers needing
// different paths fork the configuration instead of overriding it at runtime.
type Config struct {
	// ContentDir is scanned for .md/.mdx files with front matter.
	ContentDir string `validate:"required"`
	// OutputDir receives <slug>-preview.png files.
	OutputDir string `validate:"required"`

	// FontCachePath is checked before any network access; if the file exists
	// it is the authoritative font source.
	FontCachePath string `validate:"required"`
	// FontCatalogURL returns a CSS document containing a src: url(...) reference
	// to the font binary.
	FontCatalogURL string `validate:"required,url"`
	// FontFamily names the display font used for every text node.
	FontFamily string `validate:"required"`
	// FontWeight and FontStyle identify the face within the family.
	FontWeight int    `validate:"required,min=100,max=900"`
	FontStyle  string `validate:"required,oneof=normal italic"`
}

// Default returns the configuration for gabrieletinelli.com.
func Default() Config {
	return Config{
		ContentDir:     "content/thoughts",
		OutputDir:      "public/images/thoughts",
		FontCachePath:  "public/fonts/VT323-Regular.ttf",
		FontCatalogURL: "https://fonts.googleapis.com/css2?family=VT323&display=swap",
		FontFamily:     "VT323",
		FontWeight:     400,
		FontStyle:      "normal",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is structurally usable.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
