package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingContentDir(t *testing.T) {
	cfg := Default()
	cfg.ContentDir = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ContentDir")
}

func TestValidate_BadCatalogURL(t *testing.T) {
	cfg := Default()
	cfg.FontCatalogURL = "not a url"
	require.Error(t, cfg.Validate())
}

func TestValidate_BadFontStyle(t *testing.T) {
	cfg := Default()
	cfg.FontStyle = "oblique"
	require.Error(t, cfg.Validate())
}

func TestValidate_WeightOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.FontWeight = 1000
	require.Error(t, cfg.Validate())
}
