package appcore

import (
	"biolab/internal/config"
	"biolab/internal/entrez"
)

// EntrezOptions overlays non-empty flag values on the ncbi settings.
func EntrezOptions(cfg config.NCBI, email, apiKey, baseURL string) entrez.Options {
	eo := entrez.Options{Email: cfg.Email, APIKey: cfg.APIKey, Tool: cfg.Tool, BaseURL: cfg.BaseURL}
	if email != "" {
		eo.Email = email
	}
	if apiKey != "" {
		eo.APIKey = apiKey
	}
	if baseURL != "" {
		eo.BaseURL = baseURL
	}
	return eo
}
