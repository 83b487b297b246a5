package main

import (
	"context"
	"io"
	"os"
	"time"

	banglish "github.com/ramjana/go-banglish"
	"github.com/ramjana/go-banglish/internal/assets"
	"github.com/ramjana/go-banglish/internal/config"
)

// Translator is the interface for the translation service.
type Translator interface {
	TranslateToHTML(ctx context.Context, input banglish.Input) (string, error)
	RenderHTML(ctx context.Context, htmlContent string, page *banglish.PageSettings) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Translator = (*banglish.Service)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, asset loading, and service creation.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	Styles     assets.StyleLoader
	Config     *config.Config
	NewService func(opts ...banglish.Option) Translator
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Styles: assets.NewEmbeddedLoader(),
		Config: config.DefaultConfig(),
		NewService: func(opts ...banglish.Option) Translator {
			return banglish.New(opts...)
		},
	}
}
