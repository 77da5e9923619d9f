package main

import (
	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/dialog"
	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/images"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/validation"
)

// loadConfig loads the effective configuration; --verbose turns verbose on.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return nil, err
	}
	if rootVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// renderOptions maps the configuration to renderer options.
func renderOptions(cfg *config.Config) rendering.Options {
	return rendering.Options{Locale: cfg.Locale, TemplatePath: cfg.Template}
}

// newEditor wires the editor collaborators from the configuration. converter overrides
// cfg.Converter when non-empty.
func newEditor(cfg *config.Config, st *store.Store, prompter dialog.Prompter, converter string) (*editor.Editor, error) {
	if converter == "" {
		converter = cfg.Converter
	}
	conv, err := export.New(converter, cfg.Timeout(), cfg.Verbose)
	if err != nil {
		return nil, err
	}

	v := validation.New(cfg.Locale)
	return editor.New(editor.Deps{
		Store:     st,
		Validator: v,
		Prompter:  prompter,
		Picker: &images.FilePicker{
			Prompter: prompter,
			Label:    v.Printer().Sprintf(i18n.MsgLabelPhoto),
			Verbose:  cfg.Verbose,
		},
		Images: images.FileReader{},
		Export: &export.Session{
			Converter: conv,
			Viewer:    export.CommandViewer{Command: cfg.Viewer},
			Sharer:    export.DirSharer{Dir: cfg.ShareDir},
			OutputDir: cfg.OutputDir,
		},
		Render:  renderOptions(cfg),
		Verbose: cfg.Verbose,
	}), nil
}
