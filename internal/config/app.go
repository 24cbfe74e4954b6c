// Copyright (c) 2026 Maskedit Team
// Maskedit - masked text input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"

	"github.com/toeirei/maskedit/core/currency"
)

var (
	ErrFieldID         = errors.New("field needs an id")
	ErrFieldDuplicate  = errors.New("duplicate field id")
	ErrFieldTwoFormats = errors.New("field sets both mask and currency")
)

// Config is the maskedit application configuration.
type Config struct {
	Language   string           `mapstructure:"language" yaml:"language"`
	LogLevel   string           `mapstructure:"log_level" yaml:"log_level"`
	Currencies []currency.Entry `mapstructure:"currencies" yaml:"currencies,omitempty"`
	Fields     []Field          `mapstructure:"fields" yaml:"fields,omitempty"`
}

// Field describes one masked input of the interactive form.
type Field struct {
	ID       string `mapstructure:"id" yaml:"id"`
	Label    string `mapstructure:"label" yaml:"label"`
	Mask     string `mapstructure:"mask" yaml:"mask,omitempty"`
	Currency string `mapstructure:"currency" yaml:"currency,omitempty"`
	Value    string `mapstructure:"value" yaml:"value,omitempty"`
}

// Defaults are the viper defaults registered before the config file is read.
func Defaults() map[string]any {
	return map[string]any{
		"language":  "en",
		"log_level": "info",
	}
}

// DefaultFields is the form shown when the configuration has no fields.
func DefaultFields() []Field {
	return []Field{
		{ID: "date", Label: "Date", Mask: "99/99/9999"},
		{ID: "phone", Label: "Phone", Mask: "(99) 99999-9999"},
		{ID: "plate", Label: "License plate", Mask: "aaa-9*99"},
		{ID: "amount", Label: "Amount", Currency: "$"},
	}
}

// Default returns the configuration written by `maskedit config init`.
func Default() Config {
	return Config{
		Language:   "en",
		LogLevel:   "info",
		Currencies: append([]currency.Entry(nil), currency.DefaultEntries...),
		Fields:     DefaultFields(),
	}
}

// CurrencyTable resolves the configured currencies, falling back to the
// compiled-in table when none are configured.
func (c Config) CurrencyTable() (currency.Table, error) {
	if len(c.Currencies) == 0 {
		return currency.DefaultTable(), nil
	}
	return currency.NewTable(c.Currencies...)
}

// FormFields returns the configured fields or DefaultFields.
func (c Config) FormFields() ([]Field, error) {
	fields := c.Fields
	if len(fields) == 0 {
		fields = DefaultFields()
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("%w %q", ErrFieldDuplicate, f.ID)
		}
		seen[f.ID] = true
	}
	return fields, nil
}

// Validate checks that f has an id and at most one format.
func (f Field) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w (label %q)", ErrFieldID, f.Label)
	}
	if f.Mask != "" && f.Currency != "" {
		return fmt.Errorf("%w: %q", ErrFieldTwoFormats, f.ID)
	}
	return nil
}
