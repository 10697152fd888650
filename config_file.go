package minilog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"pkt.systems/minilog/ansi"
)

// FileConfig is the TOML form of a Logger configuration:
//
//	level = "debug"
//	color = "never"
//	show_time = true
//	show_thread_id = false
//	show_file_line = true
//	show_group = true
//	palette = "nord"
//	output = "/var/log/app.log"
//
// Omitted keys leave the Logger unchanged when the config is applied.
type FileConfig struct {
	Level        string `toml:"level" validate:"omitempty,level"`
	Color        string `toml:"color" validate:"omitempty,oneof=auto always never"`
	ShowTime     *bool  `toml:"show_time"`
	ShowThreadID *bool  `toml:"show_thread_id"`
	ShowFileLine *bool  `toml:"show_file_line"`
	ShowGroup    *bool  `toml:"show_group"`
	Palette      string `toml:"palette" validate:"omitempty,palette"`
	Output       string `toml:"output"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		_, ok := ParseLevel(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
		_, ok := ansi.LookupPalette(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
}

// LoadConfigFile reads and validates a TOML configuration file. Read errors
// are returned as *IoError.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Op: "read", Path: path, Err: err}
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates TOML configuration. Unknown keys are
// rejected.
func ParseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse config at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *FileConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), validationMessage(fe)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "level":
		return fmt.Sprintf("unknown level %q", fe.Value())
	case "palette":
		return fmt.Sprintf("unknown palette %q, available: %s", fe.Value(), strings.Join(ansi.AvailablePaletteNames(), ", "))
	default:
		return fmt.Sprintf("validation failed: %s", fe.Tag())
	}
}

// Apply configures l from c. Only Output can fail, with the same errors as
// ApplyEnv.
func (c *FileConfig) Apply(l *Logger) error {
	if level, ok := ParseLevel(c.Level); ok && c.Level != "" {
		l.SetLevel(level)
	}
	if c.Color != "" {
		if mode, ok := ParseColorMode(c.Color); ok {
			l.SetColorMode(mode)
		}
	}
	if c.ShowTime != nil {
		l.SetShowTime(*c.ShowTime)
	}
	if c.ShowThreadID != nil {
		l.SetShowThreadID(*c.ShowThreadID)
	}
	if c.ShowFileLine != nil {
		l.SetShowFileLine(*c.ShowFileLine)
	}
	if c.ShowGroup != nil {
		l.SetShowGroup(*c.ShowGroup)
	}
	if palette, ok := ansi.LookupPalette(c.Palette); ok {
		l.SetPalette(*palette)
	}
	return applyOutput(l, c.Output)
}
