package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/zetta/internal/output"
)

// Environment variables read by zetta.
const (
	EnvBox        = "ZETTA_BOX"
	EnvEditor     = "ZETTA_EDITOR"
	EnvSysEditor  = "EDITOR"
	EnvDebug      = "ZETTA_DEBUG"
	EnvConfigHome = "ZETTA_CONFIG_HOME"
)

// DefaultEditor is launched when neither the environment nor config.yaml names one.
const DefaultEditor = "vi"

// Identifier policies.
const (
	IDPolicyTimestamp = "timestamp"
	IDPolicyUUID      = "uuid"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrConfiguration marks every startup configuration failure.
var ErrConfiguration = errors.New("configuration error")

// File mirrors config.yaml. Every field is optional.
type File struct {
	Box      string `yaml:"box"`
	Editor   string `yaml:"editor"`
	IDPolicy string `yaml:"id_policy"`
	Color    string `yaml:"color"`
}

// Settings is the resolved configuration for one process.
// It is built once at startup and passed explicitly to every component.
type Settings struct {
	Box      string
	Editor   string
	IDPolicy string
	Color    string
	Debug    bool
}

// Validate validates the resolved settings.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Box, validation.Required.Error(
			"is not set; point "+EnvBox+" at the git repository that stores your notes")),
		validation.Field(&s.Editor, validation.Required),
		validation.Field(&s.IDPolicy, validation.Required, validation.In(IDPolicyTimestamp, IDPolicyUUID)),
		validation.Field(&s.Color, validation.In(ColorAuto, ColorAlways, ColorNever)),
	)
}

// LoadFile reads config.yaml at path with ${VAR} expansion.
// A missing file, or an empty path, yields an empty File.
func LoadFile(path string) (*File, error) {
	file := &File{}
	if path == "" {
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return nil, output.NewConfigErrorWithCause("failed to read config file "+path, errors.Join(ErrConfiguration, err))
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), file); err != nil {
		return nil, output.NewConfigErrorWithCause("failed to parse config file "+path, errors.Join(ErrConfiguration, err))
	}
	return file, nil
}

// Resolve merges the config file with environment lookups and applies defaults.
// Environment always wins over the file.
func Resolve(file *File, getenv func(string) string) (*Settings, error) {
	if file == nil {
		file = &File{}
	}

	settings := &Settings{
		Box:      firstNonEmpty(getenv(EnvBox), file.Box),
		Editor:   firstNonEmpty(getenv(EnvEditor), getenv(EnvSysEditor), file.Editor, DefaultEditor),
		IDPolicy: firstNonEmpty(file.IDPolicy, IDPolicyTimestamp),
		Color:    firstNonEmpty(file.Color, ColorAuto),
		Debug:    parseBool(getenv(EnvDebug)),
	}

	if err := settings.Validate(); err != nil {
		return nil, output.NewConfigErrorWithCause(describeValidation(err), errors.Join(ErrConfiguration, err))
	}
	return settings, nil
}

// Load reads config.yaml from the configuration directory and resolves it
// against the process environment.
func Load() (*Settings, error) {
	file, err := LoadFile(FilePath())
	if err != nil {
		return nil, err
	}
	return Resolve(file, os.Getenv)
}

// BoxRoot checks that the configured box exists and is a directory and
// returns its absolute path. Git validity is checked separately by the
// version-control adapter.
func (s *Settings) BoxRoot() (string, error) {
	abs, err := filepath.Abs(s.Box)
	if err != nil {
		return "", output.NewConfigErrorWithCause("path to box is invalid: "+s.Box, errors.Join(ErrConfiguration, err))
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", output.NewConfigErrorWithCause("path to box is invalid: "+abs+" does not exist", errors.Join(ErrConfiguration, err))
	}
	if !info.IsDir() {
		return "", output.NewConfigErrorWithCause(
			"path to box is invalid: "+abs+" is not a directory",
			fmt.Errorf("%w: %s is not a directory", ErrConfiguration, abs))
	}
	return abs, nil
}

// describeValidation renders ozzo's field errors with the setting names a
// user would recognise.
func describeValidation(err error) string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return "invalid configuration: " + err.Error()
	}

	names := map[string]string{
		"Box":      EnvBox,
		"Editor":   "editor",
		"IDPolicy": "id_policy",
		"Color":    "color",
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, field := range []string{"Box", "Editor", "IDPolicy", "Color"} {
		if fieldErr, ok := fieldErrs[field]; ok {
			parts = append(parts, names[field]+" "+fieldErr.Error())
		}
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
