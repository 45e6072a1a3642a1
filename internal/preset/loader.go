package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "flavor-gradient/internal/errors"
)

// Format is a preset file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor picks the syntax from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", apperrors.NewValidationError("", fmt.Sprintf("unsupported preset extension %q", filepath.Ext(path)), nil)
	}
}

// Load reads, decodes and validates the preset at path. Fields missing from
// the file keep their Default values.
func Load(path string) (Preset, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Preset{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, apperrors.NewParseError(path, 0, err)
	}
	return Decode(path, data, format)
}

// Decode parses data in the given format on top of Default and validates
// the result. name is only used in error messages.
func Decode(name string, data []byte, format Format) (Preset, error) {
	p := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Preset{}, apperrors.NewParseError(name, yamlLine(err), err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return Preset{}, apperrors.NewParseError(name, tomlLine(err), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Preset{}, apperrors.NewParseError(name, 0, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")))
		}
	default:
		return Preset{}, apperrors.NewValidationError("", fmt.Sprintf("unknown preset format %q", format), nil)
	}

	if err := Validate(&p); err != nil {
		return Preset{}, err
	}
	return p, nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}

// --- Validation ---

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures the shared validator. Field names in errors
// are the yaml keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("png_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return strings.EqualFold(filepath.Ext(name), ".png") && filepath.Base(name) != ".png"
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks the fields that cannot be clamped: effect and pattern
// names, the prompt count and the output file name.
func Validate(p *Preset) error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return apperrors.NewValidationError("", err.Error(), err)
	}
	first := validationErrs[0]
	return apperrors.NewValidationError(first.Field(), describeRule(first), err)
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must have at most %s entries", fe.Param())
	case "png_name":
		return fmt.Sprintf("must be a .png file name, got %q", fe.Value())
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}
