package sanitize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// CustomTag declares a host-supplied tag to admit into the allow-list
// beyond what the built-in tools provide. Custom tags are applied after
// tool tags, so a custom declaration for an existing tag replaces it.
type CustomTag struct {
	Tag        string   `json:"tag" yaml:"tag" validate:"required,tagname"`
	Attributes []string `json:"attributes,omitempty" yaml:"attributes,omitempty" validate:"dive,attrname"`
	Styles     []string `json:"styles,omitempty" yaml:"styles,omitempty" validate:"dive,stylename"`
	MayBeEmpty bool     `json:"may_be_empty,omitempty" yaml:"may_be_empty,omitempty"`
}

var (
	tagNameRe   = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	attrNameRe  = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	styleNameRe = regexp.MustCompile(`^[a-z][a-z-]*$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

func tagValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Registration of a regexp-backed validation cannot fail.
		_ = validate.RegisterValidation("tagname", func(fl validator.FieldLevel) bool {
			return tagNameRe.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("attrname", func(fl validator.FieldLevel) bool {
			return attrNameRe.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("stylename", func(fl validator.FieldLevel) bool {
			return styleNameRe.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Validate checks that the declaration names a well-formed lowercase
// tag and that every attribute and style name is well-formed.
func (t CustomTag) Validate() error {
	if err := tagValidator().Struct(t); err != nil {
		return fmt.Errorf("invalid custom tag %q: %w", t.Tag, err)
	}
	return nil
}

// CustomTagsFromFile loads custom tag declarations from a JSON or YAML
// file and validates each one.
func CustomTagsFromFile(path string) ([]CustomTag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read custom tags file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return CustomTagsFromJSON(data)
	case ".yaml", ".yml":
		return CustomTagsFromYAML(data)
	default:
		return nil, fmt.Errorf("unsupported custom tags file format: %s", ext)
	}
}

// CustomTagsFromJSON parses custom tag declarations from JSON data.
func CustomTagsFromJSON(data []byte) ([]CustomTag, error) {
	var tags []CustomTag
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse JSON custom tags: %w", err)
	}
	return tags, validateAll(tags)
}

// CustomTagsFromYAML parses custom tag declarations from YAML data.
func CustomTagsFromYAML(data []byte) ([]CustomTag, error) {
	var tags []CustomTag
	if err := yaml.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse YAML custom tags: %w", err)
	}
	return tags, validateAll(tags)
}

func validateAll(tags []CustomTag) error {
	for _, t := range tags {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
