// Package corpus implements ports.CorpusSource for local files and remote URLs.
//
// A corpus is an array of {quote, author, movie?} records, encoded as JSON or
// YAML. The optional movie field is a movie slug; records without one take the
// source's default movie, if any.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
)

// Format is a corpus encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// record is the wire shape of one corpus entry.
type record struct {
	Quote  string `json:"quote"           yaml:"quote"           validate:"required,max=2048"`
	Author string `json:"author"          yaml:"author"          validate:"required,max=256"`
	Movie  string `json:"movie,omitempty" yaml:"movie,omitempty"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch {
	case strings.HasSuffix(path, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported corpus format %q", path)
	}
}

func decode(format Format, r io.Reader) ([]record, error) {
	var records []record

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()

		if err := dec.Decode(&records); err != nil {
			return nil, err
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, trailingData(err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)

		if err := dec.Decode(&records); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}

			return nil, err
		}

		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, trailingData(err)
		}
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", format)
	}

	return records, nil
}

// trailingData reports content after the first document. A corpus is exactly
// one array.
func trailingData(err error) error {
	if err != nil {
		return fmt.Errorf("trailing data after records: %w", err)
	}

	return errors.New("trailing data after records")
}

// translate validates records and converts them to domain items. The first
// invalid record fails the whole corpus.
func translate(source, defaultTitle string, records []record) ([]domain.QuoteItem, error) {
	if len(records) == 0 {
		return nil, domain.NewCorpusError(source, "no records", nil)
	}

	items := make([]domain.QuoteItem, 0, len(records))

	for i, rec := range records {
		rec.Quote = strings.TrimSpace(rec.Quote)
		rec.Author = strings.TrimSpace(rec.Author)
		rec.Movie = strings.TrimSpace(rec.Movie)

		if err := validate.Struct(rec); err != nil {
			return nil, domain.NewCorpusRecordError(source, i, describe(err))
		}

		title := defaultTitle
		if rec.Movie != "" {
			resolved, err := domain.ResolveMovie(rec.Movie)
			if err != nil {
				return nil, domain.NewCorpusRecordError(source, i, err.Error())
			}

			title = resolved
		}

		items = append(items, domain.QuoteItem{
			Quote:  rec.Quote,
			Author: rec.Author,
			Movie:  title,
		})
	}

	return items, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s exceeds %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// resolveDefault maps a source's default movie slug to its title.
func resolveDefault(source, slug string) (string, error) {
	if slug == "" {
		return "", nil
	}

	title, err := domain.ResolveMovie(slug)
	if err != nil {
		return "", domain.NewCorpusError(source, "default movie", err)
	}

	return title, nil
}
