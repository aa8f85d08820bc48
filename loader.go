package finprim

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format is a scenario file format.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// DefaultSelector selects the top-level "scenarios" list.
const DefaultSelector = "$.scenarios"

// ErrUnknownFormat is returned for files whose extension is not a known Format.
var ErrUnknownFormat = errors.New("unknown scenario file format")

// FormatOf returns the format of a file based on its extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
}

// LoadScenarios reads the scenarios of a file.
// See DecodeScenarios for the selector.
func LoadScenarios(filename, selector string) ([]Scenario, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scenarios, err := DecodeScenarios(f, format, selector)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", filename, err)
	}
	return scenarios, nil
}

// DecodeScenarios decodes a document and returns the scenarios found at the
// JSONPath selector (DefaultSelector if empty).
//
// The selector can point to a list of scenarios or a single one. Every
// scenario is an object with the keys "name", "rate", "nper", "pmt", "pv",
// "due" (or "type", 0 or 1 like the spreadsheet argument) and "currency".
// "rate" and "nper" are required. "rate" is parsed by ParseRate when it is a
// string.
func DecodeScenarios(r io.Reader, format Format, selector string) ([]Scenario, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	doc, err := decodeDocument(r, format)
	if err != nil {
		return nil, err
	}

	selected, err := jsonpath.Get(selector, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q: %w", selector, err)
	}

	var items []any
	switch v := selected.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("selector %q: expecting a list or an object, got %T", selector, selected)
	}

	scenarios := make([]Scenario, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("scenario #%d: expecting an object, got %T", i, item)
		}
		s, err := scenarioFromObject(obj)
		if err != nil {
			return nil, fmt.Errorf("scenario #%d: %w", i, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// decodeDocument decodes a document into generic JSON-like values:
// map[string]any, []any and scalars.
func decodeDocument(r io.Reader, format Format) (any, error) {
	var doc any
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber() // keep decimals exact
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	case TOML:
		var m map[string]any
		if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
		doc = m
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return normalize(doc), nil
}

// normalize converts the typed containers some decoders produce into the
// generic ones jsonpath walks through.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []map[string]any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = normalize(e)
		}
		return l
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}

func scenarioFromObject(obj map[string]any) (s Scenario, err error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var hasRate, hasNPer bool
	for _, k := range keys {
		v := obj[k]
		switch k {
		case "name":
			s.Name = fmt.Sprint(v)
		case "currency":
			s.Currency = fmt.Sprint(v)
		case "rate":
			hasRate = true
			if str, ok := v.(string); ok {
				s.Rate, err = ParseRate(str)
			} else {
				s.Rate, err = toDecimal(v)
			}
		case "nper":
			hasNPer = true
			s.NPer, err = toDecimal(v)
		case "pmt":
			s.Pmt, err = toDecimal(v)
		case "pv":
			s.PV, err = toDecimal(v)
		case "due", "type":
			s.Due, err = toDue(v)
		default:
			err = errors.New("unknown field")
		}
		if err != nil {
			return Scenario{}, fmt.Errorf("field %q: %w", k, err)
		}
	}
	switch {
	case !hasRate:
		return Scenario{}, errors.New(`missing field "rate"`)
	case !hasNPer:
		return Scenario{}, errors.New(`missing field "nper"`)
	}
	return s, nil
}

// toDecimal converts a decoded scalar into a decimal.
func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		return decimal.NewFromString(t.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(t))
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case uint64:
		return decimal.NewFromUint64(t), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("expecting a number, got %T", v)
	}
}

// toDue converts a boolean, or a spreadsheet 0/1 payment type.
func toDue(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	d, err := toDecimal(v)
	if err != nil {
		return false, fmt.Errorf("expecting a boolean, 0 or 1: %w", err)
	}
	switch {
	case d.IsZero():
		return false, nil
	case d.Equal(decimal.NewFromInt(1)):
		return true, nil
	default:
		return false, fmt.Errorf("expecting a boolean, 0 or 1, got %v", d)
	}
}
