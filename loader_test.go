package finprim

import (
	"errors"
	"strings"
	"testing"
)

func checkSavingsScenarios(t *testing.T, scenarios []Scenario) {
	t.Helper()
	if len(scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(scenarios))
	}
	s := scenarios[0]
	if s.Name != "savings" || !s.Rate.Equal(D("0.005")) || !s.NPer.Equal(D(10)) ||
		!s.Pmt.Equal(D(-200)) || !s.PV.Equal(D(-500)) || !s.Due || s.Currency != "USD" {
		t.Errorf("unexpected first scenario %+v", s)
	}
	s = scenarios[1]
	if s.Name != "monthly deposit" || !s.Rate.Equal(D("0.01")) || !s.NPer.Equal(D(12)) ||
		!s.Pmt.Equal(D(-1000)) || !s.PV.IsZero() || s.Due || s.Currency != "" {
		t.Errorf("unexpected second scenario %+v", s)
	}
}

func TestLoadScenarios(t *testing.T) {
	for _, file := range []string{"testdata/scenarios.json", "testdata/scenarios.toml", "testdata/scenarios.yaml"} {
		t.Run(file, func(t *testing.T) {
			scenarios, err := LoadScenarios(file, "")
			if err != nil {
				t.Fatalf("LoadScenarios(%q) unexpected error: %v", file, err)
			}
			checkSavingsScenarios(t, scenarios)
		})
	}
}

func TestLoadScenarios_UnknownFormat(t *testing.T) {
	_, err := LoadScenarios("testdata/scenarios.csv", "")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestDecodeScenarios_Selector(t *testing.T) {
	doc := `{
		"plan": {
			"cases": [
				{"name": "a", "rate": "5%", "nper": 10, "pmt": -100},
				{"name": "b", "rate": 0, "nper": 10, "pmt": -100}
			]
		}
	}`

	tests := []struct {
		selector string
		names    []string
	}{
		{"$.plan.cases", []string{"a", "b"}},
		{"$.plan.cases[*]", []string{"a", "b"}},
		{"$.plan.cases[1]", []string{"b"}},
	}
	for _, tc := range tests {
		t.Run(tc.selector, func(t *testing.T) {
			scenarios, err := DecodeScenarios(strings.NewReader(doc), JSON, tc.selector)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var names []string
			for _, s := range scenarios {
				names = append(names, s.Name)
			}
			if strings.Join(names, ",") != strings.Join(tc.names, ",") {
				t.Errorf("got %v, want %v", names, tc.names)
			}
		})
	}
}

func TestDecodeScenarios_ExactNumbers(t *testing.T) {
	doc := `{"scenarios": [{"rate": 0.1000000000000000000001, "nper": 1, "pmt": -1}]}`
	scenarios, err := DecodeScenarios(strings.NewReader(doc), JSON, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := scenarios[0].Rate.String(), "0.1000000000000000000001"; got != want {
		t.Errorf("rate = %s, want %s", got, want)
	}
}

func TestDecodeScenarios_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing rate", `{"scenarios": [{"nper": 1, "pmt": -1}]}`},
		{"missing nper", `{"scenarios": [{"rate": 0.1, "pmt": -1}]}`},
		{"unknown field", `{"scenarios": [{"rate": 0.1, "nper": 1, "pmnt": -1}]}`},
		{"invalid rate", `{"scenarios": [{"rate": "ten", "nper": 1}]}`},
		{"invalid due", `{"scenarios": [{"rate": 0.1, "nper": 1, "due": 2}]}`},
		{"not an object", `{"scenarios": [1]}`},
		{"not a list", `{"scenarios": "none"}`},
		{"no scenarios", `{"cases": []}`},
		{"invalid json", `{"scenarios": [`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeScenarios(strings.NewReader(tc.doc), JSON, ""); err == nil {
				t.Errorf("expected an error decoding %s", tc.doc)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.json":     JSON,
		"dir/b.TOML": TOML,
		"c.yml":      YAML,
		"d.yaml":     YAML,
	}
	for file, want := range tests {
		got, err := FormatOf(file)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = %q, %v, want %q", file, got, err, want)
		}
	}
}
