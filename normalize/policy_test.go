package normalize

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dataset/array"
)

func TestParsePolicyRoundTrip(t *testing.T) {
	for _, name := range Policies() {
		p, err := ParsePolicy(name)
		if err != nil {
			t.Fatalf("ParsePolicy(%q) error = %v", name, err)
		}
		if p.String() != name {
			t.Fatalf("ParsePolicy(%q).String() = %q", name, p.String())
		}
	}
}

func TestParsePolicyUnknown(t *testing.T) {
	_, err := ParsePolicy("zscore")
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
	if ce.Value != "zscore" {
		t.Errorf("Value = %q", ce.Value)
	}
	if len(ce.Valid) != len(Policies()) {
		t.Errorf("Valid = %v", ce.Valid)
	}
	if !strings.Contains(err.Error(), "range_0_1") {
		t.Errorf("message %q does not list the valid set", err.Error())
	}
}

func TestApplyRejectsInvalidPolicy(t *testing.T) {
	_, err := Apply(array.FromValues([]float64{1, 2}), Policy(42))
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
	if ce.Value != "Policy(42)" {
		t.Errorf("Value = %q", ce.Value)
	}
}

func TestPolicyYAML(t *testing.T) {
	var doc struct {
		Policy Policy `yaml:"policy"`
	}
	if err := yaml.Unmarshal([]byte("policy: whiten\n"), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Policy != PolicyWhiten {
		t.Fatalf("Policy = %v, want whiten", doc.Policy)
	}

	if err := yaml.Unmarshal([]byte("policy: bogus\n"), &doc); err == nil {
		t.Fatal("expected error for unknown policy")
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(out)) != "policy: whiten" {
		t.Fatalf("Marshal = %q", out)
	}
}

func TestApplyDoesNotMutate(t *testing.T) {
	in := array.MustNew([]int{3, 2}, []float64{1, 5, 2, 7, 4, 9})
	orig := append([]float64(nil), in.Data()...)

	for _, name := range Policies() {
		p, _ := ParsePolicy(name)
		if _, err := Apply(in, p); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for i := range orig {
			if in.Data()[i] != orig[i] {
				t.Fatalf("%s mutated its input", name)
			}
		}
	}
}
