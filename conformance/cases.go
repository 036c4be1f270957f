package conformance

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/wippyai/valuebridge/errors"
	"github.com/wippyai/valuebridge/value"
)

// Conversion names usable in Case.Errors.
const (
	ConvNumber  = "number"
	ConvBoolean = "boolean"
	ConvString  = "string"
	ConvBinary  = "binary"
)

var conversions = []string{ConvNumber, ConvBoolean, ConvString, ConvBinary}

// CaseFile is a YAML document of expectations.
type CaseFile struct {
	Suite string `json:"suite,omitempty"`
	Cases []Case `json:"cases"`
}

// Case is one expression and what converting its value must yield.
// Unset expectations are not checked.
type Case struct {
	Number  *float64 `json:"number,omitempty"`
	Boolean *bool    `json:"boolean,omitempty"`
	String  *string  `json:"string,omitempty"`
	// Binary is the expected ToBinary result in hex.
	Binary *string `json:"binary,omitempty"`
	// Digest is the expected digest of the ToBinary result.
	Digest string `json:"digest,omitempty"`
	Name   string `json:"name"`
	Expr   string `json:"expr"`
	// Kinds lists every kind the value must classify as, and no others.
	Kinds []string `json:"kinds,omitempty"`
	// Errors lists conversions that must fail.
	Errors []string `json:"errors,omitempty"`
}

// LoadCases reads and validates a case file.
func LoadCases(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read case file", err)
	}
	cf, err := ParseCases(data)
	if err != nil {
		return nil, err
	}
	Logger().Debug("loaded case file", zap.String("path", path), zap.Int("cases", len(cf.Cases)))
	return cf, nil
}

// ParseCases decodes and validates a YAML case document. Unknown fields are
// rejected.
func ParseCases(data []byte) (*CaseFile, error) {
	var cf CaseFile
	if err := yaml.UnmarshalStrict(data, &cf); err != nil {
		return nil, errors.Load("decode case file", err)
	}
	seen := make(map[string]bool, len(cf.Cases))
	for i := range cf.Cases {
		c := &cf.Cases[i]
		if err := c.Validate(); err != nil {
			return nil, errors.Load(fmt.Sprintf("case %d", i), err)
		}
		if seen[c.Name] {
			return nil, errors.Load(fmt.Sprintf("duplicate case name %q", c.Name), nil)
		}
		seen[c.Name] = true
	}
	return &cf, nil
}

// Validate checks that the case is well formed.
func (c *Case) Validate() error {
	if c.Name == "" {
		return errors.InvalidInput(errors.PhaseLoad, "case has no name")
	}
	if c.Expr == "" {
		return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("case %q has no expr", c.Name))
	}
	for _, k := range c.Kinds {
		if _, ok := value.ParseKind(k); !ok {
			return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("case %q: unknown kind %q", c.Name, k))
		}
	}
	for _, conv := range c.Errors {
		if !slices.Contains(conversions, conv) {
			return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("case %q: unknown conversion %q", c.Name, conv))
		}
		if c.expects(conv) {
			return errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("case %q: %s both expected and failing", c.Name, conv))
		}
	}
	if c.Binary != nil {
		if _, err := hex.DecodeString(*c.Binary); err != nil {
			return errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, fmt.Sprintf("case %q: binary is not hex", c.Name))
		}
	}
	if c.Digest != "" {
		if _, err := VerifyDigest(c.Digest, nil); err != nil {
			return err
		}
	}
	return nil
}

func (c *Case) expects(conv string) bool {
	switch conv {
	case ConvNumber:
		return c.Number != nil
	case ConvBoolean:
		return c.Boolean != nil
	case ConvString:
		return c.String != nil
	case ConvBinary:
		return c.Binary != nil || c.Digest != ""
	}
	return false
}

// CaseScenarios turns cases into scenarios evaluated through Fixtures.Eval.
func CaseScenarios[V any](cases []Case) []Scenario[V] {
	out := make([]Scenario[V], 0, len(cases))
	for _, c := range cases {
		out = append(out, Scenario[V]{Name: c.Name, Run: func(t *Target[V]) error { return runCase(c, t) }})
	}
	return out
}

func runCase[V any](c Case, t *Target[V]) error {
	v, err := t.Fixtures.Eval(c.Expr)
	if err != nil {
		return fmt.Errorf("eval %q: %w", c.Expr, err)
	}

	if c.Kinds != nil {
		var got []string
		for _, k := range t.Conv.Kinds(v) {
			got = append(got, k.String())
		}
		want := slices.Clone(c.Kinds)
		slices.Sort(want)
		slices.Sort(got)
		if !slices.Equal(got, want) {
			return fmt.Errorf("kinds %v, want %v", got, want)
		}
	}

	for _, conv := range c.Errors {
		if err := convert(t, conv, v); err == nil {
			return fmt.Errorf("%s conversion succeeded, want error", conv)
		}
	}

	if c.Number != nil {
		got, err := t.Conv.ToNumber(v)
		if err != nil {
			return err
		}
		if got != *c.Number {
			return fmt.Errorf("number %v, want %v", got, *c.Number)
		}
	}
	if c.Boolean != nil {
		got, err := t.Conv.ToBoolean(v)
		if err != nil {
			return err
		}
		if got != *c.Boolean {
			return fmt.Errorf("boolean %v, want %v", got, *c.Boolean)
		}
	}
	if c.String != nil {
		got, err := t.Conv.ToString(v)
		if err != nil {
			return err
		}
		if got != *c.String {
			return fmt.Errorf("string %q, want %q", got, *c.String)
		}
	}
	if c.Binary != nil || c.Digest != "" {
		bin, err := t.Conv.ToBinary(v)
		if err != nil {
			return err
		}
		if c.Binary != nil {
			want, _ := hex.DecodeString(*c.Binary)
			if !bytes.Equal(bin.Bytes(), want) {
				return fmt.Errorf("binary %x, want %x", bin.Bytes(), want)
			}
		}
		if c.Digest != "" {
			ok, err := VerifyDigest(c.Digest, bin.Bytes())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("binary digest %s, want %s", Digest(bin.Bytes()), c.Digest)
			}
		}
	}
	return nil
}

func convert[V any](t *Target[V], conv string, v V) error {
	var err error
	switch conv {
	case ConvNumber:
		_, err = t.Conv.ToNumber(v)
	case ConvBoolean:
		_, err = t.Conv.ToBoolean(v)
	case ConvString:
		_, err = t.Conv.ToString(v)
	case ConvBinary:
		_, err = t.Conv.ToBinary(v)
	}
	return err
}
