package conformance

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/valuebridge/errors"
	"github.com/wippyai/valuebridge/jsvalue"
)

func TestBuiltin_GojaWithBuffer(t *testing.T) {
	suite := Run(Goja(jsvalue.Options{NodeBuffer: true}), Builtin[goja.Value]())

	require.Equal(t, "goja+buffer", suite.Name)
	for _, r := range suite.Results {
		require.Equal(t, StatusPass, r.Status, "%s: %v", r.Name, r.Err)
	}
	require.Zero(t, suite.Failures())
	require.Zero(t, suite.Skipped())
}

func TestBuiltin_GojaWithoutBuffer(t *testing.T) {
	suite := Run(Goja(jsvalue.Options{}), Builtin[goja.Value]())

	require.Zero(t, suite.Failures())
	require.Equal(t, 2, suite.Skipped())
	for _, r := range suite.Results {
		if r.Status == StatusSkip {
			require.Contains(t, r.Name, "native-buffer")
		}
	}
}

func TestRun_Outcomes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	scenarios := []Scenario[goja.Value]{
		{Name: "ok", Run: func(*Target[goja.Value]) error { return nil }},
		{Name: "fails", Run: func(*Target[goja.Value]) error { return fmt.Errorf("boom") }},
		{Name: "panics", Run: func(*Target[goja.Value]) error { panic("bad adapter") }},
		{Name: "skips", Run: func(*Target[goja.Value]) error {
			return errors.Unsupported(errors.PhaseCheck, "not here")
		}},
	}
	suite := Run(Goja(jsvalue.Options{}), scenarios)

	want := []Status{StatusPass, StatusFail, StatusFail, StatusSkip}
	for i, r := range suite.Results {
		require.Equal(t, want[i], r.Status, r.Name)
	}
	require.Contains(t, suite.Results[2].Err.Error(), "bad adapter")
	require.Equal(t, 2, suite.Failures())
	require.Equal(t, 1, logs.FilterMessage("suite finished").Len())
	require.Equal(t, 4, logs.FilterMessage("scenario finished").Len())
}

func TestRun_FactoryError(t *testing.T) {
	factory := func() (*Target[goja.Value], error) {
		return nil, errors.InvalidInput(errors.PhaseAdapter, "no runtime")
	}
	suite := Run(factory, Builtin[goja.Value]())
	require.Equal(t, len(suite.Results), suite.Failures())
}

func TestLoadCases_Goja(t *testing.T) {
	cf, err := LoadCases("testdata/goja.yaml")
	require.NoError(t, err)
	require.Equal(t, "goja-cases", cf.Suite)
	require.NotEmpty(t, cf.Cases)

	suite := Run(Goja(jsvalue.Options{NodeBuffer: true}), CaseScenarios[goja.Value](cf.Cases))
	for _, r := range suite.Results {
		require.Equal(t, StatusPass, r.Status, "%s: %v", r.Name, r.Err)
	}
}

func TestLoadCases_Missing(t *testing.T) {
	_, err := LoadCases("testdata/missing.yaml")
	require.Error(t, err)

	var e *errors.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, errors.PhaseLoad, e.Phase)
}

func TestParseCases_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no name", "cases:\n  - expr: '1'\n"},
		{"no expr", "cases:\n  - name: a\n"},
		{"unknown kind", "cases:\n  - name: a\n    expr: '1'\n    kinds: [integer]\n"},
		{"unknown conversion", "cases:\n  - name: a\n    expr: '1'\n    errors: [date]\n"},
		{"expected and failing", "cases:\n  - name: a\n    expr: '1'\n    number: 1\n    errors: [number]\n"},
		{"bad hex", "cases:\n  - name: a\n    expr: '1'\n    binary: zz\n"},
		{"bad digest", "cases:\n  - name: a\n    expr: '1'\n    digest: md5:abc\n"},
		{"duplicate", "cases:\n  - name: a\n    expr: '1'\n  - name: a\n    expr: '2'\n"},
		{"unknown field", "cases:\n  - name: a\n    expr: '1'\n    colour: red\n"},
		{"not yaml", "cases: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCases([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestCaseScenarios_Mismatch(t *testing.T) {
	num := 4.0
	cases := []Case{
		{Name: "wrong number", Expr: "3", Number: &num},
		{Name: "wrong kinds", Expr: "'s'", Kinds: []string{"number"}},
		{Name: "should fail", Expr: "1", Errors: []string{ConvBoolean}},
		{Name: "eval error", Expr: "throw new Error('x')"},
		{Name: "wrong digest", Expr: "new ArrayBuffer(1)", Digest: Digest([]byte{1}).String()},
	}
	suite := Run(Goja(jsvalue.Options{}), CaseScenarios[goja.Value](cases))
	require.Equal(t, len(cases), suite.Failures())
}

func TestWriteJUnit(t *testing.T) {
	suite := Run(Goja(jsvalue.Options{}), []Scenario[goja.Value]{
		{Name: "passes", Run: func(*Target[goja.Value]) error { return nil }},
		{Name: "fails", Run: func(*Target[goja.Value]) error { return fmt.Errorf("expected 1, got 2") }},
		{Name: "skips", Run: func(*Target[goja.Value]) error { return errors.Unsupported(errors.PhaseCheck, "n/a") }},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteJUnit(&buf, suite))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte(xml.Header)))

	var doc junitTestSuites
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Suites, 1)

	s := doc.Suites[0]
	require.Equal(t, "goja", s.Name)
	require.Equal(t, 3, s.Tests)
	require.Equal(t, 1, s.Failures)
	require.Equal(t, 1, s.Skipped)
	require.NotEmpty(t, s.Timestamp)
	require.Len(t, s.Cases, 3)
	require.Nil(t, s.Cases[0].Error)
	require.NotNil(t, s.Cases[1].Error)
	require.Equal(t, "expected 1, got 2", s.Cases[1].Error.Message)
	require.NotNil(t, s.Cases[2].Skipped)
}

func TestVerifyDigest(t *testing.T) {
	d := Digest([]byte("hi"))
	require.Equal(t, "sha256:8f434346648f6b96df89dda901c5176b10a6d83961dd3c1ac88b59b2dc327aa4", d.String())

	ok, err := VerifyDigest(d.String(), []byte("hi"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyDigest(d.String(), []byte("ho"))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = VerifyDigest("not-a-digest", nil)
	require.Error(t, err)
}
