package main

import (
	"bytes"
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval_View(t *testing.T) {
	out, err := execute(t, "eval", "new Uint8Array([0, 1, 2, 3, 4, 5]).subarray(2, 4)")
	require.NoError(t, err)
	require.Contains(t, out, "kind:     array-buffer-view")
	require.Contains(t, out, "list<u8>: 2 bytes sha256:")
	require.Contains(t, out, "engine:   list<u8> (ptr=")
	require.Contains(t, out, "f64:      error:")
}

func TestEval_Scalars(t *testing.T) {
	out, err := execute(t, "eval", "'3.5'", "null")
	require.NoError(t, err)
	require.Contains(t, out, "f64:      3.5")
	require.Contains(t, out, `string:   "3.5"`)
	require.Contains(t, out, "bool:     false")
}

func TestEval_SyntaxError(t *testing.T) {
	_, err := execute(t, "eval", "(")
	require.Error(t, err)
}

func TestEval_NoBuffer(t *testing.T) {
	_, err := execute(t, "--node-buffer=false", "eval", "Buffer.from('x')")
	require.Error(t, err)
}

func TestCheck_WithReport(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.xml")
	out, err := execute(t, "check", "--cases", "../../conformance/testdata/goja.yaml", "--report", report)
	require.NoError(t, err)
	require.Contains(t, out, "ok   goja+buffer/round-trip")
	require.Contains(t, out, "ok   goja-cases/view-window")
	require.NotContains(t, out, "FAIL")

	data, err := os.ReadFile(report)
	require.NoError(t, err)

	var doc struct {
		Suites []struct {
			Name  string `xml:"name,attr"`
			Tests int    `xml:"tests,attr"`
		} `xml:"testsuite"`
	}
	require.NoError(t, xml.Unmarshal(data, &doc))
	require.Len(t, doc.Suites, 2)
	require.Equal(t, "goja-cases", doc.Suites[1].Name)
}

func TestCheck_FailingCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  - name: wrong\n    expr: '1'\n    number: 2\n"), 0o644))

	out, err := execute(t, "check", "--cases", path)
	require.Error(t, err)
	require.Contains(t, out, "FAIL "+path+"/wrong")
}

func TestLineMode(t *testing.T) {
	ctx := context.Background()
	s, err := newSession(ctx, true)
	require.NoError(t, err)
	defer s.Close(ctx)

	var out bytes.Buffer
	require.NoError(t, runLineMode(s, strings.NewReader("1 + 1\n\n)(\nBuffer.from('ab')\n"), &out))
	require.Contains(t, out.String(), "f64:      2")
	require.Contains(t, out.String(), ")(\n  error:")
	require.Contains(t, out.String(), "kind:     native-buffer")
}

func TestReplModel(t *testing.T) {
	ctx := context.Background()
	s, err := newSession(ctx, true)
	require.NoError(t, err)
	defer s.Close(ctx)

	m := newReplModel(s)
	for _, expr := range []string{"'abc'", "[1, 2]"} {
		m.input.SetValue(expr)
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.Len(t, m.entries, 2)
	require.Equal(t, "'abc'", m.entries[0].expr)
	require.Empty(t, m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "[1, 2]", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "'abc'", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Empty(t, m.input.Value())

	view := m.View()
	require.Contains(t, view, "Value Inspector")
	require.Contains(t, view, "[1, 2]")

	for i := 0; i < maxShown+2; i++ {
		m.input.SetValue("1")
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.Len(t, m.entries, maxShown)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
}
