// Package conformance checks runtime adapters against the conversion
// contract of package value.
//
// A Factory produces a fresh Target per scenario: a Converter bound to a new
// runtime plus Fixtures able to build buffers, views, native buffers and
// plain objects. Builtin returns the scenarios every adapter must pass.
// CaseScenarios turns YAML case files into further scenarios evaluated in
// the runtime's own language.
//
//	suite := conformance.Run(conformance.Goja(jsvalue.Options{NodeBuffer: true}),
//		conformance.Builtin[goja.Value]())
//	if suite.Failures() > 0 {
//		conformance.WriteJUnit(os.Stdout, suite)
//	}
//
// Case file format:
//
//	suite: name
//	cases:
//	  - name: view-window
//	    expr: "new Uint8Array([0, 1, 2, 3, 4, 5]).subarray(2, 4)"
//	    kinds: [array-buffer-view, object]
//	    binary: "0203"
//	    errors: [number]
//
// Binary results may also be checked by digest ("sha256:...").
package conformance
