package conformance

import (
	"encoding/xml"
	"io"
	"time"
)

type junitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	Cases     []junitTestCase `xml:"testcase"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Time      float64         `xml:"time,attr"`
}

type junitTestCase struct {
	Error   *junitError `xml:"error,omitempty"`
	Skipped *junitError `xml:"skipped,omitempty"`
	Name    string      `xml:"name,attr"`
	Time    float64     `xml:"time,attr"`
}

type junitError struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

// WriteJUnit writes suites as a JUnit-style XML report.
func WriteJUnit(w io.Writer, suites ...*Suite) error {
	doc := junitTestSuites{}
	for _, s := range suites {
		js := junitTestSuite{
			Name:      s.Name,
			Timestamp: s.Timestamp.UTC().Format(time.RFC3339),
			Tests:     len(s.Results),
			Failures:  s.Failures(),
			Skipped:   s.Skipped(),
		}
		for _, r := range s.Results {
			tc := junitTestCase{Name: r.Name, Time: r.Duration.Seconds()}
			js.Time += tc.Time
			switch r.Status {
			case StatusFail:
				tc.Error = &junitError{Message: r.Err.Error(), Text: r.Err.Error()}
			case StatusSkip:
				tc.Skipped = &junitError{Message: r.Err.Error()}
			}
			js.Cases = append(js.Cases, tc)
		}
		doc.Suites = append(doc.Suites, js)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
