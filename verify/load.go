// SPDX-License-Identifier: MIT

package verify

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadeq/quadratic"
)

// Format selects the on-disk table encoding.
type Format int

const (
	// FormatAuto sniffs the content (Decode) or the extension (LoadFile).
	FormatAuto Format = iota
	// FormatYAML is a YAML document with version and cases.
	FormatYAML
	// FormatJSON is a JSON object with version and cases.
	FormatJSON
	// FormatText is one whitespace-separated case per line.
	FormatText
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// FormatFromPath maps a file extension to a Format:
// .yaml/.yml, .json, and .txt/.dat/no extension for text.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".txt", ".dat", "":
		return FormatText, nil
	}

	return FormatAuto, errors.Wrapf(ErrUnknownFormat, "extension of %s", path)
}

// LoadFile reads a table from path, choosing the format by extension.
func LoadFile(path string) (Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Table{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.Wrap(err, "failed to open test table")
	}
	defer f.Close()

	t, err := Decode(f, format)
	if err != nil {
		return Table{}, errors.Wrapf(err, "failed to load %s", path)
	}

	return t, nil
}

// Decode reads a table in the given format. FormatAuto sniffs the content:
// a leading '{' is JSON, a "cases:" key is YAML, anything else is text.
func Decode(r io.Reader, format Format) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Table{}, errors.Wrap(err, "failed to read test table")
	}
	if format == FormatAuto {
		format = sniff(data)
	}

	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatText:
		return decodeText(data)
	}

	return Table{}, errors.Wrapf(ErrUnknownFormat, "format %v", format)
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		return FormatJSON
	case bytes.Contains(trimmed, []byte("cases:")):
		return FormatYAML
	default:
		return FormatText
	}
}

// caseDoc is the format-neutral shape of one case before validation.
// Pointers distinguish "missing" from zero.
type caseDoc struct {
	Name      string    `yaml:"name"`
	A         *float64  `yaml:"a"`
	B         *float64  `yaml:"b"`
	C         *float64  `yaml:"c"`
	Count     string    `yaml:"count"`
	Roots     []float64 `yaml:"roots"`
	Tolerance *float64  `yaml:"tolerance"`
}

type tableDoc struct {
	Version string    `yaml:"version"`
	Cases   []caseDoc `yaml:"cases"`
}

func decodeYAML(data []byte) (Table, error) {
	var doc tableDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Table{}, errors.Wrapf(ErrMalformedTable, "yaml: %v", err)
	}
	if doc.Cases == nil {
		return Table{}, errors.Wrap(ErrMalformedTable, "yaml: missing cases list")
	}

	return doc.table()
}

func decodeJSON(data []byte) (Table, error) {
	if !gjson.ValidBytes(data) {
		return Table{}, errors.Wrap(ErrMalformedTable, "json: invalid document")
	}
	root := gjson.ParseBytes(data)
	cases := root.Get("cases")
	if !cases.IsArray() {
		return Table{}, errors.Wrap(ErrMalformedTable, "json: missing cases array")
	}

	doc := tableDoc{Version: root.Get("version").String()}
	for i, c := range cases.Array() {
		cd, err := jsonCase(c)
		if err != nil {
			return Table{}, errors.Wrapf(err, "case %d", i+1)
		}
		doc.Cases = append(doc.Cases, cd)
	}

	return doc.table()
}

func jsonCase(c gjson.Result) (caseDoc, error) {
	num := func(key string) (*float64, error) {
		v := c.Get(key)
		if !v.Exists() {
			return nil, nil
		}
		if v.Type != gjson.Number {
			return nil, errors.Wrapf(ErrMalformedCase, "%s: not a number: %s", key, v.Raw)
		}
		f := v.Float()

		return &f, nil
	}

	cd := caseDoc{Name: c.Get("name").String(), Count: c.Get("count").String()}
	var err error
	if cd.A, err = num("a"); err != nil {
		return cd, err
	}
	if cd.B, err = num("b"); err != nil {
		return cd, err
	}
	if cd.C, err = num("c"); err != nil {
		return cd, err
	}
	if cd.Tolerance, err = num("tolerance"); err != nil {
		return cd, err
	}
	for _, r := range c.Get("roots").Array() {
		if r.Type != gjson.Number {
			return cd, errors.Wrapf(ErrMalformedCase, "roots: not a number: %s", r.Raw)
		}
		cd.Roots = append(cd.Roots, r.Float())
	}

	return cd, nil
}

// decodeText parses the line format "a b c root1 root2 count [tolerance]".
// Root slots that the count does not use are read but ignored.
// A comment line "# version: X" sets the table version.
func decodeText(data []byte) (Table, error) {
	doc := tableDoc{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if v, ok := versionDirective(text); ok {
				doc.Version = v
			}
			continue
		}

		cd, err := textCase(text)
		if err != nil {
			return Table{}, errors.Wrapf(err, "line %d", line)
		}
		doc.Cases = append(doc.Cases, cd)
	}
	if err := sc.Err(); err != nil {
		return Table{}, errors.Wrap(err, "failed to scan test table")
	}

	return doc.table()
}

func versionDirective(comment string) (string, bool) {
	body := strings.TrimSpace(strings.TrimPrefix(comment, "#"))
	if !strings.HasPrefix(strings.ToLower(body), "version:") {
		return "", false
	}

	return strings.TrimSpace(body[len("version:"):]), true
}

func textCase(text string) (caseDoc, error) {
	fields := strings.Fields(text)
	if len(fields) != 6 && len(fields) != 7 {
		return caseDoc{}, errors.Wrapf(ErrMalformedCase, "want 6 or 7 fields, got %d", len(fields))
	}

	nums := make([]float64, 5)
	for i := range nums {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return caseDoc{}, errors.Wrapf(ErrMalformedCase, "field %d: %q is not a number", i+1, fields[i])
		}
		nums[i] = f
	}

	code, err := strconv.Atoi(fields[5])
	if err != nil {
		return caseDoc{}, errors.Wrapf(ErrMalformedCase, "field 6: %q is not a root count", fields[5])
	}
	count, err := quadratic.RootCountFromCode(code)
	if err != nil {
		return caseDoc{}, errors.Wrap(ErrMalformedCase, err.Error())
	}

	cd := caseDoc{
		A:     &nums[0],
		B:     &nums[1],
		C:     &nums[2],
		Count: count.String(),
	}
	switch count {
	case quadratic.OneRoot:
		cd.Roots = nums[3:4]
	case quadratic.TwoRoots:
		cd.Roots = nums[3:5]
	}

	if len(fields) == 7 {
		tol, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return caseDoc{}, errors.Wrapf(ErrMalformedCase, "field 7: %q is not a tolerance", fields[6])
		}
		cd.Tolerance = &tol
	}

	return cd, nil
}

// table validates the document and builds the Table.
func (d tableDoc) table() (Table, error) {
	version, err := parseVersion(d.Version)
	if err != nil {
		return Table{}, err
	}

	cases := make([]TestCase, 0, len(d.Cases))
	for i, cd := range d.Cases {
		tc, err := cd.testCase()
		if err != nil {
			return Table{}, errors.Wrapf(err, "case %d", i+1)
		}
		cases = append(cases, tc)
	}

	return NewTable(version, cases...)
}

func parseVersion(s string) (semver.Version, error) {
	if strings.TrimSpace(s) == "" {
		return semver.MustParse(CurrentVersion), nil
	}
	v, err := semver.ParseTolerant(s)
	if err != nil {
		return semver.Version{}, errors.Wrapf(ErrUnsupportedVersion, "%q: %v", s, err)
	}

	return v, nil
}

func (cd caseDoc) testCase() (TestCase, error) {
	if cd.A == nil || cd.B == nil || cd.C == nil {
		return TestCase{}, errors.Wrap(ErrMalformedCase, "coefficients a, b and c are required")
	}
	coeffs := quadratic.Coefficients{A: *cd.A, B: *cd.B, C: *cd.C}
	if err := coeffs.Validate(); err != nil {
		return TestCase{}, errors.Wrap(ErrMalformedCase, err.Error())
	}

	count, err := parseCount(cd.Count)
	if err != nil {
		return TestCase{}, errors.Wrap(ErrMalformedCase, err.Error())
	}
	expected, err := expectedSolution(count, cd.Roots)
	if err != nil {
		return TestCase{}, err
	}

	tc := TestCase{Name: cd.Name, Coefficients: coeffs, Expected: expected}
	if cd.Tolerance != nil {
		t := *cd.Tolerance
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return TestCase{}, errors.Wrapf(ErrMalformedCase, "tolerance %v must be finite, non-negative", t)
		}
		tc = tc.WithTolerance(t)
	}

	return tc, nil
}

// parseCount accepts a RootCount name or its numeric code.
func parseCount(s string) (quadratic.RootCount, error) {
	if code, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return quadratic.RootCountFromCode(code)
	}

	return quadratic.ParseRootCount(s)
}

func expectedSolution(count quadratic.RootCount, roots []float64) (quadratic.Solution, error) {
	want := map[quadratic.RootCount]int{
		quadratic.NoRoots:       0,
		quadratic.InfiniteRoots: 0,
		quadratic.OneRoot:       1,
		quadratic.TwoRoots:      2,
	}[count]
	if len(roots) != want {
		return quadratic.Solution{}, errors.Wrapf(ErrMalformedCase, "%v needs %d roots, got %d", count, want, len(roots))
	}

	switch count {
	case quadratic.NoRoots:
		return quadratic.None(), nil
	case quadratic.InfiniteRoots:
		return quadratic.Infinite(), nil
	case quadratic.OneRoot:
		return quadratic.One(roots[0]), nil
	default:
		return quadratic.Two(roots[0], roots[1]), nil
	}
}
