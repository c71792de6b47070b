package bitcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alignedSrc = `package records

import "github.com/alexhholmes/bitcheck/bits"

// Header fills exactly one byte: 3+5.
//
// @bitfield
type Header struct {
	Version bits.B3
	Flags   bits.B5
}

// Payload fills three bytes: 8+8+8.
//
// @bitfield
type Payload struct {
	A bits.B8
	B bits.B8
	C bits.B8
}

// Empty has no fields: total 0, residue 0, accepted.
//
// @bitfield
type Empty struct{}
`

const misalignedSrc = `package records

import "github.com/alexhholmes/bitcheck/bits"

// Torn is three loose flag bits.
//
// @bitfield
type Torn struct {
	A bits.B1
	B bits.B1
	C bits.B1
}

// Spill is one bit past a full word: 64+1.
//
// @bitfield
type Spill struct {
	Word  bits.B64
	Extra bits.B1
}

// Wide declares a width the catalog does not carry.
//
// @bitfield
type Wide struct {
	Value bits.B65
}
`

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "aligned.go", alignedSrc)

	outcomes, err := CheckFile(path, Options{})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	for _, o := range outcomes {
		assert.True(t, o.Accepted, "%s: %s", o.Record, o.Diagnostic)
		assert.Equal(t, uint(0), o.Residue)
	}

	assert.Equal(t, "Header", outcomes[0].Record)
	assert.Equal(t, uint(8), outcomes[0].Total)
	assert.Equal(t, uint(24), outcomes[1].Total)
	assert.Equal(t, uint(0), outcomes[2].Total, "empty record sums to zero")
}

func TestCheckFileRejections(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "misaligned.go", misalignedSrc)

	outcomes, err := CheckFile(path, Options{})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	torn := outcomes[0]
	assert.False(t, torn.Accepted)
	assert.Equal(t, uint(3), torn.Total)
	assert.Equal(t, uint(3), torn.Residue)
	assert.Contains(t, torn.Diagnostic, "not a multiple of 8")

	spill := outcomes[1]
	assert.False(t, spill.Accepted)
	assert.Equal(t, uint(65), spill.Total)
	assert.Equal(t, uint(1), spill.Residue)

	// Unknown width rejects independent of divisibility
	wide := outcomes[2]
	assert.False(t, wide.Accepted)
	assert.Contains(t, wide.Diagnostic, "does not declare a bit-width")
}

func TestCheckFileIndexStrategy(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "misaligned.go", misalignedSrc)

	outcomes, err := CheckFile(path, Options{Strategy: "index"})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	// Same verdicts as the capability backend, different diagnostic texture
	assert.False(t, outcomes[0].Accepted)
	assert.Contains(t, outcomes[0].Diagnostic, "index 3 out of bounds [0:1]")
}

// A misaligned record with a typo'd annotation must still fail the build
// gate, with the annotation diagnostic rather than no outcome at all.
func TestCheckFileMalformedAnnotation(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "typo.go", `package records

import "github.com/alexhholmes/bitcheck/bits"

// @bitfield strategy=panic
type Torn struct {
	A bits.B1
}
`)

	outcomes, err := CheckFile(path, Options{})
	require.NoError(t, err)
	require.Len(t, outcomes, 1, "the record must surface, not vanish")

	assert.False(t, outcomes[0].Accepted)
	assert.Contains(t, outcomes[0].Diagnostic, "invalid @bitfield annotation")

	report, err := Check([]string{dir}, Options{})
	require.NoError(t, err)
	assert.True(t, report.Failed())
}

func TestCheckFileInvalidStrategy(t *testing.T) {
	_, err := CheckFile("nope.go", Options{Strategy: "panic"})
	assert.Error(t, err)
}

func TestCheckWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "aligned.go", alignedSrc)
	writeSource(t, dir, "misaligned.go", misalignedSrc)
	writeSource(t, dir, "plain.go", "package records\n\ntype NotARecord struct{ X int }\n")

	report, err := Check([]string{dir}, Options{})
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 6)

	assert.True(t, report.Failed())
	assert.Equal(t, 3, report.Rejected())

	// Sorted by file, declaration order within each file
	var got []string
	for _, o := range report.Outcomes {
		got = append(got, o.Record)
	}
	assert.Equal(t, []string{"Header", "Payload", "Empty", "Torn", "Spill", "Wide"}, got)
}

func TestCheckPassesCleanTree(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "aligned.go", alignedSrc)

	report, err := Check([]string{dir}, Options{Concurrency: 2})
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, 0, report.Rejected())
}

func TestCheckWriteGuards(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "aligned.go", alignedSrc)

	_, err := CheckFile(path, Options{WriteGuards: true})
	require.NoError(t, err)

	guard := filepath.Join(dir, "aligned_bitcheck.go")
	src, err := os.ReadFile(guard)
	require.NoError(t, err, "guard file must be written next to the source")

	code := strings.ReplaceAll(string(src), " ", "")
	assert.Contains(t, code, "packagerecords")
	assert.Contains(t, code, "[1]struct{}{}[(3+5)%8]")
	assert.Contains(t, code, "[1]struct{}{}[(8+8+8)%8]")

	// A fresh walk must not validate the generated guard itself
	report, err := Check([]string{dir}, Options{})
	require.NoError(t, err)
	assert.Len(t, report.Outcomes, 3)
}

func TestCheckRejectsNonGoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o644))

	_, err := Check([]string{path}, Options{})
	assert.Error(t, err)
}
