package cases

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/descq/internal/ir"
)

// Snapshot returns the canonical JSON form of a run: every case with its
// resolved directive or error code.
func Snapshot(s *Suite, result *Result) ([]byte, error) {
	caseList := make([]any, len(result.Outcomes))
	for i, o := range result.Outcomes {
		entry := map[string]any{
			"name":       o.Case,
			"descriptor": o.Descriptor,
		}
		if o.Err != nil {
			entry["error"] = ErrorCode(o.Err)
		} else {
			d := o.Directive
			entry["entity"] = d.Entity()
			entry["table"] = d.Table()
			entry["property"] = d.Property()
			entry["mode"] = d.Mode().String()
			entry["operator"] = d.Operator().String()
			entry["join"] = d.Join()
			entry["action"] = d.Action().String()
		}
		caseList[i] = entry
	}

	return ir.MarshalCanonical(map[string]any{
		"suite":  s.Name,
		"origin": s.Origin,
		"cases":  caseList,
	})
}

// RunWithGolden runs a suite, fails t for every mismatching case and
// compares the snapshot against testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cases -update
func RunWithGolden(t *testing.T, s *Suite) (*Result, error) {
	t.Helper()

	result := Run(s)
	for _, o := range result.Outcomes {
		for _, m := range o.Mismatches {
			t.Errorf("%s/%s (%q): %s", s.Name, o.Case, o.Descriptor, m)
		}
	}

	snapshot, err := Snapshot(s, result)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, snapshot)

	return result, nil
}
