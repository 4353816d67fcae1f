package probe

import (
	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/errors"
	"github.com/lumenworks/visgen/logger"
	"github.com/lumenworks/visgen/vis"
)

// Outcome is one evaluated expectation.
type Outcome struct {
	Scenario string
	Kind     Kind
	Module   string
	Subject  string
	Want     string
	Got      string
	Passed   bool
}

// Kind of check an outcome came from.
type Kind string

const (
	KindExpansion Kind = "expansion"
	KindRewrite   Kind = "rewrite"
)

// Report aggregates the outcomes of a probe run.
type Report struct {
	Outcomes []Outcome
}

// Failed counts outcomes that did not hold.
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Passed {
			n++
		}
	}
	return n
}

// Passed counts outcomes that held.
func (r *Report) Passed() int {
	return len(r.Outcomes) - r.Failed()
}

// Err returns nil when every outcome passed, otherwise an error wrapping
// ErrProbeFailed with the failure count.
func (r *Report) Err() error {
	failed := r.Failed()
	if failed == 0 {
		return nil
	}
	return errors.Wrapf(errors.ErrProbeFailed, "%d of %d checks", failed, len(r.Outcomes))
}

// Run evaluates one scenario against a distribution. Errors are reserved
// for broken scenarios (unknown modules or tokens, invalid predefines);
// expectation mismatches land in the report instead.
func Run(d *dist.Distribution, s *Scenario) (*Report, error) {
	expansions := make(map[string]*vis.Expansion)

	// One translation unit per referenced module, resolved lazily so a
	// scenario may cover any subset of the distribution.
	unit := func(module string) (*vis.Expansion, error) {
		if e, ok := expansions[module]; ok {
			return e, nil
		}
		m, err := d.Module(module)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %s", s.Name)
		}
		cfg := vis.Normalize(s.Config.Build, s.Config.Platform, s.Config.Roles[module], s.Config.Compiler)
		e := vis.NewExpansion(m.Tokens(), cfg)
		expansions[module] = e
		return e, nil
	}

	for _, p := range s.Predefines {
		e, err := unit(p.Module)
		if err != nil {
			return nil, err
		}
		if err := e.Predefine(p.Token, p.Value); err != nil {
			return nil, errors.Wrapf(err, "scenario %s", s.Name)
		}
	}

	report := &Report{}

	for _, exp := range s.Expects {
		e, err := unit(exp.Module)
		if err != nil {
			return nil, err
		}
		e.Apply()

		got, bound := e.Lookup(exp.Token)
		if !bound {
			return nil, errors.Wrapf(vis.ErrUnknownToken,
				"scenario %s: token %q, module %q", s.Name, exp.Token, exp.Module)
		}
		report.Outcomes = append(report.Outcomes, Outcome{
			Scenario: s.Name,
			Kind:     KindExpansion,
			Module:   exp.Module,
			Subject:  exp.Token,
			Want:     exp.Value,
			Got:      got,
			Passed:   got == exp.Value,
		})
	}

	for _, rw := range s.Rewrites {
		e, err := unit(rw.Module)
		if err != nil {
			return nil, err
		}
		e.Apply()

		got := e.RewriteDecl(rw.Decl)
		report.Outcomes = append(report.Outcomes, Outcome{
			Scenario: s.Name,
			Kind:     KindRewrite,
			Module:   rw.Module,
			Subject:  rw.Decl,
			Want:     rw.Want,
			Got:      got,
			Passed:   got == rw.Want,
		})
	}

	logger.Debugw("ran probe scenario",
		"scenario", s.Name,
		"checks", len(report.Outcomes),
		"failed", report.Failed())
	return report, nil
}

// RunAll evaluates several scenarios and merges their outcomes.
func RunAll(d *dist.Distribution, scenarios []*Scenario) (*Report, error) {
	merged := &Report{}
	for _, s := range scenarios {
		report, err := Run(d, s)
		if err != nil {
			return nil, err
		}
		merged.Outcomes = append(merged.Outcomes, report.Outcomes...)
	}
	return merged, nil
}
