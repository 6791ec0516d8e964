// path.go: PathCheck, the one entry point that touches the filesystem.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package aegis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Option configures a single PathCheck call. The zero value of every option
// is "use the default behaviour"; callers only reach for these when they
// need the Rule Group 7 override or rejection observability.
type Option func(*callOptions)

type callOptions struct {
	rootPolicy *RootPolicy
	auditor    *RejectionAuditor
}

// WithRootPolicy overrides Rule Group 7's strict default for this call. This
// is the one documented override point; see config.go.
func WithRootPolicy(policy RootPolicy) Option {
	return func(o *callOptions) { o.rootPolicy = &policy }
}

// WithAuditor attaches a RejectionAuditor that observes the outcome of this
// call, rejection or success. It never changes the outcome.
func WithAuditor(a *RejectionAuditor) Option {
	return func(o *callOptions) { o.auditor = a }
}

func applyOptions(opts []Option) *callOptions {
	co := &callOptions{}
	for _, opt := range opts {
		opt(co)
	}
	return co
}

func (co *callOptions) scanOptions() *scanOptions {
	return &scanOptions{rootPolicy: co.rootPolicy}
}

func (co *callOptions) record(entryPoint, input string, err error) {
	if co.auditor == nil {
		return
	}
	co.auditor.observe(entryPoint, input, err)
}

// PathCheck validates input against base and, on success, returns the
// canonical absolute path that input resolves to beneath base. base must
// already exist and is trusted: it is never run through the scanner.
//
// The filesystem is touched exactly once, in the canonicalisation step
// (Rule Group 8), and only for reads.
func PathCheck(input, base string, opts ...Option) (string, error) {
	co := applyOptions(opts)

	if err := scan(input, groupRoots, co.scanOptions()); err != nil {
		co.record("PathCheck", input, err)
		return "", err
	}

	canonicalBase, err := canonicalize(base)
	if err != nil {
		wrapped := newResourceError("base directory", base, err)
		co.record("PathCheck", input, wrapped)
		return "", wrapped
	}

	joined := filepath.Join(canonicalBase, input)

	canonicalFull, err := resolveExistingOrAncestor(joined)
	if err != nil {
		wrapped := newResourceError("target path", joined, err)
		co.record("PathCheck", input, wrapped)
		return "", wrapped
	}

	if !isComponentPrefix(canonicalBase, canonicalFull) {
		err := newRuleError(ContainmentErrorKind, "containment", fmt.Sprintf("%q escapes base %q", canonicalFull, canonicalBase))
		co.record("PathCheck", input, err)
		return "", err
	}

	co.record("PathCheck", input, nil)
	return canonicalFull, nil
}

func newResourceError(what, path string, cause error) error {
	return newRuleError(ResourceErrorKind, what, fmt.Sprintf("%q: %v", path, cause))
}

// canonicalize resolves path to an absolute, symlink-free form using the
// host's own resolution (filepath.EvalSymlinks after filepath.Abs), which is
// what "canonical form" means per the invariants in §3.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// resolveExistingOrAncestor implements Rule Group 8 step 3: if joined exists,
// canonicalise it outright. Otherwise walk up to the longest existing
// ancestor, canonicalise that, and reattach the non-existent tail.
func resolveExistingOrAncestor(joined string) (string, error) {
	if _, err := os.Lstat(joined); err == nil {
		return canonicalize(joined)
	}

	tail := []string{}
	cur := joined
	for {
		if _, err := os.Lstat(cur); err == nil {
			break
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("no existing ancestor for %q", joined)
		}
		tail = append([]string{filepath.Base(cur)}, tail...)
		cur = parent
	}

	canonicalAncestor, err := canonicalize(cur)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{canonicalAncestor}, tail...)...), nil
}

// isComponentPrefix reports whether full is base or a component-wise
// descendant of base. A byte-prefix comparison is not enough: "/a/b" must
// not match "/a/bc".
func isComponentPrefix(base, full string) bool {
	base = filepath.Clean(base)
	full = filepath.Clean(full)
	if base == full {
		return true
	}
	sep := string(filepath.Separator)
	if !strings.HasSuffix(base, sep) {
		base += sep
	}
	return strings.HasPrefix(full, base)
}
