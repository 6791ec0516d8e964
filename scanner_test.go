package aegis

import "testing"

func TestScanOrderFailsFast(t *testing.T) {
	// " ../../../etc" both starts with whitespace (group 1) and contains
	// traversal (group 5). Group 1 must fire first.
	err := scan(" ../../../etc", groupRoots, nil)
	if err == nil {
		t.Fatal("expected rejection")
	}
	kind, ok := KindOf(err)
	if !ok || kind != WhitespaceErrorKind {
		t.Fatalf("expected WhitespaceErrorKind first, got %v", kind)
	}
}

func TestScanMaxGroupLimitsRules(t *testing.T) {
	// "/etc/passwd" is an absolute path (group 5) and also a special root
	// (group 7). Limiting to groupStructure should still catch it via group 5.
	err := scan("/etc/passwd", groupStructure, nil)
	if err == nil {
		t.Fatal("expected rejection at groupStructure")
	}
	kind, _ := KindOf(err)
	if kind != StructureErrorKind {
		t.Fatalf("expected StructureErrorKind, got %v", kind)
	}
}

func TestScanCleanInputPasses(t *testing.T) {
	if err := scan("user/document.pdf", groupRoots, nil); err != nil {
		t.Fatalf("expected clean input to pass, got %v", err)
	}
}

func TestScanRespectsRootPolicyOverride(t *testing.T) {
	policy := RootPolicy{AllowTempRoots: true}
	// A relative input: an absolute "/tmp/..." is rejected by group 5
	// before the root policy in group 7 is consulted.
	if err := scan("data/tmp/scratch", groupRoots, &scanOptions{rootPolicy: &policy}); err != nil {
		t.Fatalf("expected /tmp to be allowed under permissive policy, got %v", err)
	}
	if err := scan("data/tmp/scratch", groupRoots, nil); err == nil {
		t.Fatal("expected /tmp to be rejected under the default strict policy")
	}
}
