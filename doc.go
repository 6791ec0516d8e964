// Package aegis validates caller-supplied paths, project names, and bare
// filenames against a trusted base directory, so that applications which
// accept untrusted input (upload handlers, archive extractors, source-tree
// processors) have a single gate to call before ever touching the
// filesystem with it.
//
// # Philosophy: Validate, Never Sanitize
//
// A "sanitised" path carries the illusion of safety without a containment
// guarantee. Aegis never rewrites input into something it considers safe:
// it either proves the input is safe as given, or it rejects it with a
// specific attack-class error. There is no transform entry point.
//
// # Three Entry Points
//
//	canonical, err := aegis.PathCheck(userPath, "/var/app/uploads")
//	name, err := aegis.NameCheck(projectName)
//	file, err := aegis.FileNameCheck(uploadedFilename)
//
// PathCheck is the only one that touches the filesystem, and only to
// canonicalise the base directory and the input's existing ancestor (never
// to create, write, or follow a caller-chosen symlink policy).
//
// # Rule Groups
//
// Internally PathCheck and FileNameCheck run a shared Scanner over a fixed,
// ordered sequence of rule groups: whitespace and normalisation, protocol
// schemes, encoding attacks (URL, double-URL, overlong UTF-8, HTML entity,
// hex escapes), dangerous Unicode (zero-width, bidi override, homoglyphs,
// combining marks), structural traversal, Windows-style attacks applied on
// every host, and special system roots. PathCheck adds a final
// canonicalisation-and-containment group that is the only point where the
// scanner reads the filesystem.
//
//	result, err := aegis.PathCheck("user/../../etc/passwd", "/var/app/uploads")
//	// aegis.KindOf(err) reports aegis.StructureErrorKind
//
// # Error Taxonomy
//
// Every rejection carries exactly one ErrorKind, built with
// github.com/agilira/go-errors so the kind survives a type assertion to
// errors.ErrorCoder:
//
//	if kind, ok := aegis.KindOf(err); ok {
//		switch kind {
//		case aegis.ContainmentErrorKind:
//			// escape attempt
//		}
//	}
//
// # Optional Rejection Auditing
//
// Callers that want a record of what aegis blocked (not a hook into the
// decision itself, just an observation of it) can attach a
// RejectionAuditor. It buffers events with cached timestamps
// (github.com/agilira/go-timecache) and flushes them as tamper-evident
// JSONL. A separate SQLiteAuditStore can persist RejectionEvents handed to
// its Write method; the auditor does not write to it by itself:
//
//	auditor, _ := aegis.NewRejectionAuditor(aegis.DefaultAuditConfig())
//	defer auditor.Close()
//	_, err := aegis.PathCheck(input, base, aegis.WithAuditor(auditor))
//
// # Root Policy Override
//
// Special-root rejection (/proc, /etc, C:\Windows, …) is strict by
// default. The one documented extension point is a YAML file that can permit
// temp roots (/tmp, /var/tmp, C:\Temp); every other special root stays
// forbidden whatever the policy says:
//
//	policy, _ := aegis.LoadRootPolicy("aegis-roots.yaml")
//	result, err := aegis.PathCheck(input, base, aegis.WithRootPolicy(policy))
//
// No other configuration surface exists: no environment variables, no
// other file format, nothing read at init time.
//
// # Command-Line Wrapper
//
// cmd/aegis is a thin github.com/agilira/orpheus-powered CLI around the
// three entry points, for use in shell pipelines and CI checks:
//
//	aegis check --base /var/app/uploads -- "user/../../etc/passwd"
//	aegis name -- "my-project"
//	aegis filename -- "report.pdf"
//
// Repository: https://github.com/agilira/aegis
package aegis
