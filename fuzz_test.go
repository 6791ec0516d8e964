package aegis

import "testing"

// FuzzScan seeds the corpus with real attack vectors and edge cases drawn
// from the rule tables, then asserts the scanner never panics and is
// deterministic for any input it is given.
func FuzzScan(f *testing.F) {
	seeds := []string{
		"config.json",
		"app/config.yaml",
		".gitignore",
		"configs/database/prod.json",

		"../../../etc/passwd",
		"..\\..\\..\\windows\\system32\\config\\sam",
		"../../../../root/.ssh/id_rsa",

		"%2e%2e/%2e%2e/etc/passwd",
		"%252e%252e/etc/passwd",
		"..%2fetc%2fpasswd",
		"config%00.txt",

		"CON",
		"PRN.txt",
		"COM1.log",
		"file.txt::$DATA",
		"config.json:$DATA",

		"/etc/passwd",
		"/proc/self/mem",
		"/sys/kernel/debug",
		"C:\\Windows\\System32\\config\\SAM",

		"config with spaces.json",
		"config-with-dashes.json",
		"config.with.dots.json",
		"",
		"   ",
		"a?b*c",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		err1 := scan(input, groupRoots, nil)
		err2 := scan(input, groupRoots, nil)
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("scan(%q) is not deterministic", input)
		}
	})
}

// FuzzNameCheck asserts NameCheck never panics on arbitrary input.
func FuzzNameCheck(f *testing.F) {
	for _, s := range []string{"", "a", "my-project", "CON", "-leading", "trailing_", "ok_name-1"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		_, _ = NameCheck(input)
	})
}

// FuzzFileNameCheck asserts FileNameCheck never panics on arbitrary input.
func FuzzFileNameCheck(f *testing.F) {
	for _, s := range []string{"", ".", "..", "report.pdf", "file.txt::$DATA", "CON.log"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		_, _ = FileNameCheck(input)
	})
}
