package aegis

import "testing"

func TestCheckAbsolute(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"user/doc.pdf", false},
		{"/etc/passwd", true},
		{`C:\Windows\System32`, true},
		{"relative/C:odd", false},
		// \\server\share and //server/share are left to checkUNCDevice
		// (Rule Group 6), which reports them as a PlatformError.
		{`\\server\share`, false},
		{"//server/share", false},
	}
	for _, tt := range tests {
		err := checkAbsolute(tt.input, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkAbsolute(%q) err=%v, wantErr=%v", tt.input, err, tt.wantErr)
		}
	}
}

func TestCheckSeparatorManipulation(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"user/doc.pdf", false},
		{"a//b", true},
		{`a\\b`, true},
		{`a\/b`, true},
		{`a/\b`, true},
		{`a/..\b`, true},
	}
	for _, tt := range tests {
		err := checkSeparatorManipulation(tt.input, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkSeparatorManipulation(%q) err=%v, wantErr=%v", tt.input, err, tt.wantErr)
		}
	}
}

func TestCheckAlternativeSeparator(t *testing.T) {
	if err := checkAlternativeSeparator("a;b", nil); err == nil {
		t.Fatal("expected semicolon rejection")
	}
	if err := checkAlternativeSeparator("a/b", nil); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
}

func TestCheckAdvancedTraversal(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"user/doc.pdf", false},
		{"...", true},
		{"a. .b", true},
		{"a.\t.b", true},
		{"a.|.b", true},
		{"....//etc", true},
	}
	for _, tt := range tests {
		err := checkAdvancedTraversal(tt.input, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkAdvancedTraversal(%q) err=%v, wantErr=%v", tt.input, err, tt.wantErr)
		}
	}
}
