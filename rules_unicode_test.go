package aegis

import "testing"

func TestCheckDangerousUnicode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"clean", "user/document.pdf", false},
		{"zero width space", "report" + string(rune(0x200B)) + ".pdf", true},
		{"rtl override", "file" + string(rune(0x202E)) + "txt.exe", true},
		{"dot homoglyph", "a" + string(rune(0x2024)) + string(rune(0x2024)) + "/b", true},
		{"fullwidth dot", "a" + string(rune(0xFF0E)) + string(rune(0xFF0E)) + "/b", true},
		{"slash homoglyph", "a" + string(rune(0x2215)) + "etc", true},
		{"backslash homoglyph", "a" + string(rune(0x2216)) + "etc", true},
		{"currency homoglyph", "a" + string(rune(0x00A5)) + "etc", true},
		{"fullwidth ascii", "a" + string(rune(0xFF21)) + "b", true},
		{"wildcard question", "a?b", true},
		{"wildcard star", "a*b", true},
		{"combining mark after dot", "a." + string(rune(0x0301)) + "b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkDangerousUnicode(tt.input, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkDangerousUnicode(%q) err=%v, wantErr=%v", tt.input, err, tt.wantErr)
			}
		})
	}
}
