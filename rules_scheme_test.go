package aegis

import "testing"

func TestCheckProtocolScheme(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"user/doc.pdf", false},
		{"file:///etc/passwd", true},
		{"HTTP://evil.example/x", true},
		{"data:text/plain;base64,xx", true},
		{"smb://server/share", true},
		{"notascheme:but/has/colon/deep/in/path", false},
	}
	for _, tt := range tests {
		err := checkProtocolScheme(tt.input, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkProtocolScheme(%q) err=%v, wantErr=%v", tt.input, err, tt.wantErr)
		}
	}
}
