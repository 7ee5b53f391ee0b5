package domain

import "testing"

func TestObjectKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want string
	}{
		{"plain", "report.pdf", "abc-report.pdf"},
		{"strips directories", "../../etc/passwd", "abc-passwd"},
		{"windows path", `C:\Users\ada\photo 1.jpg`, "abc-photo_1.jpg"},
		{"empty", "", "abc-file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ObjectKey("abc", tt.file); got != tt.want {
				t.Errorf("ObjectKey(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}
