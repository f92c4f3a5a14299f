package version

import (
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
		wantErr  bool
	}{
		{"older patch", "8.5.0", "8.5.1", -1, false},
		{"older minor", "8.5.0", "8.6.0", -1, false},
		{"older major", "7.0.0", "8.0.0", -1, false},
		{"equal", "8.5.3", "8.5.3", 0, false},
		{"newer", "8.6.0", "8.5.0", 1, false},
		{"v prefix", "v8.5.0", "8.5.1", -1, false},
		{"prerelease less than release", "8.5.0-rc.1", "8.5.0", -1, false},
		{"invalid first", "notaversion", "1.0.0", 0, true},
		{"invalid second", "1.0.0", "notaversion", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareVersions(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		constraint string
		want       bool
		wantErr    bool
	}{
		{"empty constraint", "1.0.0", "", true, false},
		{"meets minimum", "8.5.0", ">= 8.5.0", true, false},
		{"above minimum", "v8.7.2", ">= 8.5.0", true, false},
		{"below minimum", "8.4.9", ">= 8.5.0", false, false},
		{"range", "8.6.0", ">= 8.5.0, < 9.0.0", true, false},
		{"bad constraint", "8.6.0", ">>= nope", false, true},
		{"bad version", "latest", ">= 8.5.0", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Satisfies(tt.version, tt.constraint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.version, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestValidConstraint(t *testing.T) {
	if err := ValidConstraint(">= 8.5.0"); err != nil {
		t.Errorf("ValidConstraint(>= 8.5.0) error: %v", err)
	}
	if err := ValidConstraint("not a constraint!"); err == nil {
		t.Error("expected error for invalid constraint")
	}
}

func TestValid(t *testing.T) {
	for _, v := range []string{"8.5.0", "v8.6.2", "9.0.0-rc.1"} {
		if err := Valid(v); err != nil {
			t.Errorf("Valid(%q) error: %v", v, err)
		}
	}
	for _, v := range []string{"", "latest", "8.x.y"} {
		if err := Valid(v); err == nil {
			t.Errorf("Valid(%q) expected error", v)
		}
	}
}
