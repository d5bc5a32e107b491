package errors

import "testing"

func TestValidateFormat(t *testing.T) {
	allowed := []string{"text", "json"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "exact", input: "text", want: "text"},
		{name: "upper case", input: "JSON", want: "json"},
		{name: "padded", input: "  json ", want: "json"},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFormat(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !Is(err, ErrCodeInvalidFormat) {
					t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ValidateFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSolutionIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		count    int
		want     int
		wantCode Code
	}{
		{name: "first", input: "1", count: 2, want: 0},
		{name: "last", input: "2", count: 2, want: 1},
		{name: "spaces", input: " 2 ", count: 2, want: 1},
		{name: "zero", input: "0", count: 2, wantCode: ErrCodeInvalidInput},
		{name: "negative", input: "-1", count: 2, wantCode: ErrCodeInvalidInput},
		{name: "too large", input: "3", count: 2, wantCode: ErrCodeNotFound},
		{name: "not a number", input: "abc", count: 2, wantCode: ErrCodeInvalidInput},
		{name: "empty set", input: "1", count: 0, wantCode: ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSolutionIndex(tt.input, tt.count)
			if tt.wantCode != "" {
				if !Is(err, tt.wantCode) {
					t.Fatalf("ParseSolutionIndex(%q, %d) error = %v, want code %v", tt.input, tt.count, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSolutionIndex(%q, %d) unexpected error: %v", tt.input, tt.count, err)
			}
			if got != tt.want {
				t.Errorf("ParseSolutionIndex(%q, %d) = %d, want %d", tt.input, tt.count, got, tt.want)
			}
		})
	}
}
