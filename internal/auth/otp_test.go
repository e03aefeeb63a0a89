package auth

import (
	"regexp"
	"testing"
)

func TestGenerateOTP_Format(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 1000; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP error: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("code %q is not a 6-digit zero-padded string", code)
		}
	}
}
