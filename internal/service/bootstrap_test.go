package service

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestDefaultNameFromEmail(t *testing.T) {
	if got := DefaultName("jane.doe@x.com"); got != "jane.doe" {
		t.Errorf("DefaultName = %q, want %q", got, "jane.doe")
	}
}

func TestDefaultNameEmptyLocalPart(t *testing.T) {
	// "@x.com" must not become the display name verbatim
	re := regexp.MustCompile(`^Intern #\d{4}$`)
	if got := DefaultName("@x.com"); !re.MatchString(got) {
		t.Errorf("DefaultName(%q) = %q, want a placeholder", "@x.com", got)
	}
}

func TestDefaultNamePlaceholder(t *testing.T) {
	re := regexp.MustCompile(`^Intern #(\d{4})$`)

	for i := 0; i < 100; i++ {
		name := DefaultName("")
		m := re.FindStringSubmatch(name)
		if m == nil {
			t.Fatalf("placeholder name %q does not match Intern #NNNN", name)
		}
		n, _ := strconv.Atoi(m[1])
		if n < 1000 || n > 9999 {
			t.Fatalf("placeholder number %d out of range 1000-9999", n)
		}
	}
}

func TestGenerateReferralCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateReferralCode()
		if len(code) != 6 {
			t.Fatalf("code %q has length %d, want 6", code, len(code))
		}
		for _, c := range code {
			if !strings.ContainsRune(referralAlphabet, c) {
				t.Fatalf("code %q contains %q outside [A-Z0-9]", code, c)
			}
		}
	}
}
