package validate

import (
	"strings"
	"testing"
)

func TestUsernameNormalization(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Loja_Demo", "loja_demo"},
		{"  maria.silva!  ", "mariasilva"},
		{"JOÃO", "joo"},
		{"user-name_99", "username_99"},
		{"", ""},
		{"___", "___"},
		{"averyverylongusernamethatgoeson", "averyverylongusernam"}, // capped at 20
	}
	for _, tc := range cases {
		if got := Username(tc.in); got != tc.want {
			t.Errorf("Username(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUsernameOutputAlphabet(t *testing.T) {
	// For arbitrary input the output must be lower-case, in [a-z0-9_], and
	// at most MaxUsernameLen long.
	inputs := []string{
		"Olá Mundo", "DROP TABLE;--", "ção_çedilha", "🛍️emoji🛍️", "A B\tC\nD",
		strings.Repeat("Xy9_", 50),
	}
	for _, in := range inputs {
		got := Username(in)
		if len(got) > MaxUsernameLen {
			t.Errorf("Username(%q) length %d exceeds %d", in, len(got), MaxUsernameLen)
		}
		for _, r := range got {
			if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_') {
				t.Errorf("Username(%q) contains %q outside the allowed alphabet", in, r)
			}
		}
		if got != "" && !UsernameValid(got) {
			t.Errorf("UsernameValid(%q) = false for normalizer output", got)
		}
	}
}

func TestPhoneKeepsEveryDigit(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"(11) 99999-8888", "11999998888"},
		{"+55 11 9 9999 8888", "5511999998888"},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got := Phone(tc.in)
		if got != tc.want {
			t.Errorf("Phone(%q) = %q, want %q", tc.in, got, tc.want)
		}
		digits := 0
		for _, r := range tc.in {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if len(got) != digits {
			t.Errorf("Phone(%q) length %d, want digit count %d", tc.in, len(got), digits)
		}
	}
}

func TestPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"49.90", "49.90", true},
		{"49,90", "49.90", true},
		{" 10 ", "10", true},
		{"0", "0", true},
		{"-5", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Price(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Price(%q) = (%q,%v), want (%q,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEmail(t *testing.T) {
	if _, ok := Email("seller@example.com"); !ok {
		t.Error("valid email rejected")
	}
	for _, bad := range []string{"", "not-an-email", "a@b", "@x.com"} {
		if _, ok := Email(bad); ok {
			t.Errorf("Email(%q) accepted", bad)
		}
	}
}

func TestPassword(t *testing.T) {
	if Password("12345") {
		t.Error("5-char password accepted")
	}
	if !Password("123456") {
		t.Error("6-char password rejected")
	}
	if Password(strings.Repeat("x", 73)) {
		t.Error("over-72-byte password accepted")
	}
}
