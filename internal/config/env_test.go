package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("BLIMP_TEST_HOST", "example.org")
	if got := GetEnv("BLIMP_TEST_HOST", "localhost"); got != "example.org" {
		t.Fatalf("GetEnv = %q", got)
	}
	if got := GetEnv("BLIMP_TEST_UNSET", "localhost"); got != "localhost" {
		t.Fatalf("GetEnv fallback = %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"30", 30},
		{"-2", -2},
		{"fast", 50},
		{"", 50},
	}
	for _, tt := range tests {
		t.Setenv("BLIMP_TICK_RATE", tt.value)
		if got := GetEnvInt("BLIMP_TICK_RATE", 50); got != tt.want {
			t.Errorf("GetEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
	if got := GetEnvInt("BLIMP_TEST_UNSET", 7); got != 7 {
		t.Errorf("unset GetEnvInt = %d", got)
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("BLIMP_SEED", "9007199254740993")
	if got := GetEnvInt64("BLIMP_SEED", 0); got != 9007199254740993 {
		t.Fatalf("GetEnvInt64 = %d", got)
	}
	t.Setenv("BLIMP_SEED", "0x10")
	if got := GetEnvInt64("BLIMP_SEED", 3); got != 3 {
		t.Fatalf("GetEnvInt64 fallback = %d", got)
	}
}
