package id

import "testing"

func TestNUID(t *testing.T) {
	a := NUID.New()
	b := NUID.New()

	if a == "" || b == "" {
		t.Fatal("expected non-empty identifiers")
	}
	if a == b {
		t.Fatalf("expected unique identifiers, got %s twice", a)
	}
}

func TestUUID(t *testing.T) {
	a := UUID.New()
	b := UUID.New()

	if a == "" || b == "" {
		t.Fatal("expected non-empty identifiers")
	}
	if a == b {
		t.Fatalf("expected unique identifiers, got %s twice", a)
	}
}

func BenchmarkNUID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NUID.New()
	}
}

func BenchmarkUUID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = UUID.New()
	}
}
