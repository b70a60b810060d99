package testutil

import "testing"

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(10, 3)
	if len(r) != 3 || r[0] != 10 || r[2] != 12 {
		t.Fatalf("Ramp(10, 3) = %v", r)
	}
}

func TestClassRowsSeparated(t *testing.T) {
	c0 := ClassRows(7, 0, 4, 3)
	c1 := ClassRows(7, 1, 4, 3)
	if len(c0) != 12 || len(c1) != 12 {
		t.Fatalf("len = %d/%d, want 12", len(c0), len(c1))
	}
	for i := range c1 {
		if c1[i] < 8 {
			t.Fatalf("class 1 value %v not shifted", c1[i])
		}
	}
}
