package model

import "testing"

func TestPairKeyCanonicalOrder(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want string
	}{
		{"ordered", "aaa", "bbb", "aaa:bbb"},
		{"reversed", "bbb", "aaa", "aaa:bbb"},
		{"uuid-like", "f47ac10b-58cc-4372-a567-0e02b2c3d479", "0e02b2c3-aaaa-4372-a567-f47ac10b58cc",
			"0e02b2c3-aaaa-4372-a567-f47ac10b58cc:f47ac10b-58cc-4372-a567-0e02b2c3d479"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PairKey(tc.a, tc.b); got != tc.want {
				t.Errorf("PairKey(%q, %q) = %q, want %q", tc.a, tc.b, got, tc.want)
			}
			// 两个方向必须落在同一个键
			if PairKey(tc.a, tc.b) != PairKey(tc.b, tc.a) {
				t.Errorf("PairKey is not symmetric for (%q, %q)", tc.a, tc.b)
			}
		})
	}
}

func TestMatchInvolvesAndOtherDog(t *testing.T) {
	m := &Match{Dog1ID: "dog-1", Dog2ID: "dog-2"}

	if !m.Involves("dog-1") || !m.Involves("dog-2") {
		t.Error("match should involve both of its dogs")
	}
	if m.Involves("dog-3") {
		t.Error("match should not involve an unrelated dog")
	}
	if got := m.OtherDogID("dog-1"); got != "dog-2" {
		t.Errorf("OtherDogID(dog-1) = %q, want dog-2", got)
	}
	if got := m.OtherDogID("dog-2"); got != "dog-1" {
		t.Errorf("OtherDogID(dog-2) = %q, want dog-1", got)
	}
}
