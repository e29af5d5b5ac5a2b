package service

import "testing"

type stubOwnershipStore struct {
	byOwner map[uint][]string
	calls   int
}

func (s *stubOwnershipStore) GetOwnedDogIDsCached(ownerID uint) ([]string, error) {
	s.calls++
	return s.byOwner[ownerID], nil
}

func TestOwnsAny(t *testing.T) {
	store := &stubOwnershipStore{byOwner: map[uint][]string{
		1: {"dog-a", "dog-b"},
		2: {},
	}}
	svc := NewOwnershipService(store)

	cases := []struct {
		name   string
		userID uint
		dogIDs []string
		want   bool
	}{
		{"owns one of two", 1, []string{"dog-x", "dog-b"}, true},
		{"owns none", 1, []string{"dog-x", "dog-y"}, false},
		{"no dogs at all", 2, []string{"dog-a"}, false},
		{"empty candidates", 1, nil, false},
	}

	for _, tc := range cases {
		got, err := svc.OwnsAny(tc.userID, tc.dogIDs...)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: OwnsAny = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDogIDsOwnedByDelegatesToStore(t *testing.T) {
	store := &stubOwnershipStore{byOwner: map[uint][]string{1: {"dog-a"}}}
	svc := NewOwnershipService(store)

	ids, err := svc.DogIDsOwnedBy(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "dog-a" {
		t.Fatalf("ids = %v", ids)
	}
	if store.calls != 1 {
		t.Fatalf("store calls = %d, want 1", store.calls)
	}
}
