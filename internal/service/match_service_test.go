package service

import (
	"errors"
	"testing"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"
)

func newMatchFixture() (*MatchService, *fakeMatchStore, *fakeOwnership) {
	dogs := newFakeDogStore()
	dogs.add(&model.Dog{UUIDBase: model.UUIDBase{ID: "dog-a"}, OwnerID: 1, Name: "Rex"})
	dogs.add(&model.Dog{UUIDBase: model.UUIDBase{ID: "dog-b"}, OwnerID: 2, Name: "Luna"})
	dogs.add(&model.Dog{UUIDBase: model.UUIDBase{ID: "dog-c"}, OwnerID: 3, Name: "Max"})

	ownership := newFakeOwnership()
	ownership.dogsByUser[1] = []string{"dog-a"}
	ownership.dogsByUser[2] = []string{"dog-b"}
	ownership.dogsByUser[3] = []string{"dog-c"}

	matches := newFakeMatchStore()
	return NewMatchService(matches, dogs, ownership), matches, ownership
}

func TestRequestMatchCreatesPending(t *testing.T) {
	svc, _, _ := newMatchFixture()

	m, merged, err := svc.RequestMatch(1, "dog-a", "dog-b")
	if err != nil {
		t.Fatalf("RequestMatch: %v", err)
	}
	if merged {
		t.Fatal("expected new pending record, got merged")
	}
	if m.Status != model.MatchPending {
		t.Fatalf("status = %s, want pending", m.Status)
	}
	if m.PairKey != model.PairKey("dog-a", "dog-b") {
		t.Fatalf("pair key = %s", m.PairKey)
	}
}

func TestRequestMatchMergesReciprocalPending(t *testing.T) {
	svc, _, _ := newMatchFixture()

	first, _, err := svc.RequestMatch(1, "dog-a", "dog-b")
	if err != nil {
		t.Fatalf("first request: %v", err)
	}

	// 对方反向发起，应命中已有 pending 并升级为 matched
	m, merged, err := svc.RequestMatch(2, "dog-b", "dog-a")
	if err != nil {
		t.Fatalf("reciprocal request: %v", err)
	}
	if !merged {
		t.Fatal("expected merge into existing pending record")
	}
	if m.ID != first.ID {
		t.Fatalf("merged into %s, want %s", m.ID, first.ID)
	}
	if m.Status != model.MatchMatched {
		t.Fatalf("status = %s, want matched", m.Status)
	}
}

func TestRequestMatchDuplicateConflict(t *testing.T) {
	svc, _, _ := newMatchFixture()

	first, _, err := svc.RequestMatch(1, "dog-a", "dog-b")
	if err != nil {
		t.Fatalf("first request: %v", err)
	}

	// 同方向重复
	existing, _, err := svc.RequestMatch(1, "dog-a", "dog-b")
	if !errors.Is(err, util.ErrMatchExists) {
		t.Fatalf("err = %v, want ErrMatchExists", err)
	}
	if existing == nil || existing.ID != first.ID {
		t.Fatal("conflict should carry the existing record")
	}

	// 升级为 matched 之后，反向请求也算重复而不是再次合并
	if _, _, err := svc.RequestMatch(2, "dog-b", "dog-a"); err != nil {
		t.Fatalf("merge request: %v", err)
	}
	existing, _, err = svc.RequestMatch(1, "dog-a", "dog-b")
	if !errors.Is(err, util.ErrMatchExists) {
		t.Fatalf("err after merge = %v, want ErrMatchExists", err)
	}
	if existing.Status != model.MatchMatched {
		t.Fatalf("existing status = %s, want matched", existing.Status)
	}
}

func TestRequestMatchRejectsSelfPair(t *testing.T) {
	svc, _, _ := newMatchFixture()

	if _, _, err := svc.RequestMatch(1, "dog-a", "dog-a"); !errors.Is(err, util.ErrSelfMatch) {
		t.Fatalf("err = %v, want ErrSelfMatch", err)
	}
}

func TestRequestMatchRequiresOwnership(t *testing.T) {
	svc, _, _ := newMatchFixture()

	// 用户 3 不拥有 dog-a 也不拥有 dog-b
	if _, _, err := svc.RequestMatch(3, "dog-a", "dog-b"); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestRequestMatchUnknownDog(t *testing.T) {
	svc, _, _ := newMatchFixture()

	if _, _, err := svc.RequestMatch(1, "dog-a", "dog-x"); !errors.Is(err, util.ErrDogNotFound) {
		t.Fatalf("err = %v, want ErrDogNotFound", err)
	}
}

func TestUpdateStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    model.MatchStatus
		to      model.MatchStatus
		allowed bool
	}{
		{model.MatchPending, model.MatchRejected, true},
		{model.MatchPending, model.MatchBlocked, true},
		{model.MatchPending, model.MatchAccepted, false},
		{model.MatchPending, model.MatchMatched, false}, // 升级只经由对等请求合并
		{model.MatchMatched, model.MatchAccepted, true},
		{model.MatchMatched, model.MatchRejected, true},
		{model.MatchMatched, model.MatchPending, false},
		{model.MatchAccepted, model.MatchBlocked, true},
		{model.MatchRejected, model.MatchBlocked, true},
		{model.MatchRejected, model.MatchMatched, false},
		{model.MatchBlocked, model.MatchRejected, false},
	}

	for _, tc := range cases {
		svc, matches, _ := newMatchFixture()
		m := matches.add(&model.Match{Dog1ID: "dog-a", Dog2ID: "dog-b", Status: tc.from})

		updated, err := svc.UpdateStatus(1, m.ID, tc.to)
		if tc.allowed {
			if err != nil {
				t.Errorf("%s -> %s: unexpected err %v", tc.from, tc.to, err)
				continue
			}
			if updated.Status != tc.to {
				t.Errorf("%s -> %s: status = %s", tc.from, tc.to, updated.Status)
			}
		} else if !errors.Is(err, util.ErrInvalidTransition) {
			t.Errorf("%s -> %s: err = %v, want ErrInvalidTransition", tc.from, tc.to, err)
		}
	}
}

func TestUpdateStatusRequiresParticipant(t *testing.T) {
	svc, matches, _ := newMatchFixture()
	m := matches.add(&model.Match{Dog1ID: "dog-a", Dog2ID: "dog-b", Status: model.MatchPending})

	if _, err := svc.UpdateStatus(3, m.ID, model.MatchRejected); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestListMatchesScopedToOwnDogs(t *testing.T) {
	svc, matches, _ := newMatchFixture()
	matches.add(&model.Match{Dog1ID: "dog-a", Dog2ID: "dog-b", Status: model.MatchMatched})
	matches.add(&model.Match{Dog1ID: "dog-b", Dog2ID: "dog-c", Status: model.MatchPending})

	got, err := svc.ListMatches(1)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].Involves("dog-a") {
		t.Fatal("listed match does not involve the requester's dog")
	}
}
