package service

import (
	"errors"
	"testing"
	"time"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"
)

func newPlaydateFixture() (*PlaydateService, *fakeMatchStore, *fakePlaydateStore) {
	ownership := newFakeOwnership()
	ownership.dogsByUser[1] = []string{"dog-a"}
	ownership.dogsByUser[2] = []string{"dog-b"}

	matches := newFakeMatchStore()
	matches.add(&model.Match{UUIDBase: model.UUIDBase{ID: "match-1"}, Dog1ID: "dog-a", Dog2ID: "dog-b", Status: model.MatchMatched})

	playdates := newFakePlaydateStore(matches)
	return NewPlaydateService(playdates, matches, ownership), matches, playdates
}

func TestPlaydateCreateByEitherParty(t *testing.T) {
	svc, _, _ := newPlaydateFixture()
	in := PlaydateInput{
		MatchID:       "match-1",
		ScheduledTime: time.Now().Add(24 * time.Hour),
		Latitude:      40.73,
		Longitude:     -73.99,
		LocationName:  "Dog Run",
	}

	p, err := svc.Create(1, in)
	if err != nil {
		t.Fatalf("Create by dog1 owner: %v", err)
	}
	if p.Status != model.PlaydateScheduled {
		t.Fatalf("status = %s, want scheduled", p.Status)
	}
	if p.CreatedBy != 1 {
		t.Fatalf("created_by = %d", p.CreatedBy)
	}

	if _, err := svc.Create(2, in); err != nil {
		t.Fatalf("Create by dog2 owner: %v", err)
	}
}

func TestPlaydateCreateRejectsOutsider(t *testing.T) {
	svc, _, _ := newPlaydateFixture()

	_, err := svc.Create(9, PlaydateInput{MatchID: "match-1", ScheduledTime: time.Now()})
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}

	_, err = svc.Create(1, PlaydateInput{MatchID: "match-x", ScheduledTime: time.Now()})
	if !errors.Is(err, util.ErrMatchNotFound) {
		t.Fatalf("err = %v, want ErrMatchNotFound", err)
	}
}

func TestPlaydateUpdateByEitherParty(t *testing.T) {
	svc, _, _ := newPlaydateFixture()

	p, err := svc.Create(1, PlaydateInput{MatchID: "match-1", ScheduledTime: time.Now()})
	if err != nil {
		t.Fatal(err)
	}

	// 非创建者但属于匹配另一方，也可以改状态
	updated, err := svc.Update(2, p.ID, map[string]interface{}{"status": string(model.PlaydateCompleted)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != model.PlaydateCompleted {
		t.Fatalf("status = %s, want completed", updated.Status)
	}

	if _, err := svc.Update(9, p.ID, map[string]interface{}{"notes": "x"}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("outsider err = %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.Update(1, "playdate-x", map[string]interface{}{"notes": "x"}); !errors.Is(err, util.ErrPlaydateNotFound) {
		t.Fatalf("missing err = %v, want ErrPlaydateNotFound", err)
	}
}

func TestPlaydateListScopedToOwnDogs(t *testing.T) {
	svc, matches, _ := newPlaydateFixture()
	matches.add(&model.Match{UUIDBase: model.UUIDBase{ID: "match-2"}, Dog1ID: "dog-x", Dog2ID: "dog-y", Status: model.MatchMatched})

	if _, err := svc.Create(1, PlaydateInput{MatchID: "match-1", ScheduledTime: time.Now()}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.List(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	got, err = svc.List(9)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("outsider list len = %d, want 0", len(got))
	}
}
