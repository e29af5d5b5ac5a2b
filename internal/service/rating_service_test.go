package service

import (
	"errors"
	"testing"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"
)

func newRatingFixture(status model.PlaydateStatus) (*RatingService, *fakePlaydateStore, *model.Playdate) {
	ownership := newFakeOwnership()
	ownership.dogsByUser[1] = []string{"dog-a"}
	ownership.dogsByUser[2] = []string{"dog-b"}

	playdates := newFakePlaydateStore(nil)
	p := playdates.add(&model.Playdate{
		MatchID: "match-1",
		Match:   model.Match{UUIDBase: model.UUIDBase{ID: "match-1"}, Dog1ID: "dog-a", Dog2ID: "dog-b", Status: model.MatchMatched},
		Status:  status,
	})

	ratings := newFakeRatingStore()
	return NewRatingService(ratings, playdates, ownership), playdates, p
}

func TestRateCompletedPlaydate(t *testing.T) {
	svc, _, p := newRatingFixture(model.PlaydateCompleted)

	r, err := svc.Create(1, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-b", Rating: 5, Review: "great"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.RaterID != 1 || r.RatedDogID != "dog-b" {
		t.Fatalf("rating = %+v", r)
	}
}

func TestRateRequiresCompletedStatus(t *testing.T) {
	for _, status := range []model.PlaydateStatus{model.PlaydateScheduled, model.PlaydateCancelled} {
		svc, _, p := newRatingFixture(status)
		_, err := svc.Create(1, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-b", Rating: 4})
		if !errors.Is(err, util.ErrPlaydateNotCompleted) {
			t.Errorf("status %s: err = %v, want ErrPlaydateNotCompleted", status, err)
		}
	}
}

func TestRateRejectsDogOutsideMatch(t *testing.T) {
	svc, _, p := newRatingFixture(model.PlaydateCompleted)

	_, err := svc.Create(1, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-z", Rating: 4})
	if !errors.Is(err, util.ErrDogNotInPlaydate) {
		t.Fatalf("err = %v, want ErrDogNotInPlaydate", err)
	}
}

func TestRateRequiresOwningTheOtherDog(t *testing.T) {
	svc, _, p := newRatingFixture(model.PlaydateCompleted)

	// 用户 1 只拥有 dog-a，不能以 dog-a 为被评方自评
	if _, err := svc.Create(1, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-a", Rating: 4}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("self-side err = %v, want ErrPermissionDenied", err)
	}

	// 局外人完全无权
	if _, err := svc.Create(9, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-b", Rating: 4}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("outsider err = %v, want ErrPermissionDenied", err)
	}
}

func TestRateDuplicateTriple(t *testing.T) {
	svc, _, p := newRatingFixture(model.PlaydateCompleted)

	if _, err := svc.Create(1, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-b", Rating: 5}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(1, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-b", Rating: 3}); !errors.Is(err, util.ErrAlreadyRated) {
		t.Fatalf("err = %v, want ErrAlreadyRated", err)
	}

	// 对方给 dog-a 评分是另一个三元组，不冲突
	if _, err := svc.Create(2, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-a", Rating: 4}); err != nil {
		t.Fatalf("cross rating: %v", err)
	}
}

func TestRatingUpdateAndDeleteOnlyByRater(t *testing.T) {
	svc, _, p := newRatingFixture(model.PlaydateCompleted)

	r, err := svc.Create(1, RatingInput{PlaydateID: p.ID, RatedDogID: "dog-b", Rating: 5, Review: "ok"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Update(2, r.ID, map[string]interface{}{"rating": 1}); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("foreign update err = %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(2, r.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("foreign delete err = %v, want ErrPermissionDenied", err)
	}

	updated, err := svc.Update(1, r.ID, map[string]interface{}{"rating": 2, "review": "changed"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Rating != 2 || updated.Review != "changed" {
		t.Fatalf("updated = %+v", updated)
	}

	if err := svc.Delete(1, r.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(1, r.ID); !errors.Is(err, util.ErrRatingNotFound) {
		t.Fatalf("second delete err = %v, want ErrRatingNotFound", err)
	}
}
