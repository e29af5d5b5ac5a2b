package service

import (
	"errors"
	"testing"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"
)

// 固定场景：用户 1 拥有 dog-a，用户 2 拥有 dog-b，两狗已 matched
func newMessageFixture() (*MessageService, *fakeMatchStore, *fakeMessageStore, *model.Match) {
	ownership := newFakeOwnership()
	ownership.dogsByUser[1] = []string{"dog-a"}
	ownership.dogsByUser[2] = []string{"dog-b"}
	ownership.dogsByUser[3] = []string{"dog-c"}

	matches := newFakeMatchStore()
	m := matches.add(&model.Match{
		Dog1ID: "dog-a",
		Dog1:   model.Dog{UUIDBase: model.UUIDBase{ID: "dog-a"}, OwnerID: 1, Name: "Rex", Breed: "Corgi", Age: 3},
		Dog2ID: "dog-b",
		Dog2:   model.Dog{UUIDBase: model.UUIDBase{ID: "dog-b"}, OwnerID: 2, Name: "Luna", Breed: "Husky", Age: 2},
		Status: model.MatchMatched,
	})

	messages := newFakeMessageStore(matches)
	return NewMessageService(messages, matches, ownership), matches, messages, m
}

func TestSendRequiresMatchedStatus(t *testing.T) {
	svc, matches, _, m := newMessageFixture()

	msg, err := svc.Send(1, m.ID, "hello")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.ReadAt != nil {
		t.Fatal("new message must start unread")
	}

	for _, status := range []model.MatchStatus{model.MatchPending, model.MatchRejected, model.MatchBlocked} {
		matches.byID[m.ID].Status = status
		if _, err := svc.Send(1, m.ID, "hello"); !errors.Is(err, util.ErrMatchNotActive) {
			t.Errorf("status %s: err = %v, want ErrMatchNotActive", status, err)
		}
	}
}

func TestSendHidesForeignMatch(t *testing.T) {
	svc, _, _, m := newMessageFixture()

	// 局外人拿不到 403，统一按 404 处理
	if _, err := svc.Send(3, m.ID, "hi"); !errors.Is(err, util.ErrMatchNotFound) {
		t.Fatalf("err = %v, want ErrMatchNotFound", err)
	}
	if _, err := svc.Fetch(3, m.ID); !errors.Is(err, util.ErrMatchNotFound) {
		t.Fatalf("fetch err = %v, want ErrMatchNotFound", err)
	}
}

func TestFetchMarksInboundRead(t *testing.T) {
	svc, _, messages, m := newMessageFixture()

	if _, err := svc.Send(1, m.ID, "from one"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Send(2, m.ID, "from two"); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Fetch(1, m.ID)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	// 对方发的那条在返回值和存储里都应变为已读，自己发的保持原状
	for _, msg := range got {
		if msg.SenderID == 1 && msg.ReadAt != nil {
			t.Error("own message should stay unread for the sender")
		}
		if msg.SenderID == 2 && msg.ReadAt == nil {
			t.Error("inbound message should be marked read in the response")
		}
	}
	unread, _ := messages.CountUnread(m.ID, 1)
	if unread != 0 {
		t.Fatalf("unread after fetch = %d, want 0", unread)
	}

	// 再查一次是幂等的
	if _, err := svc.Fetch(1, m.ID); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
}

func TestMarkReadRejectsForeignMessages(t *testing.T) {
	svc, matches, messages, m := newMessageFixture()

	if _, err := svc.Send(2, m.ID, "for user one"); err != nil {
		t.Fatal(err)
	}

	// 另一条匹配，用户 1 不在其中
	other := matches.add(&model.Match{Dog1ID: "dog-b", Dog2ID: "dog-c", Status: model.MatchMatched})
	foreign := &model.Message{MatchID: other.ID, SenderID: 3, Content: "not yours"}
	if err := messages.Create(foreign); err != nil {
		t.Fatal(err)
	}

	mine, _ := messages.ListByMatch(m.ID)
	ids := []string{mine[0].ID, foreign.ID}

	// 混入一条无权的消息导致整体拒绝，任何一条都不置读
	if err := svc.MarkRead(1, ids); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
	mine, _ = messages.ListByMatch(m.ID)
	if mine[0].ReadAt != nil {
		t.Fatal("rejected batch must not mark anything read")
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, _, messages, m := newMessageFixture()

	if _, err := svc.Send(2, m.ID, "one"); err != nil {
		t.Fatal(err)
	}
	msgs, _ := messages.ListByMatch(m.ID)
	ids := []string{msgs[0].ID}

	if err := svc.MarkRead(1, ids); err != nil {
		t.Fatalf("first MarkRead: %v", err)
	}
	msgs, _ = messages.ListByMatch(m.ID)
	firstReadAt := msgs[0].ReadAt
	if firstReadAt == nil {
		t.Fatal("message not marked read")
	}

	if err := svc.MarkRead(1, ids); err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	msgs, _ = messages.ListByMatch(m.ID)
	if !msgs[0].ReadAt.Equal(*firstReadAt) {
		t.Fatal("repeated MarkRead must not move read_at")
	}

	if err := svc.MarkRead(1, nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}

func TestConversationsProjection(t *testing.T) {
	svc, _, _, m := newMessageFixture()

	if _, err := svc.Send(2, m.ID, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Send(2, m.ID, "second"); err != nil {
		t.Fatal(err)
	}

	convs, err := svc.Conversations(1)
	if err != nil {
		t.Fatalf("Conversations: %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("len = %d, want 1", len(convs))
	}

	c := convs[0]
	if c.MatchID != m.ID {
		t.Fatalf("match id = %s", c.MatchID)
	}
	if c.MyDog.ID != "dog-a" || c.OtherDog.ID != "dog-b" {
		t.Fatalf("dog sides wrong: my=%s other=%s", c.MyDog.ID, c.OtherDog.ID)
	}
	if c.OtherUser.ID != 2 {
		t.Fatalf("other user = %d, want 2", c.OtherUser.ID)
	}
	if c.UnreadCount != 2 {
		t.Fatalf("unread = %d, want 2", c.UnreadCount)
	}
	if c.LastMessage == nil || c.LastMessage.Content != "second" {
		t.Fatalf("last message = %+v", c.LastMessage)
	}
	if c.LastMessage.IsFromMe {
		t.Fatal("last message was sent by the other user")
	}

	// 对侧视角：同一条匹配，双方狗对调
	convs, err = svc.Conversations(2)
	if err != nil {
		t.Fatal(err)
	}
	if convs[0].MyDog.ID != "dog-b" || convs[0].OtherDog.ID != "dog-a" {
		t.Fatalf("dog sides wrong for user 2: %+v", convs[0].MyDog)
	}
	if convs[0].UnreadCount != 0 {
		t.Fatalf("sender's unread = %d, want 0", convs[0].UnreadCount)
	}
	if !convs[0].LastMessage.IsFromMe {
		t.Fatal("last message should be from user 2's side")
	}
}

func TestConversationsIncludeEmptyMatches(t *testing.T) {
	svc, _, _, _ := newMessageFixture()

	convs, err := svc.Conversations(1)
	if err != nil {
		t.Fatalf("Conversations: %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("len = %d, want 1", len(convs))
	}
	if convs[0].LastMessage != nil {
		t.Fatal("empty conversation must have nil last_message")
	}
	if convs[0].UnreadCount != 0 {
		t.Fatalf("unread = %d, want 0", convs[0].UnreadCount)
	}
}
