package service

import (
	"errors"
	"time"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"

	"gorm.io/gorm"
)

type MessageStore interface {
	Create(msg *model.Message) error
	ListByMatch(matchID string) ([]model.Message, error)
	MarkInboundRead(matchID string, readerID uint, readAt time.Time) (int64, error)
	GetByIDsWithMatch(ids []string) ([]model.Message, error)
	MarkReadByIDs(ids []string, readAt time.Time) (int64, error)
	LastMessage(matchID string) (*model.Message, error)
	CountUnread(matchID string, readerID uint) (int64, error)
}

// MessageService 是消息门禁：只有 matched 状态的匹配才允许收发，
// 读未读状态的迁移也集中在这里。
type MessageService struct {
	Messages  MessageStore
	Matches   MatchStore
	Ownership OwnershipResolver
}

func NewMessageService(messages MessageStore, matches MatchStore, ownership OwnershipResolver) *MessageService {
	return &MessageService{
		Messages:  messages,
		Matches:   matches,
		Ownership: ownership,
	}
}

// authorizeMatch 取出匹配并校验请求者是其中一方的主人。
// 未参与的匹配按不存在处理，不泄露记录存在性。
func (s *MessageService) authorizeMatch(requesterID uint, matchID string) (*model.Match, error) {
	m, err := s.Matches.GetByID(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMatchNotFound
		}
		return nil, err
	}

	owns, err := s.Ownership.OwnsAny(requesterID, m.Dog1ID, m.Dog2ID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, util.ErrMatchNotFound
	}
	return m, nil
}

// Send 在 matched 状态的匹配里发一条消息，新消息始终未读
func (s *MessageService) Send(requesterID uint, matchID, content string) (*model.Message, error) {
	m, err := s.authorizeMatch(requesterID, matchID)
	if err != nil {
		return nil, err
	}

	if m.Status != model.MatchMatched {
		return nil, util.ErrMatchNotActive
	}

	msg := &model.Message{
		MatchID:  matchID,
		SenderID: requesterID,
		Content:  content,
	}
	if err := s.Messages.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Fetch 返回匹配内按时间升序的全部消息。副作用：所有对方发来的
// 未读消息被一次性置为已读——查看会话即确认收到，返回值里同步
// 带上新的已读时间。
func (s *MessageService) Fetch(requesterID uint, matchID string) ([]model.Message, error) {
	if _, err := s.authorizeMatch(requesterID, matchID); err != nil {
		return nil, err
	}

	msgs, err := s.Messages.ListByMatch(matchID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	n, err := s.Messages.MarkInboundRead(matchID, requesterID, now)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		for i := range msgs {
			if msgs[i].SenderID != requesterID && msgs[i].ReadAt == nil {
				t := now
				msgs[i].ReadAt = &t
			}
		}
	}
	return msgs, nil
}

// MarkRead 批量置已读。任意一条消息的匹配不涉及请求者的狗即整体拒绝；
// 已读的行不再更新，重复调用幂等。
func (s *MessageService) MarkRead(requesterID uint, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	msgs, err := s.Messages.GetByIDsWithMatch(messageIDs)
	if err != nil {
		return err
	}

	owned, err := s.Ownership.DogIDsOwnedBy(requesterID)
	if err != nil {
		return err
	}
	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}

	for i := range msgs {
		if !ownedSet[msgs[i].Match.Dog1ID] && !ownedSet[msgs[i].Match.Dog2ID] {
			return util.ErrPermissionDenied
		}
	}

	_, err = s.Messages.MarkReadByIDs(messageIDs, time.Now())
	return err
}

// Conversations 会话列表投影：每条匹配一条摘要，无论有没有消息
func (s *MessageService) Conversations(requesterID uint) ([]model.ConversationSummary, error) {
	dogIDs, err := s.Ownership.DogIDsOwnedBy(requesterID)
	if err != nil {
		return nil, err
	}

	matches, err := s.Matches.ListForDogs(dogIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.ConversationSummary, 0, len(matches))
	for i := range matches {
		m := &matches[i]

		myDog, otherDog := m.Dog1, m.Dog2
		if m.Dog2.OwnerID == requesterID && m.Dog1.OwnerID != requesterID {
			myDog, otherDog = m.Dog2, m.Dog1
		}

		summary := model.ConversationSummary{
			MatchID: m.ID,
			Status:  m.Status,
			OtherUser: model.ConversationUser{
				ID:              otherDog.OwnerID,
				FirstName:       otherDog.Owner.FirstName,
				LastName:        otherDog.Owner.LastName,
				ProfileImageURL: otherDog.Owner.ProfileImageURL,
			},
			OtherDog: model.ConversationDog{
				ID:    otherDog.ID,
				Name:  otherDog.Name,
				Breed: otherDog.Breed,
				Age:   otherDog.Age,
			},
			MyDog: model.ConversationMyDog{
				ID:   myDog.ID,
				Name: myDog.Name,
			},
		}
		if len(otherDog.ImageURLs) > 0 {
			summary.OtherDog.ImageURL = otherDog.ImageURLs[0]
		}

		last, err := s.Messages.LastMessage(m.ID)
		if err == nil {
			summary.LastMessage = &model.ConversationLastMessage{
				ID:       last.ID,
				Content:  last.Content,
				SentAt:   last.CreatedAt,
				IsFromMe: last.SenderID == requesterID,
				Read:     last.ReadAt != nil,
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		unread, err := s.Messages.CountUnread(m.ID, requesterID)
		if err != nil {
			return nil, err
		}
		summary.UnreadCount = unread

		summaries = append(summaries, summary)
	}
	return summaries, nil
}
