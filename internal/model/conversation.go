package model

import "time"

// 会话列表的投影类型：按匹配聚合出“对方是谁、最后一条消息、未读数”。
// 纯读侧变换，每次请求重新计算，不落库。

type ConversationUser struct {
	ID              uint   `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

type ConversationDog struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Age      int    `json:"age"`
	ImageURL string `json:"image_url"`
}

type ConversationMyDog struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ConversationLastMessage struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
	IsFromMe bool      `json:"is_from_me"`
	Read     bool      `json:"read"`
}

// swagger:model ConversationSummary
type ConversationSummary struct {
	MatchID     string                   `json:"match_id"`
	Status      MatchStatus              `json:"status"`
	OtherUser   ConversationUser         `json:"other_user"`
	OtherDog    ConversationDog          `json:"other_dog"`
	MyDog       ConversationMyDog        `json:"my_dog"`
	LastMessage *ConversationLastMessage `json:"last_message"`
	UnreadCount int64                    `json:"unread_count"`
}
