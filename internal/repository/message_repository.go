package repository

import (
	"time"

	"paw_match_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(msg *model.Message) error {
	return r.DB.Create(msg).Error
}

func (r *MessageRepository) ListByMatch(matchID string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// MarkInboundRead 将某匹配下所有非本人发送且未读的消息置为已读，
// 返回实际更新的条数。一次调用一次批量转移。
func (r *MessageRepository) MarkInboundRead(matchID string, readerID uint, readAt time.Time) (int64, error) {
	res := r.DB.Model(&model.Message{}).
		Where("match_id = ? AND sender_id <> ? AND read_at IS NULL", matchID, readerID).
		Update("read_at", readAt)
	return res.RowsAffected, res.Error
}

// GetByIDsWithMatch 按 ID 批量取消息并带出所属匹配，用于 mark-read 的归属校验
func (r *MessageRepository) GetByIDsWithMatch(ids []string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.Preload("Match").Where("id IN ?", ids).Find(&msgs).Error
	return msgs, err
}

// MarkReadByIDs 批量置已读，只更新仍未读的行，重复调用是幂等的
func (r *MessageRepository) MarkReadByIDs(ids []string, readAt time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB.Model(&model.Message{}).
		Where("id IN ? AND read_at IS NULL", ids).
		Update("read_at", readAt)
	return res.RowsAffected, res.Error
}

// LastMessage 某匹配的最新一条消息，没有消息时返回 gorm.ErrRecordNotFound
func (r *MessageRepository) LastMessage(matchID string) (*model.Message, error) {
	var msg model.Message
	err := r.DB.Where("match_id = ?", matchID).
		Order("created_at DESC").
		First(&msg).Error
	return &msg, err
}

// CountUnread 某匹配下发送者不是 readerID 且未读的消息数
func (r *MessageRepository) CountUnread(matchID string, readerID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Message{}).
		Where("match_id = ? AND sender_id <> ? AND read_at IS NULL", matchID, readerID).
		Count(&count).Error
	return count, err
}
