package database

import (
	"fmt"
	"log"

	"paw_match_backend/internal/config"
	"paw_match_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true, // 把驱动的唯一键冲突翻译成 gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表和索引。matches.pair_key 与 ratings 的三元组唯一索引
// 在这里落地，是并发防重的最终兜底。
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Dog{},
		&model.Match{},
		&model.Message{},
		&model.Playdate{},
		&model.Rating{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}
