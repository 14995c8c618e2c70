package database

import (
	"github.com/hngvu/payfastacy/internal/config"
	"github.com/hngvu/payfastacy/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(cfg.Database, logger)
}
