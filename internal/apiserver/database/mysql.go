package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/snezamha/cms-core/internal/common/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// MySQL implements the Database interface using MySQL
type MySQL struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// NewMySQL creates a new MySQL instance
func NewMySQL(cfg *config.DatabaseConfig) (Database, error) {
	db := &MySQL{
		cfg: cfg,
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		db.cfg.User, db.cfg.Password, db.cfg.Host, db.cfg.Port, db.cfg.DBName)

	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gormDB.AutoMigrate(&User{}, &SettingsGeneral{}, &SettingsAppearance{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db.db = gormDB
	return db, nil
}

// Close closes the database connection
func (db *MySQL) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes the given function within a transaction
func (db *MySQL) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := TransactionFromContext(ctx); tx != nil {
		return fn(ctx)
	}
	return db.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTransaction(ctx, tx))
	})
}

func (db *MySQL) GetUserByExternalID(ctx context.Context, externalID string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, db.db).Where("external_id = ?", externalID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *MySQL) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	err := getDBFromContext(ctx, db.db).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *MySQL) CreateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, db.db).Create(user).Error
}

func (db *MySQL) UpdateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, db.db).Save(user).Error
}

func (db *MySQL) DeleteUser(ctx context.Context, id uint) error {
	return getDBFromContext(ctx, db.db).Delete(&User{}, id).Error
}

func (db *MySQL) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := getDBFromContext(ctx, db.db).Order("id desc").Find(&users).Error
	return users, err
}

func (db *MySQL) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, db.db).Model(&User{}).Count(&count).Error
	return count, err
}

func (db *MySQL) CountUsersByRole(ctx context.Context, role UserRole) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, db.db).Model(&User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (db *MySQL) FirstUser(ctx context.Context) (*User, error) {
	var user User
	err := getDBFromContext(ctx, db.db).Order("id asc").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *MySQL) GetSettingsGeneral(ctx context.Context) (*SettingsGeneral, error) {
	var settings SettingsGeneral
	err := getDBFromContext(ctx, db.db).Order("id asc").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (db *MySQL) SaveSettingsGeneral(ctx context.Context, s *SettingsGeneral) error {
	return getDBFromContext(ctx, db.db).Save(s).Error
}

func (db *MySQL) GetSettingsAppearance(ctx context.Context) (*SettingsAppearance, error) {
	var settings SettingsAppearance
	err := getDBFromContext(ctx, db.db).Order("id asc").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (db *MySQL) SaveSettingsAppearance(ctx context.Context, s *SettingsAppearance) error {
	return getDBFromContext(ctx, db.db).Save(s).Error
}
