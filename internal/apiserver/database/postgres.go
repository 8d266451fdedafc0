package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/snezamha/cms-core/internal/common/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Postgres implements the Database interface using PostgreSQL
type Postgres struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// NewPostgres creates a new Postgres instance
func NewPostgres(cfg *config.DatabaseConfig) (Database, error) {
	db := &Postgres{
		cfg: cfg,
	}

	gormDB, err := gorm.Open(postgres.Open(db.cfg.GetDSN()), &gorm.Config{})
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
func (db *Postgres) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes the given function within a transaction
func (db *Postgres) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := TransactionFromContext(ctx); tx != nil {
		return fn(ctx)
	}
	return db.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTransaction(ctx, tx))
	})
}

func (db *Postgres) GetUserByExternalID(ctx context.Context, externalID string) (*User, error) {
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

func (db *Postgres) GetUserByID(ctx context.Context, id uint) (*User, error) {
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

func (db *Postgres) CreateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, db.db).Create(user).Error
}

func (db *Postgres) UpdateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, db.db).Save(user).Error
}

func (db *Postgres) DeleteUser(ctx context.Context, id uint) error {
	return getDBFromContext(ctx, db.db).Delete(&User{}, id).Error
}

func (db *Postgres) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := getDBFromContext(ctx, db.db).Order("id desc").Find(&users).Error
	return users, err
}

func (db *Postgres) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, db.db).Model(&User{}).Count(&count).Error
	return count, err
}

func (db *Postgres) CountUsersByRole(ctx context.Context, role UserRole) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, db.db).Model(&User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (db *Postgres) FirstUser(ctx context.Context) (*User, error) {
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

func (db *Postgres) GetSettingsGeneral(ctx context.Context) (*SettingsGeneral, error) {
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

func (db *Postgres) SaveSettingsGeneral(ctx context.Context, s *SettingsGeneral) error {
	return getDBFromContext(ctx, db.db).Save(s).Error
}

func (db *Postgres) GetSettingsAppearance(ctx context.Context) (*SettingsAppearance, error) {
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

func (db *Postgres) SaveSettingsAppearance(ctx context.Context, s *SettingsAppearance) error {
	return getDBFromContext(ctx, db.db).Save(s).Error
}
