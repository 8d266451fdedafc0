package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/identity"
)

// SyncService mirrors identity-provider accounts into the local user
// table and keeps the super_admin invariant intact.
type SyncService struct {
	db     database.Database
	logger *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(db database.Database, logger *zap.Logger) *SyncService {
	return &SyncService{db: db, logger: logger.Named("apiserver.service.sync")}
}

// Sync upserts the local row for the given identity and returns it.
// The first user ever created becomes super_admin; if the table has
// lost its super_admin out of band, the earliest user is promoted.
func (s *SyncService) Sync(ctx context.Context, ident *identity.Identity) (*database.User, error) {
	var synced *database.User
	err := s.db.Transaction(ctx, func(ctx context.Context) error {
		user, err := s.db.GetUserByExternalID(ctx, ident.ID)
		if err != nil {
			return err
		}

		if user != nil {
			// refresh profile fields, never the role
			user.Email = ident.Email
			user.Name = ident.Name()
			user.Image = ident.ImageURL
			if err := s.db.UpdateUser(ctx, user); err != nil {
				return err
			}
		} else {
			count, err := s.db.CountUsers(ctx)
			if err != nil {
				return err
			}
			role := database.RoleUser
			if count == 0 {
				role = database.RoleSuperAdmin
			}
			user = &database.User{
				ExternalID: ident.ID,
				Email:      ident.Email,
				Name:       ident.Name(),
				Image:      ident.ImageURL,
				Role:       role,
			}
			if err := s.db.CreateUser(ctx, user); err != nil {
				return err
			}
			s.logger.Info("created user",
				zap.Uint("user_id", user.ID),
				zap.String("external_id", user.ExternalID),
				zap.String("role", string(user.Role)))
		}

		if err := s.repairSuperAdmin(ctx, user); err != nil {
			return err
		}
		synced = user
		return nil
	})
	if err != nil {
		s.logger.Error("failed to sync user",
			zap.String("external_id", ident.ID),
			zap.Error(err))
		return nil, err
	}
	return synced, nil
}

// repairSuperAdmin promotes the earliest-created user when no
// super_admin exists. current is updated in place when it is the one
// promoted.
func (s *SyncService) repairSuperAdmin(ctx context.Context, current *database.User) error {
	count, err := s.db.CountUsersByRole(ctx, database.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	first, err := s.db.FirstUser(ctx)
	if err != nil {
		return err
	}
	if first == nil {
		return nil
	}
	first.Role = database.RoleSuperAdmin
	if err := s.db.UpdateUser(ctx, first); err != nil {
		return err
	}
	s.logger.Warn("promoted earliest user to super_admin",
		zap.Uint("user_id", first.ID),
		zap.String("external_id", first.ExternalID))
	if current.ID == first.ID {
		current.Role = database.RoleSuperAdmin
	}
	return nil
}
