package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/apiserver/service"
	"github.com/snezamha/cms-core/internal/common/dto"
	"github.com/snezamha/cms-core/internal/i18n"
	"github.com/snezamha/cms-core/internal/identity"
)

// Users manages the dashboard accounts synced from the identity
// provider.
type Users struct {
	db       database.Database
	sync     *service.SyncService
	provider identity.Provider
	logger   *zap.Logger
}

// NewUsers creates a new Users handler
func NewUsers(db database.Database, sync *service.SyncService, provider identity.Provider, logger *zap.Logger) *Users {
	return &Users{db: db, sync: sync, provider: provider, logger: logger.Named("apiserver.handler.users")}
}

// List returns every user, newest first.
func (h *Users) List(c *gin.Context) {
	_, ok := requireRole(c, h.db, h.sync, h.logger, database.RoleSuperAdmin, database.RoleAdmin)
	if !ok {
		return
	}

	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUser(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// target parses the :id path parameter and loads the user it names.
// On failure the error response has already been written.
func (h *Users) target(c *gin.Context) (*database.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidUserID)
		return nil, false
	}

	user, err := h.db.GetUserByID(c.Request.Context(), uint(id))
	if err != nil {
		h.logger.Error("failed to load user", zap.Uint64("user_id", id), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return nil, false
	}
	if user == nil {
		i18n.RespondWithError(c, i18n.ErrUserNotFound)
		return nil, false
	}
	return user, true
}

// UpdateRole changes a user's role to admin or user. The super_admin
// row cannot be changed, and admins cannot change other admins.
func (h *Users) UpdateRole(c *gin.Context) {
	caller, ok := requireRole(c, h.db, h.sync, h.logger, database.RoleSuperAdmin, database.RoleAdmin)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrInvalidRole)
		return
	}
	role := database.UserRole(req.Role)
	if role != database.RoleAdmin && role != database.RoleUser {
		i18n.RespondWithError(c, i18n.ErrInvalidRole)
		return
	}

	targetUser, ok := h.target(c)
	if !ok {
		return
	}

	if targetUser.Role == database.RoleSuperAdmin {
		h.logger.Warn("attempt to change super_admin role",
			zap.Uint("caller_id", caller.ID),
			zap.Uint("target_id", targetUser.ID))
		i18n.RespondWithError(c, i18n.ErrSuperAdminImmutable)
		return
	}
	if caller.Role == database.RoleAdmin && targetUser.Role == database.RoleAdmin {
		i18n.RespondWithError(c, i18n.ErrForbidden)
		return
	}

	targetUser.Role = role
	if err := h.db.UpdateUser(c.Request.Context(), targetUser); err != nil {
		h.logger.Error("failed to update user", zap.Uint("target_id", targetUser.ID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}

	h.logger.Info("user role updated",
		zap.Uint("caller_id", caller.ID),
		zap.Uint("target_id", targetUser.ID),
		zap.String("role", string(role)))
	c.JSON(http.StatusOK, gin.H{"user": dto.FromUser(targetUser)})
}

// Delete removes a user, provider side first. A provider failure
// leaves the local row in place.
func (h *Users) Delete(c *gin.Context) {
	caller, ok := requireRole(c, h.db, h.sync, h.logger, database.RoleSuperAdmin, database.RoleAdmin)
	if !ok {
		return
	}

	targetUser, ok := h.target(c)
	if !ok {
		return
	}

	// self-delete wins over every other refusal, super_admin included
	if targetUser.ID == caller.ID {
		i18n.RespondWithError(c, i18n.ErrSelfDelete)
		return
	}
	if targetUser.Role == database.RoleSuperAdmin {
		h.logger.Warn("attempt to delete super_admin",
			zap.Uint("caller_id", caller.ID),
			zap.Uint("target_id", targetUser.ID))
		i18n.RespondWithError(c, i18n.ErrSuperAdminImmutable)
		return
	}
	if caller.Role == database.RoleAdmin && targetUser.Role == database.RoleAdmin {
		i18n.RespondWithError(c, i18n.ErrForbidden)
		return
	}

	if err := h.provider.DeleteUser(c.Request.Context(), targetUser.ExternalID); err != nil {
		h.logger.Error("identity provider delete failed, keeping local row",
			zap.Uint("target_id", targetUser.ID),
			zap.String("external_id", targetUser.ExternalID),
			zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrIdentityDeleteFail)
		return
	}

	if err := h.db.DeleteUser(c.Request.Context(), targetUser.ID); err != nil {
		h.logger.Error("failed to delete user", zap.Uint("target_id", targetUser.ID), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer.WithParam("Reason", err.Error()))
		return
	}

	h.logger.Info("user deleted",
		zap.Uint("caller_id", caller.ID),
		zap.Uint("target_id", targetUser.ID))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
