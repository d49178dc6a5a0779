package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkrv/billdesk/internal/middleware"
	"github.com/jkrv/billdesk/internal/models"
	"github.com/jkrv/billdesk/internal/storage"
)

// AccountHandler handles group membership.
type AccountHandler struct {
	store storage.Store
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(store storage.Store) *AccountHandler {
	return &AccountHandler{store: store}
}

// List returns the names of the groups the caller belongs to.
func (h *AccountHandler) List(c *gin.Context) {
	names, err := h.store.ListGroupNamesForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, names)
}

type createAccountRequest struct {
	GroupID *int64 `json:"group_id" binding:"required"`
}

// Create joins the caller to a group. The group existence read only serves
// the 404 body; the store's constraints remain the authority, so a group
// deleted between the read and the insert still yields ErrNotFound, and a
// concurrent duplicate join yields exactly one conflict.
func (h *AccountHandler) Create(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.GetGroup(ctx, *req.GroupID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	account := &models.Account{UserID: middleware.UserID(c), GroupID: *req.GroupID}
	if err := h.store.CreateAccount(ctx, account); err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "User already assigned to this group"})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		default:
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	slog.Info("Account created", "user_id", account.UserID, "group_id", account.GroupID)
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}
