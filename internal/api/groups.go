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

// GroupHandler handles group listing and creation.
type GroupHandler struct {
	store storage.Store
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(store storage.Store) *GroupHandler {
	return &GroupHandler{store: store}
}

// List returns the groups the caller belongs to, joined through the
// accounts relation. Order is store-defined; the membership primary key
// makes duplicates impossible.
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.store.ListGroupsForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, groups)
}

type createGroupRequest struct {
	GroupID *int64 `json:"group_id" binding:"required"`
	Name    string `json:"name"`
}

// Create inserts a group with the caller-supplied identifier. A duplicate
// identifier is a conflict, detected by the store constraint rather than a
// racy pre-check.
func (h *GroupHandler) Create(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	group := &models.Group{ID: *req.GroupID, Name: req.Name}
	if err := h.store.CreateGroup(c.Request.Context(), group); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Group already exists"})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("Group created", "group_id", group.ID, "user_id", middleware.UserID(c))
	c.JSON(http.StatusCreated, gin.H{"id": group.ID})
}
