package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jkrv/billdesk/internal/middleware"
	"github.com/jkrv/billdesk/internal/models"
	"github.com/jkrv/billdesk/internal/storage"
)

// BillHandler handles bill listing and creation.
type BillHandler struct {
	store storage.Store
}

// NewBillHandler creates a new bill handler.
func NewBillHandler(store storage.Store) *BillHandler {
	return &BillHandler{store: store}
}

// billView is the wire shape for a listed bill.
type billView struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// List returns all bills for a group. Bills are group-public: any
// authenticated user may list them, member or not.
func (h *BillHandler) List(c *gin.Context) {
	groupID, err := strconv.ParseInt(c.Param("group_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	bills, err := h.store.ListBillsByGroup(c.Request.Context(), groupID)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	views := make([]billView, len(bills))
	for i, bill := range bills {
		views[i] = billView{ID: bill.ID, Amount: bill.Amount, Description: bill.Description}
	}

	c.JSON(http.StatusOK, views)
}

type createBillRequest struct {
	GroupID     *int64   `json:"group_id" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Description string   `json:"description"`
}

// Create inserts a bill. No amount-range or group-existence validation is
// performed; a bill may reference a group that does not exist yet.
func (h *BillHandler) Create(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	bill := &models.Bill{
		GroupID:     *req.GroupID,
		Amount:      *req.Amount,
		Description: req.Description,
	}
	if err := h.store.CreateBill(c.Request.Context(), bill); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
		return
	}

	slog.Info("Bill created", "bill_id", bill.ID, "group_id", bill.GroupID, "user_id", middleware.UserID(c))
	c.JSON(http.StatusCreated, gin.H{"message": "Bill successfully created"})
}
