package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/db"
	"github.com/mentordesk/mentordesk/internal/authz"
	"github.com/mentordesk/mentordesk/internal/crud"
	"github.com/mentordesk/mentordesk/internal/models"
	"github.com/mentordesk/mentordesk/internal/types"
	"github.com/mentordesk/mentordesk/internal/utils"
	"gorm.io/gorm"
)

type CreateItemRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=255"`
}

type UpdateItemRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=255"`
}

func itemResponse(item *models.Item) types.ItemResponse {
	return types.ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		OwnerID:     item.OwnerID,
	}
}

// findItem resolves the path parameter and enforces the owner-or-superuser
// rule shared by the read, update, and delete routes.
func findItem(ctx *gin.Context) (*models.Item, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return nil, false
	}

	item, err := crud.GetItemByID(db.DB, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return nil, false
	}

	caller := authz.Caller{ID: currentUser.ID, IsSuperuser: currentUser.IsSuperuser}

	if !authz.CanManageItem(caller, item.OwnerID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return nil, false
	}

	return item, true
}

func CreateItem(ctx *gin.Context) {
	var body CreateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	item, err := crud.CreateItem(db.DB, userID, crud.CreateItemParams{
		Title:       body.Title,
		Description: body.Description,
	})

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	ctx.JSON(http.StatusCreated, itemResponse(item))
}

func ListItems(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var items []models.Item

	if currentUser.IsSuperuser {
		items, err = crud.ListItems(db.DB)
	} else {
		items, err = crud.ListItemsByOwner(db.DB, currentUser.ID)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	response := make([]types.ItemResponse, 0, len(items))

	for i := range items {
		response = append(response, itemResponse(&items[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetItem(ctx *gin.Context) {
	item, ok := findItem(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, itemResponse(item))
}

func UpdateItem(ctx *gin.Context) {
	item, ok := findItem(ctx)
	if !ok {
		return
	}

	var body UpdateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item.Title = body.Title
	item.Description = body.Description

	if err := crud.UpdateItem(db.DB, item); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	ctx.JSON(http.StatusOK, itemResponse(item))
}

func DeleteItem(ctx *gin.Context) {
	item, ok := findItem(ctx)
	if !ok {
		return
	}

	if err := crud.DeleteItem(db.DB, item); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
