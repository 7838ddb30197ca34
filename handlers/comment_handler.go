package handlers

import (
	"errors"

	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateCommentRequest struct {
	Body      string  `json:"body" validate:"required"`
	ParentID  *string `json:"parent_id,omitempty" validate:"omitempty,uuid"`
	GuestName *string `json:"guest_name,omitempty" validate:"omitempty,min=2,max=100"`
}

// CommentNode is one comment plus its nested replies.
type CommentNode struct {
	models.Comment
	Replies []*CommentNode `json:"replies"`
}

// buildCommentTree assembles the flat adjacency list into threads. Comments
// whose parent is missing (e.g. deleted) surface as top-level.
func buildCommentTree(comments []models.Comment) []*CommentNode {
	nodes := make(map[uuid.UUID]*CommentNode, len(comments))
	order := make([]*CommentNode, 0, len(comments))

	for i := range comments {
		node := &CommentNode{Comment: comments[i], Replies: []*CommentNode{}}
		nodes[comments[i].ID] = node
		order = append(order, node)
	}

	roots := make([]*CommentNode, 0, len(order))
	for _, node := range order {
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func ListComments(c *fiber.Ctx) error {
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image ID format"})
	}

	var comments []models.Comment
	err = database.DB.Preload("User").
		Where("image_id = ?", imageID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch comments"})
	}

	return c.JSON(fiber.Map{"comments": buildCommentTree(comments)})
}

// CreateComment accepts both authenticated members and guests: a guest must
// supply a display name, a member's identity comes from the JWT.
func CreateComment(c *fiber.Ctx) error {
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image ID format"})
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var image models.GalleryImage
	if err := database.DB.First(&image, "id = ?", imageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gallery item not found"})
	}

	comment := models.Comment{
		ImageID: image.ID,
		Body:    req.Body,
	}

	if _, ok := c.Locals("user").(*jwt.Token); ok {
		userID, err := currentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		comment.UserID = &userID
	} else {
		if req.GuestName == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "guest_name is required for guest comments"})
		}
		comment.GuestName = req.GuestName
	}

	if req.ParentID != nil {
		parentID, _ := uuid.Parse(*req.ParentID)
		var parent models.Comment
		if err := database.DB.First(&parent, "id = ?", parentID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Parent comment not found"})
		}
		if parent.ImageID != image.ID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parent comment belongs to a different image"})
		}
		comment.ParentID = &parent.ID
	}

	if err := database.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create comment"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

// canModifyComment allows the comment's author and admins. Guest comments
// have no author, so only admins can touch them.
func canModifyComment(comment models.Comment, userID uuid.UUID, role string) bool {
	if role == "admin" {
		return true
	}
	return comment.UserID != nil && *comment.UserID == userID
}

func UpdateComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid comment ID format"})
	}

	var req UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Comment not found"})
	}
	if !canModifyComment(comment, userID, currentUserRole(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You cannot edit this comment"})
	}

	err = database.DB.Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]interface{}{"body": req.Body}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update comment"})
	}

	comment.Body = req.Body
	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment removes a comment and its likes. Replies stay and surface as
// top-level comments in the assembled thread.
func DeleteComment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid comment ID format"})
	}

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Comment not found"})
	}
	if !canModifyComment(comment, userID, currentUserRole(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You cannot delete this comment"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CommentLike{}, "comment_id = ?", comment.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Comment{}, "id = ?", comment.ID).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete comment"})
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}

// ToggleCommentLike flips the caller's like on a comment.
func ToggleCommentLike(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid comment ID format"})
	}

	var comment models.Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Comment not found"})
	}

	var action string
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentLike
		err := tx.Where("comment_id = ? AND user_id = ?", comment.ID, userID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			action = "liked"
			like := models.CommentLike{CommentID: comment.ID, UserID: userID}
			return tx.Create(&like).Error
		case err != nil:
			return err
		}

		action = "unliked"
		return tx.Delete(&models.CommentLike{}, "id = ?", existing.ID).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record like"})
	}

	var likes int64
	database.DB.Model(&models.CommentLike{}).Where("comment_id = ?", comment.ID).Count(&likes)

	return c.JSON(fiber.Map{
		"action": action,
		"likes":  likes,
	})
}
