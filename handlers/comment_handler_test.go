package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/centraladventures/trips_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommentTree(t *testing.T) {
	rootID := uuid.New()
	replyID := uuid.New()
	nestedID := uuid.New()
	otherRootID := uuid.New()

	comments := []models.Comment{
		{ID: rootID, Body: "great shot"},
		{ID: replyID, ParentID: &rootID, Body: "agreed"},
		{ID: nestedID, ParentID: &replyID, Body: "same"},
		{ID: otherRootID, Body: "when is the next trip?"},
	}

	roots := buildCommentTree(comments)
	require.Len(t, roots, 2)

	assert.Equal(t, rootID, roots[0].ID)
	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, replyID, roots[0].Replies[0].ID)
	require.Len(t, roots[0].Replies[0].Replies, 1)
	assert.Equal(t, nestedID, roots[0].Replies[0].Replies[0].ID)

	assert.Equal(t, otherRootID, roots[1].ID)
	assert.Empty(t, roots[1].Replies)
}

func TestBuildCommentTree_OrphanSurfacesAsRoot(t *testing.T) {
	missingParent := uuid.New()
	orphanID := uuid.New()

	roots := buildCommentTree([]models.Comment{
		{ID: orphanID, ParentID: &missingParent, Body: "reply to a deleted comment"},
	})

	require.Len(t, roots, 1)
	assert.Equal(t, orphanID, roots[0].ID)
}

func TestBuildCommentTree_Empty(t *testing.T) {
	assert.Empty(t, buildCommentTree(nil))
}

func TestReactionOutcome(t *testing.T) {
	like := &models.Reaction{Kind: models.ReactionLike}

	assert.Equal(t, "added", reactionOutcome(nil, models.ReactionLike))
	assert.Equal(t, "removed", reactionOutcome(like, models.ReactionLike))
	assert.Equal(t, "switched", reactionOutcome(like, models.ReactionDislike))
}

func TestCanModifyComment(t *testing.T) {
	authorID := uuid.New()
	otherID := uuid.New()
	authored := models.Comment{UserID: &authorID}
	guestName := "Visitor"
	guest := models.Comment{GuestName: &guestName}

	assert.True(t, canModifyComment(authored, authorID, "member"))
	assert.False(t, canModifyComment(authored, otherID, "member"))
	assert.True(t, canModifyComment(authored, otherID, "admin"))
	assert.False(t, canModifyComment(guest, otherID, "member"))
	assert.True(t, canModifyComment(guest, otherID, "admin"))
}

func TestToggleCommentLike_Likes(t *testing.T) {
	mock := newMockDB(t)
	userID := uuid.New()
	commentID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_id", "body"}).
			AddRow(commentID.String(), uuid.NewString(), "great shot"))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "comment_likes" WHERE comment_id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "comment_likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "comment_likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	app := fiber.New()
	app.Post("/api/v1/gallery/comments/:commentId/like", asUser(userID, "member", ToggleCommentLike))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/comments/"+commentID.String()+"/like", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleCommentLike_UnlikesOnRepeat(t *testing.T) {
	mock := newMockDB(t)
	userID := uuid.New()
	commentID := uuid.New()
	likeID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_id", "body"}).
			AddRow(commentID.String(), uuid.NewString(), "great shot"))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "comment_likes" WHERE comment_id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "comment_id", "user_id"}).
			AddRow(likeID.String(), commentID.String(), userID.String()))
	mock.ExpectExec(`DELETE FROM "comment_likes" WHERE id = \$1`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "comment_likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	app := fiber.New()
	app.Post("/api/v1/gallery/comments/:commentId/like", asUser(userID, "member", ToggleCommentLike))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gallery/comments/"+commentID.String()+"/like", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteComment_AuthorRemovesOwnComment(t *testing.T) {
	mock := newMockDB(t)
	userID := uuid.New()
	commentID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_id", "user_id", "body"}).
			AddRow(commentID.String(), uuid.NewString(), userID.String(), "great shot"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comment_likes" WHERE comment_id = \$1`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "comments" WHERE id = \$1`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	app := fiber.New()
	app.Delete("/api/v1/gallery/comments/:commentId", asUser(userID, "member", DeleteComment))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/gallery/comments/"+commentID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteComment_ForbiddenForOtherMembers(t *testing.T) {
	mock := newMockDB(t)
	callerID := uuid.New()
	commentID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_id", "user_id", "body"}).
			AddRow(commentID.String(), uuid.NewString(), uuid.NewString(), "great shot"))

	app := fiber.New()
	app.Delete("/api/v1/gallery/comments/:commentId", asUser(callerID, "member", DeleteComment))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/gallery/comments/"+commentID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComment_AuthorEditsBody(t *testing.T) {
	mock := newMockDB(t)
	userID := uuid.New()
	commentID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image_id", "user_id", "body"}).
			AddRow(commentID.String(), uuid.NewString(), userID.String(), "great shot"))

	mock.ExpectExec(`UPDATE "comments" SET .+ WHERE id = \$\d+`).
		WithArgs("even better shot", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := fiber.New()
	app.Put("/api/v1/gallery/comments/:commentId", asUser(userID, "member", UpdateComment))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/gallery/comments/"+commentID.String(),
		bytes.NewBufferString(`{"body": "even better shot"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
