package underboss

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CommentCreateRequest posts a top-level comment on a job posting.
type CommentCreateRequest struct {
	PapsID uuid.UUID `json:"paps_id"`
	Body   string    `json:"body"`
}

// CommentReplyRequest posts a reply to an existing comment.
type CommentReplyRequest struct {
	CommentID uuid.UUID `json:"comment_id"`
	Body      string    `json:"body"`
}

type commentListResponse struct {
	Comments []Comment `json:"comments"`
}

// CommentsClient provides methods for the comment threads under job postings.
type CommentsClient struct {
	client *Client
}

func (c *CommentsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("underboss: comments client not initialized")
	}
	return nil
}

// List returns the comments on a posting, replies included.
func (c *CommentsClient) List(ctx context.Context, papsID uuid.UUID) ([]Comment, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	payload := struct {
		PapsID uuid.UUID `json:"paps_id"`
	}{papsID}
	var resp commentListResponse
	if err := c.client.dispatchInto(ctx, "comments.list", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// Create posts a top-level comment.
func (c *CommentsClient) Create(ctx context.Context, req CommentCreateRequest) (Comment, error) {
	if err := c.ensureInitialized(); err != nil {
		return Comment{}, err
	}
	var comment Comment
	if err := c.client.dispatchInto(ctx, "comments.create", req, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// Reply posts a reply under an existing comment.
func (c *CommentsClient) Reply(ctx context.Context, req CommentReplyRequest) (Comment, error) {
	if err := c.ensureInitialized(); err != nil {
		return Comment{}, err
	}
	var comment Comment
	if err := c.client.dispatchInto(ctx, "comments.reply", req, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}
