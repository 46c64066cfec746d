package underboss

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ChatThreadCreateRequest opens a conversation with another user, optionally
// tied to a job posting.
type ChatThreadCreateRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id"`
	PapsID      *uuid.UUID `json:"paps_id,omitempty"`
}

// ChatMessageSendRequest sends one message into a thread.
type ChatMessageSendRequest struct {
	ThreadID uuid.UUID `json:"thread_id"`
	Body     string    `json:"body"`
}

type chatThreadListResponse struct {
	Threads []ChatThread `json:"threads"`
}

type chatMessageListResponse struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatClient provides methods for chat threads and messages.
type ChatClient struct {
	client *Client
}

func (c *ChatClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("underboss: chat client not initialized")
	}
	return nil
}

// Threads lists the caller's conversations, most recently active first.
func (c *ChatClient) Threads(ctx context.Context) ([]ChatThread, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp chatThreadListResponse
	if err := c.client.dispatchInto(ctx, "chat.threads.list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Threads, nil
}

// CreateThread opens a conversation. The server returns the existing thread
// when one already connects the same participants and posting.
func (c *ChatClient) CreateThread(ctx context.Context, req ChatThreadCreateRequest) (ChatThread, error) {
	if err := c.ensureInitialized(); err != nil {
		return ChatThread{}, err
	}
	var thread ChatThread
	if err := c.client.dispatchInto(ctx, "chat.threads.create", req, &thread); err != nil {
		return ChatThread{}, err
	}
	return thread, nil
}

// Messages lists a thread's messages, oldest first.
func (c *ChatClient) Messages(ctx context.Context, threadID uuid.UUID) ([]ChatMessage, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	payload := struct {
		ThreadID uuid.UUID `json:"thread_id"`
	}{threadID}
	var resp chatMessageListResponse
	if err := c.client.dispatchInto(ctx, "chat.messages.list", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// Send posts a message into a thread.
func (c *ChatClient) Send(ctx context.Context, req ChatMessageSendRequest) (ChatMessage, error) {
	if err := c.ensureInitialized(); err != nil {
		return ChatMessage{}, err
	}
	var msg ChatMessage
	if err := c.client.dispatchInto(ctx, "chat.messages.send", req, &msg); err != nil {
		return ChatMessage{}, err
	}
	return msg, nil
}

// MarkRead marks all of a thread's messages as read.
func (c *ChatClient) MarkRead(ctx context.Context, threadID uuid.UUID) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	payload := struct {
		ThreadID uuid.UUID `json:"thread_id"`
	}{threadID}
	return c.client.dispatchInto(ctx, "chat.markRead", payload, nil)
}
