package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID      string
	Role    Role
	Content string
	At      time.Time
}

// Conversation is an in-memory transcript. Starting a new conversation
// discards any previous one along with its in-flight reveal state.
type Conversation struct {
	Messages []Message
}

// NewConversation seeds a transcript with the assistant's greeting.
func NewConversation(greeting string) *Conversation {
	c := &Conversation{}
	c.append(RoleAssistant, greeting)
	return c
}

// AddUser records a user message.
func (c *Conversation) AddUser(content string) Message {
	return c.append(RoleUser, content)
}

// AddAssistant records an assistant reply.
func (c *Conversation) AddAssistant(content string) Message {
	return c.append(RoleAssistant, content)
}

func (c *Conversation) append(role Role, content string) Message {
	m := Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
		At:      time.Now(),
	}
	c.Messages = append(c.Messages, m)
	return m
}
