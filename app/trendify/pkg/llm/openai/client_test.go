package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trendify/app/trendify/pkg/llm"
)

// fakeChatModel 模拟 ChatModel
type fakeChatModel struct {
	reply    *schema.Message
	err      error
	messages []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.messages = input
	return f.reply, f.err
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not supported")
}

func TestClient_Generate(t *testing.T) {
	fake := &fakeChatModel{reply: &schema.Message{Role: schema.Assistant, Content: `{"subtopics": []}`}}
	c := NewWithModel(fake)

	out, err := c.Generate(context.Background(), llm.Prompt{System: "sys", User: "usr"})
	require.NoError(t, err)
	assert.Equal(t, `{"subtopics": []}`, out)

	require.Len(t, fake.messages, 2)
	assert.Equal(t, schema.System, fake.messages[0].Role)
	assert.Equal(t, "sys", fake.messages[0].Content)
	assert.Equal(t, schema.User, fake.messages[1].Role)
	assert.Equal(t, "usr", fake.messages[1].Content)
}

func TestClient_GenerateErrors(t *testing.T) {
	_, err := NewWithModel(&fakeChatModel{err: errors.New("429 too many requests")}).Generate(context.Background(), llm.Prompt{})
	assert.EqualError(t, err, "429 too many requests")

	_, err = NewWithModel(&fakeChatModel{}).Generate(context.Background(), llm.Prompt{})
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(context.Background(), Config{BaseURL: "http://127.0.0.1:1/v1", APIKey: "sk-test", Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 1000})
	require.NoError(t, err)
	assert.NotNil(t, c.chatModel)
}
