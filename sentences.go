package worksheet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// SentenceGenerator produces one fill-in-the-blank item per word.
// Implementations may fail; callers are expected to fall back via
// FallbackSentences so the pipeline always completes.
type SentenceGenerator interface {
	Sentences(ctx context.Context, words []string) ([]Item, error)
}

// DefaultSentenceTimeout bounds the outbound text-generation call.
const DefaultSentenceTimeout = 8 * time.Second

// fallbackSentenceFormat is used when the external service is slow, errors,
// or returns malformed output.
const fallbackSentenceFormat = "Use the word %s in a sentence."

// blankPlaceholder marks the removed word inside a sentence.
const blankPlaceholder = "_____"

const sentenceSystemPrompt = "You are an assistant that returns a JSON array of fill-in-the-blank sentences."

const sentenceUserPromptFormat = `Words: %s

Format exactly as valid JSON.
Each element should be an object with:
- "sentence": the sentence with the word replaced by "_____"
- "answer": the original word

Example:
[
  { "sentence": "The small fluffy _____ dog ran down the street fast.", "answer": "quick" }
]`

// FallbackSentences synthesizes one generic fill-in-the-blank item per word.
// This is the resilience path for an unreliable text-generation service.
func FallbackSentences(words []string) []Item {
	items := make([]Item, len(words))
	for i, word := range words {
		items[i] = Item{
			Content: fmt.Sprintf(fallbackSentenceFormat, blankPlaceholder),
			Answer:  word,
		}
	}
	return items
}

// OpenAISentenceClient calls an OpenAI-compatible chat completion endpoint to
// generate fill-in-the-blank sentences for a word list.
type OpenAISentenceClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// OpenAIOptions configures an OpenAISentenceClient.
type OpenAIOptions struct {
	APIKey  string
	BaseURL string        // empty = api.openai.com
	Model   string        // empty = gpt-4o-mini
	Timeout time.Duration // <= 0 = DefaultSentenceTimeout
}

// NewOpenAISentenceClient creates a client for the generative text service.
func NewOpenAISentenceClient(opts OpenAIOptions) *OpenAISentenceClient {
	reqOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	model := opts.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultSentenceTimeout
	}

	return &OpenAISentenceClient{
		client:  openai.NewClient(reqOpts...),
		model:   model,
		timeout: timeout,
	}
}

// Sentences issues one chat completion request for the whole word list and
// parses the response as a strict JSON array of {sentence, answer} objects.
// Errors are wrapped in ErrSentenceService so callers can treat every
// failure mode uniformly.
func (c *OpenAISentenceClient) Sentences(ctx context.Context, words []string) ([]Item, error) {
	wordsJSON, err := json.Marshal(words)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding words: %v", ErrSentenceService, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(sentenceSystemPrompt),
			openai.UserMessage(fmt.Sprintf(sentenceUserPromptFormat, wordsJSON)),
		},
		MaxTokens:   openai.Int(500),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSentenceService, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrSentenceService)
	}

	return parseSentenceResponse(resp.Choices[0].Message.Content, words)
}

// parseSentenceResponse validates the raw model output against the expected
// shape: a JSON array with exactly one {sentence, answer} object per word,
// answers matching the input words in order.
func parseSentenceResponse(raw string, words []string) ([]Item, error) {
	cleaned := stripCodeFences(raw)

	var items []Item
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrSentenceService, err)
	}
	if len(items) != len(words) {
		return nil, fmt.Errorf("%w: got %d items for %d words", ErrSentenceService, len(items), len(words))
	}
	for i, item := range items {
		if item.Content == "" {
			return nil, fmt.Errorf("%w: empty sentence at index %d", ErrSentenceService, i)
		}
		if !strings.EqualFold(strings.TrimSpace(item.Answer), words[i]) {
			return nil, fmt.Errorf("%w: answer %q does not match word %q", ErrSentenceService, item.Answer, words[i])
		}
		// Keep the caller's word verbatim as the answer key.
		items[i].Answer = words[i]
	}
	return items, nil
}

// stripCodeFences removes surrounding markdown code-fence markers that chat
// models sometimes wrap around JSON output.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the opening fence line.
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || first == "json" {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
