package gemini

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"mockmate/interview/internal/models"
	"mockmate/interview/internal/oracle"
	"mockmate/interview/internal/prompts"
)

// Client implements the oracle.Provider contract on the Gemini API.
type Client struct {
	client  *genai.Client
	config  *Config
	prompts prompts.PromptProvider
}

func NewClient(config *Config, promptManager prompts.PromptProvider) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &oracle.ProviderError{
			Provider: "gemini",
			Code:     oracle.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client:  client,
		config:  config,
		prompts: promptManager,
	}, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

// generate builds the prompt for a mode and runs one completion
func (c *Client) generate(ctx context.Context, mode string, data map[string]string) (string, error) {
	prompt, err := c.prompts.BuildPrompt(mode, data)
	if err != nil {
		return "", &oracle.ProviderError{
			Provider: "gemini",
			Code:     oracle.ErrCodeInvalidOutput,
			Message:  "Failed to build prompt for mode " + mode,
			Err:      err,
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", &oracle.ProviderError{
			Provider: "gemini",
			Code:     oracle.ErrCodeServiceDown,
			Message:  "Generation failed for mode " + mode,
			Err:      err,
		}
	}
	if result == nil {
		return "", &oracle.ProviderError{
			Provider: "gemini",
			Code:     oracle.ErrCodeInvalidOutput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &oracle.ProviderError{
			Provider: "gemini",
			Code:     oracle.ErrCodeInvalidOutput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", &oracle.ProviderError{
			Provider: "gemini",
			Code:     oracle.ErrCodeInvalidOutput,
			Message:  "Empty response generated",
		}
	}

	return strings.TrimSpace(text), nil
}

func (c *Client) GenerateQuestion(ctx context.Context, role string, slotNumber int, difficulty string, coveredTopics []string) (string, error) {
	return c.generate(ctx, "question", map[string]string{
		"Role":          role,
		"SlotNumber":    strconv.Itoa(slotNumber),
		"Difficulty":    difficulty,
		"CoveredTopics": joinTopics(coveredTopics),
	})
}

func (c *Client) GenerateFollowUp(ctx context.Context, originalQuestion, answer string, depth int) (string, error) {
	return c.generate(ctx, "follow_up", map[string]string{
		"Question": originalQuestion,
		"Answer":   answer,
		"Depth":    strconv.Itoa(depth),
	})
}

func (c *Client) EvaluateAnswer(ctx context.Context, question, answer, difficulty string) (*models.AnswerEvaluation, error) {
	text, err := c.generate(ctx, "evaluate_answer", map[string]string{
		"Question":   question,
		"Answer":     answer,
		"Difficulty": difficulty,
	})
	if err != nil {
		return nil, err
	}
	return ParseAnswerEvaluation(text)
}

func (c *Client) GenerateMCQ(ctx context.Context, role, difficulty string, coveredTopics []string) (*models.MCQPayload, error) {
	text, err := c.generate(ctx, "mcq", map[string]string{
		"Role":          role,
		"Difficulty":    difficulty,
		"CoveredTopics": joinTopics(coveredTopics),
	})
	if err != nil {
		return nil, err
	}
	return ParseMCQPayload(text)
}

func (c *Client) GenerateMCQFollowUp(ctx context.Context, question, selectedOption, correctKey string) (string, error) {
	return c.generate(ctx, "mcq_follow_up", map[string]string{
		"Question":       question,
		"SelectedOption": selectedOption,
		"CorrectKey":     correctKey,
	})
}

func (c *Client) GenerateCodingQuestion(ctx context.Context, role, difficulty string) (*models.CodingPayload, error) {
	text, err := c.generate(ctx, "coding_question", map[string]string{
		"Role":       role,
		"Difficulty": difficulty,
	})
	if err != nil {
		return nil, err
	}
	return ParseCodingPayload(text)
}

func (c *Client) GenerateCodingInterruption(ctx context.Context, partialCode, problem string) (string, error) {
	return c.generate(ctx, "coding_interruption", map[string]string{
		"Code":    partialCode,
		"Problem": problem,
	})
}

func (c *Client) EvaluateCodingAnswer(ctx context.Context, problem, code, explanation, difficulty string) (*models.CodingEvaluation, error) {
	text, err := c.generate(ctx, "evaluate_coding", map[string]string{
		"Problem":     problem,
		"Code":        code,
		"Explanation": explanation,
		"Difficulty":  difficulty,
	})
	if err != nil {
		return nil, err
	}
	return ParseCodingEvaluation(text)
}

func joinTopics(topics []string) string {
	if len(topics) == 0 {
		return "none yet"
	}
	return strings.Join(topics, ", ")
}

var _ oracle.Provider = (*Client)(nil)
