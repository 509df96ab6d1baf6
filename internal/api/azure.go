package api

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"golang.org/x/time/rate"

	"citizen-interview/internal/config"
	"citizen-interview/internal/metrics"
)

// AzureClient ходит в развертывание Azure OpenAI
type AzureClient struct {
	client       *azopenai.Client
	deploymentID string
	maxTokens    int32
	temperature  float32
	limiter      *rate.Limiter
	metrics      *metrics.Metrics
}

func NewAzureClient(cfg config.LLMConfig, m *metrics.Metrics) (*AzureClient, error) {
	keyCredential := azcore.NewKeyCredential(cfg.AzureAPIKey)
	client, err := azopenai.NewClientWithKeyCredential(cfg.AzureEndpoint, keyCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating Azure OpenAI client: %w", err)
	}

	return &AzureClient{
		client:       client,
		deploymentID: cfg.AzureDeployment,
		maxTokens:    int32(cfg.MaxTokens),
		temperature:  float32(cfg.Temperature),
		limiter:      newLimiter(cfg.RequestsPerSecond),
		metrics:      m,
	}, nil
}

func (c *AzureClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if err := validateMessages(messages); err != nil {
		return "", err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.client.GetChatCompletions(
		ctx,
		azopenai.ChatCompletionsOptions{
			DeploymentName: to.Ptr(c.deploymentID),
			Messages:       toAzureMessages(messages),
			MaxTokens:      to.Ptr(c.maxTokens),
			Temperature:    to.Ptr(c.temperature),
		},
		nil,
	)
	if err != nil {
		recordCall(c.metrics, false)
		return "", fmt.Errorf("Azure OpenAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == nil {
		recordCall(c.metrics, false)
		return "", fmt.Errorf("no completion received from Azure OpenAI")
	}

	recordCall(c.metrics, true)
	return cleanResponse(*resp.Choices[0].Message.Content), nil
}

func toAzureMessages(messages []Message) []azopenai.ChatRequestMessageClassification {
	result := make([]azopenai.ChatRequestMessageClassification, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			result = append(result, &azopenai.ChatRequestSystemMessage{
				Content: azopenai.NewChatRequestSystemMessageContent(msg.Content),
			})
		default:
			result = append(result, &azopenai.ChatRequestUserMessage{
				Content: azopenai.NewChatRequestUserMessageContent(msg.Content),
			})
		}
	}
	return result
}
