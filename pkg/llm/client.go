package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// analyzeMethod is the full method name of the sidecar's analysis RPC.
// Requests and responses are open-schema Structs, so no generated stubs
// are needed on this side.
const analyzeMethod = "/muniscope.llm.v1.AnalysisService/Analyze"

// Client wraps the gRPC connection to the LLM sidecar service.
type Client struct {
	conn        *grpc.ClientConn
	model       string
	temperature *float64
	maxTokens   *int64
}

// NewClient creates an LLM client for the sidecar at addr. The connection
// is lazy: no traffic flows until the first Analyze call.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var temperature *float64
	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 64); err == nil {
			temperature = &temp
		}
	}

	var maxTokens *int64
	if maxStr := os.Getenv("LLM_MAX_TOKENS"); maxStr != "" {
		if max, err := strconv.ParseInt(maxStr, 10, 64); err == nil {
			maxTokens = &max
		}
	}

	slog.Info("LLM client configured", "model", model)

	return &Client{
		conn:        conn,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Analyze sends one analysis task to the sidecar and returns its decoded
// result. The task names the analysis kind ("relevance", "expansion") and
// payload carries task-specific inputs.
func (c *Client) Analyze(ctx context.Context, task string, payload map[string]any) (map[string]any, error) {
	fields := map[string]any{
		"task":    task,
		"model":   c.model,
		"payload": payload,
	}
	if c.temperature != nil {
		fields["temperature"] = *c.temperature
	}
	if c.maxTokens != nil {
		fields["max_tokens"] = float64(*c.maxTokens)
	}

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis request: %w", err)
	}

	resp := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, analyzeMethod, req, resp); err != nil {
		return nil, fmt.Errorf("analysis call failed: %w", err)
	}

	return resp.AsMap(), nil
}
