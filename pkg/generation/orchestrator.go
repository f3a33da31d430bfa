package generation

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"nko-content-assistant/pkg/imagegen"
	"nko-content-assistant/pkg/llm"
)

// Orchestrator executes compiled prompts against the generation
// backends and normalizes failures into the package taxonomy. It does
// no retrying of its own; retry is an operator decision.
type Orchestrator struct {
	provider llm.LLMProvider
	images   *imagegen.Client
	logger   *log.Logger

	// Image polling policy. The backend is asynchronous: one submit,
	// then bounded status polling.
	PollInterval time.Duration
	MaxPolls     int
	ImageWidth   int
	ImageHeight  int
}

// NewOrchestrator creates an orchestrator with the default polling policy.
func NewOrchestrator(provider llm.LLMProvider, images *imagegen.Client, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		provider:     provider,
		images:       images,
		logger:       logger,
		PollInterval: 10 * time.Second,
		MaxPolls:     20,
		ImageWidth:   1024,
		ImageHeight:  1024,
	}
}

// GenerateText performs a single blocking completion call.
func (o *Orchestrator) GenerateText(ctx context.Context, prompt string) (string, error) {
	started := time.Now()
	result, err := o.provider.Generate(ctx, prompt)
	if err != nil {
		o.logger.Printf("[GEN] text generation failed after %s: %v", time.Since(started).Round(time.Millisecond), err)
		return "", Classify(err)
	}
	o.logger.Printf("[GEN] text generated: %d chars in %s", len(result), time.Since(started).Round(time.Millisecond))
	return result, nil
}

// GenerateImage submits an image job and polls until a terminal status
// or the polling ceiling. The wait is a timer select, so other
// conversations keep being serviced while this one blocks.
func (o *Orchestrator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	jobID, err := o.images.Submit(ctx, prompt, o.ImageWidth, o.ImageHeight)
	if err != nil {
		return nil, Classify(err)
	}
	o.logger.Printf("[GEN] image job submitted: %s", jobID)

	timer := time.NewTimer(o.PollInterval)
	defer timer.Stop()

	for attempt := 1; attempt <= o.MaxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		case <-timer.C:
		}

		status, err := o.images.Status(ctx, jobID)
		if err != nil {
			return nil, Classify(err)
		}

		switch status.Status {
		case imagegen.StatusDone:
			encoded, err := status.FirstFile()
			if err != nil {
				return nil, Classify(err)
			}
			data, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return nil, fmt.Errorf("%w: decode image payload: %v", ErrUpstream, err)
			}
			o.logger.Printf("[GEN] image job %s done after %d polls: %d bytes", jobID, attempt, len(data))
			return data, nil
		case imagegen.StatusFail:
			o.logger.Printf("[GEN] image job %s failed: %s", jobID, status.ErrorDescription)
			return nil, fmt.Errorf("%w: %s", ErrUpstream, status.ErrorDescription)
		}

		timer.Reset(o.PollInterval)
	}

	o.logger.Printf("[GEN] image job %s still pending after %d polls, giving up", jobID, o.MaxPolls)
	return nil, fmt.Errorf("%w: image job not finished after %d polls", ErrTimeout, o.MaxPolls)
}
