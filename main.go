package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ai-fly/ai-code-review-action/internal/config"
	"github.com/ai-fly/ai-code-review-action/internal/copilot"
	"github.com/ai-fly/ai-code-review-action/internal/github"
	"github.com/ai-fly/ai-code-review-action/internal/handlers"
	"github.com/ai-fly/ai-code-review-action/internal/llm"
	"github.com/ai-fly/ai-code-review-action/internal/review"
	"github.com/ai-fly/ai-code-review-action/internal/server"
	"github.com/ai-fly/ai-code-review-action/internal/webhook"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize LLM service based on configuration
	var llmSvc llm.LLMService
	switch cfg.LLMProvider {
	case "openai":
		log.Printf("Using OpenAI LLM provider (model: %s)", cfg.OpenAIModel)
		llmSvc = llm.NewOpenAIProvider(llm.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
	default:
		log.Printf("Using Copilot LLM provider (model: %s)", cfg.CopilotModel)
		llmSvc = copilot.NewService(cfg.CopilotModel)
	}

	if err := llmSvc.Start(); err != nil {
		log.Fatalf("Failed to start LLM service: %v", err)
	}
	defer llmSvc.Stop()

	// Initialize GitHub client and the review pipeline
	githubClient := github.NewClient(cfg.GitHubToken)
	reviewSvc := review.NewService(githubClient, llmSvc, review.Options{Verbosity: cfg.ReviewVerbosity})
	webhookProc := webhook.NewProcessor(reviewSvc)
	webhookAsync := webhook.NewAsyncProcessor(webhookProc, webhook.AsyncConfig{
		QueueSize: cfg.ReviewQueueSize,
		Workers:   cfg.ReviewWorkers,
	})

	// Setup HTTP server
	srv := server.NewServer(cfg)
	handler := handlers.NewHandler(webhookAsync, cfg.WebhookSecret)

	// Register routes
	srv.Router().GET("/health", handler.Health)
	srv.Router().POST("/webhook", handler.GitHubWebhook)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Println("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := webhookAsync.Stop(ctx); err != nil {
		log.Printf("Webhook processor shutdown error: %v", err)
	}

	log.Println("Server exited")
}
