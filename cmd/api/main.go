package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"desthetik/internal/config"
	"desthetik/internal/form"
	"desthetik/internal/handler"
	"desthetik/internal/llm"
	"desthetik/internal/pipeline"
	"desthetik/internal/run"
	"desthetik/internal/store/artifact"
	"desthetik/internal/store/design"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	client, err := newLLMClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()
	log.Printf("LLM provider: %s", client.Name())

	sessions := form.NewStore(cfg.Store.SessionPath)
	designs := newDesignStore(cfg.Store)
	defer designs.Close()

	var artifacts *artifact.S3Store
	if cfg.Artifact.Enabled {
		artifacts, err = artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			log.Printf("artifact store disabled: %v", err)
			artifacts = nil
		}
	}

	trace := run.NewTraceLogger(cfg.Store.TraceDir)
	runner := run.NewRunner(sessions, designs, pipeline.New(client), artifacts, trace)
	api := handler.New(sessions, designs, runner)

	log.Printf("Starting API server on %s", cfg.Port)
	log.Fatal(http.ListenAndServe(cfg.Port, h2c.NewHandler(api.Routes(), &http2.Server{})))
}

func newLLMClient(ctx context.Context, cfg config.LLMConfig) (llm.Client, error) {
	switch cfg.Provider {
	case "groq":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is not set")
		}
		return llm.NewGroqClient(cfg.APIKey, cfg.Model), nil
	case "fake":
		return llm.NewFakeClient(), nil
	case "gemini":
		return llm.NewGeminiClient(ctx, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

func newDesignStore(cfg config.StoreConfig) *design.Store {
	if cfg.PostgresDSN != "" {
		s, err := design.NewPostgres(cfg.PostgresDSN)
		if err == nil {
			log.Printf("design store: postgres")
			return s
		}
		log.Printf("postgres design store unavailable, using file store: %v", err)
	}
	return design.New(cfg.DesignPath)
}
