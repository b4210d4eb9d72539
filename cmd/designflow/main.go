package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"desthetik/internal/form"
	"desthetik/internal/llm"
	"desthetik/internal/pipeline"
)

func main() {
	answersPath := flag.String("answers", "", "path to a JSON file with the seven founder answers")
	provider := flag.String("provider", "gemini", "LLM provider: gemini, groq or fake")
	model := flag.String("model", "", "model id (provider default when empty)")
	outDir := flag.String("out", "out", "output directory")
	flag.Parse()
	if *answersPath == "" {
		log.Fatal("--answers is required")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	_ = godotenv.Load()

	raw, err := os.ReadFile(*answersPath)
	if err != nil {
		log.Fatal(err)
	}
	var answers form.Answers
	if err := json.Unmarshal(raw, &answers); err != nil {
		log.Fatalf("parse %s: %v", *answersPath, err)
	}
	if violations := form.Violations(&answers); len(violations) > 0 {
		log.Fatalf("answers are not submittable:\n  %s", strings.Join(violations, "\n  "))
	}

	ctx := context.Background()
	client, err := newClient(ctx, *provider, *model)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()
	log.Printf("provider %s", client.Name())

	p := pipeline.New(client)
	result, err := p.Generate(ctx, &answers, func(stage, message string) {
		log.Printf("[%s] %s", stage, message)
	})
	if err != nil {
		log.Fatalf("generation failed (%s): %v", pipeline.KindOf(err), err)
	}

	if err := os.WriteFile(filepath.Join(*outDir, "detailed.md"), []byte(result.DetailedDesign), 0o644); err != nil {
		log.Fatal(err)
	}
	writeJSON(*outDir, "graph.json", result.Graph)
	log.Printf("wrote %s and %s", filepath.Join(*outDir, "detailed.md"), filepath.Join(*outDir, "graph.json"))
}

func newClient(ctx context.Context, provider, model string) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "groq":
		key := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
		if key == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is not set")
		}
		if model == "" {
			model = "llama-3.3-70b-versatile"
		}
		return llm.NewGroqClient(key, model), nil
	case "fake":
		return llm.NewFakeClient(), nil
	case "gemini":
		if model == "" {
			model = "gemini-2.0-flash"
		}
		return llm.NewGeminiClient(ctx, model)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

func writeJSON(dir, name string, v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		log.Fatal(err)
	}
}
