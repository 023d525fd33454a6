package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dhvanil3103/ats-resume/internal/config"
	"github.com/dhvanil3103/ats-resume/internal/logger"
	"github.com/dhvanil3103/ats-resume/internal/models"
	"github.com/dhvanil3103/ats-resume/internal/services"
)

func main() {
	resumePath := flag.String("resume", "", "path to the resume (.pdf, .txt, .rtf)")
	jobPath := flag.String("job", "", "path to a plain-text job description")
	op := flag.String("op", "all", "summary, similarity, keywords or all")
	flag.Parse()

	if *resumePath == "" {
		log.Fatal("❌ -resume is required")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logr := logger.New(cfg.Log.Level, cfg.Log.Format)
	logr.SetOutput(os.Stderr)

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	extractor := services.NewTextExtractor(logr)
	resume := services.Resume{
		Text:   extractor.Extract(data, filepath.Base(*resumePath)),
		Source: models.ResumeSourceFile,
	}
	logr.Infof("📄 Extracted %d characters from %s", len(resume.Text), *resumePath)

	var jobDescription string
	if *jobPath != "" {
		jd, err := os.ReadFile(*jobPath)
		if err != nil {
			log.Fatalf("❌ Failed to read job description: %v", err)
		}
		jobDescription = string(jd)
	}

	needsJob := *op == "similarity" || *op == "keywords"
	if needsJob && jobDescription == "" {
		log.Fatalf("❌ -job is required for %s", *op)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini, logr)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	analyzer := services.NewAnalyzer(geminiService, nil, logr)
	results := map[string]any{}

	switch *op {
	case "summary":
		results["summary"] = analyzer.Summarize(ctx, resume).Value
	case "similarity":
		results["similarity"] = analyzer.Similarity(ctx, jobDescription, resume).Value
	case "keywords":
		results["keywords"] = analyzer.Keywords(ctx, jobDescription, resume).Value
	case "all":
		results["summary"] = analyzer.Summarize(ctx, resume).Value
		if jobDescription != "" {
			results["similarity"] = analyzer.Similarity(ctx, jobDescription, resume).Value
			results["keywords"] = analyzer.Keywords(ctx, jobDescription, resume).Value
		} else {
			logr.Warn("No -job given, skipping similarity and keywords")
		}
	default:
		log.Fatalf("❌ Unknown operation %q", *op)
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to encode results: %v", err)
	}
	fmt.Println(string(out))
}
