package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dhvanil3103/ats-resume/internal/models"
)

const (
	FallbackSummary               = "Unable to generate resume summary."
	FallbackSimilarityUnparseable = "Unable to analyze similarity."
	FallbackSimilarityError       = "Error analyzing similarity."
	FallbackKeywordsError         = "Error analyzing keywords. Please try again."
	FallbackCoverLetter           = "Unable to generate cover letter."
	FallbackScore                 = "0%"
)

// Outcome is either the interpreted model answer or, when Fallback is set, the
// documented substitute value. Cause keeps the underlying error for logging.
type Outcome[T any] struct {
	Value    T
	Fallback bool
	Cause    error
}

func success[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value}
}

func fallback[T any](value T, cause error) Outcome[T] {
	return Outcome[T]{Value: value, Fallback: true, Cause: cause}
}

// Resume is normalized resume text plus where it came from.
type Resume struct {
	Text   string
	Source models.ResumeSource
}

type CoverLetterRequest struct {
	Personal       models.PersonalInfo
	Company        models.CompanyInfo
	JobDescription string
	Resume         Resume
}

// EventRecorder stores usage events. Implemented by
// repositories.AnalysisEventRepository.
type EventRecorder interface {
	Create(ctx context.Context, event *models.AnalysisEvent) error
}

type noopRecorder struct{}

func (noopRecorder) Create(context.Context, *models.AnalysisEvent) error { return nil }

// NoopRecorder is used when the event store is disabled.
func NoopRecorder() EventRecorder {
	return noopRecorder{}
}

type Analyzer interface {
	Summarize(ctx context.Context, resume Resume) Outcome[string]
	Similarity(ctx context.Context, jobDescription string, resume Resume) Outcome[models.SimilarityResult]
	Keywords(ctx context.Context, jobDescription string, resume Resume) Outcome[models.KeywordsResult]
	CoverLetter(ctx context.Context, req CoverLetterRequest) Outcome[string]
}

type analyzer struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	recorder      EventRecorder
	log           *logrus.Logger
}

func NewAnalyzer(generator TextGenerator, recorder EventRecorder, log *logrus.Logger) Analyzer {
	if recorder == nil {
		recorder = NoopRecorder()
	}
	return &analyzer{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		recorder:      recorder,
		log:           log,
	}
}

// Summarize implements Analyzer.
func (a *analyzer) Summarize(ctx context.Context, resume Resume) Outcome[string] {
	started := time.Now()
	prompt := a.promptBuilder.BuildSummaryPrompt(resume.Text)

	out := func() Outcome[string] {
		response, err := a.generator.GenerateText(ctx, prompt)
		if err != nil {
			return fallback(FallbackSummary, err)
		}
		summary, err := ParseText(response)
		if err != nil {
			return fallback(FallbackSummary, err)
		}
		return success(summary)
	}()

	a.finish(ctx, models.OperationSummary, resume.Source, started, out.Fallback, out.Cause)
	return out
}

// Similarity implements Analyzer.
func (a *analyzer) Similarity(ctx context.Context, jobDescription string, resume Resume) Outcome[models.SimilarityResult] {
	started := time.Now()
	prompt := a.promptBuilder.BuildSimilarityPrompt(jobDescription, resume.Text)

	out := func() Outcome[models.SimilarityResult] {
		response, err := a.generator.GenerateText(ctx, prompt)
		if err != nil {
			return fallback(models.SimilarityResult{
				SimilarityScore:       FallbackScore,
				SimilarityExplanation: FallbackSimilarityError,
			}, err)
		}
		result, err := ParseSimilarity(response)
		if err != nil {
			return fallback(models.SimilarityResult{
				SimilarityScore:       FallbackScore,
				SimilarityExplanation: FallbackSimilarityUnparseable,
			}, err)
		}
		return success(result)
	}()

	a.finish(ctx, models.OperationSimilarity, resume.Source, started, out.Fallback, out.Cause)
	return out
}

// Keywords implements Analyzer.
func (a *analyzer) Keywords(ctx context.Context, jobDescription string, resume Resume) Outcome[models.KeywordsResult] {
	started := time.Now()
	prompt := a.promptBuilder.BuildKeywordsPrompt(jobDescription, resume.Text)

	var out Outcome[models.KeywordsResult]
	response, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		out = fallback(models.KeywordsResult{
			MissingKeywords:         []string{},
			OptimizationSuggestions: FallbackKeywordsError,
		}, err)
	} else {
		out = success(ParseKeywords(response))
	}

	a.finish(ctx, models.OperationKeywords, resume.Source, started, out.Fallback, out.Cause)
	return out
}

// CoverLetter implements Analyzer.
func (a *analyzer) CoverLetter(ctx context.Context, req CoverLetterRequest) Outcome[string] {
	started := time.Now()
	prompt := a.promptBuilder.BuildCoverLetterPrompt(req.Personal, req.Company, req.JobDescription, req.Resume.Text)

	out := func() Outcome[string] {
		response, err := a.generator.GenerateText(ctx, prompt)
		if err != nil {
			return fallback(FallbackCoverLetter, err)
		}
		letter, err := ParseText(response)
		if err != nil {
			return fallback(FallbackCoverLetter, err)
		}
		return success(letter)
	}()

	a.finish(ctx, models.OperationCoverLetter, req.Resume.Source, started, out.Fallback, out.Cause)
	return out
}

// finish logs the fallback cause, if any, and records a usage event.
func (a *analyzer) finish(ctx context.Context, op models.Operation, source models.ResumeSource, started time.Time, degraded bool, cause error) {
	elapsed := time.Since(started)
	entry := a.log.WithFields(logrus.Fields{
		"operation":   op,
		"duration_ms": elapsed.Milliseconds(),
	})

	event := &models.AnalysisEvent{
		ID:           uuid.New(),
		Operation:    op,
		ResumeSource: source,
		Fallback:     degraded,
		DurationMS:   elapsed.Milliseconds(),
		CreatedAt:    time.Now(),
	}

	if degraded {
		event.Cause = fmt.Sprint(cause)
		entry.WithField("error", cause).Warn("Analysis degraded to fallback value")
	} else {
		entry.Info("Analysis completed")
	}

	if err := a.recorder.Create(ctx, event); err != nil {
		entry.WithField("error", err).Warn("Failed to record analysis event")
	}
}
