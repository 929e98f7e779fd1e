package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/internal/models"
)

// Inputs below these lengths do not carry enough signal for a meaningful
// analysis.
const (
	MinResumeLength         = 150
	MinJobDescriptionLength = 100
)

type AnalyzerService interface {
	Analyze(ctx context.Context, resumePDF []byte, jobDescription string) (*models.Analysis, error)
}

type analyzerService struct {
	pdfParser     PDFParserService
	llmService    LLMService
	promptBuilder *PromptBuilder
	parser        *ResponseParser
	llmTimeout    time.Duration
}

func NewAnalyzerService(
	pdfParser PDFParserService,
	llmService LLMService,
	llmTimeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		pdfParser:     pdfParser,
		llmService:    llmService,
		promptBuilder: NewPromptBuilder(),
		parser:        NewResponseParser(),
		llmTimeout:    llmTimeout,
	}
}

// Analyze runs the sequential pipeline: extract, prompt, infer, parse. All
// state is local to the call; nothing survives the request.
func (a *analyzerService) Analyze(ctx context.Context, resumePDF []byte, jobDescription string) (*models.Analysis, error) {
	if len(jobDescription) < MinJobDescriptionLength {
		return nil, fmt.Errorf("%w: job description too short (needs at least %d characters)",
			ErrInvalidInput, MinJobDescriptionLength)
	}

	log.Println("📄 Extracting resume text...")
	content, err := a.pdfParser.ExtractTextWithMetaData(resumePDF)
	if err != nil {
		return nil, err
	}

	resumeText := CleanText(content.Text)
	if len(resumeText) < MinResumeLength {
		return nil, fmt.Errorf("%w: resume text too short (needs at least %d characters)",
			ErrInvalidInput, MinResumeLength)
	}
	log.Printf("✅ Extracted %d characters from %d pages\n", len(resumeText), content.PageCount)

	prompt := a.promptBuilder.BuildAnalysisPrompt(resumeText, jobDescription)
	log.Printf("📝 Analysis prompt length: %d characters\n", len(prompt))

	// The inference call is the only step that blocks on the network; bound
	// it so a stuck endpoint surfaces as a transport failure.
	llmCtx, cancel := context.WithTimeout(ctx, a.llmTimeout)
	defer cancel()

	log.Println("🤖 Requesting analysis from inference endpoint...")
	completion, err := a.llmService.GenerateText(llmCtx, SystemInstruction, prompt)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Completion received: %d characters\n", len(completion))

	result, err := a.parser.Parse(completion)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Analysis completed, match score %d/100\n", result.MatchScore)

	return &models.Analysis{
		ID:        uuid.New(),
		PageCount: content.PageCount,
		Result:    *result,
	}, nil
}
