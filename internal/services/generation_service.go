package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/learnanyskills/backend/internal/llm"
	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

// LessonRepository is the interface that wraps methods for Lessons table data access
type LessonRepository interface {
	// Method GetActiveByID retrieve an active lesson together with its course title and cached content summary.
	//
	// If the lesson does not exist or is archived, an error wrapping models.ErrNotFound is returned together with "nil" value.
	GetActiveByID(ctx context.Context, id int) (*models.LessonWithCourse, error)
	// Method GetActiveByCourseID retrieve the active lessons of a course ordered by lesson number.
	//
	// An empty, non-nil slice is returned when the course has no active lessons.
	GetActiveByCourseID(ctx context.Context, courseID int) ([]models.LessonListItem, error)
}

// LessonContentRepository is the interface that wraps read access to cached lesson content
type LessonContentRepository interface {
	// Method GetByLessonID retrieve the cached content of a lesson.
	//
	// If nothing was cached yet, an error wrapping models.ErrNotFound is returned.
	GetByLessonID(ctx context.Context, lessonID int) (*models.LessonContent, error)
}

// ContentGenerator is the interface of the external chat-completions provider
type ContentGenerator interface {
	// Method Complete sends one completion request and returns the text of the first choice.
	//
	// No retry is performed. The call is bounded by the deadline of "ctx".
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

// JobDispatcher is the interface that schedules fire-and-forget persistence work
type JobDispatcher interface {
	// Method EnqueueContentCache schedules an upsert of generated lesson content.
	//
	// Execution is best effort: failures are logged by the worker and never retried.
	EnqueueContentCache(ctx context.Context, job models.ContentCacheJob) error
	// Method EnqueueProgressInit schedules creation of a 0% progress row when none exists.
	EnqueueProgressInit(ctx context.Context, job models.ProgressInitJob) error
}

const (
	contentGenerationTimeout  = 60 * time.Second
	overviewGenerationTimeout = 30 * time.Second

	contentSystemPrompt  = "You are an expert educator and curriculum designer. Create engaging, clear, and comprehensive lesson content that helps students learn effectively. Always respond with valid JSON."
	overviewSystemPrompt = "You are an expert educator. Create engaging, motivating lesson overviews that get students excited about learning."

	cachedSectionTitle  = "Content"
	cachedIntroFallback = "Lesson content"
)

const contentPromptTemplate = `
You are an expert educator creating a comprehensive lesson for an online learning platform.

Course: %s
Lesson: %s
Description: %s
Duration: %s

Learning Objectives:
%s

Please create a well-structured lesson that includes:

1. **Introduction** (2-3 paragraphs): Engaging opening that explains what students will learn and why it's important
2. **Main Content** (4-6 sections): Core concepts explained in clear, easy-to-understand paragraphs
3. **Code Examples** (if applicable): Minimal, well-commented code snippets that demonstrate key concepts
4. **Key Takeaways** (3-5 bullet points): Main concepts students should remember
5. **Practice Exercise** (1-2 exercises): Hands-on activities to reinforce learning

Guidelines:
- Use clear, conversational language appropriate for beginners to intermediate learners
- Break complex concepts into digestible chunks
- Include practical examples relevant to real-world scenarios
- Keep code examples minimal and well-commented
- Focus on understanding concepts rather than memorization
- Make it engaging and interactive where possible

Format your response as valid JSON with the following structure:
{
    "introduction": "...",
    "main_content": [
        {
            "section_title": "...",
            "content": "..."
        }
    ],
    "code_examples": [
        {
            "title": "...",
            "code": "...",
            "explanation": "..."
        }
    ],
    "key_takeaways": ["..."],
    "practice_exercises": [
        {
            "title": "...",
            "description": "...",
            "difficulty": "beginner|intermediate|advanced"
        }
    ]
}
`

const overviewPromptTemplate = `
Create a brief, engaging overview for the following lesson:

Course: %s
Lesson: %s
Description: %s

Write a 2-3 paragraph overview that:
- Introduces the lesson topic in an engaging way
- Explains what students will learn
- Motivates students to begin the lesson

Keep it concise, clear, and exciting. Focus on the practical value and real-world applications.
`

type generationService struct {
	lessonRepo  LessonRepository
	contentRepo LessonContentRepository
	generator   ContentGenerator
	dispatcher  JobDispatcher
	logger      *zap.Logger
	now         func() time.Time
}

// NewGenerationService creates a new lesson content generation service
func NewGenerationService(
	lessonRepo LessonRepository,
	contentRepo LessonContentRepository,
	generator ContentGenerator,
	dispatcher JobDispatcher,
	logger *zap.Logger,
) *generationService {
	return &generationService{
		lessonRepo:  lessonRepo,
		contentRepo: contentRepo,
		generator:   generator,
		dispatcher:  dispatcher,
		logger:      logger,
		now:         time.Now,
	}
}

// GenerateOrFetch returns the cached content of a lesson or generates it
//
// On a cache miss the generator is called once; the result is cached and, for a
// non-anonymous userID, a progress row is initialized, both in the background.
// Generator failures are returned as *GenerationError.
func (s *generationService) GenerateOrFetch(ctx context.Context, lessonID int, userID string) (*models.GeneratedLesson, error) {
	lesson, err := s.getLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	ref := models.LessonRef{
		ID:          lesson.ID,
		Title:       lesson.Title,
		CourseTitle: lesson.CourseTitle,
	}

	cached, err := s.contentRepo.GetByLessonID(ctx, lessonID)
	if err == nil {
		return &models.GeneratedLesson{
			Lesson:      ref,
			Content:     bodyFromCache(cached),
			Cached:      true,
			GeneratedAt: cached.GeneratedAt,
		}, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.logger.Error("failed to get cached lesson content", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, fmt.Errorf("failed to get lesson content: %w", err)
	}

	// The upstream call outlives a disconnected client
	genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), contentGenerationTimeout)
	defer cancel()

	zero := 0.0
	raw, err := s.generator.Complete(genCtx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: "system", Content: contentSystemPrompt},
			{Role: "user", Content: buildContentPrompt(lesson)},
		},
		Temperature:      0.7,
		MaxTokens:        4000,
		TopP:             1,
		FrequencyPenalty: &zero,
		PresencePenalty:  &zero,
	})
	if err != nil {
		s.logger.Warn("lesson content generation failed", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, &GenerationError{Err: err}
	}

	content := parseGeneratedContent(raw)
	body := content.Body()
	generatedAt := s.now()

	jobCtx := context.WithoutCancel(ctx)
	cacheJob := models.ContentCacheJob{
		LessonID:    lessonID,
		RawContent:  content.Raw(),
		Body:        body,
		GeneratedAt: generatedAt,
	}
	if err := s.dispatcher.EnqueueContentCache(jobCtx, cacheJob); err != nil {
		s.logger.Error("failed to schedule lesson content caching", zap.Int("lesson_id", lessonID), zap.Error(err))
	}

	if userID != "" && userID != models.AnonymousUserID {
		progressJob := models.ProgressInitJob{
			UserID:   userID,
			LessonID: lessonID,
			CourseID: lesson.CourseID,
		}
		if err := s.dispatcher.EnqueueProgressInit(jobCtx, progressJob); err != nil {
			s.logger.Error("failed to schedule progress initialization",
				zap.Int("lesson_id", lessonID),
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	return &models.GeneratedLesson{
		Lesson:      ref,
		Content:     body,
		Cached:      false,
		GeneratedAt: generatedAt,
	}, nil
}

// GetCachedContent returns previously generated content without calling the generator
//
// Returns ErrContentNotGenerated when the lesson exists but nothing was cached yet.
func (s *generationService) GetCachedContent(ctx context.Context, lessonID int) (*models.CachedLesson, error) {
	lesson, err := s.getLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	cached, err := s.contentRepo.GetByLessonID(ctx, lessonID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrContentNotGenerated
	}
	if err != nil {
		s.logger.Error("failed to get cached lesson content", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, fmt.Errorf("failed to get lesson content: %w", err)
	}

	return &models.CachedLesson{
		Lesson: models.LessonRef{
			ID:          lesson.ID,
			Title:       lesson.Title,
			CourseTitle: lesson.CourseTitle,
		},
		Content:     bodyFromCache(cached),
		GeneratedAt: cached.GeneratedAt,
	}, nil
}

// GenerateOverview returns a short motivational overview of a lesson
//
// Generator failures never surface: a templated overview is returned with AIGenerated set to false.
func (s *generationService) GenerateOverview(ctx context.Context, lessonID int) (*models.LessonOverview, error) {
	lesson, err := s.getLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	result := &models.LessonOverview{
		Lesson: models.LessonOverviewInfo{
			ID:                 lesson.ID,
			Title:              lesson.Title,
			Description:        lesson.Description,
			CourseTitle:        lesson.CourseTitle,
			EstimatedDuration:  lesson.EstimatedDuration,
			LearningObjectives: lesson.LearningObjectives,
		},
	}

	genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), overviewGenerationTimeout)
	defer cancel()

	raw, err := s.generator.Complete(genCtx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: "system", Content: overviewSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(overviewPromptTemplate, lesson.CourseTitle, lesson.Title, lesson.Description)},
		},
		Temperature: 0.8,
		MaxTokens:   500,
		TopP:        1,
	})

	switch {
	case err == nil:
		result.Overview = strings.TrimSpace(raw)
		result.AIGenerated = true
	case errors.Is(err, llm.ErrNoChoices):
		result.Overview = fmt.Sprintf("Get ready to dive into %s! This lesson will provide you with essential knowledge and practical skills that you can apply immediately.", lesson.Title)
	default:
		s.logger.Warn("overview generation failed, using fallback", zap.Int("lesson_id", lessonID), zap.Error(err))
		result.Overview = fmt.Sprintf("Welcome to %s! In this lesson, you'll learn %s. Let's get started on this exciting learning journey!", lesson.Title, strings.ToLower(lesson.Description))
	}

	return result, nil
}

func (s *generationService) getLesson(ctx context.Context, lessonID int) (*models.LessonWithCourse, error) {
	lesson, err := s.lessonRepo.GetActiveByID(ctx, lessonID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("failed to get lesson", zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return lesson, nil
}

// buildContentPrompt renders the lesson generation prompt with objectives as "- " bullets
func buildContentPrompt(lesson *models.LessonWithCourse) string {
	objectives := make([]string, 0, len(lesson.LearningObjectives))
	for _, objective := range lesson.LearningObjectives {
		objectives = append(objectives, "- "+objective)
	}

	return fmt.Sprintf(contentPromptTemplate,
		lesson.CourseTitle,
		lesson.Title,
		lesson.Description,
		lesson.EstimatedDuration,
		strings.Join(objectives, "\n"),
	)
}

// parseGeneratedContent decodes the generator text into the fixed lesson shape
//
// Anything that is not a JSON object of that shape becomes RawFallbackContent.
func parseGeneratedContent(raw string) models.GeneratedContent {
	var body models.LessonBody
	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return models.RawFallbackContent{RawText: raw}
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return models.RawFallbackContent{RawText: raw}
	}
	return models.StructuredContent{Parsed: body, RawText: raw}
}

// bodyFromCache rebuilds the lesson body from a cached row
//
// The stored raw text is parsed first; when it is not lesson JSON, the body is
// synthesized from the summary and the structured columns.
func bodyFromCache(content *models.LessonContent) models.LessonBody {
	if parsed, ok := parseGeneratedContent(content.RawContent).(models.StructuredContent); ok {
		return parsed.Body()
	}

	intro := content.ContentSummary
	if intro == "" {
		intro = cachedIntroFallback
	}

	return models.LessonBody{
		Introduction:      intro,
		MainContent:       []models.ContentSection{{SectionTitle: cachedSectionTitle, Content: content.RawContent}},
		CodeExamples:      content.CodeExamples,
		KeyTakeaways:      content.KeyConcepts,
		PracticeExercises: content.Exercises,
	}.WithEmptyLists()
}
