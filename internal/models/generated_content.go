package models

// GeneratedContent is the parsed result of a generator response.
//
// It is either StructuredContent (the model returned the requested JSON document) or
// RawFallbackContent (the text could not be decoded). Both normalize into a LessonBody.
type GeneratedContent interface {
	Body() LessonBody
	Raw() string
}

// StructuredContent is a generator response that decoded into the fixed lesson shape
type StructuredContent struct {
	Parsed  LessonBody
	RawText string
}

// Body implements GeneratedContent
func (c StructuredContent) Body() LessonBody { return c.Parsed.WithEmptyLists() }

// Raw implements GeneratedContent
func (c StructuredContent) Raw() string { return c.RawText }

const (
	fallbackIntroLength  = 500
	fallbackSectionTitle = "Generated Content"
)

// RawFallbackContent is a generator response that was not valid lesson JSON
type RawFallbackContent struct {
	RawText string
}

// Body wraps the raw text into the fixed lesson shape
func (c RawFallbackContent) Body() LessonBody {
	intro := c.RawText
	if runes := []rune(intro); len(runes) > fallbackIntroLength {
		intro = string(runes[:fallbackIntroLength]) + "..."
	}
	return LessonBody{
		Introduction: intro,
		MainContent:  []ContentSection{{SectionTitle: fallbackSectionTitle, Content: c.RawText}},
	}.WithEmptyLists()
}

// Raw implements GeneratedContent
func (c RawFallbackContent) Raw() string { return c.RawText }
