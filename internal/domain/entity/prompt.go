package entity

import "time"

// PromptCategory groups prompts by the kind of output they target.
type PromptCategory string

const (
	PromptCategoryText     PromptCategory = "TEXT"
	PromptCategoryImage    PromptCategory = "IMAGE"
	PromptCategoryVideo    PromptCategory = "VIDEO"
	PromptCategoryCode     PromptCategory = "CODE"
	PromptCategoryWriting  PromptCategory = "WRITING"
	PromptCategoryBusiness PromptCategory = "BUSINESS"
	PromptCategoryArt      PromptCategory = "ART"
	PromptCategoryDesign   PromptCategory = "DESIGN"
)

// PromptCategoryLabels holds the Arabic display label of each category.
var PromptCategoryLabels = map[PromptCategory]string{
	PromptCategoryText:     "نص",
	PromptCategoryImage:    "صورة",
	PromptCategoryVideo:    "فيديو",
	PromptCategoryCode:     "برمجة",
	PromptCategoryWriting:  "كتابة",
	PromptCategoryBusiness: "أعمال",
	PromptCategoryArt:      "فن",
	PromptCategoryDesign:   "تصميم",
}

// PromptLevel is the expertise a prompt expects from its user.
type PromptLevel string

const (
	PromptLevelBeginner     PromptLevel = "BEGINNER"
	PromptLevelIntermediate PromptLevel = "INTERMEDIATE"
	PromptLevelAdvanced     PromptLevel = "ADVANCED"
	PromptLevelExpert       PromptLevel = "EXPERT"
)

var PromptLevelLabels = map[PromptLevel]string{
	PromptLevelBeginner:     "مبتدئ",
	PromptLevelIntermediate: "متوسط",
	PromptLevelAdvanced:     "متقدم",
	PromptLevelExpert:       "خبير",
}

// PromptLanguage is the language the prompt text is written in.
type PromptLanguage string

const (
	PromptLanguageArabic       PromptLanguage = "ARABIC"
	PromptLanguageEnglish      PromptLanguage = "ENGLISH"
	PromptLanguageMultilingual PromptLanguage = "MULTILINGUAL"
)

var PromptLanguageLabels = map[PromptLanguage]string{
	PromptLanguageArabic:       "عربي",
	PromptLanguageEnglish:      "إنجليزي",
	PromptLanguageMultilingual: "متعدد اللغات",
}

// PromptVisibility controls whether a prompt is listed publicly.
type PromptVisibility string

const (
	PromptVisibilityPublic  PromptVisibility = "public"
	PromptVisibilityPrivate PromptVisibility = "private"
)

// Prompt is a shared AI prompt. Likes is the server-side aggregate that seeds
// a visitor's like counter.
type Prompt struct {
	ID            string           `bson:"_id" json:"id"`
	Slug          string           `bson:"slug,omitempty" json:"slug,omitempty"`
	Title         string           `bson:"title" json:"title"`
	PromptText    string           `bson:"prompt_text" json:"prompt_text"`
	Category      PromptCategory   `bson:"category" json:"category"`
	Level         PromptLevel      `bson:"level" json:"level"`
	Language      PromptLanguage   `bson:"language" json:"language"`
	Author        Author           `bson:"author" json:"author"`
	Tags          []string         `bson:"tags" json:"tags"`
	CreatedAt     time.Time        `bson:"created_at" json:"created_at"`
	Likes         int              `bson:"likes" json:"likes"`
	Views         int              `bson:"views" json:"views"`
	Verified      bool             `bson:"verified" json:"verified"`
	Examples      []string         `bson:"examples,omitempty" json:"examples,omitempty"`
	Tips          []string         `bson:"tips,omitempty" json:"tips,omitempty"`
	IsAIGenerated bool             `bson:"is_ai_generated" json:"is_ai_generated"`
	Visibility    PromptVisibility `bson:"visibility,omitempty" json:"visibility,omitempty"`
}

// HasTag reports whether the prompt carries tag.
func (p *Prompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// GeneratedPrompt is the structured draft returned by the AI generator.
type GeneratedPrompt struct {
	Title      string   `json:"title"`
	PromptText string   `json:"prompt_text"`
	Tags       []string `json:"tags"`
	Tips       string   `json:"tips,omitempty"`
}
