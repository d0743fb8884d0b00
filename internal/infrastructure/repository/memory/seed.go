package memory

import (
	"time"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// DefaultAuthor is credited with submissions made through the public API.
var DefaultAuthor = entity.Author{
	ID:        "user-1",
	Username:  "محرر برومباتي",
	AvatarURL: "https://i.pravatar.cc/150?u=user-1",
	IsPremium: true,
	CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	Bio:       "نجمع أفضل الأوامر للذكاء الاصطناعي باللغة العربية.",
}

var guestAuthor = entity.Author{
	ID:        "user-2",
	Username:  "سارة",
	AvatarURL: "https://i.pravatar.cc/150?u=user-2",
	CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

// SeedPrompts returns the prompts the in-memory repository starts with.
func SeedPrompts() []*entity.Prompt {
	return []*entity.Prompt{
		{
			ID:         "p1",
			Slug:       "marketing-email-writer",
			Title:      "كاتب رسائل تسويقية",
			PromptText: "اكتب رسالة بريد إلكتروني تسويقية لمنتج [اسم المنتج] موجهة إلى [الجمهور المستهدف] بنبرة ودودة ودعوة واضحة لاتخاذ إجراء.",
			Category:   entity.PromptCategoryWriting,
			Level:      entity.PromptLevelBeginner,
			Language:   entity.PromptLanguageArabic,
			Author:     DefaultAuthor,
			Tags:       []string{"تسويق", "بريد إلكتروني", "كتابة"},
			CreatedAt:  day(2024, 6, 1),
			Likes:      10,
			Views:      240,
			Verified:   true,
			Tips:       []string{"حدد الجمهور بدقة", "اطلب أكثر من عنوان للرسالة"},
			Visibility: entity.PromptVisibilityPublic,
		},
		{
			ID:         "p2",
			Slug:       "blog-outline",
			Title:      "مخطط مقال مدونة",
			PromptText: "أنشئ مخططًا تفصيليًا لمقال عن [الموضوع] يتضمن مقدمة وخمسة عناوين فرعية وخاتمة.",
			Category:   entity.PromptCategoryWriting,
			Level:      entity.PromptLevelIntermediate,
			Language:   entity.PromptLanguageArabic,
			Author:     guestAuthor,
			Tags:       []string{"كتابة", "مدونة", "تسويق"},
			CreatedAt:  day(2024, 6, 5),
			Likes:      22,
			Views:      410,
			Verified:   true,
			Visibility: entity.PromptVisibilityPublic,
		},
		{
			ID:         "p3",
			Slug:       "product-description",
			Title:      "وصف منتج لمتجر إلكتروني",
			PromptText: "اكتب وصفًا جذابًا لمنتج [اسم المنتج] في حدود 120 كلمة مع إبراز ثلاث مزايا رئيسية.",
			Category:   entity.PromptCategoryWriting,
			Level:      entity.PromptLevelBeginner,
			Language:   entity.PromptLanguageArabic,
			Author:     DefaultAuthor,
			Tags:       []string{"تسويق", "تجارة إلكترونية"},
			CreatedAt:  day(2024, 5, 20),
			Likes:      7,
			Views:      130,
			Visibility: entity.PromptVisibilityPublic,
		},
		{
			ID:         "p4",
			Slug:       "go-code-review",
			Title:      "مراجعة كود Go",
			PromptText: "راجع الكود التالي المكتوب بلغة Go واقترح تحسينات في الأداء والقراءة ومعالجة الأخطاء:\n[الكود]",
			Category:   entity.PromptCategoryCode,
			Level:      entity.PromptLevelAdvanced,
			Language:   entity.PromptLanguageMultilingual,
			Author:     guestAuthor,
			Tags:       []string{"برمجة", "مراجعة كود", "Go"},
			CreatedAt:  day(2024, 7, 2),
			Likes:      31,
			Views:      520,
			Verified:   true,
			Visibility: entity.PromptVisibilityPublic,
		},
		{
			ID:         "p5",
			Slug:       "sql-query-explainer",
			Title:      "شرح استعلام SQL",
			PromptText: "اشرح استعلام SQL التالي سطرًا بسطر بلغة بسيطة ثم اقترح فهارس مناسبة:\n[الاستعلام]",
			Category:   entity.PromptCategoryCode,
			Level:      entity.PromptLevelIntermediate,
			Language:   entity.PromptLanguageArabic,
			Author:     DefaultAuthor,
			Tags:       []string{"برمجة", "قواعد بيانات"},
			CreatedAt:  day(2024, 4, 18),
			Likes:      15,
			Views:      300,
			Visibility: entity.PromptVisibilityPublic,
		},
		{
			ID:            "p6",
			Slug:          "desert-city-art",
			Title:         "مدينة في الصحراء",
			PromptText:    "A futuristic Arabic city rising from golden desert dunes at sunset, intricate geometric patterns, cinematic lighting, ultra detailed",
			Category:      entity.PromptCategoryImage,
			Level:         entity.PromptLevelIntermediate,
			Language:      entity.PromptLanguageEnglish,
			Author:        guestAuthor,
			Tags:          []string{"صور", "خيال علمي", "عمارة"},
			CreatedAt:     day(2024, 7, 10),
			Likes:         44,
			Views:         800,
			Verified:      true,
			Examples:      []string{"https://picsum.photos/seed/desert/800/600"},
			IsAIGenerated: true,
			Visibility:    entity.PromptVisibilityPublic,
		},
		{
			ID:         "p7",
			Slug:       "business-plan-summary",
			Title:      "ملخص خطة عمل",
			PromptText: "لخص خطة العمل التالية في صفحة واحدة تتضمن المشكلة والحل والسوق المستهدف ونموذج الإيرادات:\n[الخطة]",
			Category:   entity.PromptCategoryBusiness,
			Level:      entity.PromptLevelExpert,
			Language:   entity.PromptLanguageArabic,
			Author:     DefaultAuthor,
			Tags:       []string{"أعمال", "ريادة"},
			CreatedAt:  day(2024, 3, 30),
			Likes:      9,
			Views:      150,
			Visibility: entity.PromptVisibilityPublic,
		},
		{
			ID:         "p8",
			Slug:       "logo-brief",
			Title:      "موجز تصميم شعار",
			PromptText: "صمم موجزًا لشعار علامة تجارية اسمها [الاسم] تعمل في [المجال] مع اقتراح ألوان وخطوط عربية.",
			Category:   entity.PromptCategoryDesign,
			Level:      entity.PromptLevelBeginner,
			Language:   entity.PromptLanguageArabic,
			Author:     guestAuthor,
			Tags:       []string{"تصميم", "هوية بصرية"},
			CreatedAt:  day(2024, 6, 22),
			Likes:      12,
			Views:      190,
			Verified:   true,
			Visibility: entity.PromptVisibilityPublic,
		},
	}
}

// SeedPosts returns the blog posts the in-memory repository starts with.
func SeedPosts() []*entity.Post {
	return []*entity.Post{
		{
			ID:            "b1",
			Title:         "كيف تكتب أمرًا فعالًا للذكاء الاصطناعي",
			Slug:          "how-to-write-effective-prompts",
			ContentHTML:   "<p>الأمر الجيد يبدأ بتحديد الدور والمهمة والسياق.</p><p>أضف أمثلة على المخرجات المتوقعة واطلب تنسيقًا واضحًا.</p>",
			Author:        DefaultAuthor,
			PublishedAt:   day(2024, 7, 12),
			FeaturedImage: "https://picsum.photos/seed/prompts/1200/630",
			IsTrending:    true,
			Tags:          []string{"هندسة الأوامر", "دليل"},
			Views:         1200,
			CommentsCount: 8,
			Reactions:     entity.ReactionCounts{Heart: 5, Insightful: 2, Funny: 0, Fire: 1},
		},
		{
			ID:            "b2",
			Title:         "أفضل أدوات توليد الصور في 2024",
			Slug:          "best-image-generation-tools-2024",
			ContentHTML:   "<p>نستعرض أشهر أدوات توليد الصور ومزايا كل منها.</p><p>لكل أداة أسلوب مختلف في فهم الأوامر.</p>",
			Author:        guestAuthor,
			PublishedAt:   day(2024, 6, 28),
			FeaturedImage: "https://picsum.photos/seed/images/1200/630",
			Tags:          []string{"صور", "أدوات"},
			Views:         860,
			CommentsCount: 3,
			Reactions:     entity.ReactionCounts{Heart: 12, Insightful: 7, Funny: 1, Fire: 4},
		},
		{
			ID:            "b3",
			Title:         "الذكاء الاصطناعي في العمل اليومي",
			Slug:          "ai-in-daily-work",
			ContentHTML:   "<p>من كتابة الرسائل إلى تلخيص الاجتماعات، أصبح الذكاء الاصطناعي شريكًا يوميًا.</p>",
			Author:        DefaultAuthor,
			PublishedAt:   day(2024, 5, 15),
			FeaturedImage: "https://picsum.photos/seed/work/1200/630",
			Tags:          []string{"إنتاجية"},
			Views:         430,
			Reactions:     entity.ReactionCounts{Heart: 3, Insightful: 9},
		},
	}
}
