package content

import (
	"fmt"
	"strings"
	"testing"

	"github.com/anand/career-pilot/internal/types"
)

func testProfile() *types.UserProfile {
	p := &types.UserProfile{
		Name:          "Asha Menon",
		Qualification: "B.Tech Computer Science",
		Skills:        []string{"Go", "SQL"},
		Industries:    []string{"Fintech"},
	}
	p.Normalize()
	return p
}

func TestBuildPrompt_IncludesProfileAndInstructions(t *testing.T) {
	prompt := BuildPrompt(CategoryCourses, testProfile(), nil)

	for _, want := range []string{
		"Asha Menon",
		"B.Tech Computer Science",
		"Go, SQL",
		"Fintech",
		"Generate 6 relevant courses",
		"Return ONLY a JSON array",
		"Use only the listed fields.",
		CurrencyNote,
		"Don't include any explanations before or after the JSON.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\nprompt:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_BatchSizes(t *testing.T) {
	tests := []struct {
		cat   Category
		count int
	}{
		{CategoryCourses, 6},
		{CategoryJobs, 6},
		{CategoryMockInterview, 6},
		{CategoryTrends, 6},
		{CategorySalary, 6},
		{CategoryStudyMaterial, 6},
		{CategoryExamHelper, 4},
		{CategorySampleQuestions, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.cat), func(t *testing.T) {
			prompt := BuildPrompt(tt.cat, testProfile(), nil)
			if !strings.Contains(prompt, fmt.Sprintf("Generate %d ", tt.count)) {
				t.Errorf("prompt for %s does not request %d records:\n%s", tt.cat, tt.count, prompt)
			}
		})
	}
}

func TestBuildPrompt_NilProfileOrUnknownCategory(t *testing.T) {
	if got := BuildPrompt(CategoryCourses, nil, nil); got != "" {
		t.Errorf("nil profile prompt = %q, want empty", got)
	}
	if got := BuildPrompt(Category("astrology"), testProfile(), nil); got != "" {
		t.Errorf("unknown category prompt = %q, want empty", got)
	}
}

func TestBuildPrompt_ProgressNeverPrompts(t *testing.T) {
	if got := BuildPrompt(CategoryProgress, testProfile(), nil); got != "" {
		t.Errorf("progress prompt = %q, want empty", got)
	}
}

func TestBuildPrompt_SampleQuestionsReferencesCachedExamTitles(t *testing.T) {
	cache := NewCache(nil)
	cache.Put(CategoryExamHelper, &RecordSet{
		Category: CategoryExamHelper,
		ExamResources: []ExamResource{
			{Title: "GATE CS"},
			{Title: "AWS Solutions Architect"},
		},
	})

	prompt := BuildPrompt(CategorySampleQuestions, testProfile(), cache)
	if !strings.Contains(prompt, "GATE CS, AWS Solutions Architect") {
		t.Errorf("prompt does not reference cached exam titles:\n%s", prompt)
	}

	// Without cached exam data the bias line is absent entirely.
	bare := BuildPrompt(CategorySampleQuestions, testProfile(), NewCache(nil))
	if strings.Contains(bare, "preparing for") {
		t.Errorf("prompt references exams with empty cache:\n%s", bare)
	}
}

func TestBuildPrompt_MonetaryCategoriesCarryConversionRate(t *testing.T) {
	withMoney := []Category{CategoryCourses, CategoryJobs, CategoryExamHelper, CategorySalary, CategoryStudyMaterial}
	withoutMoney := []Category{CategoryMockInterview, CategorySampleQuestions, CategoryTrends}

	for _, cat := range withMoney {
		if !strings.Contains(BuildPrompt(cat, testProfile(), nil), CurrencyNote) {
			t.Errorf("%s prompt missing currency note", cat)
		}
	}
	for _, cat := range withoutMoney {
		if strings.Contains(BuildPrompt(cat, testProfile(), nil), CurrencyNote) {
			t.Errorf("%s prompt should not carry currency note", cat)
		}
	}
}
