package content

import (
	"fmt"
	"strings"

	"github.com/anand/career-pilot/internal/types"
)

// CurrencyNote is the fixed conversion instruction applied to monetary fields.
const CurrencyNote = "Use a conversion rate of 1 USD = 83 INR if needed."

// categoryTask describes what each category asks the generator for.
var categoryTasks = map[Category]string{
	CategoryCourses:         "relevant courses that would be beneficial for career growth",
	CategoryJobs:            "relevant job opportunities that match this profile",
	CategoryExamHelper:      "relevant exam preparation resources or certifications that would enhance this person's career",
	CategoryMockInterview:   "mock interview scenarios relevant to the skills and industries",
	CategorySampleQuestions: "sample interview questions with answers relevant to the skills and industries",
	CategoryTrends:          "current industry trends that are relevant to these industries",
	CategorySalary:          "salary comparisons for positions relevant to these skills and industries",
	CategoryStudyMaterial:   "study materials that would help this person grow in their field",
}

// monetaryCategories get the currency-conversion instruction.
var monetaryCategories = map[Category]bool{
	CategoryCourses:       true,
	CategoryJobs:          true,
	CategoryExamHelper:    true,
	CategorySalary:        true,
	CategoryStudyMaterial: true,
}

// BuildPrompt converts a category plus the session profile into a generation
// request. It returns "" when the category is unknown, locally computed, or
// the profile is unavailable. The sampleQuestions prompt references cached
// examHelper titles when present to bias question relevance.
func BuildPrompt(cat Category, profile *types.UserProfile, cache *Cache) string {
	spec, ok := categorySpecs[cat]
	if !ok || spec.Local || profile == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Based on this profile:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("- Qualification: %s\n", profile.Qualification))
	sb.WriteString(fmt.Sprintf("- Skills: %s\n", strings.Join(profile.Skills, ", ")))
	sb.WriteString(fmt.Sprintf("- Industries: %s\n", strings.Join(profile.Industries, ", ")))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Generate %d %s.\n", spec.BatchSize, categoryTasks[cat]))

	if cat == CategorySampleQuestions {
		if titles := cachedExamTitles(cache); len(titles) > 0 {
			sb.WriteString(fmt.Sprintf(
				"Prefer questions relevant to these exams the user is preparing for: %s.\n",
				strings.Join(titles, ", ")))
		}
	}

	sb.WriteString("Return ONLY a JSON array with objects containing these fields:\n")
	sb.WriteString(strings.Join(spec.Fields, ", "))
	sb.WriteString(".\n")
	sb.WriteString("Use only the listed fields.\n")
	if monetaryCategories[cat] {
		sb.WriteString(CurrencyNote)
		sb.WriteString("\n")
	}
	sb.WriteString("Don't include any explanations before or after the JSON.")

	return sb.String()
}

// cachedExamTitles returns examHelper titles currently in cache, if any.
func cachedExamTitles(cache *Cache) []string {
	if cache == nil {
		return nil
	}
	entry, ok := cache.Get(CategoryExamHelper)
	if !ok {
		return nil
	}
	return entry.Records.Titles()
}
