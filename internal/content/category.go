// Package content implements the dashboard content orchestrator: prompt
// building, generation, response parsing, and per-category caching.
package content

// Category identifies one dashboard content tab.
type Category string

// Dashboard content categories.
const (
	CategoryCourses         Category = "courses"
	CategoryJobs            Category = "jobs"
	CategoryExamHelper      Category = "examHelper"
	CategoryMockInterview   Category = "mockInterview"
	CategorySampleQuestions Category = "sampleQuestions"
	CategoryProgress        Category = "progress"
	CategoryTrends          Category = "trends"
	CategorySalary          Category = "salary"
	CategoryStudyMaterial   Category = "studyMaterial"
)

// AllCategories lists every category in dashboard tab order.
var AllCategories = []Category{
	CategoryCourses,
	CategoryJobs,
	CategoryExamHelper,
	CategoryMockInterview,
	CategorySampleQuestions,
	CategoryProgress,
	CategoryTrends,
	CategorySalary,
	CategoryStudyMaterial,
}

// categorySpec holds the generation contract for one category.
type categorySpec struct {
	// BatchSize is the record count requested from the generator.
	BatchSize int
	// Fields are the output field instructions, in order.
	Fields []string
	// Local marks categories computed from the profile without generation.
	Local bool
}

var categorySpecs = map[Category]categorySpec{
	CategoryCourses: {
		BatchSize: 6,
		Fields: []string{
			"title",
			"duration",
			"provider",
			"fee (in INR)",
			"url (a real course website from platforms like Coursera, Udemy, or edX)",
			`buttonText (set as "Enroll Now")`,
		},
	},
	CategoryJobs: {
		BatchSize: 6,
		Fields: []string{
			"title",
			"experience",
			"provider",
			"salary (in INR)",
			"location",
			"url (a real job posting website like LinkedIn, Indeed, or Naukri)",
			`buttonText (set as "Apply Now")`,
		},
	},
	CategoryExamHelper: {
		BatchSize: 4,
		Fields: []string{
			"title",
			"description",
			"conductingBody",
			"eligibility",
			"applicationProcess",
			"examDate",
			"fee (in INR)",
			"syllabus (array of topic strings)",
			"url (the official exam or certification website)",
			`buttonText (set as "Access Now")`,
		},
	},
	CategoryMockInterview: {
		BatchSize: 6,
		Fields: []string{
			"title",
			"difficulty",
			"duration",
			"topics (array of topic strings)",
			"url (a real interview practice website like Interviewing.io, Pramp, or LeetCode)",
			`buttonText (set as "Start Practice")`,
		},
	},
	CategorySampleQuestions: {
		BatchSize: 5,
		Fields: []string{
			"subject",
			"question",
			"options (array of answer choices, only for multiple-choice questions)",
			"correctAnswer",
			"explanation",
		},
	},
	CategoryProgress: {
		BatchSize: 3,
		Local:     true,
		Fields:    []string{"milestone", "description", "timeframe"},
	},
	CategoryTrends: {
		BatchSize: 6,
		Fields: []string{
			"title",
			"description",
			"impact",
			"action",
		},
	},
	CategorySalary: {
		BatchSize: 6,
		Fields: []string{
			"title",
			"averageSalary (in INR)",
			"entrySalary (in INR)",
			"seniorSalary (in INR)",
			"growthOutlook",
		},
	},
	CategoryStudyMaterial: {
		BatchSize: 6,
		Fields: []string{
			"title",
			"type",
			"author",
			"description",
			"difficulty",
			"url (a real resource website)",
			"cost (in INR, or \"Free\")",
			"timeToComplete",
		},
	},
}

// ParseCategory returns the category for a tab name.
func ParseCategory(s string) (Category, bool) {
	cat := Category(s)
	_, ok := categorySpecs[cat]
	return cat, ok
}

// Known reports whether the category has a defined contract.
func (c Category) Known() bool {
	_, ok := categorySpecs[c]
	return ok
}

// Local reports whether the category is computed locally from the profile
// instead of requested from the generator.
func (c Category) Local() bool {
	return categorySpecs[c].Local
}

// BatchSize returns the record count requested for the category.
func (c Category) BatchSize() int {
	return categorySpecs[c].BatchSize
}
