package content

import (
	"encoding/json"
	"fmt"

	"github.com/anand/career-pilot/internal/types"
)

// Course is one recommended course.
type Course struct {
	Title      string           `json:"title"`
	Duration   string           `json:"duration"`
	Provider   string           `json:"provider"`
	Fee        types.FlexString `json:"fee"`
	URL        string           `json:"url"`
	ButtonText string           `json:"buttonText"`
}

// JobListing is one recommended job opportunity.
type JobListing struct {
	Title      string           `json:"title"`
	Experience types.FlexString `json:"experience"`
	Provider   string           `json:"provider"`
	Salary     types.FlexString `json:"salary"`
	Location   string           `json:"location"`
	URL        string           `json:"url"`
	ButtonText string           `json:"buttonText"`
}

// ExamResource is one exam or certification preparation resource.
type ExamResource struct {
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	ConductingBody     string           `json:"conductingBody"`
	Eligibility        string           `json:"eligibility"`
	ApplicationProcess string           `json:"applicationProcess"`
	ExamDate           string           `json:"examDate"`
	Fee                types.FlexString `json:"fee"`
	Syllabus           types.StringList `json:"syllabus"`
	URL                string           `json:"url"`
	ButtonText         string           `json:"buttonText"`
}

// MockInterview is one mock interview scenario.
type MockInterview struct {
	Title      string           `json:"title"`
	Difficulty string           `json:"difficulty"`
	Duration   string           `json:"duration"`
	Topics     types.StringList `json:"topics"`
	URL        string           `json:"url"`
	ButtonText string           `json:"buttonText"`
}

// SampleQuestion is one practice interview question.
type SampleQuestion struct {
	Subject       string           `json:"subject"`
	Question      string           `json:"question"`
	Options       types.StringList `json:"options,omitempty"`
	CorrectAnswer string           `json:"correctAnswer"`
	Explanation   string           `json:"explanation"`
}

// ProgressMilestone is one locally computed progress item.
type ProgressMilestone struct {
	Milestone   string `json:"milestone"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
}

// Trend is one industry trend.
type Trend struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Action      string `json:"action"`
}

// SalaryInsight is one salary comparison.
type SalaryInsight struct {
	Title         string           `json:"title"`
	AverageSalary types.FlexString `json:"averageSalary"`
	EntrySalary   types.FlexString `json:"entrySalary"`
	SeniorSalary  types.FlexString `json:"seniorSalary"`
	GrowthOutlook string           `json:"growthOutlook"`
}

// StudyMaterial is one study resource.
type StudyMaterial struct {
	Title          string           `json:"title"`
	Type           string           `json:"type"`
	Author         string           `json:"author"`
	Description    string           `json:"description"`
	Difficulty     string           `json:"difficulty"`
	URL            string           `json:"url"`
	Cost           types.FlexString `json:"cost"`
	TimeToComplete string           `json:"timeToComplete"`
}

// RecordSet is the tagged union of category record lists. Exactly one list
// is populated, selected by Category. Raw carries the JSON array the records
// were decoded from, so schema checks see absent fields as absent rather
// than as re-marshaled zero values.
type RecordSet struct {
	Category Category        `json:"category"`
	Raw      json.RawMessage `json:"-"`

	Courses         []Course            `json:"courses,omitempty"`
	Jobs            []JobListing        `json:"jobs,omitempty"`
	ExamResources   []ExamResource      `json:"examResources,omitempty"`
	MockInterviews  []MockInterview     `json:"mockInterviews,omitempty"`
	SampleQuestions []SampleQuestion    `json:"sampleQuestions,omitempty"`
	Progress        []ProgressMilestone `json:"progress,omitempty"`
	Trends          []Trend             `json:"trends,omitempty"`
	Salaries        []SalaryInsight     `json:"salaries,omitempty"`
	StudyMaterials  []StudyMaterial     `json:"studyMaterials,omitempty"`
}

// DecodeRecords decodes a JSON array into the typed record list for the
// category. Unknown fields are dropped; missing fields decode to zero values
// (incomplete records are tolerated, per the display contract).
func DecodeRecords(cat Category, data []byte) (*RecordSet, error) {
	rs := &RecordSet{Category: cat}
	var err error

	switch cat {
	case CategoryCourses:
		err = json.Unmarshal(data, &rs.Courses)
	case CategoryJobs:
		err = json.Unmarshal(data, &rs.Jobs)
	case CategoryExamHelper:
		err = json.Unmarshal(data, &rs.ExamResources)
	case CategoryMockInterview:
		err = json.Unmarshal(data, &rs.MockInterviews)
	case CategorySampleQuestions:
		err = json.Unmarshal(data, &rs.SampleQuestions)
	case CategoryProgress:
		err = json.Unmarshal(data, &rs.Progress)
	case CategoryTrends:
		err = json.Unmarshal(data, &rs.Trends)
	case CategorySalary:
		err = json.Unmarshal(data, &rs.Salaries)
	case CategoryStudyMaterial:
		err = json.Unmarshal(data, &rs.StudyMaterials)
	default:
		return nil, fmt.Errorf("unknown category: %s", cat)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s records: %w", cat, err)
	}
	return rs, nil
}

// Len returns the number of records in the active list.
func (r *RecordSet) Len() int {
	if r == nil {
		return 0
	}
	switch r.Category {
	case CategoryCourses:
		return len(r.Courses)
	case CategoryJobs:
		return len(r.Jobs)
	case CategoryExamHelper:
		return len(r.ExamResources)
	case CategoryMockInterview:
		return len(r.MockInterviews)
	case CategorySampleQuestions:
		return len(r.SampleQuestions)
	case CategoryProgress:
		return len(r.Progress)
	case CategoryTrends:
		return len(r.Trends)
	case CategorySalary:
		return len(r.Salaries)
	case CategoryStudyMaterial:
		return len(r.StudyMaterials)
	}
	return 0
}

// Items returns the active record list for serialization.
func (r *RecordSet) Items() any {
	if r == nil {
		return []any{}
	}
	switch r.Category {
	case CategoryCourses:
		return r.Courses
	case CategoryJobs:
		return r.Jobs
	case CategoryExamHelper:
		return r.ExamResources
	case CategoryMockInterview:
		return r.MockInterviews
	case CategorySampleQuestions:
		return r.SampleQuestions
	case CategoryProgress:
		return r.Progress
	case CategoryTrends:
		return r.Trends
	case CategorySalary:
		return r.Salaries
	case CategoryStudyMaterial:
		return r.StudyMaterials
	}
	return []any{}
}

// Titles returns the display titles of the active records. Used to bias
// related prompts (sample questions reference cached exam titles).
func (r *RecordSet) Titles() []string {
	if r == nil {
		return nil
	}
	var titles []string
	switch r.Category {
	case CategoryCourses:
		for _, c := range r.Courses {
			titles = append(titles, c.Title)
		}
	case CategoryJobs:
		for _, j := range r.Jobs {
			titles = append(titles, j.Title)
		}
	case CategoryExamHelper:
		for _, e := range r.ExamResources {
			titles = append(titles, e.Title)
		}
	case CategoryMockInterview:
		for _, m := range r.MockInterviews {
			titles = append(titles, m.Title)
		}
	case CategoryTrends:
		for _, tr := range r.Trends {
			titles = append(titles, tr.Title)
		}
	case CategorySalary:
		for _, s := range r.Salaries {
			titles = append(titles, s.Title)
		}
	case CategoryStudyMaterial:
		for _, s := range r.StudyMaterials {
			titles = append(titles, s.Title)
		}
	}
	return titles
}
