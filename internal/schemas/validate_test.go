package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidCourses(t *testing.T) {
	doc := `[{
		"title": "Advanced Go",
		"duration": "6 weeks",
		"provider": "Coursera",
		"fee": "INR 4,500",
		"url": "https://www.coursera.org/learn/advanced-go",
		"buttonText": "Enroll Now"
	}]`

	warnings, err := Validate("courses", doc)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_NumericFeeAccepted(t *testing.T) {
	doc := `[{
		"title": "Advanced Go",
		"duration": "6 weeks",
		"provider": "Coursera",
		"fee": 4500,
		"url": "https://example.com",
		"buttonText": "Enroll Now"
	}]`

	warnings, err := Validate("courses", doc)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_MissingFieldWarns(t *testing.T) {
	doc := `[{"title": "Advanced Go"}]`

	warnings, err := Validate("courses", doc)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
}

func TestValidate_UnknownCategoryIsNoop(t *testing.T) {
	warnings, err := Validate("horoscopes", `[{"sign": "leo"}]`)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_EveryCategoryHasLoadableSchema(t *testing.T) {
	for category := range categorySchemas {
		_, err := Validate(category, `[]`)
		assert.NoError(t, err, "schema for %s must load", category)
	}
}
