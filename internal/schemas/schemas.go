// Package schemas provides best-effort JSON Schema validation for generated
// category records. Validation is advisory: generated content that violates a
// schema is still displayed, but the violations are reported so callers can
// log them.
package schemas

// Category record schemas. Field contracts mirror the generation prompts;
// everything beyond the required display fields is tolerated.
var categorySchemas = map[string]string{
	"courses": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "duration", "provider", "fee", "url", "buttonText"],
			"properties": {
				"title": {"type": "string", "minLength": 1},
				"duration": {"type": "string"},
				"provider": {"type": "string"},
				"fee": {"type": ["string", "number"]},
				"url": {"type": "string"},
				"buttonText": {"type": "string"}
			}
		}
	}`,
	"jobs": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "experience", "provider", "salary", "location", "url", "buttonText"],
			"properties": {
				"title": {"type": "string", "minLength": 1},
				"experience": {"type": ["string", "number"]},
				"provider": {"type": "string"},
				"salary": {"type": ["string", "number"]},
				"location": {"type": "string"},
				"url": {"type": "string"},
				"buttonText": {"type": "string"}
			}
		}
	}`,
	"examHelper": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "description", "conductingBody", "eligibility", "applicationProcess", "examDate", "fee", "syllabus", "url", "buttonText"],
			"properties": {
				"title": {"type": "string", "minLength": 1},
				"description": {"type": "string"},
				"conductingBody": {"type": "string"},
				"eligibility": {"type": "string"},
				"applicationProcess": {"type": "string"},
				"examDate": {"type": "string"},
				"fee": {"type": ["string", "number"]},
				"syllabus": {"type": ["array", "string"]},
				"url": {"type": "string"},
				"buttonText": {"type": "string"}
			}
		}
	}`,
	"mockInterview": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "difficulty", "duration", "topics", "url", "buttonText"],
			"properties": {
				"title": {"type": "string", "minLength": 1},
				"difficulty": {"type": "string"},
				"duration": {"type": "string"},
				"topics": {"type": ["array", "string"]},
				"url": {"type": "string"},
				"buttonText": {"type": "string"}
			}
		}
	}`,
	"sampleQuestions": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["subject", "question", "correctAnswer", "explanation"],
			"properties": {
				"subject": {"type": "string"},
				"question": {"type": "string", "minLength": 1},
				"options": {"type": ["array", "string"]},
				"correctAnswer": {"type": "string"},
				"explanation": {"type": "string"}
			}
		}
	}`,
	"progress": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["milestone", "description", "timeframe"],
			"properties": {
				"milestone": {"type": "string", "minLength": 1},
				"description": {"type": "string"},
				"timeframe": {"type": "string"}
			}
		}
	}`,
	"trends": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "description", "impact", "action"],
			"properties": {
				"title": {"type": "string", "minLength": 1},
				"description": {"type": "string"},
				"impact": {"type": "string"},
				"action": {"type": "string"}
			}
		}
	}`,
	"salary": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "averageSalary", "entrySalary", "seniorSalary", "growthOutlook"],
			"properties": {
				"title": {"type": "string", "minLength": 1},
				"averageSalary": {"type": ["string", "number"]},
				"entrySalary": {"type": ["string", "number"]},
				"seniorSalary": {"type": ["string", "number"]},
				"growthOutlook": {"type": "string"}
			}
		}
	}`,
	"studyMaterial": `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["title", "type", "author", "description", "difficulty", "url", "cost", "timeToComplete"],
			"properties": {
				"title": {"type": "string", "minLength": 1},
				"type": {"type": "string"},
				"author": {"type": "string"},
				"description": {"type": "string"},
				"difficulty": {"type": "string"},
				"url": {"type": "string"},
				"cost": {"type": ["string", "number"]},
				"timeToComplete": {"type": "string"}
			}
		}
	}`,
}

// SchemaFor returns the JSON Schema source for a category, if defined.
func SchemaFor(category string) (string, bool) {
	s, ok := categorySchemas[category]
	return s, ok
}
