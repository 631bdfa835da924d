package content

import (
	"fmt"
	"time"

	"github.com/anand/career-pilot/internal/types"
)

// progressDateLayout is the display format for milestone timeframes.
const progressDateLayout = "02 Jan 2006"

// BuildProgress computes the progress tab locally and deterministically from
// the profile. It never calls the generator.
func BuildProgress(profile *types.UserProfile, now time.Time) *RecordSet {
	if profile == nil {
		return &RecordSet{Category: CategoryProgress}
	}

	date := now.Format(progressDateLayout)
	return &RecordSet{
		Category: CategoryProgress,
		Progress: []ProgressMilestone{
			{
				Milestone:   "Profile completed",
				Description: fmt.Sprintf("Career profile completed on %s", date),
				Timeframe:   date,
			},
			{
				Milestone:   "Skills added",
				Description: fmt.Sprintf("Added %d skill(s) to your profile", len(profile.Skills)),
				Timeframe:   date,
			},
			{
				Milestone:   "Industries selected",
				Description: fmt.Sprintf("Selected %d industry(ies) of interest", len(profile.Industries)),
				Timeframe:   date,
			},
		},
	}
}
