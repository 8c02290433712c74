// Package content provides the recovery content catalog and the discovery
// filter over it. The catalog is read-only at runtime and safe to share.
package content

// Kind classifies a content item.
type Kind string

const (
	KindPersonalStory Kind = "personal-story"
	KindWorkout       Kind = "workout"
	KindEducational   Kind = "educational"
	KindMeditation    Kind = "meditation"
	KindAffirmation   Kind = "affirmation"
)

// Media is an optional payload whose shape depends on the item kind:
// workouts carry a video reference and equipment, meditations an audio
// reference. At most one reference field is set.
type Media struct {
	VideoRef  string   `json:"video_ref,omitempty"`
	AudioRef  string   `json:"audio_ref,omitempty"`
	Equipment []string `json:"equipment,omitempty"`
}

// Item is a single entry in the content catalog.
type Item struct {
	ID            int      `json:"id"`
	Kind          Kind     `json:"kind"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Author        string   `json:"author"`
	Date          string   `json:"date"`
	DurationLabel string   `json:"duration"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	LikeCount     int      `json:"likes"`
	CommentCount  int      `json:"comments"`
	Media         *Media   `json:"media,omitempty"`
}

// Categories lists the filter categories in display order. "All" disables
// category filtering.
func Categories() []string {
	return []string{"All", "Personal Testimony", "Fitness", "Education", "Spiritual Guidance", "Affirmations", "Family Support"}
}

// DefaultCatalog returns the built-in daily content catalog in display order.
func DefaultCatalog() []Item {
	return []Item{
		{
			ID:            1,
			Kind:          KindPersonalStory,
			Title:         "Day 1,825: Finding Strength in Vulnerability",
			Description:   "Sharing my experience with accepting help and why it took me 5 years to ask for support.",
			Author:        "Recovery Coach",
			Date:          "2024-01-15",
			DurationLabel: "3 min read",
			Category:      "Personal Testimony",
			Tags:          []string{"vulnerability", "support", "recovery-journey"},
			LikeCount:     47,
			CommentCount:  12,
		},
		{
			ID:            2,
			Kind:          KindWorkout,
			Title:         "Recovery Strength Training: 20-Minute Morning Routine",
			Description:   "A gentle but effective strength training routine designed specifically for people in recovery.",
			Author:        "Recovery Coach",
			Date:          "2024-01-14",
			DurationLabel: "20 min",
			Category:      "Fitness",
			Tags:          []string{"strength-training", "morning-routine", "recovery-fitness"},
			LikeCount:     89,
			CommentCount:  23,
			Media: &Media{
				VideoRef:  "/mock-video/workout-1",
				Equipment: []string{"Dumbbells (optional)", "Yoga mat", "Water bottle"},
			},
		},
		{
			ID:            3,
			Kind:          KindEducational,
			Title:         "Understanding OCD Triggers: A Therapist's Guide",
			Description:   "Professional insights into recognizing and managing OCD triggers in daily life.",
			Author:        "Recovery Coach",
			Date:          "2024-01-13",
			DurationLabel: "5 min read",
			Category:      "Education",
			Tags:          []string{"OCD", "triggers", "mental-health", "coping-strategies"},
			LikeCount:     156,
			CommentCount:  34,
		},
		{
			ID:            4,
			Kind:          KindMeditation,
			Title:         "Christ-Centered Meditation: Finding Peace in Scripture",
			Description:   "A guided meditation focusing on Philippians 4:6-7 for anxiety relief.",
			Author:        "Recovery Coach",
			Date:          "2024-01-12",
			DurationLabel: "15 min",
			Category:      "Spiritual Guidance",
			Tags:          []string{"meditation", "scripture", "anxiety-relief", "peace"},
			LikeCount:     203,
			CommentCount:  45,
			Media:         &Media{AudioRef: "/mock-audio/meditation-1"},
		},
		{
			ID:            5,
			Kind:          KindAffirmation,
			Title:         "Daily Affirmations for Recovery Resilience",
			Description:   "Powerful affirmations to start your day with strength and purpose.",
			Author:        "Recovery Coach",
			Date:          "2024-01-11",
			DurationLabel: "2 min",
			Category:      "Affirmations",
			Tags:          []string{"affirmations", "positive-thinking", "morning-routine"},
			LikeCount:     78,
			CommentCount:  19,
		},
		{
			ID:            6,
			Kind:          KindEducational,
			Title:         "Family Recovery: How to Support Without Enabling",
			Description:   "Practical guidance for family members navigating the recovery journey together.",
			Author:        "Recovery Coach",
			Date:          "2024-01-10",
			DurationLabel: "6 min read",
			Category:      "Family Support",
			Tags:          []string{"family-recovery", "boundaries", "support-vs-enabling"},
			LikeCount:     134,
			CommentCount:  28,
		},
	}
}
