// Package catalog holds the static service reference data: the bookable
// therapy offerings and the available speaking topics. The data is loaded
// once at process start and never mutated, so it is safe to share across
// every booking session without locking.
package catalog

import "errors"

// ErrUnknownService is returned when a selection names an id not in the catalog.
var ErrUnknownService = errors.New("catalog: unknown service id")

// ServiceOffering is a bookable therapy session type.
type ServiceOffering struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	DurationMinutes    int      `json:"duration_minutes"`
	Price              string   `json:"price"`
	Description        string   `json:"description"`
	Features           []string `json:"features"`
	AvailabilityWindow string   `json:"availability_window"`
}

// Catalog is an immutable, ordered set of service offerings.
type Catalog struct {
	offerings []ServiceOffering
	byID      map[string]int
}

// New builds a catalog from the given offerings. Order is preserved.
func New(offerings []ServiceOffering) *Catalog {
	c := &Catalog{
		offerings: offerings,
		byID:      make(map[string]int, len(offerings)),
	}
	for i, o := range offerings {
		c.byID[o.ID] = i
	}
	return c
}

// Get returns the offering with the given id.
func (c *Catalog) Get(id string) (ServiceOffering, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ServiceOffering{}, false
	}
	return c.offerings[i], true
}

// List returns the offerings in catalog order. The returned slice must not
// be mutated by callers.
func (c *Catalog) List() []ServiceOffering {
	return c.offerings
}

// Default returns the built-in therapy service catalog.
func Default() *Catalog {
	return New([]ServiceOffering{
		{
			ID:              "individual",
			Title:           "Individual Therapy",
			DurationMinutes: 60,
			Price:           "$150",
			Description:     "One-on-one personalized therapy sessions addressing your specific recovery and mental health needs.",
			Features: []string{
				"Personalized treatment plan",
				"Evidence-based approaches",
				"Christ-centered guidance",
				"Trauma-informed care",
				"Addiction recovery focus",
				"Mental health support",
			},
			AvailabilityWindow: "Mon-Fri: 9AM-6PM",
		},
		{
			ID:              "group",
			Title:           "Group Therapy",
			DurationMinutes: 90,
			Price:           "$75",
			Description:     "Supportive group sessions with others on similar recovery journeys, fostering community and shared healing.",
			Features: []string{
				"Peer support network",
				"Shared experiences",
				"Group accountability",
				"Social skills development",
				"Recovery community",
				"Weekly sessions",
			},
			AvailabilityWindow: "Tues & Thurs: 6PM-7:30PM",
		},
		{
			ID:              "family",
			Title:           "Family Therapy",
			DurationMinutes: 75,
			Price:           "$175",
			Description:     "Collaborative sessions for families affected by addiction and mental health challenges, rebuilding relationships.",
			Features: []string{
				"Family system healing",
				"Communication skills",
				"Boundary setting",
				"Trust rebuilding",
				"Codependency recovery",
				"Crisis intervention",
			},
			AvailabilityWindow: "Mon-Sat: Flexible scheduling",
		},
		{
			ID:              "addiction",
			Title:           "Addiction Counseling",
			DurationMinutes: 60,
			Price:           "$160",
			Description:     "Specialized intensive treatment for substance abuse and behavioral addictions with spiritual integration.",
			Features: []string{
				"20+ years experience",
				"Relapse prevention",
				"Spiritual recovery",
				"Detox support",
				"12-step integration",
				"Family involvement",
			},
			AvailabilityWindow: "Daily: Including weekends for urgent needs",
		},
	})
}

// SpeakingTopics lists the presentation topics offered for speaking
// engagements, in display order.
func SpeakingTopics() []string {
	return []string{
		"Overcoming Addiction: A 20-Year Journey",
		"Living with OCD: 37 Years of Management & Recovery",
		"Christ-Centered Recovery: Faith in Healing",
		"Family Recovery: Healing Together",
		"Mental Health Awareness & Stigma",
		"Holistic Wellness & Fitness in Recovery",
		"Trauma-Informed Care & Healing",
		"Professional Therapy Insights",
	}
}
