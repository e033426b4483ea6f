package api

// Record shapes for the Intercom list endpoints. Every field is optional on
// the wire, so scalars are pointers; absent stays nil instead of turning into
// a zero value we can't tell apart from real data.

// User is one entry from the users list.
type User struct {
	ID             *string         `json:"id"`
	Email          *string         `json:"email"`
	Name           *string         `json:"name"`
	SessionCount   *int64          `json:"session_count"`
	LastRequestAt  *int64          `json:"last_request_at"`
	CreatedAt      *int64          `json:"created_at"`
	UpdatedAt      *int64          `json:"updated_at"`
	LocationData   *Location       `json:"location_data"`
	SocialProfiles *SocialProfiles `json:"social_profiles"`
	Companies      *CompanyRefs    `json:"companies"`
	Segments       *SegmentRefs    `json:"segments"`
	Tags           *TagRefs        `json:"tags"`
}

// Location is the subset of location_data the module reads.
type Location struct {
	CityName    *string `json:"city_name"`
	CountryName *string `json:"country_name"`
	Timezone    *string `json:"timezone"`
}

// SocialProfiles is the wrapper object Intercom nests profile lists in.
type SocialProfiles struct {
	SocialProfiles []SocialProfile `json:"social_profiles"`
}

// SocialProfile is one social-network entry on a user.
type SocialProfile struct {
	Name     string  `json:"name"`
	Username *string `json:"username"`
}

// CompanyRefs, SegmentRefs and TagRefs are the wrapper objects around the
// ID-only references a user record carries.
type CompanyRefs struct {
	Companies []Ref `json:"companies"`
}

type SegmentRefs struct {
	Segments []Ref `json:"segments"`
}

type TagRefs struct {
	Tags []Ref `json:"tags"`
}

// Ref is an ID-only reference to a company, segment or tag.
type Ref struct {
	ID *string `json:"id"`
}

// Company is one entry from the companies list. Name is sometimes absent.
type Company struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// Segment is one entry from the segments list.
type Segment struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// Tag is one entry from the tags list.
type Tag struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}
