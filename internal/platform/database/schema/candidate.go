package schema

// RefCandidateTable represents the 'candidates' table
type RefCandidateTable struct {
	Table               string
	ID                  string
	Name                string
	SocialHandle        string
	Platform            string
	AdditionalPlatforms string
	FollowerCount       string
	Region              string
	Topics              string
	Description         string
	ImageURL            string
	IsRecommended       string
	IsFavorite          string
	CreatedAt           string
}

// RefCandidate is the schema definition for candidates
var RefCandidate = RefCandidateTable{
	Table:               "candidates",
	ID:                  "id",
	Name:                "name",
	SocialHandle:        "social_handle",
	Platform:            "platform",
	AdditionalPlatforms: "additional_platforms",
	FollowerCount:       "follower_count",
	Region:              "region",
	Topics:              "topics",
	Description:         "description",
	ImageURL:            "image_url",
	IsRecommended:       "is_recommended",
	IsFavorite:          "is_favorite",
	CreatedAt:           "created_at",
}

func (t RefCandidateTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.SocialHandle, t.Platform, t.AdditionalPlatforms,
		t.FollowerCount, t.Region, t.Topics, t.Description, t.ImageURL,
		t.IsRecommended, t.IsFavorite, t.CreatedAt,
	}
}
