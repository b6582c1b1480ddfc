package candidate

import "time"

// Candidate represents a podcast-guest prospect tracked by the dashboard.
type Candidate struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	SocialHandle        string    `json:"socialHandle"`
	Platform            string    `json:"platform"`
	AdditionalPlatforms []string  `json:"additionalPlatforms"`
	FollowerCount       int       `json:"followerCount"`
	Region              string    `json:"region"`
	Topics              []string  `json:"topics"`
	Description         string    `json:"description"`
	ImageURL            *string   `json:"imageUrl"`
	IsRecommended       bool      `json:"isRecommended"`
	IsFavorite          bool      `json:"isFavorite"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Clone returns a deep copy. The stores hand out clones so callers can never
// mutate the authoritative record in place.
func (c *Candidate) Clone() *Candidate {
	clone := *c
	clone.AdditionalPlatforms = append([]string(nil), c.AdditionalPlatforms...)
	clone.Topics = append([]string(nil), c.Topics...)
	if c.ImageURL != nil {
		url := *c.ImageURL
		clone.ImageURL = &url
	}
	return &clone
}

// Patch holds a partial update. Nil fields are left untouched; id and
// createdAt are never updatable.
type Patch struct {
	Name                *string   `json:"name"`
	SocialHandle        *string   `json:"socialHandle"`
	Platform            *string   `json:"platform"`
	AdditionalPlatforms *[]string `json:"additionalPlatforms"`
	FollowerCount       *int      `json:"followerCount"`
	Region              *string   `json:"region"`
	Topics              *[]string `json:"topics"`
	Description         *string   `json:"description"`
	ImageURL            *string   `json:"imageUrl"`
	IsRecommended       *bool     `json:"isRecommended"`
	IsFavorite          *bool     `json:"isFavorite"`
}

// apply merges the set fields of the patch into the record.
func (p Patch) apply(c *Candidate) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.SocialHandle != nil {
		c.SocialHandle = *p.SocialHandle
	}
	if p.Platform != nil {
		c.Platform = *p.Platform
	}
	if p.AdditionalPlatforms != nil {
		c.AdditionalPlatforms = append([]string(nil), *p.AdditionalPlatforms...)
	}
	if p.FollowerCount != nil {
		c.FollowerCount = *p.FollowerCount
	}
	if p.Region != nil {
		c.Region = *p.Region
	}
	if p.Topics != nil {
		c.Topics = append([]string(nil), *p.Topics...)
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ImageURL != nil {
		url := *p.ImageURL
		c.ImageURL = &url
	}
	if p.IsRecommended != nil {
		c.IsRecommended = *p.IsRecommended
	}
	if p.IsFavorite != nil {
		c.IsFavorite = *p.IsFavorite
	}
}

// isEmpty reports whether the patch carries no fields at all.
func (p Patch) isEmpty() bool {
	return p == Patch{}
}

// # Closed Enumerations

// Platforms is the closed set of supported social platforms.
var Platforms = []string{"tiktok", "instagram", "youtube", "podcast", "other"}

// Regions is the closed set of supported candidate regions.
var Regions = []string{"us", "ca", "uk", "au", "other"}

// Topics is the closed set of content topics a candidate can cover.
var Topics = []string{
	"personal-development",
	"relationships",
	"dating",
	"wellness",
	"self-worth",
	"confidence",
	"mindfulness",
	"emotional-intelligence",
	"life-coaching",
	"podcasting",
	"personal-growth",
	"other",
}

// MaxTopics caps how many topics a candidate may carry.
const MaxTopics = 3

// # Field Identifiers

const (
	FieldName                = "name"
	FieldSocialHandle        = "socialHandle"
	FieldPlatform            = "platform"
	FieldAdditionalPlatforms = "additionalPlatforms"
	FieldFollowerCount       = "followerCount"
	FieldRegion              = "region"
	FieldTopics              = "topics"
	FieldDescription         = "description"
	FieldImageURL            = "imageUrl"
	FieldFollowerRange       = "followerRange"
	FieldSearch              = "search"
	FieldSort                = "sort"
)
