package entity

// ProjectCategories is the set of values accepted for Project.Category.
var ProjectCategories = []string{"Branding", "Motion", "Social Media", "UI/UX", "Design", "Video"}

type Project struct {
	Record
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Category    string `json:"category" firestore:"category"`
	Link        string `json:"link" firestore:"link"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
	AssetID     string `json:"asset_id,omitempty" firestore:"assetId,omitempty"`
}

// AssetRef may be empty for records created before images moved to the asset
// host; delete skips the asset call for those.
func (p *Project) AssetRef() string {
	return p.AssetID
}
