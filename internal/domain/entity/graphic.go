package entity

type Graphic struct {
	Record
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
	AssetID     string `json:"asset_id" firestore:"assetId"`
}

func (g *Graphic) AssetRef() string {
	return g.AssetID
}
