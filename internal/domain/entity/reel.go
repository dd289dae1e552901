package entity

type Reel struct {
	Record
	Title    string `json:"title" firestore:"title"`
	VideoURL string `json:"videoUrl" firestore:"videoUrl"`
	AssetID  string `json:"asset_id" firestore:"assetId"`
}

func (r *Reel) AssetRef() string {
	return r.AssetID
}
