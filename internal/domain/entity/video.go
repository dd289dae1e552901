package entity

type Video struct {
	Record
	Title    string `json:"title" firestore:"title"`
	VideoURL string `json:"videoUrl" firestore:"videoUrl"`
	AssetID  string `json:"asset_id" firestore:"assetId"`
}

func (v *Video) AssetRef() string {
	return v.AssetID
}
