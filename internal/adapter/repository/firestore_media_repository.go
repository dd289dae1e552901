package repository

import (
	"cloud.google.com/go/firestore"

	"artfolio/internal/domain/entity"
	"artfolio/internal/domain/repository"
)

func NewFirestoreGraphicRepository(client *firestore.Client) repository.GraphicRepository {
	return &firestoreCollection[entity.Graphic, *entity.Graphic]{
		client: client,
		name:   "graphics",
		kind:   "Graphic",
	}
}

func NewFirestoreReelRepository(client *firestore.Client) repository.ReelRepository {
	return &firestoreCollection[entity.Reel, *entity.Reel]{
		client: client,
		name:   "reels",
		kind:   "Reel",
	}
}

func NewFirestoreVideoRepository(client *firestore.Client) repository.VideoRepository {
	return &firestoreCollection[entity.Video, *entity.Video]{
		client: client,
		name:   "videos",
		kind:   "Video",
	}
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreCollection[entity.Project, *entity.Project]{
		client: client,
		name:   "projects",
		kind:   "Project",
	}
}
