package main

import (
	"fmt"
	"time"

	"music-library/internal/entity"
	"music-library/internal/repo/persistent"
	"music-library/pkg/config"
	"music-library/pkg/database"
	"music-library/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account and a small starter catalog for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)
	songRepo := persistent.NewSongRepository(db)

	admin, err := userRepo.GetByUsername("admin")
	if err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}
		admin = &entity.User{
			Username:    "admin",
			Email:       "admin@musiclibrary.local",
			PhoneNumber: "+10000000000",
			Password:    string(hashed),
			Role:        entity.RoleAdmin,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Error("Failed to seed admin user: %v", err)
			panic(err)
		}
		log.Info("Seeded admin user %s", admin.ID)
	} else {
		log.Info("Admin user already present, skipping")
	}

	songs := []*entity.Song{
		{
			Name:          "Alpha",
			Singer:        "Asha Rao",
			MusicDirector: "V. Kumar",
			ReleaseDate:   time.Date(2019, 6, 14, 0, 0, 0, 0, time.UTC),
			Album:         "First Light",
			Visibility:    true,
		},
		{
			Name:          "Midnight Rain",
			Singer:        "Leo Fernandes",
			MusicDirector: "V. Kumar",
			ReleaseDate:   time.Date(2021, 2, 5, 0, 0, 0, 0, time.UTC),
			Album:         "Monsoon",
			Visibility:    true,
		},
		{
			Name:          "Hidden Track",
			Singer:        "Asha Rao",
			MusicDirector: "S. Iyer",
			ReleaseDate:   time.Date(2022, 11, 30, 0, 0, 0, 0, time.UTC),
			Album:         "Monsoon",
			Visibility:    false,
		},
	}

	existing, _ := songRepo.List(false)
	if len(existing) > 0 {
		log.Info("Catalog already seeded (%d songs), skipping", len(existing))
		return
	}

	for _, song := range songs {
		song.CreatorID = admin.ID
		if err := songRepo.Create(song); err != nil {
			log.Error("Failed to seed song %s: %v", song.Name, err)
			continue
		}
		log.Info("Seeded song %s (%s)", song.Name, song.ID)
	}
}
