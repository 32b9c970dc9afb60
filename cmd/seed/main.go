package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/peakform/peakformcom/internal/db"
	"github.com/peakform/peakformcom/internal/profile"
	"github.com/peakform/peakformcom/internal/progress"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

// seeds the local dev database with a few clients and a realistic
// measurement history for each

func main() {
	dbHost := flag.String("db-host", "localhost", "postgres host")
	dbPort := flag.String("db-port", "5432", "postgres port")
	dbName := flag.String("db-name", "peakform_db", "postgres db name")
	clients := flag.Int("clients", 5, "number of fake clients to create")
	flag.Parse()

	ctx := context.Background()

	poolParams := db.NewDBPoolParams{
		DBHost: *dbHost,
		DBPort: *dbPort,
		DBName: *dbName,
	}

	if err := db.RunMigrations(poolParams); err != nil {
		log.Fatalf("run migrations: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, poolParams)
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	profileRepo := profile.NewRepo(dbPool)
	measurementsRepo := progress.NewRepo(dbPool)

	for i := 0; i < *clients; i++ {
		clientID := fmt.Sprintf("client-%s", gofakeit.Username())
		startWeight := gofakeit.Float64Range(65, 110)
		targetWeight := startWeight - gofakeit.Float64Range(2, 12)
		height := gofakeit.Float64Range(155, 195)

		snapshot := profile.Snapshot{
			ClientID:     clientID,
			DisplayName:  gofakeit.Name(),
			Goal:         gofakeit.RandomString([]string{"lose weight", "build muscle", "get fit"}),
			Weight:       &startWeight,
			TargetWeight: &targetWeight,
			Height:       &height,
		}
		if err := profileRepo.Upsert(ctx, snapshot); err != nil {
			log.Fatalf("upsert profile %s: %s", clientID, err)
		}

		// weekly weigh-ins over the last ~4 months, trending towards the target
		weight := startWeight
		weeks := gofakeit.Number(10, 18)
		for w := weeks; w >= 0; w-- {
			weight += gofakeit.Float64Range(-0.9, 0.4)
			recordedAt := time.Now().AddDate(0, 0, -7*w)
			if _, err := measurementsRepo.Add(ctx, progress.Measurement{
				ClientID:   clientID,
				Type:       progress.TypeWeight,
				Value:      weight,
				RecordedAt: recordedAt,
			}); err != nil {
				log.Fatalf("add measurement for %s: %s", clientID, err)
			}
		}

		// a couple of waist measurements too
		for m := 2; m >= 0; m-- {
			if _, err := measurementsRepo.Add(ctx, progress.Measurement{
				ClientID:   clientID,
				Type:       progress.TypeWaist,
				Value:      gofakeit.Float64Range(70, 105),
				RecordedAt: time.Now().AddDate(0, -m, 0),
			}); err != nil {
				log.Fatalf("add waist measurement for %s: %s", clientID, err)
			}
		}

		log.Infof("seeded client %s (%d weigh-ins)", clientID, weeks+1)
	}

	log.Infof("done, %d clients seeded", *clients)
}
