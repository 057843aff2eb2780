package repository

import (
	"eventboard/data/models"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

func seedDBForBenchmark(b *testing.B) int64 {
	defer handleRecover("seeding DB")

	u, err := testRepo.CreateUser(gofakeit.Username(), gofakeit.Email(), "password123")
	if err != nil {
		b.Fatalf("Could not seed DB: %s", err)
	}

	for i := 0; i < 1000; i++ {
		e := benchmarkEvent(u.ID)
		if _, err := testRepo.CreateEvent(e); err != nil {
			b.Fatalf("Could not seed DB: %s", err)
		}
	}
	return u.ID
}

func benchmarkEvent(ownerID int64) models.Event {
	day := gofakeit.FutureDate()
	return models.Event{
		UserID:      ownerID,
		Name:        gofakeit.LoremIpsumSentence(4),
		Description: gofakeit.LoremIpsumSentence(15),
		Date:        models.NewDate(day.Year(), day.Month(), day.Day()),
		DateTime:    models.DateTime{Time: day.Truncate(time.Second)},
		Type:        models.Performing,
		Country:     gofakeit.Country(),
		City:        gofakeit.City(),
		Place:       gofakeit.Company(),
		TicketPrice: int64(gofakeit.IntRange(0, 200)),
	}
}

func BenchmarkCreateEvent(b *testing.B) {
	defer handleRecover("BenchmarkCreateEvent")

	u, err := testRepo.CreateUser(gofakeit.Username(), gofakeit.Email(), "password123")
	if err != nil {
		b.Fatalf("Could not seed DB: %s", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := testRepo.CreateEvent(benchmarkEvent(u.ID)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQueryEvents(b *testing.B) {
	seedDBForBenchmark(b)

	for _, limit := range []int{10, 100, 500, 1000, 2000} {
		b.Run(fmt.Sprintf("limit_%d", limit), func(b *testing.B) {
			defer handleRecover(b.Name())
			filter := &models.EventFilter{Limit: intPtr(limit)}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := testRepo.QueryEvents(filter); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkQueryEventsForViewer(b *testing.B) {
	viewerID := seedDBForBenchmark(b)
	filter := &models.EventFilter{Limit: intPtr(100)}

	b.Run("limit_100", func(b *testing.B) {
		defer handleRecover(b.Name())

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := testRepo.QueryEventsForViewer(filter, viewerID); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkVerifyPassword(b *testing.B) {
	hash, err := HashPassword("password123")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !VerifyPassword(hash, "password123") {
			b.Fatal("password did not verify")
		}
	}
}
