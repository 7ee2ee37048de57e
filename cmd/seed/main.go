// Command seed prepares both relational shards and the document
// store: it migrates the schema, imports the place and flight
// catalogs from CSV into every shard (the catalogs are replicated,
// not partitioned), and seeds the FAQ collection.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/internal/infrastructure/config"
	"offbeat-travels/internal/infrastructure/persistence"
	"offbeat-travels/internal/infrastructure/sharding"
	repoimpl "offbeat-travels/internal/interface/repository"
	"offbeat-travels/pkg/logger"
)

// Fares in the source CSV are in INR.
const inrToUSD = 0.013

func main() {
	airportsPath := flag.String("airports", "airports.csv", "airport catalog CSV (city,airport,code,country)")
	flightsPath := flag.String("flights", "", "flight catalog CSV; skipped when empty")
	skipFAQ := flag.Bool("skip-faq", false, "skip seeding the FAQ collection")
	flag.Parse()

	log := logger.NewLogger()
	log.Info("Starting seed")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()

	shards, err := persistence.NewShardSet([2]string{cfg.Shard0PostgresDSN, cfg.Shard1PostgresDSN})
	if err != nil {
		log.Fatal("Failed to open shards", "error", err)
	}
	defer shards.Close()

	if err := repoimpl.AutoMigrate(shards); err != nil {
		log.Fatal("Migration failed", "error", err)
	}
	log.Info("Schema migrated on both shards")

	placeRepo := repoimpl.NewGormPlaceRepository(shards)
	flightRepo := repoimpl.NewGormFlightRepository(shards)

	if *airportsPath != "" {
		n, err := seedPlaces(ctx, placeRepo, *airportsPath)
		if err != nil {
			log.Fatal("Failed to seed places", "error", err)
		}
		log.Info("Places seeded", "count", n)
	}

	if *flightsPath != "" {
		n, failed, err := seedFlights(ctx, flightRepo, placeRepo, *flightsPath, log)
		if err != nil {
			log.Fatal("Failed to seed flights", "error", err)
		}
		log.Info("Flights seeded", "count", n, "failed", failed)
	}

	if !*skipFAQ {
		mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		defer mongoClient.Disconnect(ctx)

		faqRepo := repoimpl.NewMongoFAQRepository(mongoDB)
		n, err := seedFAQ(ctx, faqRepo)
		if err != nil {
			log.Fatal("Failed to seed FAQ", "error", err)
		}
		log.Info("FAQ seeded", "count", n)
	}

	log.Info("Seed complete")
}

func openCSV(path string) (*csv.Reader, *os.File, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, nil, nil, err
	}
	return r, f, header, nil
}

func column(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// seedPlaces imports the airport catalog into every shard.
func seedPlaces(ctx context.Context, places repository.PlaceRepository, path string) (int, error) {
	r, f, header, err := openCSV(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cityCol := column(header, "city")
	airportCol := column(header, "airport")
	codeCol := column(header, "code")
	countryCol := column(header, "country")

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}

		for i := 0; i < sharding.Count; i++ {
			place := &entity.Place{
				City:    record[cityCol],
				Airport: record[airportCol],
				Code:    record[codeCol],
				Country: record[countryCol],
			}
			if err := places.Upsert(ctx, sharding.ShardID(i), place); err != nil {
				return count, err
			}
		}
		count++
	}
	return count, nil
}

func parseFare(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	v *= inrToUSD
	return &v
}

// seedFlights imports the flight catalog into every shard. Place ids
// are auto-incremented per shard, so origin and destination are
// resolved by code on each shard separately.
func seedFlights(ctx context.Context, flights repository.FlightRepository, places repository.PlaceRepository, path string, log logger.Logger) (int, int, error) {
	r, f, header, err := openCSV(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	originCol := column(header, "origin")
	destCol := column(header, "destination")
	departTimeCol := column(header, "depart_time")
	durationCol := column(header, "duration")
	arrivalTimeCol := column(header, "arrival_time")
	flightNoCol := column(header, "flight_no")
	airlineCol := column(header, "airline")
	economyCol := column(header, "economy_fare")
	businessCol := column(header, "business_fare")
	firstCol := column(header, "first_fare")
	weekdayCol := column(header, "depart_weekday")

	count, failed := 0, 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, failed, err
		}

		weekday, err := strconv.Atoi(record[weekdayCol])
		if err != nil {
			failed++
			continue
		}
		departureDate := time.Now().AddDate(0, 0, weekday)

		rowFailed := false
		for i := 0; i < sharding.Count; i++ {
			shard := sharding.ShardID(i)

			origin, err := places.GetByCode(ctx, shard, record[originCol])
			if err != nil {
				rowFailed = true
				break
			}
			destination, err := places.GetByCode(ctx, shard, record[destCol])
			if err != nil {
				rowFailed = true
				break
			}

			flight := &entity.Flight{
				OriginID:      origin.ID,
				DestinationID: destination.ID,
				DepartTime:    record[departTimeCol],
				Duration:      record[durationCol],
				ArrivalTime:   record[arrivalTimeCol],
				FlightNo:      record[flightNoCol],
				Airline:       record[airlineCol],
				EconomyFare:   parseFare(record[economyCol]),
				BusinessFare:  parseFare(record[businessCol]),
				FirstFare:     parseFare(record[firstCol]),
				DepartureDate: departureDate,
			}
			if err := flights.Create(ctx, shard, flight); err != nil {
				log.Error("Flight insert failed", "shard", shard.String(), "flight_no", flight.FlightNo, "error", err)
				rowFailed = true
				break
			}
		}

		if rowFailed {
			failed++
		} else {
			count++
		}
	}
	return count, failed, nil
}

// seedFAQ upserts the default FAQ content; reruns are idempotent.
func seedFAQ(ctx context.Context, faqs repository.FAQRepository) (int, error) {
	defaults := map[string]map[string]string{
		"Flight": {
			"Book a flight using an airline credit":  "To book a flight using your airline credit, please log in to your account, select your desired flight, and choose the 'Pay with Airline Credit' option at the payment stage.",
			"Airline-initiated schedule change":      "If your flight schedule has been changed by the airline, you will receive an email with the new details. You can either accept the change or contact customer service for alternatives.",
			"Change your flight":                     "To change your flight, please visit the 'Manage Booking' section of our website, enter your booking details, and select the option to modify your flight times or dates.",
		},
		"Refunds and Charges": {
			"Refund timelines, policies & processes": "Refunds typically take 7-10 business days to process. Our refund policy allows full refunds within 24 hours of booking, with some exceptions based on ticket type.",
			"Get a receipt for your booking":         "You can obtain a receipt for your booking by logging into your account and visiting the 'Booking History' section, where you can download receipts directly.",
			"Payment security and options":           "We ensure the security of your payments with industry-standard encryption. Available payment options include credit cards, PayPal, and direct bank transfers.",
		},
		"Packages": {
			"Change your vacation package": "Modifications to vacation packages can be made by contacting our support team, who can assist with changes in dates or destinations.",
			"Airline telephone numbers":    "Airline contact numbers are available under the 'Airline Info' section of our website, where you can find detailed contact information for all our partner airlines.",
			"Cancel your vacation package": "To cancel a vacation package, please visit 'My Trips' and select the package you wish to cancel. Be aware that cancellation fees may apply.",
		},
	}

	count := 0
	for category, entries := range defaults {
		for question, answer := range entries {
			faq := &entity.FAQ{
				Category: category,
				Question: question,
				Answer:   answer,
			}
			if err := faqs.Upsert(ctx, faq); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
