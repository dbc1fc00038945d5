package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"coachbooking/internal/content"
	"coachbooking/internal/drivers"
	coachroutes "coachbooking/internal/routes"
	"coachbooking/internal/seatmap"
	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/database"
	"coachbooking/internal/trips"
	"coachbooking/internal/users"
	"coachbooking/internal/vehicles"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB

	locations map[string]uuid.UUID
	routes    []coachroutes.Route
	vehicles  []vehicles.Vehicle
	prices    map[string]uuid.UUID
}

func main() {
	fmt.Println("Starting coachbooking database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{
		db:        db,
		locations: make(map[string]uuid.UUID),
		prices:    make(map[string]uuid.UUID),
	}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed. Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"booking_seats",
		"bookings",
		"trips",
		"trip_prices",
		"drivers",
		"vehicle_seats",
		"vehicles",
		"routes",
		"locations",
		"news_posts",
		"banners",
		"static_pages",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

func (s *Seeder) SeedAll() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"users", s.seedUsers},
		{"locations", s.seedLocations},
		{"routes", s.seedRoutes},
		{"vehicles", s.seedVehicles},
		{"drivers", s.seedDrivers},
		{"prices", s.seedPrices},
		{"trips", s.seedTrips},
		{"content", s.seedContent},
	}

	for _, step := range steps {
		fmt.Printf("  Seeding %s...\n", step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("failed to seed %s: %w", step.name, err)
		}
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(h)
	}

	accounts := []users.User{
		{FirstName: "Admin", LastName: "Account", Email: "admin@coachbooking.vn", Phone: "0900000001", Password: hash("admin123"), Role: users.RoleAdmin},
		{FirstName: "Minh", LastName: "Nguyen", Email: "minh.nguyen@example.com", Phone: "0912345678", Password: hash("password123"), Role: users.RoleCustomer},
		{FirstName: "Lan", LastName: "Tran", Email: "lan.tran@example.com", Phone: "0987654321", Password: hash("password123"), Role: users.RoleCustomer},
	}
	return s.db.PostgreSQL.Create(&accounts).Error
}

func (s *Seeder) seedLocations() error {
	cities := []coachroutes.Location{
		{Name: "Sai Gon", Province: "Ho Chi Minh"},
		{Name: "Da Lat", Province: "Lam Dong"},
		{Name: "Nha Trang", Province: "Khanh Hoa"},
		{Name: "Da Nang", Province: "Da Nang"},
		{Name: "Can Tho", Province: "Can Tho"},
	}
	if err := s.db.PostgreSQL.Create(&cities).Error; err != nil {
		return err
	}
	for _, city := range cities {
		s.locations[city.Name] = city.ID
	}
	return nil
}

func (s *Seeder) seedRoutes() error {
	pairs := []struct {
		from, to string
		km       float64
	}{
		{"Sai Gon", "Da Lat", 308},
		{"Da Lat", "Sai Gon", 308},
		{"Sai Gon", "Nha Trang", 434},
		{"Nha Trang", "Sai Gon", 434},
		{"Sai Gon", "Can Tho", 169},
		{"Da Nang", "Nha Trang", 530},
	}

	for _, pair := range pairs {
		route := coachroutes.Route{
			FromLocationID: s.locations[pair.from],
			ToLocationID:   s.locations[pair.to],
			DistanceKm:     pair.km,
			Active:         true,
		}
		if err := s.db.PostgreSQL.Create(&route).Error; err != nil {
			return err
		}
		s.routes = append(s.routes, route)
	}
	return nil
}

func (s *Seeder) seedVehicles() error {
	fleet := []struct {
		name, vtype, plate string
	}{
		{"Hoa Mai 01", "NORMAL", "51B-123.45"},
		{"Hoa Mai VIP", "LIMOUSINE", "51B-678.90"},
		{"Phuong Trang 12", "SLEEPER", "51B-246.80"},
		{"Thanh Buoi 07", "DOUBLESLEEPER", "51B-135.79"},
	}

	for _, entry := range fleet {
		layout, ok := seatmap.LayoutFor(entry.vtype)
		if !ok {
			return fmt.Errorf("unknown vehicle type %s", entry.vtype)
		}

		vehicle := vehicles.Vehicle{
			Name:         entry.name,
			Type:         entry.vtype,
			SeatCount:    layout.SeatCount,
			LicensePlate: entry.plate,
			Active:       true,
		}
		if err := s.db.PostgreSQL.Create(&vehicle).Error; err != nil {
			return err
		}

		names := layout.SeatNames()
		seats := make([]vehicles.VehicleSeat, len(names))
		for i, name := range names {
			seats[i] = vehicles.VehicleSeat{
				VehicleID: vehicle.ID,
				Ordinal:   i,
				Name:      name,
				Floor:     i/layout.SeatsPerFloor + 1,
			}
		}
		if err := s.db.PostgreSQL.Create(&seats).Error; err != nil {
			return err
		}
		s.vehicles = append(s.vehicles, vehicle)
	}
	return nil
}

func (s *Seeder) seedDrivers() error {
	roster := []drivers.Driver{
		{FullName: "Pham Van Hung", Phone: "0901111222", LicenseNumber: "D-112233", Active: true},
		{FullName: "Le Thanh Tung", Phone: "0903333444", LicenseNumber: "D-445566", Active: true},
		{FullName: "Vo Minh Khoa", Phone: "0905555666", LicenseNumber: "D-778899", Active: true},
		{FullName: "Dang Quoc Bao", Phone: "0907777888", LicenseNumber: "D-990011", Active: true},
	}
	for i := range roster {
		if i < len(s.vehicles) {
			roster[i].VehicleID = &s.vehicles[i].ID
		}
	}
	return s.db.PostgreSQL.Create(&roster).Error
}

func (s *Seeder) seedPrices() error {
	for _, route := range s.routes {
		for _, entry := range []struct {
			vtype string
			price float64
		}{
			{"NORMAL", 180000},
			{"LIMOUSINE", 350000},
			{"SLEEPER", 250000},
			{"DOUBLESLEEPER", 280000},
		} {
			price := trips.TripPrice{
				RouteID:     route.ID,
				VehicleType: entry.vtype,
				PriceTrip:   entry.price,
				TypeTrip:    "STANDARD",
			}
			if err := s.db.PostgreSQL.Create(&price).Error; err != nil {
				return err
			}
			s.prices[route.ID.String()+":"+entry.vtype] = price.ID
		}
	}
	return nil
}

func (s *Seeder) seedTrips() error {
	departures := []string{"07:00", "13:30", "22:00"}

	for day := 0; day < 3; day++ {
		date := time.Now().AddDate(0, 0, day).Format("2006-01-02")
		for i, route := range s.routes {
			vehicle := s.vehicles[i%len(s.vehicles)]
			priceID := s.prices[route.ID.String()+":"+vehicle.Type]

			trip := trips.Trip{
				RouteID:   route.ID,
				VehicleID: vehicle.ID,
				PriceID:   &priceID,
				StartDate: date,
				StartTime: departures[i%len(departures)],
				TotalTime: "07:30",
				Status:    trips.TripStatusScheduled,
				BasePrice: 150000,
			}
			if err := s.db.PostgreSQL.Create(&trip).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedContent() error {
	now := time.Now()
	posts := []content.NewsPost{
		{Title: "New Da Lat route now open", Slug: "new-da-lat-route", Summary: "Daily departures from Sai Gon to Da Lat.", Body: "<p>We now run three daily departures on the Sai Gon - Da Lat route.</p>", Published: true, PublishedAt: &now},
		{Title: "Limousine fleet upgrade", Slug: "limousine-fleet-upgrade", Summary: "New 9-seat limousines in service.", Body: "<p>Our limousine fleet has been refreshed with brand-new 9-seat vehicles.</p>", Published: true, PublishedAt: &now},
	}
	if err := s.db.PostgreSQL.Create(&posts).Error; err != nil {
		return err
	}

	banners := []content.Banner{
		{Title: "Summer promotion", ImageURL: "https://cdn.coachbooking.vn/banners/summer.jpg", LinkURL: "https://coachbooking.vn/news/summer", SortOrder: 1, Active: true},
		{Title: "Book early, save more", ImageURL: "https://cdn.coachbooking.vn/banners/early-bird.jpg", SortOrder: 2, Active: true},
	}
	if err := s.db.PostgreSQL.Create(&banners).Error; err != nil {
		return err
	}

	pages := []content.StaticPage{
		{Title: "About us", Slug: "about", Body: "<p>We connect Vietnam's cities with safe, comfortable coaches.</p>", Published: true},
		{Title: "Terms of service", Slug: "terms", Body: "<p>Booking terms and cancellation policy.</p>", Published: true},
	}
	return s.db.PostgreSQL.Create(&pages).Error
}
