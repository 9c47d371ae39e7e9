package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"skybook/internal/database"
	"skybook/internal/domain"
	"skybook/internal/pkg/random"
)

// Seeds a small demo dataset: users, geography, airlines, one promotion
// and a handful of flights with their seat maps.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "skybook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM passengers")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM seats")
	db.Exec("DELETE FROM flights")
	db.Exec("DELETE FROM promotions")
	db.Exec("DELETE FROM terminals")
	db.Exec("DELETE FROM airports")
	db.Exec("DELETE FROM airlines")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@skybook.dev",
		PasswordHash: string(adminHash),
		FullName:     "Administrator",
		PhoneNumber:  "+620000000001",
		Role:         domain.RoleAdmin,
		IsVerified:   true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@skybook.dev / admin123")

	userHash, _ := bcrypt.GenerateFromPassword([]byte("user1234"), bcrypt.DefaultCost)
	for i := 1; i <= 3; i++ {
		db.Create(&domain.User{
			Email:        fmt.Sprintf("user%d@skybook.dev", i),
			PasswordHash: string(userHash),
			FullName:     fmt.Sprintf("Demo User %d", i),
			PhoneNumber:  fmt.Sprintf("+6200000001%02d", i),
			Role:         domain.RoleUser,
			IsVerified:   true,
		})
	}

	log.Println("Creating geography...")
	airports := []domain.Airport{
		{Name: "Soekarno-Hatta", Continent: "Asia", Country: "Indonesia", City: "Jakarta"},
		{Name: "Changi", Continent: "Asia", Country: "Singapore", City: "Singapore"},
		{Name: "Haneda", Continent: "Asia", Country: "Japan", City: "Tokyo"},
		{Name: "Schiphol", Continent: "Europe", Country: "Netherlands", City: "Amsterdam"},
		{Name: "John F Kennedy", Continent: "America", Country: "USA", City: "New York"},
	}
	for i := range airports {
		db.Create(&airports[i])
	}

	terminals := make([]domain.Terminal, 0, len(airports))
	for _, a := range airports {
		t := domain.Terminal{Name: "International", AirportID: a.ID}
		db.Create(&t)
		terminals = append(terminals, t)
	}

	log.Println("Creating airlines...")
	airlines := []domain.Airline{
		{Name: "Garuda Indonesia", Code: "GA"},
		{Name: "Singapore Airlines", Code: "SQ"},
		{Name: "KLM", Code: "KL"},
	}
	for i := range airlines {
		db.Create(&airlines[i])
	}

	log.Println("Creating promotion...")
	promo := domain.Promotion{
		Discount:  0.15,
		StartDate: time.Now().AddDate(0, 0, -1),
		EndDate:   time.Now().AddDate(0, 0, 14),
	}
	db.Create(&promo)

	log.Println("Creating flights...")
	routes := []struct {
		airline  int
		dep, arr int
		price    float64
		class    string
		promoted bool
	}{
		{0, 0, 1, 120, "economy", false},
		{0, 0, 2, 420, "economy", true},
		{1, 1, 3, 780, "business", false},
		{2, 3, 4, 560, "economy", true},
		{1, 2, 0, 380, "economy", false},
	}

	for i, r := range routes {
		departs := time.Now().AddDate(0, 0, 3+i).Truncate(time.Hour)
		arrives := departs.Add(time.Duration(2+i) * time.Hour)

		f := domain.Flight{
			Code:                fmt.Sprintf("%s-%03d", airlines[r.airline].Code, 100+i),
			SeatClass:           r.class,
			BasePrice:           r.price,
			Price:               r.price,
			AirlineID:           airlines[r.airline].ID,
			DepartureTerminalID: terminals[r.dep].ID,
			ArrivalTerminalID:   terminals[r.arr].ID,
			DepartureTime:       departs,
			ArrivalTime:         arrives,
			Duration:            domain.DurationMinutes(departs, arrives),
		}
		if r.promoted {
			f.PromotionID = &promo.ID
			f.Price = promo.EffectivePrice(r.price, time.Now())
		}
		db.Create(&f)

		seats := make([]domain.Seat, 0, 5*len(domain.SeatLetters))
		for row := 1; row <= 5; row++ {
			for _, letter := range domain.SeatLetters {
				seats = append(seats, domain.Seat{
					FlightID:   f.ID,
					SeatNumber: fmt.Sprintf("%s-%d", letter, row),
				})
			}
		}
		db.Create(&seats)
	}

	log.Println("Creating a demo booking...")
	var user domain.User
	db.Where("email = ?", "user1@skybook.dev").First(&user)
	var flight domain.Flight
	db.First(&flight)

	booking := domain.Booking{
		Code:     random.Code(12),
		UserID:   user.ID,
		FlightID: flight.ID,
		Adult:    1,
		Amount:   flight.Price,
		Status:   domain.BookingUnpaid,
	}
	db.Create(&booking)
	db.Create(&domain.Passenger{
		BookingID:      booking.ID,
		Title:          "Mr",
		FullName:       user.FullName,
		BornDate:       time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Citizen:        "Indonesia",
		IdentityNumber: "A1234567",
		IssuingCountry: "Indonesia",
		ValidUntil:     time.Now().AddDate(5, 0, 0),
	})

	log.Println("Seed complete.")
}
