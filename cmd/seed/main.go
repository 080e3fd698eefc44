package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"tablebook/internal/database"
	"tablebook/internal/domain"
	"tablebook/internal/modules/access"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tablebook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}
	if err := access.SeedDefaults(db); err != nil {
		log.Fatal("Permission seed failed:", err)
	}

	// Cleanup old data (FK-safe order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM customer_preferences")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM table_layouts")
	db.Exec("DELETE FROM operating_hours")
	db.Exec("DELETE FROM restaurants")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@tablebook.io",
		PasswordHash: string(adminHash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)

	owners := make([]domain.User, 0, 2)
	for i, email := range []string{"marco@trattoria.io", "yuki@sakura.io"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Owner %d", i+1),
			Role:         domain.RoleRestaurantOwner,
		}
		db.Create(&owner)
		owners = append(owners, owner)
	}

	customers := make([]domain.User, 0, 3)
	for i, email := range []string{"alice@mail.com", "bob@mail.com", "carla@mail.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Customer %d", i+1),
			Role:         domain.RoleCustomer,
		}
		db.Create(&customer)
		customers = append(customers, customer)
	}

	// ================== RESTAURANTS ==================
	log.Println("Creating restaurants...")
	restaurants := make([]domain.Restaurant, 0, 2)
	for i, name := range []string{"Trattoria Bella", "Sakura House"} {
		r := domain.Restaurant{
			Name:        name,
			Description: "Cozy place with seasonal menu",
			Image:       fmt.Sprintf("/static/restaurants/%d.jpg", i+1),
			Location:    fmt.Sprintf("Main Street %d", 10+i),
			UserID:      owners[i].ID,
		}
		db.Create(&r)
		restaurants = append(restaurants, r)
	}

	// ================== OPERATING HOURS ==================
	log.Println("Creating operating hours...")
	for _, r := range restaurants {
		for day := 0; day < 7; day++ {
			db.Create(&domain.OperatingHour{
				RestaurantID: r.ID,
				DayOfWeek:    day,
				StartTime:    "10:00",
				EndTime:      "22:00",
			})
		}
	}

	// ================== TABLE LAYOUTS ==================
	log.Println("Creating table layouts...")
	layouts := make([]domain.TableLayout, 0, 6)
	for _, r := range restaurants {
		for j := 1; j <= 3; j++ {
			tl := domain.TableLayout{
				RestaurantID: r.ID,
				Name:         fmt.Sprintf("Table %d", j),
				Capacity:     2 * j,
			}
			db.Create(&tl)
			layouts = append(layouts, tl)
		}
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")
	statuses := []string{domain.ReservationPending, domain.ReservationConfirmed, domain.ReservationCancelled}
	for i := 0; i < 6; i++ {
		tl := layouts[i%len(layouts)]
		date := time.Now().AddDate(0, 0, i+1).Format("2006-01-02")
		db.Create(&domain.Reservation{
			CustomerID:     customers[i%len(customers)].ID,
			RestaurantID:   tl.RestaurantID,
			TableLayoutID:  tl.ID,
			Date:           date,
			Time:           fmt.Sprintf("%02d:00", 18+i%3),
			NumberOfGuests: 2 + i%4,
			Status:         statuses[i%len(statuses)],
		})
	}

	// ================== CUSTOMER PREFERENCES ==================
	log.Println("Creating customer preferences...")
	prefs := []struct{ ptype, value string }{
		{"seating", "window"},
		{"dietary", "vegetarian"},
		{"occasion", "birthday"},
	}
	for i, c := range customers {
		p := prefs[i%len(prefs)]
		db.Create(&domain.CustomerPreference{
			CustomerID:      c.ID,
			PreferenceType:  p.ptype,
			PreferenceValue: p.value,
		})
	}

	log.Println("Seed completed")
	log.Println("Admin: admin@tablebook.io / admin123")
	log.Println("Owners: marco@trattoria.io, yuki@sakura.io / owner123")
	log.Println("Customers: alice@mail.com, bob@mail.com, carla@mail.com / customer123")
}
