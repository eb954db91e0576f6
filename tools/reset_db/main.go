package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

// Application tables in FK-safe truncation order.
var tables = []string{
	"table_favorite",
	"friendship",
	"relationship",
	"table_user",
	"table_shop",
	"table_user_icon",
}

type shopSeed struct {
	id            int
	name          string
	genre         string
	budget        int
	distance      int
	photoAddress  string
	address       string
	googleMapLink string
}

var shopSeeds = []shopSeed{
	{1, "Menya Kotetsu", "ramen", 900, 400, "/img/shops/kotetsu.jpg", "1-2-3 Ekimae", "https://maps.example.com/kotetsu"},
	{2, "Sakura Sushi", "sushi", 2500, 800, "/img/shops/sakura.jpg", "2-4-1 Honmachi", "https://maps.example.com/sakura"},
	{3, "Trattoria Sole", "italian", 1800, 1200, "/img/shops/sole.jpg", "5-1-9 Nishiki", "https://maps.example.com/sole"},
	{4, "Gyoza no Maru", "chinese", 800, 300, "/img/shops/maru.jpg", "3-3-3 Sakae", "https://maps.example.com/maru"},
	{5, "Cafe Hidamari", "cafe", 1200, 2500, "/img/shops/hidamari.jpg", "7-8-2 Izumi", "https://maps.example.com/hidamari"},
	{6, "Yakiniku Daruma", "yakiniku", 3500, 900, "/img/shops/daruma.jpg", "1-9-4 Chuo", "https://maps.example.com/daruma"},
}

func main() {
	config := loadConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", config.Database.Database)

	fmt.Printf("\nWARNING: This operation will CLEAR ALL DATA in tables %v and reseed the shop catalog!\n", tables)
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Fatalf("Failed to disable FK checks: %v", err)
	}
	for _, table := range tables {
		if _, err := db.Exec("TRUNCATE TABLE " + table); err != nil {
			log.Fatalf("Failed to truncate %s: %v", table, err)
		}
		fmt.Printf("Truncated %s\n", table)
	}
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1"); err != nil {
		log.Fatalf("Failed to re-enable FK checks: %v", err)
	}

	// Registration assigns profile_photo_id 999 by default; the row must exist.
	if _, err := db.Exec(
		"INSERT INTO table_user_icon (profile_photo_id, photo_address) VALUES (?, ?)",
		999, "/img/icons/default.png",
	); err != nil {
		log.Fatalf("Failed to seed default icon: %v", err)
	}
	fmt.Println("Seeded default icon")

	for _, s := range shopSeeds {
		if _, err := db.Exec(
			`INSERT INTO table_shop
				(shop_id, shop_name, genre, budget, distance, photo_address, address, google_map_link)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.id, s.name, s.genre, s.budget, s.distance, s.photoAddress, s.address, s.googleMapLink,
		); err != nil {
			log.Fatalf("Failed to seed shop %d: %v", s.id, err)
		}
	}
	fmt.Printf("Seeded %d shops\n", len(shopSeeds))

	fmt.Println("\nDone.")
}

func loadConfig() *Config {
	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config/config.yaml: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
	return &config
}
