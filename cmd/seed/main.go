package main

import (
	"fmt"

	"github.com/circuitaura/storefront/internal/config"
	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/logger"
	"github.com/circuitaura/storefront/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	products := []models.Product{
		{
			Name:        "Digital Multimeter DM-830",
			Description: "Compact auto-ranging multimeter for voltage, current, resistance and continuity checks. A solid first meter for any electronics bench.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(549)),
			Features: models.StringArray([]string{
				"Auto-ranging with backlit display",
				"Continuity buzzer and diode test",
				"CAT II 600V rated probes",
			}),
			Included: models.StringArray([]string{
				"Multimeter unit",
				"Test probe pair",
				"9V battery",
			}),
			ImageURL:  "/uploads/products/multimeter-dm830.jpg",
			IsActive:  true,
			SortOrder: 100,
		},
		{
			Name:        "Breadboard Power Supply Module",
			Description: "Dual-rail 3.3V/5V power module that clips straight onto a standard 830-point breadboard. Powered over USB or a DC barrel jack.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(149)),
			Features: models.StringArray([]string{
				"Independent 3.3V and 5V rails",
				"USB and 6.5-12V DC input",
				"On-board power switch and LED",
			}),
			Included: models.StringArray([]string{
				"Power supply module",
				"Jumper wire set",
			}),
			ImageURL:  "/uploads/products/breadboard-psu.jpg",
			IsActive:  true,
			SortOrder: 90,
		},
		{
			Name:        "Soldering Iron 60W with Stand",
			Description: "Temperature-adjustable 60W iron with a spring stand and cleaning sponge. Heats up in under two minutes.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(399)),
			Features: models.StringArray([]string{
				"200-450°C adjustable temperature",
				"Replaceable conical tip",
				"Heat-resistant grip",
			}),
			Included: models.StringArray([]string{
				"Soldering iron",
				"Spring stand with sponge",
				"Solder wire sample",
			}),
			ImageURL:  "/uploads/products/soldering-iron-60w.jpg",
			IsActive:  true,
			SortOrder: 80,
		},
		{
			Name:        "Resistor Assortment Pack (600 pcs)",
			Description: "600 quarter-watt metal film resistors across 30 common values from 10Ω to 1MΩ, sorted and labelled.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(249)),
			Features: models.StringArray([]string{
				"30 values, 20 pieces each",
				"1% tolerance metal film",
				"Labelled storage strips",
			}),
			Included: models.StringArray([]string{
				"600 resistors",
				"Value reference card",
			}),
			ImageURL:  "/uploads/products/resistor-pack.jpg",
			IsActive:  true,
			SortOrder: 70,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.Price = prod.Price
			existing.Features = prod.Features
			existing.Included = prod.Included
			existing.ImageURL = prod.ImageURL
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	kits := []models.Kit{
		{
			Name:        "Beginner Electronics Starter Kit",
			Description: "Everything needed for your first ten circuits: LEDs, push buttons, a buzzer and a guided project booklet that starts from zero.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(899)),
			Features: models.StringArray([]string{
				"10 guided projects from blink to buzzer alarm",
				"No soldering required",
				"Printable circuit diagrams",
			}),
			Included: models.StringArray([]string{
				"830-point breadboard",
				"LED and resistor assortment",
				"Push buttons, buzzer, jumper wires",
				"Project booklet (PDF)",
			}),
			ImageURL:  "/uploads/kits/starter-kit.jpg",
			PDFURL:    "/uploads/kits/starter-kit-booklet.pdf",
			IsActive:  true,
			SortOrder: 100,
		},
		{
			Name:        "Line Follower Robot Kit",
			Description: "Build a two-motor line following robot with IR sensors and a pre-flashed controller board. Chassis screws together in an evening.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1799)),
			Features: models.StringArray([]string{
				"Dual IR sensor line tracking",
				"Pre-flashed controller, no coding required",
				"Expandable sensor headers",
			}),
			Included: models.StringArray([]string{
				"Acrylic chassis and wheels",
				"2x geared DC motors",
				"Controller board and motor driver",
				"IR sensor pair, battery holder",
				"Assembly guide (PDF)",
			}),
			ImageURL:  "/uploads/kits/line-follower.jpg",
			PDFURL:    "/uploads/kits/line-follower-guide.pdf",
			IsActive:  true,
			SortOrder: 90,
		},
		{
			Name:        "Home Automation Relay Kit",
			Description: "Switch mains appliances safely from a microcontroller with opto-isolated relays. Includes a wiring safety primer.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1299)),
			Features: models.StringArray([]string{
				"4-channel opto-isolated relay board",
				"Mains wiring safety primer",
				"Works with 3.3V and 5V logic",
			}),
			Included: models.StringArray([]string{
				"4-channel relay module",
				"Screw terminal blocks",
				"Jumper wires",
				"Safety and wiring guide (PDF)",
			}),
			ImageURL:  "/uploads/kits/relay-kit.jpg",
			PDFURL:    "/uploads/kits/relay-kit-guide.pdf",
			IsActive:  true,
			SortOrder: 80,
		},
	}

	for _, kit := range kits {
		var existing models.Kit
		if err := models.DB.Where("name = ?", kit.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&kit).Error; err != nil {
				stdLog.Printf("Failed to create kit %s: %v", kit.Name, err)
			} else {
				stdLog.Printf("Created kit: %s", kit.Name)
			}
		} else {
			existing.Description = kit.Description
			existing.Price = kit.Price
			existing.Features = kit.Features
			existing.Included = kit.Included
			existing.ImageURL = kit.ImageURL
			existing.PDFURL = kit.PDFURL
			existing.IsActive = kit.IsActive
			existing.SortOrder = kit.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update kit %s: %v", kit.Name, err)
			} else {
				stdLog.Printf("Updated kit: %s", kit.Name)
			}
		}
	}

	resources := []models.Resource{
		{
			ResourceType: constants.ResourceTypeTutorial,
			Title:        "Reading Resistor Color Codes",
			Description:  "Decode four and five band resistors by eye, with a printable reference chart and practice exercises.",
			ReadTime:     "8 min read",
			PDFURL:       "/uploads/resources/resistor-color-codes.pdf",
		},
		{
			ResourceType: constants.ResourceTypeTutorial,
			Title:        "Soldering Basics for Beginners",
			Description:  "Tinning, joint inspection and desoldering walkthrough for your first soldering session.",
			ReadTime:     "12 min read",
			PDFURL:       "/uploads/resources/soldering-basics.pdf",
		},
		{
			ResourceType: constants.ResourceTypeVideo,
			Title:        "Building the Line Follower Robot",
			Description:  "Full assembly of the line follower kit from unboxing to first track run.",
			VideoURL:     "https://www.youtube.com/watch?v=circuitaura-line-follower",
		},
		{
			ResourceType: constants.ResourceTypeDownload,
			Title:        "Breadboard Layout Templates",
			Description:  "Printable A4 breadboard grids for sketching circuits before you build them.",
			FileURL:      "/uploads/resources/breadboard-templates.zip",
		},
	}

	for _, res := range resources {
		var existing models.Resource
		if err := models.DB.Where("title = ?", res.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&res).Error; err != nil {
				stdLog.Printf("Failed to create resource %s: %v", res.Title, err)
			} else {
				stdLog.Printf("Created resource: %s", res.Title)
			}
		} else {
			existing.ResourceType = res.ResourceType
			existing.Description = res.Description
			existing.ReadTime = res.ReadTime
			existing.FileURL = res.FileURL
			existing.VideoURL = res.VideoURL
			existing.PDFURL = res.PDFURL
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update resource %s: %v", res.Title, err)
			} else {
				stdLog.Printf("Updated resource: %s", res.Title)
			}
		}
	}

	demoEmail := "demo@circuitaura.local"
	var existingUser models.User
	if err := models.DB.Where("email = ?", demoEmail).First(&existingUser).Error; err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("Demo@123"), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash demo password: %v", err)
		} else {
			user := models.User{
				Name:         "Demo Customer",
				Email:        demoEmail,
				PasswordHash: string(hash),
				Role:         constants.RoleUser,
				Theme:        constants.ThemeLight,
				Status:       constants.UserStatusActive,
			}
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create demo user: %v", err)
			} else {
				stdLog.Printf("Created demo user: %s (password Demo@123)", demoEmail)
			}
		}
	} else {
		stdLog.Printf("Demo user already exists: %s", demoEmail)
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Printf("- %d Products\n", len(products))
	fmt.Printf("- %d Kits\n", len(kits))
	fmt.Printf("- %d Resources\n", len(resources))
	fmt.Println("- 1 Demo user")
}
