package main

import (
	"context"
	"log"
	"os"
	"time"

	"leadcrm/internal/database"
	"leadcrm/internal/domain"
	"leadcrm/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "crm.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM lead_activities")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM contracts")
	db.Exec("DELETE FROM email_templates")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	contractRepo := repository.NewContractRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@leadcrm.local",
		PasswordHash: string(adminHash),
		Name:         "Yönetici",
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	manager := domain.User{
		Email:        "cigdem@leadcrm.local",
		PasswordHash: string(managerHash),
		Name:         "Çiğdem",
		Role:         domain.RoleManager,
	}
	if err := userRepo.Create(ctx, &manager); err != nil {
		log.Fatal("Failed to create manager:", err)
	}

	// ================== LEADS ==================
	log.Println("Creating leads...")

	now := time.Now()
	emailSent := now.AddDate(0, 0, -3)

	leads := []domain.Lead{
		{
			FirstName:        "Ayşe",
			LastName:         "Yılmaz",
			Email:            "ayse@modacenter.com",
			Phone:            "+90 532 111 22 33",
			CompanyName:      "Moda Center",
			Sectors:          []string{"E-commerce", "Retail"},
			Status:           domain.LeadNew,
			ContactDirection: domain.DirectionInbound,
			LastContactDate:  now.AddDate(0, 0, -1),
		},
		{
			FirstName:        "Mehmet",
			LastName:         "Demir",
			Email:            "mehmet@teknosoft.com",
			CompanyName:      "TeknoSoft",
			Sectors:          []string{"Software"},
			Status:           domain.LeadSent,
			ContactDirection: domain.DirectionOutbound,
			Notes:            "Demo sonrası teklif bekliyor.",
			LastContactDate:  now.AddDate(0, 0, -3),
			EmailSentDate:    &emailSent,
		},
		{
			FirstName:        "Zeynep",
			LastName:         "Kaya",
			Email:            "zeynep@sagliknet.com",
			CompanyName:      "Sağlık Net",
			Sectors:          []string{"Healthcare"},
			Status:           domain.LeadLost,
			ContactDirection: domain.DirectionOutbound,
			LossReason:       "Bütçe Yetersiz",
			LastContactDate:  now.AddDate(0, 0, -20),
		},
	}

	for i := range leads {
		if err := leadRepo.Create(ctx, &leads[i]); err != nil {
			log.Fatal("Failed to create lead:", err)
		}
		a := domain.LeadActivity{
			LeadID:    leads[i].ID,
			Type:      domain.ActivityCreated,
			Details:   "Müşteri sisteme eklendi.",
			CreatedAt: leads[i].LastContactDate,
		}
		if err := activityRepo.Create(ctx, &a); err != nil {
			log.Fatal("Failed to create activity:", err)
		}
	}

	// ================== TASKS ==================
	log.Println("Creating tasks...")

	firstLeadID := leads[0].ID
	tasks := []domain.Task{
		{Title: "Ayşe Hanım'ı ara", LeadID: &firstLeadID, DueDate: now.AddDate(0, 0, 1)},
		{Title: "Aylık rapor hazırla", DueDate: now.AddDate(0, 0, 5)},
	}
	for i := range tasks {
		if err := taskRepo.Create(ctx, &tasks[i]); err != nil {
			log.Fatal("Failed to create task:", err)
		}
	}

	// ================== CONTRACTS ==================
	log.Println("Creating contracts...")

	contracts := []domain.Contract{
		{
			CustomerName:   "Moda Center",
			HasFrontend:    true,
			HasSocialMedia: true,
			ContractDate:   now.AddDate(0, 0, -100),
			MonthlyPayment: 25000,
			Assignees:      []string{"Çiğdem", "Elif"},
		},
		{
			CustomerName:   "TeknoSoft",
			HasFrontend:    true,
			HasBackend:     true,
			ContractDate:   now.AddDate(0, 0, -340),
			MonthlyPayment: 40000,
			Assignees:      []string{"Volkan"},
		},
	}
	for i := range contracts {
		if err := contractRepo.Create(ctx, &contracts[i]); err != nil {
			log.Fatal("Failed to create contract:", err)
		}
	}

	// ================== EMAIL TEMPLATES ==================
	log.Println("Creating email templates...")

	stock := domain.EmailTemplate{
		Title:   "Tanışma E-postası",
		Subject: "Dijital pazarlama iş birliği hakkında",
		Content: "Merhaba,\n\nFirmanızın dijital varlığını inceledik ve birlikte neler yapabileceğimizi konuşmak isteriz. Uygun olduğunuz bir zamanda kısa bir görüşme ayarlayabiliriz.\n\nSaygılarımızla,\nigoaimalathane",
	}
	if err := templateRepo.Create(ctx, &stock); err != nil {
		log.Fatal("Failed to create template:", err)
	}

	log.Println("Seed completed.")
	log.Println("  admin login:   admin@leadcrm.local / admin123")
	log.Println("  manager login: cigdem@leadcrm.local / manager123")
}
