package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"vetclinic/internal/auth"
	"vetclinic/internal/config"
	"vetclinic/internal/db"
	"vetclinic/internal/logger"
	"vetclinic/internal/repository"
	"vetclinic/internal/service"
)

// errAlreadySeeded stops seeding when the database already has users.
var errAlreadySeeded = errors.New("database already seeded")

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	store, closeStore, err := db.OpenStore(cfg, zlog)
	if err != nil {
		zlog.Fatal("database init", zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	err = seed(ctx, store, hasher, cfg.PhoneRegion)
	switch {
	case errors.Is(err, errAlreadySeeded):
		zlog.Info("users already exist, skipping seed")
	case err != nil:
		zlog.Fatal("seed failed", zap.Error(err))
	default:
		zlog.Info("seed completed", zap.Strings("users", []string{"admin", "demo"}))
	}
}

// seed populates demo data through the services so every business rule applies.
func seed(ctx context.Context, store repository.Store, hasher *auth.PasswordHasher, phoneRegion string) error {
	existing, err := store.Users().List(ctx, 0, 1)
	if err != nil {
		return fmt.Errorf("check users: %w", err)
	}
	if len(existing) > 0 {
		return errAlreadySeeded
	}

	users := service.NewUserService(store, nil, hasher)
	clinics := service.NewClinicService(store, nil)
	vets := service.NewVeterinarianService(store, nil)
	tutors := service.NewTutorService(store, nil, phoneRegion)
	pets := service.NewPetService(store, nil)
	visits := service.NewVisitService(store, nil)

	for _, u := range []service.CreateUserInput{
		{Username: "admin", Email: "admin@veterinaria.com", Password: "admin123"},
		{Username: "demo", Email: "demo@veterinaria.com", Password: "demo123"},
	} {
		if _, err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}
	}

	clinic1, err := clinics.Create(ctx, service.CreateClinicInput{Name: "Clínica VetLife", Address: "Rua das Flores, 123 - Centro", City: "São Paulo"})
	if err != nil {
		return fmt.Errorf("create clinic: %w", err)
	}
	clinic2, err := clinics.Create(ctx, service.CreateClinicInput{Name: "Animal Care Center", Address: "Av. Copacabana, 456 - Copacabana", City: "Rio de Janeiro"})
	if err != nil {
		return fmt.Errorf("create clinic: %w", err)
	}

	vet1, err := vets.Create(ctx, service.CreateVeterinarianInput{
		Name: "Dr. João Silva", LicenseNumber: "SP-12345", Email: "joao.silva@vetlife.com", Specialty: "Clínica Geral", ClinicID: clinic1.ID,
	})
	if err != nil {
		return fmt.Errorf("create veterinarian: %w", err)
	}
	vet2, err := vets.Create(ctx, service.CreateVeterinarianInput{
		Name: "Dra. Maria Santos", LicenseNumber: "RJ-67890", Email: "maria.santos@animalcare.com", Specialty: "Cirurgia", ClinicID: clinic2.ID,
	})
	if err != nil {
		return fmt.Errorf("create veterinarian: %w", err)
	}

	tutor1, err := tutors.Create(ctx, service.CreateTutorInput{Name: "Carlos Oliveira", Phone: "(11) 99999-1234", Email: "carlos@email.com", Address: "Rua A, 100 - Vila Madalena"})
	if err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}
	tutor2, err := tutors.Create(ctx, service.CreateTutorInput{Name: "Ana Costa", Phone: "(21) 88888-5678", Email: "ana@email.com", Address: "Rua B, 200 - Ipanema"})
	if err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}

	age3, age2 := 3, 2
	pet1, err := pets.Create(ctx, service.CreatePetInput{Name: "Rex", Species: "Cão", Breed: "Golden Retriever", Age: &age3, TutorID: tutor1.ID})
	if err != nil {
		return fmt.Errorf("create pet: %w", err)
	}
	pet2, err := pets.Create(ctx, service.CreatePetInput{Name: "Mimi", Species: "Gato", Breed: "Siamês", Age: &age2, TutorID: tutor2.ID})
	if err != nil {
		return fmt.Errorf("create pet: %w", err)
	}

	for _, v := range []service.CreateVisitInput{
		{Description: "Consulta de rotina e vacinação", PetID: pet1.ID, VeterinarianID: vet1.ID},
		{Description: "Castração", PetID: pet2.ID, VeterinarianID: vet2.ID},
	} {
		if _, err := visits.Create(ctx, v); err != nil {
			return fmt.Errorf("create visit: %w", err)
		}
	}
	return nil
}
