package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"vetclinic/internal/auth"
	"vetclinic/internal/model"
	"vetclinic/internal/repository/memory"
)

const testSecret = "test-secret"

type fixture struct {
	store         *memory.Store
	hasher        *auth.PasswordHasher
	tokens        *auth.JWTService
	auth          AuthService
	users         UserService
	clinics       ClinicService
	veterinarians VeterinarianService
	tutors        TutorService
	pets          PetService
	visits        VisitService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens, err := auth.NewJWTService(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)

	return &fixture{
		store:         store,
		hasher:        hasher,
		tokens:        tokens,
		auth:          NewAuthService(store, hasher, tokens, zap.NewNop()),
		users:         NewUserService(store, nil, hasher),
		clinics:       NewClinicService(store, nil),
		veterinarians: NewVeterinarianService(store, nil),
		tutors:        NewTutorService(store, nil, "BR"),
		pets:          NewPetService(store, nil),
		visits:        NewVisitService(store, nil),
	}
}

func (f *fixture) clinic(t *testing.T) *model.Clinic {
	t.Helper()
	c, err := f.clinics.Create(context.Background(), CreateClinicInput{
		Name:    "Clínica VetLife",
		Address: "Rua das Flores, 123 - Centro",
		City:    "São Paulo",
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) veterinarian(t *testing.T, clinicID uint, license string) *model.Veterinarian {
	t.Helper()
	v, err := f.veterinarians.Create(context.Background(), CreateVeterinarianInput{
		Name:          "Dr. João Silva",
		LicenseNumber: license,
		Specialty:     "Clínica Geral",
		ClinicID:      clinicID,
	})
	require.NoError(t, err)
	return v
}

func (f *fixture) tutor(t *testing.T) *model.Tutor {
	t.Helper()
	tu, err := f.tutors.Create(context.Background(), CreateTutorInput{
		Name:  "Carlos Oliveira",
		Phone: "(11) 99999-1234",
		Email: "carlos@email.com",
	})
	require.NoError(t, err)
	return tu
}

func (f *fixture) pet(t *testing.T, tutorID uint) *model.Pet {
	t.Helper()
	p, err := f.pets.Create(context.Background(), CreatePetInput{
		Name:    "Rex",
		Species: "Cão",
		Breed:   "Golden Retriever",
		TutorID: tutorID,
	})
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }
