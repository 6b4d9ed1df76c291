package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vetclinic/internal/errors"
)

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, Page{Skip: 0, Limit: DefaultLimit}, Page{}.Normalize())
	assert.Equal(t, Page{Skip: 0, Limit: MaxLimit}, Page{Skip: -5, Limit: 10_000}.Normalize())
	assert.Equal(t, Page{Skip: 20, Limit: 10}, Page{Skip: 20, Limit: 10}.Normalize())
}

func TestPetService_CreateWithMissingTutor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pet, err := f.pets.Create(ctx, CreatePetInput{Name: "Rex", Species: "Cão", TutorID: 999999})
	assert.Nil(t, pet)

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "tutor", notFound.Entity)
	assert.Equal(t, uint(999999), notFound.ID)

	pets, err := f.pets.List(ctx, Page{})
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func TestPetService_TutorIsImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.tutor(t)
	other := f.tutor(t)
	pet := f.pet(t, owner.ID)

	_, err := f.pets.Update(ctx, pet.ID, UpdatePetInput{TutorID: uintPtr(other.ID)})
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "tutor_id")

	age := 4
	updated, err := f.pets.Update(ctx, pet.ID, UpdatePetInput{TutorID: uintPtr(owner.ID), Age: &age})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, updated.TutorID)
	assert.Equal(t, 4, *updated.Age)
	assert.Equal(t, "Golden Retriever", updated.Breed)
}

func TestVeterinarianService_DuplicateLicense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clinic := f.clinic(t)
	otherClinic := f.clinic(t)
	f.veterinarian(t, clinic.ID, "SP-12345")

	for _, clinicID := range []uint{clinic.ID, otherClinic.ID} {
		_, err := f.veterinarians.Create(ctx, CreateVeterinarianInput{
			Name:          "Dra. Maria Santos",
			LicenseNumber: "SP-12345",
			ClinicID:      clinicID,
		})
		var conflict *apperrors.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "license_number", conflict.Field)
	}

	vets, err := f.veterinarians.List(ctx, Page{})
	require.NoError(t, err)
	count := 0
	for _, v := range vets {
		if v.LicenseNumber == "SP-12345" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestVeterinarianService_CreateWithMissingClinic(t *testing.T) {
	f := newFixture(t)

	_, err := f.veterinarians.Create(context.Background(), CreateVeterinarianInput{
		Name:          "Dr. João Silva",
		LicenseNumber: "SP-12345",
		ClinicID:      42,
	})
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "clinic", notFound.Entity)
}

func TestVeterinarianService_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clinic := f.clinic(t)
	first := f.veterinarian(t, clinic.ID, "SP-12345")
	second := f.veterinarian(t, clinic.ID, "RJ-67890")

	updated, err := f.veterinarians.Update(ctx, first.ID, UpdateVeterinarianInput{Specialty: strPtr("Cirurgia")})
	require.NoError(t, err)
	assert.Equal(t, "Cirurgia", updated.Specialty)
	assert.Equal(t, "SP-12345", updated.LicenseNumber)
	assert.Equal(t, "Dr. João Silva", updated.Name)

	// Re-sending its own license is not a conflict.
	_, err = f.veterinarians.Update(ctx, first.ID, UpdateVeterinarianInput{LicenseNumber: strPtr("SP-12345")})
	assert.NoError(t, err)

	_, err = f.veterinarians.Update(ctx, second.ID, UpdateVeterinarianInput{LicenseNumber: strPtr("SP-12345")})
	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)

	_, err = f.veterinarians.Update(ctx, second.ID, UpdateVeterinarianInput{ClinicID: uintPtr(999)})
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "clinic", notFound.Entity)

	_, err = f.veterinarians.Update(ctx, 999, UpdateVeterinarianInput{Name: strPtr("x")})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "veterinarian", notFound.Entity)
}

func TestVisitService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clinic := f.clinic(t)
	vet := f.veterinarian(t, clinic.ID, "SP-12345")
	pet := f.pet(t, f.tutor(t).ID)

	t.Run("missing veterinarian is named", func(t *testing.T) {
		_, err := f.visits.Create(ctx, CreateVisitInput{Description: "Consulta", PetID: pet.ID, VeterinarianID: 999})
		var notFound *apperrors.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "veterinarian", notFound.Entity)
	})

	t.Run("pet is checked first", func(t *testing.T) {
		_, err := f.visits.Create(ctx, CreateVisitInput{Description: "Consulta", PetID: 999, VeterinarianID: 999})
		var notFound *apperrors.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "pet", notFound.Entity)
	})

	t.Run("timestamp defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		visit, err := f.visits.Create(ctx, CreateVisitInput{Description: "Vacinação", PetID: pet.ID, VeterinarianID: vet.ID})
		require.NoError(t, err)
		assert.False(t, visit.Timestamp.Before(before.Add(-time.Second)))
	})

	t.Run("explicit timestamp is kept", func(t *testing.T) {
		at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		visit, err := f.visits.Create(ctx, CreateVisitInput{Timestamp: &at, Description: "Retorno", PetID: pet.ID, VeterinarianID: vet.ID})
		require.NoError(t, err)
		assert.True(t, at.Equal(visit.Timestamp))
	})
}

func TestTutorService_NormalizesPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tutor := f.tutor(t)
	assert.Equal(t, "+5511999991234", tutor.Phone)

	_, err := f.tutors.Create(ctx, CreateTutorInput{Name: "Ana Costa", Phone: "abc"})
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "phone")

	updated, err := f.tutors.Update(ctx, tutor.ID, UpdateTutorInput{Phone: strPtr("+55 21 3333-4444")})
	require.NoError(t, err)
	assert.Equal(t, "+552133334444", updated.Phone)
	assert.Equal(t, "Carlos Oliveira", updated.Name)
}

func TestClinicService_DeleteAndListVeterinarians(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clinic := f.clinic(t)
	vet := f.veterinarian(t, clinic.ID, "SP-12345")

	vets, err := f.clinics.ListVeterinarians(ctx, clinic.ID)
	require.NoError(t, err)
	require.Len(t, vets, 1)
	assert.Equal(t, vet.ID, vets[0].ID)

	_, err = f.clinics.ListVeterinarians(ctx, 999)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = f.clinics.Delete(ctx, clinic.ID)
	var inUse *apperrors.InUseError
	require.ErrorAs(t, err, &inUse)

	_, err = f.veterinarians.Delete(ctx, vet.ID)
	require.NoError(t, err)

	deleted, err := f.clinics.Delete(ctx, clinic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clínica VetLife", deleted.Name)

	_, err = f.clinics.Get(ctx, clinic.ID)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "clinic", notFound.Entity)
}

func TestUserService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin, err := f.users.Create(ctx, CreateUserInput{Username: "admin", Email: "admin@veterinaria.com", Password: "admin123"})
	require.NoError(t, err)
	demo, err := f.users.Create(ctx, CreateUserInput{Username: "demo", Email: "demo@veterinaria.com", Password: "demo123"})
	require.NoError(t, err)

	_, err = f.users.Update(ctx, demo.ID, UpdateUserInput{Username: strPtr("admin")})
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "username", conflict.Field)

	_, err = f.users.Update(ctx, demo.ID, UpdateUserInput{Email: strPtr(admin.Email)})
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)

	updated, err := f.users.Update(ctx, demo.ID, UpdateUserInput{Password: strPtr("newpass1")})
	require.NoError(t, err)
	assert.True(t, f.hasher.Verify("newpass1", updated.PasswordHash))

	_, err = f.auth.Login(ctx, "demo", "newpass1")
	assert.NoError(t, err)
}

func TestNaturalKeys_RejectBlank(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clinic := f.clinic(t)
	vet := f.veterinarian(t, clinic.ID, "SP-12345")
	user, err := f.users.Create(ctx, CreateUserInput{Username: "demo", Email: "demo@veterinaria.com", Password: "demo123"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		field string
		call  func() error
	}{
		{
			name:  "register blank username",
			field: "username",
			call: func() error {
				_, err := f.auth.Register(ctx, CreateUserInput{Username: "     ", Email: "blank@veterinaria.com", Password: "demo123"})
				return err
			},
		},
		{
			name:  "update to blank username",
			field: "username",
			call: func() error {
				_, err := f.users.Update(ctx, user.ID, UpdateUserInput{Username: strPtr(" \t ")})
				return err
			},
		},
		{
			name:  "create blank license",
			field: "license_number",
			call: func() error {
				_, err := f.veterinarians.Create(ctx, CreateVeterinarianInput{Name: "Dra. Maria Santos", LicenseNumber: "   ", ClinicID: clinic.ID})
				return err
			},
		},
		{
			name:  "update to blank license",
			field: "license_number",
			call: func() error {
				_, err := f.veterinarians.Update(ctx, vet.ID, UpdateVeterinarianInput{LicenseNumber: strPtr("  ")})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var validation *apperrors.ValidationError
			require.ErrorAs(t, tt.call(), &validation)
			assert.Equal(t, "is required", validation.Fields[tt.field])
		})
	}

	users, err := f.users.List(ctx, Page{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "demo", users[0].Username)

	stored, err := f.veterinarians.Get(ctx, vet.ID)
	require.NoError(t, err)
	assert.Equal(t, "SP-12345", stored.LicenseNumber)
}

func TestUserService_EmailIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.auth.Register(ctx, CreateUserInput{Username: "demo", Email: "  Demo@Veterinaria.com ", Password: "demo123"})
	require.NoError(t, err)
	assert.Equal(t, "demo@veterinaria.com", first.Email)

	_, err = f.auth.Register(ctx, CreateUserInput{Username: "other", Email: "demo@veterinaria.com", Password: "demo123"})
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)

	updated, err := f.users.Update(ctx, first.ID, UpdateUserInput{Email: strPtr("DEMO@veterinaria.com")})
	require.NoError(t, err)
	assert.Equal(t, "demo@veterinaria.com", updated.Email)
}
