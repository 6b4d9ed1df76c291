package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vetclinic/internal/errors"
	"vetclinic/internal/model"
	"vetclinic/internal/repository"
)

func seedClinic(t *testing.T, s *Store) *model.Clinic {
	t.Helper()
	clinic := &model.Clinic{Name: "Clínica VetLife", City: "São Paulo"}
	require.NoError(t, s.Clinics().Create(context.Background(), clinic))
	return clinic
}

func TestStore_CreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first := seedClinic(t, s)
	second := &model.Clinic{Name: "Animal Care Center", City: "Rio de Janeiro"}
	require.NoError(t, s.Clinics().Create(ctx, second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	got, err := s.Clinics().FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Animal Care Center", got.Name)
}

func TestStore_FindByIDMissing(t *testing.T) {
	_, err := NewStore().Pets().FindByID(context.Background(), 999999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_ListPaginates(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Tutors().Create(ctx, &model.Tutor{Name: name, Phone: "+5511999991234"}))
	}

	page, err := s.Tutors().List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Name)
	assert.Equal(t, "c", page[1].Name)

	empty, err := s.Tutors().List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_UniqueLicense(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	clinic := seedClinic(t, s)

	vet := &model.Veterinarian{Name: "Dr. João Silva", LicenseNumber: "SP-12345", ClinicID: clinic.ID}
	require.NoError(t, s.Veterinarians().Create(ctx, vet))

	err := s.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Other", LicenseNumber: "SP-12345", ClinicID: clinic.ID})
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "license_number", conflict.Field)

	// Updating a row with its own license is not a conflict.
	vet.Specialty = "Cirurgia"
	assert.NoError(t, s.Veterinarians().Update(ctx, vet, "specialty"))

	all, err := s.Veterinarians().ListByClinic(ctx, clinic.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_MissingParent(t *testing.T) {
	err := NewStore().Pets().Create(context.Background(), &model.Pet{Name: "Rex", Species: "Cão", TutorID: 999999})
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "tutor", notFound.Entity)
	assert.Equal(t, uint(999999), notFound.ID)
}

func TestStore_DeleteReferenced(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	clinic := seedClinic(t, s)
	require.NoError(t, s.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Dr. João Silva", LicenseNumber: "SP-12345", ClinicID: clinic.ID}))

	_, err := s.Clinics().Delete(ctx, clinic.ID)
	var inUse *apperrors.InUseError
	require.ErrorAs(t, err, &inUse)

	_, err = s.Clinics().FindByID(ctx, clinic.ID)
	assert.NoError(t, err)
}

func TestStore_DeleteReturnsRow(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	clinic := seedClinic(t, s)

	deleted, err := s.Clinics().Delete(ctx, clinic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clínica VetLife", deleted.Name)

	_, err = s.Clinics().FindByID(ctx, clinic.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_TransactionRollback(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Clinics().Create(ctx, &model.Clinic{Name: "Temp", City: "Recife"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	clinics, err := s.Clinics().List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, clinics)
}

func TestStore_TransactionCommit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		return tx.Users().Create(ctx, &model.User{Username: "demo", Email: "demo@veterinaria.com", IsActive: true})
	})
	require.NoError(t, err)

	user, err := s.Users().FindByEmail(ctx, "DEMO@veterinaria.com")
	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
}
