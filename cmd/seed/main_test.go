package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vetclinic/internal/auth"
	"vetclinic/internal/repository/memory"
)

func TestSeed(t *testing.T) {
	store := memory.NewStore()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	ctx := context.Background()

	require.NoError(t, seed(ctx, store, hasher, "BR"))

	vet, err := store.Veterinarians().FindByLicenseNumber(ctx, "SP-12345")
	require.NoError(t, err)
	assert.Equal(t, "Dr. João Silva", vet.Name)

	admin, err := store.Users().FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("admin123", admin.PasswordHash))

	visits, err := store.Visits().List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, visits, 2)

	assert.ErrorIs(t, seed(ctx, store, hasher, "BR"), errAlreadySeeded)
}
