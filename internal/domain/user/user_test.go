package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

func TestNewUser_ClientApprovedImmediately(t *testing.T) {
	u, err := NewUser("Dana", "Dana@Example.com", "555-0101", "hash", auth.RoleClient, "", "Austin", "TX")
	require.NoError(t, err)

	assert.Equal(t, "dana@example.com", u.Email())
	assert.True(t, u.IsApproved())
	assert.False(t, u.IsBookableProfessional())
}

func TestNewUser_ProfessionalStartsUnapproved(t *testing.T) {
	u, err := NewUser("Riley", "riley@example.com", "555-0102", "hash", auth.RoleProfessional, "Nail artist", "Austin", "TX")
	require.NoError(t, err)

	assert.False(t, u.IsApproved())
	assert.False(t, u.IsBookableProfessional())

	require.NoError(t, u.SetApproved(true))
	assert.True(t, u.IsBookableProfessional())
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "a@b.com", "", "hash", auth.RoleClient, "", "", "")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = NewUser("Dana", "", "", "hash", auth.RoleClient, "", "", "")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = NewUser("Dana", "a@b.com", "", "", auth.RoleClient, "", "", "")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = NewUser("Dana", "a@b.com", "", "hash", auth.Role("janitor"), "", "", "")
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestSetApproved_OnlyProfessionals(t *testing.T) {
	u, err := NewUser("Dana", "dana@example.com", "", "hash", auth.RoleClient, "", "", "")
	require.NoError(t, err)

	err = u.SetApproved(true)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	u, err := NewUser("Riley", "riley@example.com", "555-0102", "hash", auth.RoleProfessional, "", "Austin", "TX")
	require.NoError(t, err)

	u.UpdateProfile("", "555-0199", "Lash specialist", "", "")
	assert.Equal(t, "Riley", u.Name())
	assert.Equal(t, "555-0199", u.Phone())
	assert.Equal(t, "Lash specialist", u.Bio())
	assert.Equal(t, "Austin", u.City())
}
