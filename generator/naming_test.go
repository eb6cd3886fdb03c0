package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToExportedName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"pets", "Pets"},
		{"Pets", "Pets"},
		{"pet-store", "PetStore"},
		{"pet_store", "PetStore"},
		{"pet.store", "PetStore"},
		{"petId", "PetID"},
		{"api", "API"},
		{"api-keys", "APIKeys"},
		{"v2", "V2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, toExportedName(tt.input))
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"petId", []string{"pet", "Id"}},
		{"user_profile-v2", []string{"user", "profile", "v2"}},
		{"HTTPServer", []string{"HTTPServer"}},
		{"pets", []string{"pets"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitWords(tt.input))
		})
	}
}

func TestPathWords(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/user/{id}/posts", "UserByIDPosts"},
		{"/user/{id}", "UserByID"},
		{"/pets", "Pets"},
		{"/pets/{petId}", "PetsByPetID"},
		{"/owners/{ownerId}/pets", "OwnersByOwnerIDPets"},
		{"/v2/users", "V2Users"},
		{"/", "Root"},
		{"", "Root"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, pathWords(tt.path))
		})
	}
}

func TestConstName(t *testing.T) {
	tests := []struct {
		prefix   string
		group    string
		path     string
		expected string
	}{
		{"Path", "users", "/user/{id}/posts", "PathUsersUserByIDPosts"},
		{"Path", "default", "/healthz", "PathDefaultHealthz"},
		{"Path", "pets", "/pets/{petId}", "PathPetsPetsByPetID"},
		{"Path", "default", "/", "PathDefaultRoot"},
		{"Route", "auth", "/login", "RouteAuthLogin"},
		// A keyword surviving prefix and group stripping is escaped.
		{"", "", "/type", "Type_"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, constName(tt.prefix, tt.group, tt.path))
		})
	}
}

func TestEscapeReservedWord(t *testing.T) {
	assert.Equal(t, "type_", escapeReservedWord("type"))
	assert.Equal(t, "Range_", escapeReservedWord("Range"))
	assert.Equal(t, "Pets", escapeReservedWord("Pets"))
}

func TestNameTableCollisions(t *testing.T) {
	names := newNameTable("Path")
	assert.Equal(t, "PathDefaultUsers", names.assign("default", "/users"))
	assert.Equal(t, "PathDefaultUsers2", names.assign("default", "/users/"))
	assert.Equal(t, "PathDefaultUsers3", names.assign("default", "/users//"))
	assert.Equal(t, "PathDefaultAccounts", names.assign("default", "/accounts"))
}
