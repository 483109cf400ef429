package services_test

import (
	"testing"

	"backend/entity"
	"backend/services"
)

func TestCanMutate(t *testing.T) {
	cases := []struct {
		name     string
		userID   uint
		role     string
		authorID uint
		want     bool
	}{
		{"owner may mutate own record", 1, entity.RoleUser, 1, true},
		{"stranger may not mutate", 2, entity.RoleUser, 1, false},
		{"admin may mutate anyone's record", 2, entity.RoleAdmin, 1, true},
		{"admin may mutate own record", 1, entity.RoleAdmin, 1, true},
		{"empty role behaves like user", 2, "", 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.CanMutate(tc.userID, tc.role, tc.authorID); got != tc.want {
				t.Errorf("CanMutate(%d, %q, %d) = %v, want %v", tc.userID, tc.role, tc.authorID, got, tc.want)
			}
		})
	}
}
