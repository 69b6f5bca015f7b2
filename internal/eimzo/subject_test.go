package eimzo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUserType(t *testing.T) {
	tests := []struct {
		name    string
		subject map[string]string
		want    int
	}{
		{
			name:    "physical person",
			subject: map[string]string{"CN": "ALIYEV ALISHER", oidPhysical: "30901851234567"},
			want:    UserTypePhysical,
		},
		{
			name:    "juridical person",
			subject: map[string]string{"CN": "OOO ROMASHKA", oidJuridical: "205412345"},
			want:    UserTypeJuridical,
		},
		{
			name: "juridical wins when both oids present",
			subject: map[string]string{
				oidJuridical: "205412345",
				oidPhysical:  "30901851234567",
			},
			want: UserTypeJuridical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyUserType(tt.subject)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyUserTypeUndetermined(t *testing.T) {
	tests := []struct {
		name    string
		subject map[string]string
	}{
		{"no national oids", map[string]string{"CN": "ALIYEV ALISHER", "O": "Example"}},
		{"empty subject", map[string]string{}},
		{"nil subject", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyUserType(tt.subject)
			assert.ErrorIs(t, err, ErrUserTypeUndetermined)
			assert.Zero(t, got)
		})
	}
}
