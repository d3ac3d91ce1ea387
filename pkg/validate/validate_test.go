package validate_test

import (
	"testing"

	"github.com/Astemirdum/library-console/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	type form struct {
		Name  string `json:"name" validate:"required,min=2"`
		Days  int    `json:"days" validate:"min=1,max=60"`
		Email string `json:"email" validate:"omitempty,email"`
		Kind  string `json:"kind" validate:"omitempty,oneof=cash card"`
	}
	tests := []struct {
		name    string
		in      form
		wantErr string
	}{
		{name: "ok", in: form{Name: "Ann", Days: 14}},
		{name: "required", in: form{Days: 1}, wantErr: "name is required"},
		{name: "short string", in: form{Name: "A", Days: 1}, wantErr: "name must be at least 2 characters"},
		{name: "below min", in: form{Name: "Ann"}, wantErr: "days must be at least 1"},
		{name: "above max", in: form{Name: "Ann", Days: 61}, wantErr: "days must be at most 60"},
		{name: "email", in: form{Name: "Ann", Days: 1, Email: "nope"}, wantErr: "email must be a valid email"},
		{name: "oneof", in: form{Name: "Ann", Days: 1, Kind: "gold"}, wantErr: "kind must be one of [cash card]"},
	}
	v := validate.NewCustomValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
