package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeLoginValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     EmployeeLogin
		wantErr string
	}{
		{
			name:    "neither email nor username",
			req:     EmployeeLogin{Password: "Secret123"},
			wantErr: "Must have either email or username",
		},
		{
			name:    "password without uppercase",
			req:     EmployeeLogin{Email: "jdoe@pharmacy.test", Password: "secret123"},
			wantErr: "Password must contain an uppercase letter",
		},
		{
			name:    "password without digit",
			req:     EmployeeLogin{Email: "jdoe@pharmacy.test", Password: "SecretPass"},
			wantErr: "Password must contain a digit",
		},
		{
			name: "email only",
			req:  EmployeeLogin{Email: "jdoe@pharmacy.test", Password: "Secret123"},
		},
		{
			name: "username only",
			req:  EmployeeLogin{Username: "jdoe", Password: "Secret123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestEmployeeRegisterNormalize(t *testing.T) {
	middle := "  Quincy "
	req := EmployeeRegister{
		FirstName:   "John",
		MiddleName:  &middle,
		LastName:    " DOE ",
		Username:    "JDoe",
		Email:       "JDoe@Pharmacy.Test",
		Password:    " Secret123 ",
		HomeAddress: "12 High Street",
		Role:        "Manager",
	}
	req.Normalize()

	assert.Equal(t, "john", req.FirstName)
	assert.Equal(t, "quincy", *req.MiddleName)
	assert.Equal(t, "doe", req.LastName)
	assert.Equal(t, "jdoe", req.Username)
	assert.Equal(t, "jdoe@pharmacy.test", req.Email)
	assert.Equal(t, "12 high street", req.HomeAddress)
	assert.Equal(t, "manager", req.Role)
	// Passwords are trimmed but never case-folded.
	assert.Equal(t, "Secret123", req.Password)
}

func TestEmployeeRegisterValidateRole(t *testing.T) {
	req := EmployeeRegister{Role: "janitor", Password: "Secret123"}
	err := req.Validate()
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "role", verr.Fields[0].Field)

	req.Role = "salesperson"
	assert.NoError(t, req.Validate())
}

func TestEmployeeUpdateValidate(t *testing.T) {
	empty := EmployeeUpdate{}
	err := empty.Validate()
	require.Error(t, err)
	assert.Equal(t, "Request data cannot be empty", err.Error())

	role := "manager"
	assert.NoError(t, (&EmployeeUpdate{Role: &role}).Validate())

	bad := "janitor"
	assert.Error(t, (&EmployeeUpdate{Role: &bad}).Validate())
}
