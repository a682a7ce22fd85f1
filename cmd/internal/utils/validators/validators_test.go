package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Code  string `validate:"nospaces"`
	State string `validate:"usstate"`
	Phone string `validate:"omitempty,phone"`
	Type  string `validate:"addresstype"`
}

func TestRegister(t *testing.T) {
	validate := validator.New()
	Register(validate)

	valid := sample{Code: "ACME-1001", State: "CA", Phone: "(916) 555-0123", Type: "warehouse"}
	assert.NoError(t, validate.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*sample)
		tag    string
	}{
		{"code with spaces", func(s *sample) { s.Code = "ACME 1001" }, "nospaces"},
		{"lowercase state", func(s *sample) { s.State = "ca" }, "usstate"},
		{"long state", func(s *sample) { s.State = "CAL" }, "usstate"},
		{"too few digits", func(s *sample) { s.Phone = "555-01" }, "phone"},
		{"letters in phone", func(s *sample) { s.Phone = "555-CALL-NOW" }, "phone"},
		{"unknown address type", func(s *sample) { s.Type = "office" }, "addresstype"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := validate.Struct(s)

			var ve validator.ValidationErrors
			if assert.ErrorAs(t, err, &ve) {
				assert.Len(t, ve, 1)
				assert.Equal(t, tt.tag, ve[0].Tag())
			}
		})
	}

	international := valid
	international.Phone = "+1 530.222.8888"
	assert.NoError(t, validate.Struct(international))
}
